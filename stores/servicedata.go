package stores

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"studio-console-backend/models"
	"studio-console-backend/utils"
)

// ErrProfileNotFound is returned when an external identifier has no mapped
// profile.
var ErrProfileNotFound = errors.New("profile not found")

// ServiceDataStore is the gateway to the (mocked) external provider API. It
// loads a provider dataset and a user profile for an opaque identifier and
// serves derived views over the loaded data.
//
// Loads are serialized; a failed load leaves the previously loaded data
// untouched except for the loading and error flags.
type ServiceDataStore struct {
	mu     sync.RWMutex
	loadMu sync.Mutex

	latency time.Duration
	log     zerolog.Logger

	currentID string
	dataset   *models.ServiceDataset
	profile   *models.UserProfile
	loading   bool
	lastErr   error
}

// NewServiceDataStore returns a gateway with the given simulated network
// latency per load.
func NewServiceDataStore(latency time.Duration, log zerolog.Logger) *ServiceDataStore {
	return &ServiceDataStore{latency: latency, log: log}
}

// LoadDataByID resolves the provider dataset and the profile mapped to the
// given external identifier, after the simulated network delay. Unknown
// identifiers fail with ErrProfileNotFound; cancellation propagates
// ctx.Err(). Prior state is only replaced once the whole load succeeded.
func (s *ServiceDataStore) LoadDataByID(ctx context.Context, id string) (*models.UserProfile, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	select {
	case <-ctx.Done():
		s.setError(ctx.Err())
		return nil, ctx.Err()
	case <-time.After(s.latency):
	}

	profile, ok := mockUserProfiles[id]
	if !ok {
		err := fmt.Errorf("load data for %q: %w", id, ErrProfileNotFound)
		s.setError(err)
		s.log.Warn().Str("externalId", id).Msg("external profile lookup failed")
		return nil, err
	}

	dataset := cloneDataset(mockServiceData)
	loaded := cloneProfile(profile)

	s.mu.Lock()
	s.currentID = id
	s.dataset = dataset
	s.profile = loaded
	s.lastErr = nil
	s.mu.Unlock()

	s.log.Info().Str("externalId", id).Str("name", loaded.Name).Msg("external data loaded")
	out := *loaded
	return &out, nil
}

// CurrentID returns the identifier of the last successful load.
func (s *ServiceDataStore) CurrentID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID
}

// IsLoading reports whether a load is in flight.
func (s *ServiceDataStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the error flag of the last load, nil after a success.
func (s *ServiceDataStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Profile returns a copy of the loaded profile, or nil when nothing is
// loaded.
func (s *ServiceDataStore) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	out := *s.profile
	return &out
}

// ProfileUpdate is a partial profile mutation; nil fields are left alone.
type ProfileUpdate struct {
	Name              *string
	Phone             *string
	Email             *string
	Address           *string
	PreferredServices []string
}

// UpdateProfile merges a partial update into the loaded profile. A no-op when
// nothing is loaded.
func (s *ServiceDataStore) UpdateProfile(updates ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return
	}
	if updates.Name != nil {
		s.profile.Name = *updates.Name
	}
	if updates.Phone != nil {
		s.profile.Phone = *updates.Phone
	}
	if updates.Email != nil {
		s.profile.Email = *updates.Email
	}
	if updates.Address != nil {
		s.profile.Address = *updates.Address
	}
	if updates.PreferredServices != nil {
		s.profile.PreferredServices = updates.PreferredServices
	}
}

// Clear drops the loaded identifier, dataset, profile and error flag.
func (s *ServiceDataStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = ""
	s.dataset = nil
	s.profile = nil
	s.lastErr = nil
}

// AllServices flattens the loaded provider datasets into one list, each row
// tagged with the provider it came from.
func (s *ServiceDataStore) AllServices() []models.ProviderService {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return []models.ProviderService{}
	}
	out := make([]models.ProviderService, 0)
	for _, provider := range s.dataset.ServiceInfo {
		for _, svc := range provider.Services {
			out = append(out, models.ProviderService{
				ExternalService: svc,
				ProviderName:    provider.Name,
				ProviderContact: provider.Cell,
			})
		}
	}
	return out
}

// CompletedServices returns the completed partition of AllServices.
func (s *ServiceDataStore) CompletedServices() []models.ProviderService {
	return s.filterByStatus(models.StatusCompleted)
}

// ScheduledServices returns the scheduled partition of AllServices.
func (s *ServiceDataStore) ScheduledServices() []models.ProviderService {
	return s.filterByStatus(models.StatusScheduled)
}

func (s *ServiceDataStore) filterByStatus(status models.ActivityStatus) []models.ProviderService {
	all := s.AllServices()
	out := make([]models.ProviderService, 0, len(all))
	for _, svc := range all {
		if svc.Status == status {
			out = append(out, svc)
		}
	}
	return out
}

// TotalSpent sums the amounts of completed services.
func (s *ServiceDataStore) TotalSpent() float64 {
	var sum float64
	for _, svc := range s.CompletedServices() {
		sum += svc.Amount
	}
	return sum
}

// MonthlyStats aggregates the loaded services falling in the given calendar
// month: completed amounts and counts, scheduled counted as appointments.
func (s *ServiceDataStore) MonthlyStats(year int, month time.Month) MonthlyStats {
	var stats MonthlyStats
	for _, svc := range s.AllServices() {
		if !utils.SameMonth(svc.Day(), year, month) {
			continue
		}
		stats.TotalActivities++
		switch svc.Status {
		case models.StatusCompleted:
			stats.TotalSpent += svc.Amount
			stats.ServiceCount++
		case models.StatusScheduled:
			stats.AppointmentCount++
		}
	}
	return stats
}

// RecentActivities returns the loaded services most recent first, capped at
// limit.
func (s *ServiceDataStore) RecentActivities(limit int) []models.ProviderService {
	all := s.AllServices()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Day().After(all[j].Day())
	})
	return capProviderServices(all, limit)
}

// UpcomingAppointments returns scheduled services at or after now, soonest
// first, capped at limit.
func (s *ServiceDataStore) UpcomingAppointments(now time.Time, limit int) []models.ProviderService {
	scheduled := s.ScheduledServices()
	out := make([]models.ProviderService, 0, len(scheduled))
	for _, svc := range scheduled {
		if !svc.Day().Before(now) {
			out = append(out, svc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Day().Before(out[j].Day())
	})
	return capProviderServices(out, limit)
}

func (s *ServiceDataStore) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *ServiceDataStore) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

func capProviderServices(in []models.ProviderService, limit int) []models.ProviderService {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}

func cloneProfile(p models.UserProfile) *models.UserProfile {
	out := p
	out.PreferredServices = append([]string(nil), p.PreferredServices...)
	if p.LastVisit != nil {
		v := *p.LastVisit
		out.LastVisit = &v
	}
	return &out
}

func cloneDataset(d models.ServiceDataset) *models.ServiceDataset {
	out := models.ServiceDataset{ServiceInfo: make([]models.ServiceProvider, len(d.ServiceInfo))}
	for i, provider := range d.ServiceInfo {
		p := provider
		p.Services = append([]models.ExternalService(nil), provider.Services...)
		out.ServiceInfo[i] = p
	}
	return &out
}
