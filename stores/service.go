package stores

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"studio-console-backend/models"
	"studio-console-backend/utils"
)

// ServiceStore holds the service catalog and the append-only log of services
// performed, with revenue rollups over the log.
type ServiceStore struct {
	mu       sync.RWMutex
	services []models.Service
	records  []models.ServiceRecord
}

// NewServiceStore returns an empty catalog and log.
func NewServiceStore() *ServiceStore {
	return &ServiceStore{}
}

// Seed appends preassembled catalog entries and records, keeping their ids
// as given.
func (s *ServiceStore) Seed(services []models.Service, records []models.ServiceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, services...)
	s.records = append(s.records, records...)
}

// AddService stores a new catalog entry, assigning id and creation time.
func (s *ServiceStore) AddService(svc models.Service) models.Service {
	svc.ID = uuid.NewString()
	svc.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, svc)
	return svc
}

// ServiceUpdate is a partial catalog mutation; nil fields are left alone.
type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	Category    *models.BusinessType
	IsActive    *bool
}

// UpdateService merges a partial update into the entry with the given id.
// Missing ids are silently ignored.
func (s *ServiceStore) UpdateService(id string, updates ServiceUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID != id {
			continue
		}
		svc := &s.services[i]
		if updates.Name != nil {
			svc.Name = *updates.Name
		}
		if updates.Description != nil {
			svc.Description = *updates.Description
		}
		if updates.Price != nil {
			svc.Price = *updates.Price
		}
		if updates.Duration != nil {
			svc.Duration = *updates.Duration
		}
		if updates.Category != nil {
			svc.Category = *updates.Category
		}
		if updates.IsActive != nil {
			svc.IsActive = *updates.IsActive
		}
		return
	}
}

// DeleteService removes the entry with the given id. Missing ids are silently
// ignored.
func (s *ServiceStore) DeleteService(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID == id {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return
		}
	}
}

// GetServiceByID returns the catalog entry with the given id.
func (s *ServiceStore) GetServiceByID(id string) (models.Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, svc := range s.services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// Services returns a copy of the full catalog.
func (s *ServiceStore) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Service, len(s.services))
	copy(out, s.services)
	return out
}

// ActiveServices returns catalog entries currently offered.
func (s *ServiceStore) ActiveServices() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if svc.IsActive {
			out = append(out, svc)
		}
	}
	return out
}

// ServicesByCategory groups the catalog by business line.
func (s *ServiceStore) ServicesByCategory() map[models.BusinessType][]models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[models.BusinessType][]models.Service{
		models.BusinessBeauty:  {},
		models.BusinessHair:    {},
		models.BusinessFitness: {},
	}
	for _, svc := range s.services {
		out[svc.Category] = append(out[svc.Category], svc)
	}
	return out
}

// AddRecord appends a performed-service row to the log, assigning its id.
func (s *ServiceStore) AddRecord(r models.ServiceRecord) models.ServiceRecord {
	r.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return r
}

// Records returns a copy of the performed-service log.
func (s *ServiceStore) Records() []models.ServiceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ServiceRecord, len(s.records))
	copy(out, s.records)
	return out
}

// DailyRevenue sums the log over now's local calendar day.
func (s *ServiceStore) DailyRevenue(now time.Time) float64 {
	today := utils.BeginningOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	for _, r := range s.records {
		if !r.Date.Before(today) && r.Date.Before(tomorrow) {
			sum += r.Price
		}
	}
	return sum
}

// MonthlyRevenue sums the log over now's calendar month.
func (s *ServiceStore) MonthlyRevenue(now time.Time) float64 {
	start := utils.BeginningOfMonth(now)
	end := start.AddDate(0, 1, 0)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	for _, r := range s.records {
		if !r.Date.Before(start) && r.Date.Before(end) {
			sum += r.Price
		}
	}
	return sum
}

// RevenueByDateRange sums the log between start and end, both bounds
// inclusive.
func (s *ServiceStore) RevenueByDateRange(start, end time.Time) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	for _, r := range s.records {
		if !r.Date.Before(start) && !r.Date.After(end) {
			sum += r.Price
		}
	}
	return sum
}
