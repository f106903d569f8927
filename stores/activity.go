package stores

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"studio-console-backend/models"
	"studio-console-backend/utils"
)

// MonthlyStats aggregates one customer-month of activity.
type MonthlyStats struct {
	TotalSpent       float64 `json:"totalSpent"`
	ServiceCount     int     `json:"serviceCount"`
	AppointmentCount int     `json:"appointmentCount"`
	TotalActivities  int     `json:"totalActivities"`
}

// ActivityStore holds the customer activity log: services performed,
// appointments, payments and consultations.
type ActivityStore struct {
	mu         sync.RWMutex
	activities []models.CustomerActivity
}

// NewActivityStore returns an empty activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{}
}

// Seed appends preassembled records, keeping their ids as given.
func (s *ActivityStore) Seed(activities []models.CustomerActivity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append(s.activities, activities...)
}

// Add stores a new activity, assigning its id.
func (s *ActivityStore) Add(a models.CustomerActivity) models.CustomerActivity {
	a.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append(s.activities, a)
	return a
}

// ActivityUpdate is a partial activity mutation; nil fields are left alone.
type ActivityUpdate struct {
	Type        *models.ActivityType
	Title       *string
	Description *string
	Amount      *float64
	Date        *time.Time
	Status      *models.ActivityStatus
	ServiceID   *string
	Notes       *string
}

// Update merges a partial update into the activity with the given id. Missing
// ids are silently ignored.
func (s *ActivityStore) Update(id string, updates ActivityUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID != id {
			continue
		}
		a := &s.activities[i]
		if updates.Type != nil {
			a.Type = *updates.Type
		}
		if updates.Title != nil {
			a.Title = *updates.Title
		}
		if updates.Description != nil {
			a.Description = *updates.Description
		}
		if updates.Amount != nil {
			a.Amount = *updates.Amount
		}
		if updates.Date != nil {
			a.Date = *updates.Date
		}
		if updates.Status != nil {
			a.Status = *updates.Status
		}
		if updates.ServiceID != nil {
			a.ServiceID = *updates.ServiceID
		}
		if updates.Notes != nil {
			a.Notes = *updates.Notes
		}
		return
	}
}

// Delete removes the activity with the given id. Missing ids are silently
// ignored.
func (s *ActivityStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			return
		}
	}
}

// GetByID returns the activity with the given id.
func (s *ActivityStore) GetByID(id string) (models.CustomerActivity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.CustomerActivity{}, false
}

// ByCustomer returns every activity logged for one customer.
func (s *ActivityStore) ByCustomer(customerID string) []models.CustomerActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CustomerActivity, 0)
	for _, a := range s.activities {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out
}

// ByMonth returns one customer's activities falling in the given calendar
// month.
func (s *ActivityStore) ByMonth(customerID string, year int, month time.Month) []models.CustomerActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CustomerActivity, 0)
	for _, a := range s.activities {
		if a.CustomerID == customerID && utils.SameMonth(a.Date, year, month) {
			out = append(out, a)
		}
	}
	return out
}

// MonthlyStats aggregates one customer-month: payments summed, completed
// services and appointments (any status) counted.
func (s *ActivityStore) MonthlyStats(customerID string, year int, month time.Month) MonthlyStats {
	monthActivities := s.ByMonth(customerID, year, month)

	var stats MonthlyStats
	stats.TotalActivities = len(monthActivities)
	for _, a := range monthActivities {
		switch {
		case a.Type == models.ActivityPayment:
			stats.TotalSpent += a.Amount
		case a.Type == models.ActivityService && a.Status == models.StatusCompleted:
			stats.ServiceCount++
		case a.Type == models.ActivityAppointment:
			stats.AppointmentCount++
		}
	}
	return stats
}

// Recent returns one customer's most recent activities of any type,
// descending by date, capped at limit.
func (s *ActivityStore) Recent(customerID string, limit int) []models.CustomerActivity {
	out := s.ByCustomer(customerID)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return capActivities(out, limit)
}

// UpcomingAppointments returns scheduled appointments at or after now,
// soonest first, capped at limit.
func (s *ActivityStore) UpcomingAppointments(customerID string, now time.Time, limit int) []models.CustomerActivity {
	s.mu.RLock()
	out := make([]models.CustomerActivity, 0)
	for _, a := range s.activities {
		if a.CustomerID == customerID &&
			a.Type == models.ActivityAppointment &&
			a.Status == models.StatusScheduled &&
			!a.Date.Before(now) {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return capActivities(out, limit)
}

// RecentAppointments returns one customer's appointments regardless of
// status or time direction, most recent first, capped at limit.
func (s *ActivityStore) RecentAppointments(customerID string, limit int) []models.CustomerActivity {
	s.mu.RLock()
	out := make([]models.CustomerActivity, 0)
	for _, a := range s.activities {
		if a.CustomerID == customerID && a.Type == models.ActivityAppointment {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return capActivities(out, limit)
}

// RecomputeStatuses re-derives each activity's status from its date: strictly
// future dates become scheduled, everything else completed. Cancelled
// activities are left untouched; a cancellation is an explicit decision and
// must survive the clock moving past the booking date. Applying this twice
// with the same now is a no-op.
func (s *ActivityStore) RecomputeStatuses(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].Status == models.StatusCancelled {
			continue
		}
		if s.activities[i].Date.After(now) {
			s.activities[i].Status = models.StatusScheduled
		} else {
			s.activities[i].Status = models.StatusCompleted
		}
	}
}

// All returns a copy of the full log.
func (s *ActivityStore) All() []models.CustomerActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CustomerActivity, len(s.activities))
	copy(out, s.activities)
	return out
}

func capActivities(in []models.CustomerActivity, limit int) []models.CustomerActivity {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}
