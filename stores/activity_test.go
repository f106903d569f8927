package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-console-backend/models"
)

var activityNow = time.Date(2024, 12, 15, 12, 0, 0, 0, time.Local)

func newTestActivityStore() *ActivityStore {
	s := NewActivityStore()
	s.Seed([]models.CustomerActivity{
		{ID: "1", CustomerID: "1", Type: models.ActivityService, Title: "深層清潔護膚", Amount: 1500,
			Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), Status: models.StatusCompleted},
		{ID: "2", CustomerID: "1", Type: models.ActivityPayment, Title: "付款紀錄", Amount: 1500,
			Date: time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), Status: models.StatusCompleted},
		{ID: "3", CustomerID: "1", Type: models.ActivityAppointment, Title: "深層保濕護膚", Amount: 1500,
			Date: time.Date(2024, 12, 20, 0, 0, 0, 0, time.Local), Status: models.StatusScheduled},
		{ID: "4", CustomerID: "1", Type: models.ActivityAppointment, Title: "精油SPA按摩", Amount: 2200,
			Date: time.Date(2024, 12, 25, 0, 0, 0, 0, time.Local), Status: models.StatusScheduled},
		{ID: "5", CustomerID: "1", Type: models.ActivityAppointment, Title: "取消的預約", Amount: 1200,
			Date: time.Date(2024, 12, 22, 0, 0, 0, 0, time.Local), Status: models.StatusCancelled},
		{ID: "6", CustomerID: "1", Type: models.ActivityConsultation, Title: "膚質諮詢",
			Date: time.Date(2024, 11, 10, 0, 0, 0, 0, time.Local), Status: models.StatusCompleted},
		{ID: "7", CustomerID: "2", Type: models.ActivityAppointment, Title: "個人健身指導", Amount: 1200,
			Date: time.Date(2024, 12, 18, 0, 0, 0, 0, time.Local), Status: models.StatusScheduled},
		{ID: "8", CustomerID: "2", Type: models.ActivityPayment, Title: "付款", Amount: 800,
			Date: time.Date(2024, 12, 5, 0, 0, 0, 0, time.Local), Status: models.StatusCompleted},
	})
	return s
}

func TestActivityStore_ByCustomerAndMonth(t *testing.T) {
	s := newTestActivityStore()

	assert.Len(t, s.ByCustomer("1"), 6)
	assert.Len(t, s.ByCustomer("2"), 2)
	assert.Empty(t, s.ByCustomer("nobody"))

	december := s.ByMonth("1", 2024, time.December)
	assert.Len(t, december, 5)
	november := s.ByMonth("1", 2024, time.November)
	require.Len(t, november, 1)
	assert.Equal(t, "6", november[0].ID)
}

func TestActivityStore_MonthlyStats(t *testing.T) {
	s := newTestActivityStore()

	stats := s.MonthlyStats("1", 2024, time.December)
	// payments summed, completed services counted, appointments any status
	assert.InDelta(t, 1500, stats.TotalSpent, 1e-9)
	assert.Equal(t, 1, stats.ServiceCount)
	assert.Equal(t, 3, stats.AppointmentCount)
	assert.Equal(t, 5, stats.TotalActivities)

	empty := s.MonthlyStats("1", 2023, time.December)
	assert.Equal(t, MonthlyStats{}, empty)
}

func TestActivityStore_UpcomingAppointments(t *testing.T) {
	s := newTestActivityStore()

	got := s.UpcomingAppointments("1", activityNow, 5)
	require.Len(t, got, 2)
	// scheduled only, future only, ascending
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
	for _, a := range got {
		assert.Equal(t, models.StatusScheduled, a.Status)
		assert.False(t, a.Date.Before(activityNow))
	}

	capped := s.UpcomingAppointments("1", activityNow, 1)
	require.Len(t, capped, 1)
	assert.Equal(t, "3", capped[0].ID)

	// past-dated now excludes nothing scheduled
	late := time.Date(2024, 12, 26, 0, 0, 0, 0, time.Local)
	assert.Empty(t, s.UpcomingAppointments("1", late, 5))
}

func TestActivityStore_RecentOrdering(t *testing.T) {
	s := newTestActivityStore()

	recent := s.Recent("1", 3)
	require.Len(t, recent, 3)
	assert.Equal(t, "4", recent[0].ID)
	assert.Equal(t, "5", recent[1].ID)
	assert.Equal(t, "3", recent[2].ID)

	appointments := s.RecentAppointments("1", 2)
	require.Len(t, appointments, 2)
	assert.Equal(t, "4", appointments[0].ID)
	assert.Equal(t, "5", appointments[1].ID)
}

func TestActivityStore_RecomputeStatuses(t *testing.T) {
	s := newTestActivityStore()

	// mark a future activity completed and a past one scheduled to verify
	// both directions of the recompute
	completed := models.StatusCompleted
	scheduled := models.StatusScheduled
	s.Update("3", ActivityUpdate{Status: &completed})
	s.Update("1", ActivityUpdate{Status: &scheduled})

	s.RecomputeStatuses(activityNow)

	byID := func(id string) models.CustomerActivity {
		a, ok := s.GetByID(id)
		require.True(t, ok)
		return a
	}
	assert.Equal(t, models.StatusScheduled, byID("3").Status, "future flips back to scheduled")
	assert.Equal(t, models.StatusCompleted, byID("1").Status, "past flips back to completed")
	assert.Equal(t, models.StatusCancelled, byID("5").Status, "cancellation survives")

	// idempotent: second run changes nothing
	before := s.All()
	s.RecomputeStatuses(activityNow)
	assert.Equal(t, before, s.All())
}

func TestActivityStore_CRUD(t *testing.T) {
	s := NewActivityStore()

	a := s.Add(models.CustomerActivity{
		CustomerID: "1",
		Type:       models.ActivityService,
		Title:      "新服務",
		Date:       activityNow,
		Status:     models.StatusCompleted,
	})
	require.NotEmpty(t, a.ID)

	title := "改名"
	s.Update(a.ID, ActivityUpdate{Title: &title})
	got, ok := s.GetByID(a.ID)
	require.True(t, ok)
	assert.Equal(t, "改名", got.Title)

	before := s.All()
	s.Update("missing", ActivityUpdate{Title: &title})
	s.Delete("missing")
	assert.Equal(t, before, s.All())

	s.Delete(a.ID)
	assert.Empty(t, s.All())
}
