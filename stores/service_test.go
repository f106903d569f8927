package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-console-backend/models"
)

func newTestServiceStore(now time.Time) *ServiceStore {
	s := NewServiceStore()
	s.Seed(
		[]models.Service{
			{ID: "1", Name: "深層清潔護膚", Price: 1500, Duration: 90, Category: models.BusinessBeauty, IsActive: true},
			{ID: "2", Name: "染髮造型", Price: 3500, Duration: 180, Category: models.BusinessHair, IsActive: true},
			{ID: "3", Name: "舊方案", Price: 900, Duration: 30, Category: models.BusinessFitness, IsActive: false},
		},
		[]models.ServiceRecord{
			{ID: "r1", CustomerID: "1", ServiceID: "1", Date: now.Add(2 * time.Hour), Price: 1500},
			{ID: "r2", CustomerID: "1", ServiceID: "2", Date: now.AddDate(0, 0, -3), Price: 3500},
			{ID: "r3", CustomerID: "2", ServiceID: "1", Date: now.AddDate(0, -1, 0), Price: 1500},
			{ID: "r4", CustomerID: "2", ServiceID: "3", Date: now.AddDate(-1, 0, 0), Price: 900},
		},
	)
	return s
}

func TestServiceStore_CatalogViews(t *testing.T) {
	s := newTestServiceStore(time.Now())

	assert.Len(t, s.Services(), 3)
	active := s.ActiveServices()
	require.Len(t, active, 2)
	for _, svc := range active {
		assert.True(t, svc.IsActive)
	}

	grouped := s.ServicesByCategory()
	assert.Len(t, grouped[models.BusinessBeauty], 1)
	assert.Len(t, grouped[models.BusinessHair], 1)
	assert.Len(t, grouped[models.BusinessFitness], 1)
}

func TestServiceStore_CatalogCRUD(t *testing.T) {
	s := NewServiceStore()

	svc := s.AddService(models.Service{Name: "新服務", Price: 1000, Category: models.BusinessBeauty, IsActive: true})
	require.NotEmpty(t, svc.ID)
	assert.False(t, svc.CreatedAt.IsZero())

	price := 1200.0
	inactive := false
	s.UpdateService(svc.ID, ServiceUpdate{Price: &price, IsActive: &inactive})
	got, ok := s.GetServiceByID(svc.ID)
	require.True(t, ok)
	assert.Equal(t, 1200.0, got.Price)
	assert.False(t, got.IsActive)
	assert.Equal(t, "新服務", got.Name, "identity untouched")

	before := s.Services()
	s.UpdateService("missing", ServiceUpdate{Price: &price})
	s.DeleteService("missing")
	assert.Equal(t, before, s.Services())

	s.DeleteService(svc.ID)
	assert.Empty(t, s.Services())
}

func TestServiceStore_DailyRevenue(t *testing.T) {
	// fixed midday now so the +2h record stays inside the calendar day
	now := time.Date(2024, 12, 15, 10, 0, 0, 0, time.Local)
	s := newTestServiceStore(now)

	assert.InDelta(t, 1500, s.DailyRevenue(now), 1e-9)
}

func TestServiceStore_MonthlyRevenue(t *testing.T) {
	now := time.Date(2024, 12, 15, 10, 0, 0, 0, time.Local)
	s := newTestServiceStore(now)

	// r1 (today) and r2 (3 days ago) fall in December
	assert.InDelta(t, 5000, s.MonthlyRevenue(now), 1e-9)
}

func TestServiceStore_RevenueByDateRange(t *testing.T) {
	now := time.Date(2024, 12, 15, 10, 0, 0, 0, time.Local)
	s := newTestServiceStore(now)

	// bounds are inclusive on both ends
	r2 := now.AddDate(0, 0, -3)
	assert.InDelta(t, 3500, s.RevenueByDateRange(r2, r2), 1e-9)

	all := s.RevenueByDateRange(now.AddDate(-2, 0, 0), now.AddDate(0, 0, 1))
	assert.InDelta(t, 7400, all, 1e-9)

	none := s.RevenueByDateRange(now.AddDate(0, 1, 0), now.AddDate(0, 2, 0))
	assert.Zero(t, none)
}

func TestServiceStore_AddRecordAppends(t *testing.T) {
	s := NewServiceStore()
	r := s.AddRecord(models.ServiceRecord{CustomerID: "1", ServiceID: "1", Date: time.Now(), Price: 800})

	require.NotEmpty(t, r.ID)
	require.Len(t, s.Records(), 1)
	assert.Equal(t, r, s.Records()[0])
}
