package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-console-backend/models"
)

func newTestCustomerStore() *CustomerStore {
	s := NewCustomerStore()
	s.Seed([]models.Customer{
		{ID: "1", Name: "王小美", Phone: "0912-345-678", Email: "wang@example.com", BusinessType: models.BusinessBeauty},
		{ID: "2", Name: "李健身", Phone: "0987-654-321", Email: "li@example.com", BusinessType: models.BusinessFitness},
		{ID: "3", Name: "Amy Chen", Phone: "0955-111-222", Email: "amy@example.com", BusinessType: models.BusinessHair},
	})
	return s
}

func TestCustomerStore_SearchMatchesNamePhoneEmail(t *testing.T) {
	s := newTestCustomerStore()

	s.SetSearchQuery("AMY")
	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, "3", s.Filtered()[0].ID)

	s.SetSearchQuery("0987")
	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, "2", s.Filtered()[0].ID)

	s.SetSearchQuery("WANG@")
	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, "1", s.Filtered()[0].ID)

	s.SetSearchQuery("nobody")
	assert.Empty(t, s.Filtered())

	s.SetSearchQuery("")
	assert.Len(t, s.Filtered(), 3)
}

func TestCustomerStore_BusinessTypeFilter(t *testing.T) {
	s := newTestCustomerStore()

	s.SetBusinessTypeFilter(models.BusinessBeauty)
	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, "1", s.Filtered()[0].ID)

	// search and filter combine
	s.SetSearchQuery("李")
	assert.Empty(t, s.Filtered())

	s.SetBusinessTypeFilter(models.BusinessFitness)
	require.Len(t, s.Filtered(), 1)
	assert.Equal(t, "2", s.Filtered()[0].ID)

	s.SetSearchQuery("")
	s.SetBusinessTypeFilter("")
	assert.Len(t, s.Filtered(), 3)
}

func TestCustomerStore_Pagination(t *testing.T) {
	s := NewCustomerStore()
	for i := 0; i < 7; i++ {
		s.Add(models.Customer{Name: "customer", BusinessType: models.BusinessBeauty})
	}
	s.SetItemsPerPage(3)

	// page length == min(pageSize, max(0, filtered - (page-1)*pageSize))
	wantLens := map[int]int{1: 3, 2: 3, 3: 1, 4: 0}
	for page, want := range wantLens {
		s.SetPage(page)
		assert.Len(t, s.Paginated(), want, "page %d", page)
	}
	assert.Equal(t, 3, s.TotalPages())
}

func TestCustomerStore_PaginationOverFilteredSet(t *testing.T) {
	s := newTestCustomerStore()
	s.SetItemsPerPage(2)
	s.SetBusinessTypeFilter(models.BusinessHair)

	require.Len(t, s.Filtered(), 1)
	assert.Len(t, s.Paginated(), 1)
	assert.Equal(t, 1, s.TotalPages())
	// total count stays the size of the full collection
	assert.Equal(t, 3, s.TotalCustomers())
}

func TestCustomerStore_AddAssignsIdentity(t *testing.T) {
	s := NewCustomerStore()
	c := s.Add(models.Customer{Name: "new", TotalSpent: 999})

	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Zero(t, c.TotalSpent, "spend counter starts at zero regardless of input")

	got, ok := s.GetByID(c.ID)
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestCustomerStore_UpdateMergesPartial(t *testing.T) {
	s := newTestCustomerStore()

	name := "王大美"
	s.Update("1", CustomerUpdate{Name: &name})

	got, ok := s.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, "王大美", got.Name)
	assert.Equal(t, "wang@example.com", got.Email, "untouched fields survive")
}

func TestCustomerStore_MissingIDIsSilentNoOp(t *testing.T) {
	s := newTestCustomerStore()
	before := s.All()

	name := "ghost"
	s.Update("no-such-id", CustomerUpdate{Name: &name})
	s.Delete("no-such-id")

	assert.Equal(t, before, s.All())
}

func TestCustomerStore_DeleteRemoves(t *testing.T) {
	s := newTestCustomerStore()
	s.Delete("2")

	assert.Equal(t, 2, s.TotalCustomers())
	_, ok := s.GetByID("2")
	assert.False(t, ok)
}

func TestCustomerStore_RecordVisit(t *testing.T) {
	s := newTestCustomerStore()
	got, _ := s.GetByID("1")
	base := got.TotalSpent

	visit := got.CreatedAt.AddDate(0, 1, 0)
	s.RecordVisit("1", 1500, visit)

	got, ok := s.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, base+1500, got.TotalSpent)
	require.NotNil(t, got.LastVisit)
	assert.True(t, got.LastVisit.Equal(visit))

	s.RecordVisit("no-such-id", 1500, visit) // silent
}

func TestCustomerStore_TotalRevenue(t *testing.T) {
	s := NewCustomerStore()
	s.Seed([]models.Customer{
		{ID: "a", TotalSpent: 100},
		{ID: "b", TotalSpent: 250.5},
	})
	assert.InDelta(t, 350.5, s.TotalRevenue(), 1e-9)
}
