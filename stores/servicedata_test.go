package stores

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-console-backend/models"
)

func newTestGateway() *ServiceDataStore {
	return NewServiceDataStore(0, zerolog.Nop())
}

func loadedGateway(t *testing.T) *ServiceDataStore {
	t.Helper()
	s := newTestGateway()
	_, err := s.LoadDataByID(context.Background(), "uuid-wang-xiaomei-001")
	require.NoError(t, err)
	return s
}

func TestServiceDataStore_LoadKnownID(t *testing.T) {
	s := newTestGateway()

	profile, err := s.LoadDataByID(context.Background(), "uuid-wang-xiaomei-001")
	require.NoError(t, err)
	assert.Equal(t, "王小美", profile.Name)
	assert.Equal(t, "uuid-wang-xiaomei-001", s.CurrentID())
	assert.NoError(t, s.Err())
	assert.False(t, s.IsLoading())

	require.NotNil(t, s.Profile())
	assert.Equal(t, "王小美", s.Profile().Name)
}

func TestServiceDataStore_LoadUnknownIDLeavesStateUntouched(t *testing.T) {
	s := newTestGateway()

	_, err := s.LoadDataByID(context.Background(), "unknown-id")
	require.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, s.Profile(), "never-loaded profile stays nil")
	assert.Empty(t, s.CurrentID())
	assert.ErrorIs(t, s.Err(), ErrProfileNotFound)

	// a failed load after a success keeps the prior data
	_, err = s.LoadDataByID(context.Background(), "uuid-wang-damei-002")
	require.NoError(t, err)
	_, err = s.LoadDataByID(context.Background(), "unknown-id")
	require.ErrorIs(t, err, ErrProfileNotFound)

	require.NotNil(t, s.Profile())
	assert.Equal(t, "王大美", s.Profile().Name)
	assert.Equal(t, "uuid-wang-damei-002", s.CurrentID())
	assert.ErrorIs(t, s.Err(), ErrProfileNotFound)
}

func TestServiceDataStore_LoadHonorsContext(t *testing.T) {
	s := NewServiceDataStore(time.Minute, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.LoadDataByID(ctx, "uuid-wang-xiaomei-001")
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s.Profile())
}

func TestServiceDataStore_AllServicesFlattened(t *testing.T) {
	s := loadedGateway(t)

	all := s.AllServices()
	require.Len(t, all, 8)

	byID := make(map[string]models.ProviderService, len(all))
	for _, svc := range all {
		byID[svc.ServiceID] = svc
	}
	assert.Equal(t, "哆啦美容美體中心", byID["SB001"].ProviderName)
	assert.Equal(t, "098-765-4321", byID["SB001"].ProviderContact)
	assert.Equal(t, "大肌肌健身房", byID["SB006"].ProviderName)
	assert.Equal(t, "012-345-6789", byID["SB006"].ProviderContact)
}

func TestServiceDataStore_Partitions(t *testing.T) {
	s := loadedGateway(t)

	completed := s.CompletedServices()
	scheduled := s.ScheduledServices()
	assert.Len(t, completed, 5)
	assert.Len(t, scheduled, 3)

	// completed amounts: 1500 + 800 + 2200 + 1200 + 800
	assert.InDelta(t, 6500, s.TotalSpent(), 1e-9)
}

func TestServiceDataStore_MonthlyStats(t *testing.T) {
	s := loadedGateway(t)

	// 2025-08: SB002 scheduled 2000, SB004 completed 2200, SB006 scheduled 2500
	stats := s.MonthlyStats(2025, time.August)
	assert.InDelta(t, 2200, stats.TotalSpent, 1e-9)
	assert.Equal(t, 1, stats.ServiceCount)
	assert.Equal(t, 2, stats.AppointmentCount)
	assert.Equal(t, 3, stats.TotalActivities)
}

func TestServiceDataStore_RecentAndUpcoming(t *testing.T) {
	s := loadedGateway(t)

	recent := s.RecentActivities(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "SB008", recent[0].ServiceID)
	assert.Equal(t, "SB001", recent[1].ServiceID)
	assert.Equal(t, "SB007", recent[2].ServiceID)

	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	upcoming := s.UpcomingAppointments(now, 5)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "SB002", upcoming[0].ServiceID)
	assert.Equal(t, "SB006", upcoming[1].ServiceID)

	capped := s.UpcomingAppointments(now, 1)
	require.Len(t, capped, 1)
	assert.Equal(t, "SB002", capped[0].ServiceID)
}

func TestServiceDataStore_UpdateProfile(t *testing.T) {
	s := newTestGateway()

	// no-op before anything is loaded
	name := "ghost"
	s.UpdateProfile(ProfileUpdate{Name: &name})
	assert.Nil(t, s.Profile())

	_, err := s.LoadDataByID(context.Background(), "uuid-wang-xiaomei-001")
	require.NoError(t, err)

	newName := "王小美美"
	address := "台中市西區"
	s.UpdateProfile(ProfileUpdate{Name: &newName, Address: &address})

	profile := s.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "王小美美", profile.Name)
	assert.Equal(t, "台中市西區", profile.Address)
	assert.Equal(t, "wang@example.com", profile.Email)
}

func TestServiceDataStore_Clear(t *testing.T) {
	s := loadedGateway(t)
	s.Clear()

	assert.Nil(t, s.Profile())
	assert.Empty(t, s.CurrentID())
	assert.NoError(t, s.Err())
	assert.Empty(t, s.AllServices())
	assert.Zero(t, s.TotalSpent())
}
