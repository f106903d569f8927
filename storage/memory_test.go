package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "currentUser", `{"id":"1"}`))
	v, ok, err := m.Get(ctx, "currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)

	// last write wins
	require.NoError(t, m.Set(ctx, "currentUser", `{"id":"2"}`))
	v, _, _ = m.Get(ctx, "currentUser")
	assert.Equal(t, `{"id":"2"}`, v)

	require.NoError(t, m.Delete(ctx, "currentUser"))
	_, ok, err = m.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is fine
	require.NoError(t, m.Delete(ctx, "currentUser"))
}
