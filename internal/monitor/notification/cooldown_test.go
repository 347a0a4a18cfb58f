package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	k1 := Key(CategoryEndpoint, "Diagnosa", "201", "https://example.test/diagnosa")
	k2 := Key(CategoryEndpoint, "Diagnosa", "201", "https://example.test/diagnosa")
	k3 := Key(CategoryEndpoint, "Diagnosa", "404", "https://example.test/diagnosa")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Equal(t, "endpoint_alert_", k1[:len("endpoint_alert_")])
	assert.Len(t, k1, len("endpoint_alert_")+32)
	assert.NotEqual(t, Key(CategoryCritical, "a", "b"), Key(CategorySlow, "a", "b"))
}

func TestMemoryCooldownStore(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryCooldownStore(func() time.Time { return now })
	ctx := context.Background()

	cooling, err := store.IsCooling(ctx, "k")
	require.NoError(t, err)
	assert.False(t, cooling)

	require.NoError(t, store.StartCooldown(ctx, "k", 30*time.Minute))
	now = now.Add(29 * time.Minute)
	cooling, _ = store.IsCooling(ctx, "k")
	assert.True(t, cooling)

	now = now.Add(time.Minute)
	cooling, _ = store.IsCooling(ctx, "k")
	assert.False(t, cooling)
}

func TestMemoryCooldownStore_Lock(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryCooldownStore(func() time.Time { return now })
	ctx := context.Background()

	ok, err := store.Lock(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = store.Lock(ctx, "k", time.Minute)
	assert.False(t, ok)

	// an abandoned lock expires
	now = now.Add(2 * time.Minute)
	ok, _ = store.Lock(ctx, "k", time.Minute)
	assert.True(t, ok)

	require.NoError(t, store.Unlock(ctx, "k"))
	ok, _ = store.Lock(ctx, "k", time.Minute)
	assert.True(t, ok)
}
