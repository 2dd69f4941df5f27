//go:build integration

package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/inspection-pricing/internal/cache"
	"github.com/donaldgifford/inspection-pricing/pkg/pricing"
	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

func setupRedis(t *testing.T) *cache.RedisCache {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	c, client, err := cache.Connect(ctx, fmt.Sprintf("redis://%s/0", endpoint), time.Minute)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return c
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c := setupRedis(t)
	ctx := context.Background()

	shop := &domain.Shop{
		ID:            "shop-1",
		Name:          "Downtown Detail",
		DailyCapacity: 6,
		Settings:      pricing.DefaultShopSettings(),
	}

	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetShop(ctx, shop))

	got, ok, err := c.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, shop.Name, got.Name)
	assert.Equal(t, shop.Settings, got.Settings)

	require.NoError(t, c.InvalidateShop(ctx, shop.ID))

	_, ok, err = c.GetShop(ctx, shop.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
