package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Cache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewCache(client, time.Minute)
}

func TestCache_SetAndGet(t *testing.T) {
	mr, cache := setupTestRedis(t)
	ctx := context.Background()

	description := "Quiet room, no food"
	rooms := []domain.Room{
		{ID: 1, Name: "Reading Room A", Location: "Floor 2", Capacity: 8, IsActive: true, Facilities: []string{"projector"}, Description: &description},
		{ID: 2, Name: "Study Pod", Location: "Floor 1", Capacity: 2, IsActive: true, Facilities: []string{}},
	}

	require.NoError(t, cache.Set(ctx, AllRoomsKey(), rooms))

	got, found, err := cache.Get(ctx, AllRoomsKey())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, rooms, got)

	ttl := mr.TTL(AllRoomsKey())
	assert.Equal(t, time.Minute, ttl)
}

func TestCache_Miss(t *testing.T) {
	_, cache := setupTestRedis(t)

	got, found, err := cache.Get(context.Background(), AvailableRoomsKey(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestCache_Expires(t *testing.T) {
	mr, cache := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, AllRoomsKey(), []domain.Room{{ID: 1, Name: "A", Capacity: 1}}))
	mr.FastForward(2 * time.Minute)

	_, found, err := cache.Get(ctx, AllRoomsKey())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_CorruptedValue(t *testing.T) {
	mr, cache := setupTestRedis(t)
	require.NoError(t, mr.Set(AllRoomsKey(), "{not json"))

	_, _, err := cache.Get(context.Background(), AllRoomsKey())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestCache_RedisDown(t *testing.T) {
	mr, cache := setupTestRedis(t)
	mr.Close()

	_, _, err := cache.Get(context.Background(), AllRoomsKey())
	assert.ErrorIs(t, err, ErrCacheRead)

	err = cache.Set(context.Background(), AllRoomsKey(), nil)
	assert.ErrorIs(t, err, ErrCacheWrite)
}

func TestAvailableRoomsKey(t *testing.T) {
	key := AvailableRoomsKey(time.Date(2026, 10, 20, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, "room-booking:rooms:available:2026-10-20", key)
}
