package rooms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

const keyPrefix = "room-booking:rooms:"

// cachedRoom JSON-представление аудитории в redis
type cachedRoom struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Capacity    int      `json:"capacity"`
	IsActive    bool     `json:"isActive"`
	Facilities  []string `json:"facilities"`
	Description *string  `json:"description,omitempty"`
}

// Cache кеш списков аудиторий из RoomDirectory
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кеш; ttl - время жизни списка
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// AllRoomsKey ключ списка всех аудиторий
func AllRoomsKey() string {
	return keyPrefix + "all"
}

// AvailableRoomsKey ключ списка свободных аудиторий на дату
func AvailableRoomsKey(date time.Time) string {
	return keyPrefix + "available:" + date.Format(domain.DateFormat)
}

// Get возвращает список из кеша. found=false, если ключа нет.
func (c *Cache) Get(ctx context.Context, key string) ([]domain.Room, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: key=%s: %v", ErrCacheRead, key, err)
	}

	var cached []cachedRoom
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, fmt.Errorf("%w: key=%s: %v", ErrDecode, key, err)
	}

	rooms := make([]domain.Room, 0, len(cached))
	for _, r := range cached {
		rooms = append(rooms, domain.Room{
			ID:          r.ID,
			Name:        r.Name,
			Location:    r.Location,
			Capacity:    r.Capacity,
			IsActive:    r.IsActive,
			Facilities:  r.Facilities,
			Description: r.Description,
		})
	}

	return rooms, true, nil
}

// Set сохраняет список с TTL кеша
func (c *Cache) Set(ctx context.Context, key string, rooms []domain.Room) error {
	cached := make([]cachedRoom, 0, len(rooms))
	for _, r := range rooms {
		cached = append(cached, cachedRoom{
			ID:          r.ID,
			Name:        r.Name,
			Location:    r.Location,
			Capacity:    r.Capacity,
			IsActive:    r.IsActive,
			Facilities:  r.Facilities,
			Description: r.Description,
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrCacheWrite, key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrCacheWrite, key, err)
	}

	return nil
}
