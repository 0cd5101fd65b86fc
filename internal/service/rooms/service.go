package rooms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	roomCache "github.com/m04kA/SMC-RoomBookingGateway/internal/infra/cache/rooms"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/integrations/roomdirectory"
)

// Service сервис для получения списков аудиторий.
// Возвращает только активные аудитории; списки кешируются, если кеш подключен.
type Service struct {
	directory RoomDirectoryClient
	cache     RoomCache
	metrics   CacheMetrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса аудиторий.
// cache и metrics могут быть nil.
func NewService(directory RoomDirectoryClient, cache RoomCache, metrics CacheMetrics, logger Logger) *Service {
	return &Service{
		directory: directory,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
	}
}

// ListRooms получает все активные аудитории, подходящие под фильтр
func (s *Service) ListRooms(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	rooms, err := s.load(ctx, roomCache.AllRoomsKey(), func(ctx context.Context) ([]roomdirectory.Room, error) {
		return s.directory.GetAllRooms(ctx)
	})
	if err != nil {
		return nil, err
	}

	return applyFilter(rooms, filter), nil
}

// ListAvailableRooms получает активные аудитории, свободные в указанную дату
func (s *Service) ListAvailableRooms(ctx context.Context, date time.Time, filter domain.RoomFilter) ([]domain.Room, error) {
	day := date.Format(domain.DateFormat)
	rooms, err := s.load(ctx, roomCache.AvailableRoomsKey(date), func(ctx context.Context) ([]roomdirectory.Room, error) {
		return s.directory.GetAvailableRooms(ctx, day)
	})
	if err != nil {
		return nil, err
	}

	return applyFilter(rooms, filter), nil
}

// load читает список из кеша, при промахе - из RoomDirectory.
// Ошибки кеша не мешают получить данные из RoomDirectory.
func (s *Service) load(
	ctx context.Context,
	key string,
	fetch func(ctx context.Context) ([]roomdirectory.Room, error),
) ([]domain.Room, error) {
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("Rooms: cache read failed for key=%s: %v", key, err)
		}
		if s.metrics != nil {
			s.metrics.RecordCacheLookup(found)
		}
		if found {
			return cached, nil
		}
	}

	raw, err := fetch(ctx)
	if err != nil {
		// Ответ неожиданной формы приводится к пустому списку
		if errors.Is(err, roomdirectory.ErrInvalidResponse) {
			s.logger.Warn("Rooms: unexpected response shape for key=%s, returning empty list: %v", key, err)
			return []domain.Room{}, nil
		}
		s.logger.Error("Rooms: room directory request failed for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	rooms := make([]domain.Room, 0, len(raw))
	for _, r := range raw {
		rooms = append(rooms, r.ToDomain())
	}
	rooms = domain.ActiveRooms(rooms)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rooms); err != nil {
			s.logger.Warn("Rooms: cache write failed for key=%s: %v", key, err)
		}
	}

	s.logger.Info("Rooms: loaded %d active rooms for key=%s", len(rooms), key)
	return rooms, nil
}

func applyFilter(rooms []domain.Room, filter domain.RoomFilter) []domain.Room {
	filtered := make([]domain.Room, 0, len(rooms))
	for i := range rooms {
		if filter.Match(&rooms[i]) {
			filtered = append(filtered, rooms[i])
		}
	}
	return filtered
}
