package roomdirectory

import (
	"encoding/json"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

// Envelope общий формат ответа сервиса аудиторий
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Room модель аудитории из RoomDirectory
type Room struct {
	ID          int64    `json:"id" validate:"gt=0"`
	Name        string   `json:"name" validate:"required"`
	Location    string   `json:"location"`
	Capacity    int      `json:"capacity" validate:"gt=0"`
	IsActive    bool     `json:"isActive"`
	Facilities  []string `json:"facilities"`
	Description *string  `json:"description,omitempty"`
}

// ToDomain конвертирует модель интеграции в доменную
func (r Room) ToDomain() domain.Room {
	facilities := make([]string, 0, len(r.Facilities))
	seen := make(map[string]struct{}, len(r.Facilities))
	for _, f := range r.Facilities {
		// facilities - это множество, дубликаты отбрасываем
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		facilities = append(facilities, f)
	}

	return domain.Room{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		Capacity:    r.Capacity,
		IsActive:    r.IsActive,
		Facilities:  facilities,
		Description: r.Description,
	}
}
