package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

// RoomID идентификатор аудитории из формы: клиент присылает его строкой или числом
type RoomID string

func (id *RoomID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RoomID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("roomId must be a string or a number: %w", err)
	}
	*id = RoomID(n.String())
	return nil
}

// BookingDraftRequest тело запроса с черновиком бронирования
type BookingDraftRequest struct {
	RoomID      RoomID `json:"roomId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Purpose     string `json:"purpose"`
}

// ToDomain конвертирует запрос в черновик
func (r *BookingDraftRequest) ToDomain() *domain.BookingDraft {
	return &domain.BookingDraft{
		RoomID:      string(r.RoomID),
		BookingDate: r.BookingDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Purpose:     r.Purpose,
	}
}

// RoomResponse аудитория в ответе API
type RoomResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location,omitempty"`
	Capacity    int      `json:"capacity"`
	IsActive    bool     `json:"isActive"`
	Facilities  []string `json:"facilities"`
	Description *string  `json:"description,omitempty"`
}

// FromDomainRoom конвертирует доменную аудиторию в ответ
func FromDomainRoom(room domain.Room) RoomResponse {
	facilities := room.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	return RoomResponse{
		ID:          room.ID,
		Name:        room.Name,
		Location:    room.Location,
		Capacity:    room.Capacity,
		IsActive:    room.IsActive,
		Facilities:  facilities,
		Description: room.Description,
	}
}

// FromDomainRooms конвертирует список аудиторий (никогда не nil)
func FromDomainRooms(rooms []domain.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, FromDomainRoom(room))
	}
	return result
}

// ValidationErrorsResponse ошибки проверки черновика по полям формы
type ValidationErrorsResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
	Codes  map[string]string `json:"codes"`
}

// FromValidationResult конвертирует результат проверки в ответ
func FromValidationResult(result domain.ValidationResult) ValidationErrorsResponse {
	return ValidationErrorsResponse{
		Valid:  result.Valid(),
		Errors: result.Messages(),
		Codes:  result.Codes(),
	}
}

// AlternativeResponse аудитория, предлагаемая вместо занятой, на то же окно
type AlternativeResponse struct {
	Room      RoomResponse `json:"room"`
	Date      string       `json:"date"`
	StartTime string       `json:"startTime"`
	EndTime   string       `json:"endTime"`
}

// FromDomainAlternatives конвертирует список альтернатив (никогда не nil)
func FromDomainAlternatives(list []domain.AlternativeSuggestion) []AlternativeResponse {
	result := make([]AlternativeResponse, 0, len(list))
	for _, alt := range list {
		result = append(result, AlternativeResponse{
			Room:      FromDomainRoom(alt.Room),
			Date:      alt.Date,
			StartTime: alt.StartTime,
			EndTime:   alt.EndTime,
		})
	}
	return result
}

// ParseNonNegativeInt разбирает необязательный неотрицательный целый параметр запроса, пустое значение - 0
func ParseNonNegativeInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid non-negative integer %q", raw)
	}
	return n, nil
}
