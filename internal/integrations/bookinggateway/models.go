package bookinggateway

import "encoding/json"

// CreateBookingRequest тело запроса на создание бронирования
type CreateBookingRequest struct {
	RoomID      int64  `json:"roomId"`
	UserID      int64  `json:"userId"`
	BookingDate string `json:"bookingDate"` // "2026-10-20"
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "12:00"
	Purpose     string `json:"purpose"`
}

// Envelope общий формат ответа сервиса бронирований
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// CreatedBooking данные созданного бронирования (используется только ID)
type CreatedBooking struct {
	ID int64 `json:"id"`
}

// CreateBookingResult результат успешного создания
type CreateBookingResult struct {
	BookingID *int64
	Message   string
}
