package bookinggateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/m04kA/SMC-RoomBookingGateway/pkg/ptr"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с BookingGateway
type Client struct {
	http *resty.Client
	log  Logger
}

// NewClient создает новый экземпляр клиента BookingGateway.
// Повторные запросы не выполняются: повторная отправка делается только пользователем.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http: httpClient,
		log:  log,
	}
}

// CreateBooking отправляет заявку на бронирование.
// Ошибки: ErrUnavailable (транспорт), *RejectionError (success != true), ErrInvalidResponse.
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResult, error) {
	c.log.Info("BookingGateway: creating booking room=%d user=%d date=%s %s-%s",
		req.RoomID, req.UserID, req.BookingDate, req.StartTime, req.EndTime)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-User-ID", strconv.FormatInt(req.UserID, 10)).
		SetBody(req).
		Post("/bookings")
	if err != nil {
		return nil, fmt.Errorf("%w: POST /bookings: %v", ErrUnavailable, err)
	}

	var envelope Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		// Ответ не от сервиса (HTML страница прокси и т.п.) - сбой транспорта, а не отказ
		if resp.StatusCode() >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: POST /bookings: unexpected status code %d", ErrUnavailable, resp.StatusCode())
		}
		return nil, fmt.Errorf("%w: POST /bookings: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Без success=true ответ считается отказом независимо от HTTP статуса
	if !envelope.Success {
		return nil, &RejectionError{
			StatusCode: resp.StatusCode(),
			Message:    envelope.Message,
		}
	}

	result := &CreateBookingResult{Message: envelope.Message}

	// Данные созданного бронирования необязательны, ошибки разбора не влияют на результат
	var created CreatedBooking
	if len(envelope.Data) > 0 && json.Unmarshal(envelope.Data, &created) == nil && created.ID > 0 {
		result.BookingID = ptr.Ptr(created.ID)
	}

	return result, nil
}
