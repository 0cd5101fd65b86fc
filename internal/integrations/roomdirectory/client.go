package roomdirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с RoomDirectory
type Client struct {
	http     *resty.Client
	validate *validator.Validate
	log      Logger
}

// NewClient создает новый экземпляр клиента RoomDirectory.
// Повторные запросы не выполняются: повтор - это явное действие пользователя.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     httpClient,
		validate: validator.New(),
		log:      log,
	}
}

// GetAllRooms получает все аудитории
func (c *Client) GetAllRooms(ctx context.Context) ([]Room, error) {
	req := c.http.R().SetContext(ctx)
	return c.fetchRooms(req, "/rooms")
}

// GetAvailableRooms получает аудитории, свободные в указанную дату (YYYY-MM-DD)
func (c *Client) GetAvailableRooms(ctx context.Context, date string) ([]Room, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("date", date)
	return c.fetchRooms(req, "/rooms/available")
}

// GetAlternativeRooms получает аудитории, которые можно предложить вместо roomID на указанное окно
func (c *Client) GetAlternativeRooms(ctx context.Context, roomID int64, date, startTime, endTime string) ([]Room, error) {
	req := c.http.R().
		SetContext(ctx).
		SetPathParam("roomId", strconv.FormatInt(roomID, 10)).
		SetQueryParams(map[string]string{
			"date":      date,
			"startTime": startTime,
			"endTime":   endTime,
		})
	return c.fetchRooms(req, "/rooms/{roomId}/alternatives")
}

// fetchRooms выполняет GET и разбирает конверт {success, data, message}
func (c *Client) fetchRooms(req *resty.Request, path string) ([]Room, error) {
	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, path, err)
	}

	var envelope Envelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		if resp.StatusCode() >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: GET %s: unexpected status code %d", ErrRequestFailed, path, resp.StatusCode())
		}
		return nil, fmt.Errorf("%w: GET %s: failed to decode response: %v", ErrInvalidResponse, path, err)
	}

	// Без success=true ответ считается ошибкой независимо от HTTP статуса
	if !envelope.Success {
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("status code %d", resp.StatusCode())
		}
		return nil, fmt.Errorf("%w: GET %s: %s", ErrRequestFailed, path, msg)
	}

	rooms, dropped, err := normalizeRooms(envelope.Data, c.validate)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		c.log.Warn("RoomDirectory: GET %s - dropped %d malformed room records", path, dropped)
	}

	return rooms, nil
}
