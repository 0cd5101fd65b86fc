package get_available_rooms

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/rooms"
)

const (
	msgMissingDate          = "не указан параметр date"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMinCapacity   = "некорректный параметр minCapacity"
	msgDirectoryUnavailable = "справочник аудиторий временно недоступен"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawDate := strings.TrimSpace(query.Get("date"))
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	minCapacity, err := handlers.ParseNonNegativeInt(query.Get("minCapacity"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid minCapacity: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMinCapacity)
		return
	}

	filter := domain.RoomFilter{
		MinCapacity: minCapacity,
		Facility:    strings.TrimSpace(query.Get("facility")),
	}

	result, err := h.service.ListAvailableRooms(r.Context(), date, filter)
	if err != nil {
		if errors.Is(err, rooms.ErrDirectoryUnavailable) {
			h.logger.Warn("GET /rooms/available - Room directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDirectoryUnavailable)
			return
		}
		h.logger.Error("GET /rooms/available - Failed to list rooms: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms/available - Rooms retrieved successfully: date=%s, count=%d", rawDate, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainRooms(result))
}
