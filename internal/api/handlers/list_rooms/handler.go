package list_rooms

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/rooms"
)

const (
	msgInvalidMinCapacity   = "некорректный параметр minCapacity"
	msgDirectoryUnavailable  = "справочник аудиторий временно недоступен"
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

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	minCapacity, err := handlers.ParseNonNegativeInt(query.Get("minCapacity"))
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid minCapacity: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMinCapacity)
		return
	}

	filter := domain.RoomFilter{
		MinCapacity: minCapacity,
		Facility:    strings.TrimSpace(query.Get("facility")),
	}

	result, err := h.service.ListRooms(r.Context(), filter)
	if err != nil {
		if errors.Is(err, rooms.ErrDirectoryUnavailable) {
			h.logger.Warn("GET /rooms - Room directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDirectoryUnavailable)
			return
		}
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainRooms(result))
}
