package get_alternatives

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
)

const (
	msgInvalidRoomID = "некорректный ID аудитории"
	msgMissingWindow = "необходимо указать date, startTime и endTime"
)

type Handler struct {
	finder AlternativesFinder
	logger Logger
}

func NewHandler(finder AlternativesFinder, logger Logger) *Handler {
	return &Handler{
		finder: finder,
		logger: logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/alternatives?date=&startTime=&endTime=
// Ошибки RoomDirectory не видны клиенту: в этом случае список пуст.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("GET /rooms/{roomId}/alternatives - Invalid room ID: %q", mux.Vars(r)["roomId"])
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	date := strings.TrimSpace(query.Get("date"))
	startTime := strings.TrimSpace(query.Get("startTime"))
	endTime := strings.TrimSpace(query.Get("endTime"))
	if date == "" || startTime == "" || endTime == "" {
		handlers.RespondBadRequest(w, msgMissingWindow)
		return
	}

	alternatives := h.finder.FetchAlternatives(r.Context(), roomID, date, startTime, endTime)

	h.logger.Info("GET /rooms/{roomId}/alternatives - room_id=%d, date=%s, found=%d", roomID, date, len(alternatives))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainAlternatives(alternatives))
}
