package validate_booking

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	validator DraftValidator
	logger    Logger
}

func NewHandler(validator DraftValidator, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// Handle POST /api/v1/booking-requests/validate
// Проверка формы без отправки: ответ всегда 200, ошибки - в теле по полям.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.BookingDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-requests/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.validator.Validate(req.ToDomain())

	handlers.RespondJSON(w, http.StatusOK, handlers.FromValidationResult(result))
}
