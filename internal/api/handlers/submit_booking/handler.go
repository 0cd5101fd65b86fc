package submit_booking

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/bookingrequest"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "пользователь не определен"
	msgInvalidDraft       = "черновик бронирования содержит ошибки"
	msgAlreadySubmitting  = "заявка уже отправляется, дождитесь результата"
)

type Handler struct {
	validator BookingRequestValidator
	guard     SubmissionGuard
	logger    Logger
}

func NewHandler(validator BookingRequestValidator, guard SubmissionGuard, logger Logger) *Handler {
	return &Handler{
		validator: validator,
		guard:     guard,
		logger:    logger,
	}
}

// Handle POST /api/v1/booking-requests
// Черновик проверяется заново, отправляется в BookingGateway, при конфликте к ответу
// прикладываются альтернативные аудитории.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req handlers.BookingDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-requests - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	draft := req.ToDomain()

	// Форма с ошибками в BookingGateway не уходит
	if result := h.validator.Validate(draft); !result.Valid() {
		h.logger.Warn("POST /booking-requests - Draft rejected by validation: user_id=%d, codes=%v", userID, result.Codes())
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, InvalidDraftResponse{
			Message:                  msgInvalidDraft,
			ValidationErrorsResponse: handlers.FromValidationResult(result),
		})
		return
	}

	key := draft.Key(userID)
	if !h.guard.TryAcquire(key) {
		h.logger.Warn("POST /booking-requests - Submission already in progress: user_id=%d", userID)
		handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitting)
		return
	}
	defer h.guard.Release(key)

	// Начатую отправку клиент не отменяет: обрыв соединения не прерывает запрос в BookingGateway
	// и запись журнала, время ограничено таймаутом транспорта
	submitCtx := context.WithoutCancel(r.Context())

	outcome, err := h.validator.Submit(submitCtx, domain.Requester{UserID: userID}, draft)
	if err != nil {
		if errors.Is(err, bookingrequest.ErrInvalidInput) {
			h.logger.Warn("POST /booking-requests - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDraft)
			return
		}
		h.logger.Error("POST /booking-requests - Failed to submit: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	switch outcome.Kind {
	case domain.OutcomeCreated:
		h.logger.Info("POST /booking-requests - Booking created: user_id=%d, room_id=%s", userID, draft.RoomID)
		handlers.RespondJSON(w, http.StatusCreated, FromOutcome(outcome, nil))

	case domain.OutcomeConflict:
		roomID, _ := draft.RoomNumber()
		alternatives := h.validator.FetchAlternatives(r.Context(), roomID,
			strings.TrimSpace(draft.BookingDate), strings.TrimSpace(draft.StartTime), strings.TrimSpace(draft.EndTime))

		h.logger.Warn("POST /booking-requests - Scheduling conflict: user_id=%d, room_id=%d, alternatives=%d",
			userID, roomID, len(alternatives))
		handlers.RespondJSON(w, http.StatusConflict, FromOutcome(outcome, alternatives))

	default:
		h.logger.Warn("POST /booking-requests - Booking failed: user_id=%d, message=%s", userID, outcome.Message)
		handlers.RespondJSON(w, http.StatusBadGateway, FromOutcome(outcome, nil))
	}
}
