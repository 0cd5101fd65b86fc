package get_user_submissions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/submissions"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/submissions/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidLimit  = "некорректный параметр limit"
	msgUnauthorized  = "пользователь не определен"
	msgAccessDenied  = "доступ к журналу другого пользователя запрещен"
)

type Handler struct {
	service SubmissionService
	logger  Logger
}

func NewHandler(service SubmissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/booking-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("GET /users/{userId}/booking-requests - Invalid user ID: %q", mux.Vars(r)["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	limit, err := handlers.ParseNonNegativeInt(r.URL.Query().Get("limit"))
	if err != nil {
		h.logger.Warn("GET /users/{userId}/booking-requests - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	result, err := h.service.GetUserSubmissions(r.Context(), &models.GetUserSubmissionsRequest{
		UserID:      userID,
		RequesterID: requesterID,
		Limit:       limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, submissions.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/booking-requests - Access denied: requester=%d, user_id=%d", requesterID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, submissions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{userId}/booking-requests - Failed to get submissions: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/booking-requests - Submissions retrieved successfully: user_id=%d, count=%d",
		userID, len(result.Submissions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
