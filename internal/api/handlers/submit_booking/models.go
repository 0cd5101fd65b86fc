package submit_booking

import (
	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

// SubmitBookingResponse исход отправки черновика
type SubmitBookingResponse struct {
	Status       string                          `json:"status"`
	Message      string                          `json:"message,omitempty"`
	BookingID    *int64                          `json:"bookingId,omitempty"`
	AttemptID    string                          `json:"attemptId,omitempty"`
	Alternatives *[]handlers.AlternativeResponse `json:"alternatives,omitempty"`
}

// InvalidDraftResponse черновик не прошел проверку
type InvalidDraftResponse struct {
	Message string `json:"message"`
	handlers.ValidationErrorsResponse
}

// FromOutcome формирует ответ по исходу отправки
func FromOutcome(outcome domain.Outcome, alternatives []domain.AlternativeSuggestion) SubmitBookingResponse {
	resp := SubmitBookingResponse{
		Status:    string(outcome.Kind),
		Message:   outcome.Message,
		BookingID: outcome.BookingID,
		AttemptID: outcome.AttemptID,
	}
	if outcome.IsConflict() {
		// При конфликте список передается всегда, даже пустой
		list := handlers.FromDomainAlternatives(alternatives)
		resp.Alternatives = &list
	}
	return resp
}
