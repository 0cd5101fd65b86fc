package bookingrequest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/integrations/bookinggateway"
	"github.com/m04kA/SMC-RoomBookingGateway/pkg/ptr"
)

const (
	msgGatewayUnavailable = "сервис бронирования временно недоступен, попробуйте позже"
	msgBookingRejected    = "не удалось создать бронирование"
)

const (
	upstreamRoomDirectory  = "room_directory"
	upstreamBookingGateway = "booking_gateway"
)

// conflictMarkers подстроки сообщения BookingGateway, означающие пересечение бронирований.
// Сервис не отдает код конфликта, поэтому распознавание текстовое.
var conflictMarkers = []string{"conflict", "overlaps"}

// Validator проверяет черновики бронирования и отправляет их в BookingGateway,
// при конфликте подбирает альтернативные аудитории через RoomDirectory.
type Validator struct {
	directory    RoomDirectoryClient
	gateway      BookingGatewayClient
	journal      SubmissionRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewValidator создает новый экземпляр валидатора.
// journal и metrics могут быть nil - тогда журнал и метрики не ведутся.
// Дата и время черновика трактуются как локальные для location.
func NewValidator(
	directory RoomDirectoryClient,
	gateway BookingGatewayClient,
	journal SubmissionRepository,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *Validator {
	if location == nil {
		location = time.Local
	}
	return &Validator{
		directory:    directory,
		gateway:      gateway,
		journal:      journal,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Validate проверяет черновик. Пустой результат - черновик можно отправлять.
// Результат каждый раз строится заново, побочных эффектов нет.
func (v *Validator) Validate(draft *domain.BookingDraft) domain.ValidationResult {
	today := startOfDay(v.timeProvider.Now(), v.location)
	return validateDraft(draft, today)
}

// Submit отправляет черновик в BookingGateway от имени requester.
// Вызывающий обязан сам проверить черновик через Validate: повторная валидация здесь не выполняется.
// Ошибки сервиса бронирования возвращаются как исход (Conflict/Failed), error - только для
// некорректных входных данных.
func (v *Validator) Submit(ctx context.Context, requester domain.Requester, draft *domain.BookingDraft) (domain.Outcome, error) {
	if requester.IsAnonymous() {
		return domain.Outcome{}, fmt.Errorf("%w: requester identity is required", ErrInvalidInput)
	}

	roomID, err := parseRoomID(draft)
	if err != nil {
		v.logger.Warn("Submit: user=%d - %v", requester.UserID, err)
		return domain.Outcome{}, err
	}

	window, err := parseWindow(draft, v.location)
	if err != nil {
		v.logger.Warn("Submit: user=%d - %v", requester.UserID, err)
		return domain.Outcome{}, err
	}

	purpose := draft.TrimmedPurpose()

	v.logger.Info("Submit: user=%d, room=%d, date=%s, time=%s-%s",
		requester.UserID, roomID, window.Date.Format(domain.DateFormat), window.StartTime, window.EndTime)

	result, err := v.gateway.CreateBooking(ctx, &bookinggateway.CreateBookingRequest{
		RoomID:      roomID,
		UserID:      requester.UserID,
		BookingDate: window.Date.Format(domain.DateFormat),
		StartTime:   window.StartTime.String(),
		EndTime:     window.EndTime.String(),
		Purpose:     purpose,
	})

	outcome := v.classify(requester, roomID, result, err)
	outcome.AttemptID = v.record(ctx, requester, roomID, window, purpose, outcome)

	if v.metrics != nil {
		v.metrics.RecordSubmitOutcome(string(outcome.Kind))
	}

	return outcome, nil
}

// classify превращает ответ BookingGateway в исход отправки
func (v *Validator) classify(
	requester domain.Requester,
	roomID int64,
	result *bookinggateway.CreateBookingResult,
	err error,
) domain.Outcome {
	if err == nil {
		v.logger.Info("Submit: booking created for user=%d, room=%d, booking=%d",
			requester.UserID, roomID, ptr.Value(result.BookingID))
		return domain.Outcome{
			Kind:      domain.OutcomeCreated,
			Message:   result.Message,
			BookingID: result.BookingID,
		}
	}

	var rejection *bookinggateway.RejectionError
	if errors.As(err, &rejection) {
		if isConflictMessage(rejection.Message) {
			v.logger.Warn("Submit: scheduling conflict for user=%d, room=%d: %s",
				requester.UserID, roomID, rejection.Message)
			return domain.Outcome{Kind: domain.OutcomeConflict, Message: rejection.Message}
		}

		v.logger.Warn("Submit: booking rejected for user=%d, room=%d: %s",
			requester.UserID, roomID, rejection.Message)
		msg := rejection.Message
		if msg == "" {
			msg = msgBookingRejected
		}
		return domain.Outcome{Kind: domain.OutcomeFailed, Message: msg}
	}

	// Транспортные ошибки и ответы неожиданной формы: пользователь видит общее сообщение
	v.logger.Error("Submit: booking gateway failure for user=%d, room=%d: %v", requester.UserID, roomID, err)
	if v.metrics != nil {
		v.metrics.RecordUpstreamError(upstreamBookingGateway, "create_booking")
	}
	return domain.Outcome{Kind: domain.OutcomeFailed, Message: msgGatewayUnavailable}
}

// record пишет попытку в журнал. Ошибка журнала не меняет исход.
func (v *Validator) record(
	ctx context.Context,
	requester domain.Requester,
	roomID int64,
	window domain.BookingWindow,
	purpose string,
	outcome domain.Outcome,
) string {
	if v.journal == nil {
		return ""
	}

	submission := &domain.Submission{
		ID:          uuid.NewString(),
		UserID:      requester.UserID,
		RoomID:      roomID,
		BookingDate: window.Date,
		StartTime:   window.StartTime,
		EndTime:     window.EndTime,
		Purpose:     purpose,
		Outcome:     outcome.Kind,
		CreatedAt:   v.timeProvider.Now(),
	}
	if outcome.Message != "" {
		submission.Message = ptr.Ptr(outcome.Message)
	}

	if err := v.journal.Create(ctx, submission); err != nil {
		v.logger.Error("Submit: failed to record submission for user=%d: %v", requester.UserID, err)
		return ""
	}

	return submission.ID
}

// FetchAlternatives получает аудитории, которые можно предложить вместо roomID на то же окно.
// Альтернативы - вспомогательная функция: при ошибке RoomDirectory возвращается пустой список.
func (v *Validator) FetchAlternatives(ctx context.Context, roomID int64, date, startTime, endTime string) []domain.AlternativeSuggestion {
	rooms, err := v.directory.GetAlternativeRooms(ctx, roomID, date, startTime, endTime)
	if err != nil {
		v.logger.Error("FetchAlternatives: room=%d, date=%s, time=%s-%s: %v", roomID, date, startTime, endTime, err)
		if v.metrics != nil {
			v.metrics.RecordUpstreamError(upstreamRoomDirectory, "get_alternative_rooms")
		}
		return []domain.AlternativeSuggestion{}
	}

	suggestions := make([]domain.AlternativeSuggestion, 0, len(rooms))
	for _, room := range rooms {
		suggestions = append(suggestions, domain.AlternativeSuggestion{
			Room:      room.ToDomain(),
			Date:      date,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}

	v.logger.Info("FetchAlternatives: room=%d, date=%s, found=%d", roomID, date, len(suggestions))
	if v.metrics != nil {
		v.metrics.RecordAlternatives(len(suggestions))
	}

	return suggestions
}

// isConflictMessage распознает конфликт расписания по тексту ошибки (без учета регистра)
func isConflictMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range conflictMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
