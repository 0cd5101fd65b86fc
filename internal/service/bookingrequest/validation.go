package bookingrequest

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/pkg/types"
)

// validateDraft выполняет все проверки черновика.
// Проверки независимы и выполняются всегда, чтобы пользователь увидел все ошибки сразу.
func validateDraft(draft *domain.BookingDraft, today time.Time) domain.ValidationResult {
	result := domain.NewValidationResult()

	validateRoom(draft, result)
	validateDate(draft, today, result)
	validateTimes(draft, result)
	validatePurpose(draft, result)

	return result
}

// validateRoom проверяет, что аудитория выбрана
func validateRoom(draft *domain.BookingDraft, result domain.ValidationResult) {
	if strings.TrimSpace(draft.RoomID) == "" {
		result.Add(domain.FieldRoom, domain.CodeMissingRoom)
	}
}

// validateDate проверяет дату: [today, today+MaxAdvanceDays] включительно
func validateDate(draft *domain.BookingDraft, today time.Time, result domain.ValidationResult) {
	raw := strings.TrimSpace(draft.BookingDate)
	if raw == "" {
		result.Add(domain.FieldDate, domain.CodeMissingDate)
		return
	}

	date, err := parseDate(raw, today.Location())
	if err != nil {
		result.Add(domain.FieldDate, domain.CodeInvalidDate)
		return
	}

	switch {
	case date.Before(today):
		result.Add(domain.FieldDate, domain.CodePastDate)
	case date.After(today.AddDate(0, 0, domain.MaxAdvanceDays)):
		result.Add(domain.FieldDate, domain.CodeTooFarAhead)
	}
}

// validateTimes проверяет наличие времени начала/окончания и само окно
func validateTimes(draft *domain.BookingDraft, result domain.ValidationResult) {
	start, startOK := parseClock(draft.StartTime, domain.FieldStartTime, domain.CodeMissingStart, result)
	end, endOK := parseClock(draft.EndTime, domain.FieldEndTime, domain.CodeMissingEnd, result)
	if !startOK || !endOK {
		return
	}

	if !end.IsAfter(start) {
		result.Add(domain.FieldEndTime, domain.CodeEndBeforeStart)
	}

	// Нарушение рабочих часов привязывается к полю начала, в том числе когда выходит конец окна
	if start.Hour() < domain.OpeningHour || end.Minutes() > domain.ClosingHour*60 {
		result.Add(domain.FieldStartTime, domain.CodeOutsideBusinessHours)
	}

	window := domain.BookingWindow{StartTime: start, EndTime: end}
	if window.Duration() > domain.MaxBookingDuration {
		result.Add(domain.FieldEndTime, domain.CodeDurationExceeded)
	}
}

// validatePurpose проверяет длину цели без пробелов по краям (в символах, не в байтах)
func validatePurpose(draft *domain.BookingDraft, result domain.ValidationResult) {
	if len([]rune(draft.TrimmedPurpose())) < domain.MinPurposeLength {
		result.Add(domain.FieldPurpose, domain.CodePurposeTooShort)
	}
}

// parseClock разбирает HH:MM; пустое значение - missingCode, некорректное - InvalidTime
func parseClock(
	raw string,
	field domain.Field,
	missingCode domain.ViolationCode,
	result domain.ValidationResult,
) (types.TimeString, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		result.Add(field, missingCode)
		return types.TimeString{}, false
	}

	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		result.Add(field, domain.CodeInvalidTime)
		return types.TimeString{}, false
	}

	return ts, true
}

// parseDate разбирает YYYY-MM-DD как календарный день в loc
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, strings.TrimSpace(raw), loc)
}

// parseRoomID приводит ссылку на аудиторию к целочисленному идентификатору
func parseRoomID(draft *domain.BookingDraft) (int64, error) {
	id, ok := draft.RoomNumber()
	if !ok {
		return 0, fmt.Errorf("%w: room id %q is not a positive integer", ErrInvalidInput, draft.RoomID)
	}
	return id, nil
}

// parseWindow разбирает дату и время черновика, который уже прошел валидацию
func parseWindow(draft *domain.BookingDraft, loc *time.Location) (domain.BookingWindow, error) {
	date, err := parseDate(draft.BookingDate, loc)
	if err != nil {
		return domain.BookingWindow{}, fmt.Errorf("%w: booking date: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(strings.TrimSpace(draft.StartTime))
	if err != nil {
		return domain.BookingWindow{}, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(strings.TrimSpace(draft.EndTime))
	if err != nil {
		return domain.BookingWindow{}, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	return domain.BookingWindow{Date: date, StartTime: start, EndTime: end}, nil
}

// startOfDay обнуляет время, оставляя календарный день в loc
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
