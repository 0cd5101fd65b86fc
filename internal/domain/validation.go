package domain

// Field names a draft field, matching the JSON names the form uses
type Field string

const (
	FieldRoom      Field = "roomId"
	FieldDate      Field = "bookingDate"
	FieldStartTime Field = "startTime"
	FieldEndTime   Field = "endTime"
	FieldPurpose   Field = "purpose"
)

// ViolationCode machine-readable reason of a field error
type ViolationCode string

const (
	CodeMissingRoom          ViolationCode = "MissingRoom"
	CodeMissingDate          ViolationCode = "MissingDate"
	CodeInvalidDate          ViolationCode = "InvalidDate"
	CodePastDate             ViolationCode = "PastDate"
	CodeTooFarAhead          ViolationCode = "TooFarAhead"
	CodeMissingStart         ViolationCode = "MissingStart"
	CodeMissingEnd           ViolationCode = "MissingEnd"
	CodeInvalidTime          ViolationCode = "InvalidTime"
	CodeEndBeforeStart       ViolationCode = "EndBeforeStart"
	CodeOutsideBusinessHours ViolationCode = "OutsideBusinessHours"
	CodeDurationExceeded     ViolationCode = "DurationExceeded"
	CodePurposeTooShort      ViolationCode = "PurposeTooShort"
)

var violationMessages = map[ViolationCode]string{
	CodeMissingRoom:          "выберите аудиторию",
	CodeMissingDate:          "укажите дату бронирования",
	CodeInvalidDate:          "некорректный формат даты, ожидается YYYY-MM-DD",
	CodePastDate:             "дата бронирования не может быть в прошлом",
	CodeTooFarAhead:          "бронировать можно не более чем на 30 дней вперёд",
	CodeMissingStart:         "укажите время начала",
	CodeMissingEnd:           "укажите время окончания",
	CodeInvalidTime:          "некорректный формат времени, ожидается HH:MM",
	CodeEndBeforeStart:       "время окончания должно быть позже времени начала",
	CodeOutsideBusinessHours: "бронирование возможно только с 08:00 до 18:00",
	CodeDurationExceeded:     "бронирование не может длиться дольше 4 часов",
	CodePurposeTooShort:      "цель бронирования должна содержать не менее 10 символов",
}

// Message human-readable text of the code
func (c ViolationCode) Message() string {
	if msg, ok := violationMessages[c]; ok {
		return msg
	}
	return string(c)
}

// Violation a single field error
type Violation struct {
	Code    ViolationCode
	Message string
}

// ValidationResult field -> error. Empty result means the draft is valid.
// A field carries at most one violation; a later check overwrites an earlier one.
type ValidationResult map[Field]Violation

// NewValidationResult returns an empty result
func NewValidationResult() ValidationResult {
	return ValidationResult{}
}

// Add attaches code to field
func (r ValidationResult) Add(field Field, code ViolationCode) {
	r[field] = Violation{Code: code, Message: code.Message()}
}

// Valid returns true if there are no violations
func (r ValidationResult) Valid() bool {
	return len(r) == 0
}

// Has returns true if field carries the given code
func (r ValidationResult) Has(field Field, code ViolationCode) bool {
	v, ok := r[field]
	return ok && v.Code == code
}

// Messages field -> message, as shown inline in the form
func (r ValidationResult) Messages() map[string]string {
	out := make(map[string]string, len(r))
	for f, v := range r {
		out[string(f)] = v.Message
	}
	return out
}

// Codes field -> code
func (r ValidationResult) Codes() map[string]string {
	out := make(map[string]string, len(r))
	for f, v := range r {
		out[string(f)] = string(v.Code)
	}
	return out
}
