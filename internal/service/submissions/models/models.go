package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

// GetUserSubmissionsRequest запрос журнала пользователя
type GetUserSubmissionsRequest struct {
	UserID      int64
	RequesterID int64
	Limit       int
}

// SubmissionResponse запись журнала в ответе API
type SubmissionResponse struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"userId"`
	RoomID      int64     `json:"roomId"`
	BookingDate string    `json:"bookingDate"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Purpose     string    `json:"purpose"`
	Outcome     string    `json:"outcome"`
	Message     *string   `json:"message,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubmissionListResponse список записей журнала
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
}

// FromDomainSubmission конвертирует запись журнала в ответ
func FromDomainSubmission(s *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		RoomID:      s.RoomID,
		BookingDate: s.BookingDate.Format(domain.DateFormat),
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		Purpose:     s.Purpose,
		Outcome:     string(s.Outcome),
		Message:     s.Message,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainSubmissions конвертирует список (никогда не nil)
func FromDomainSubmissions(list []*domain.Submission) *SubmissionListResponse {
	result := &SubmissionListResponse{Submissions: make([]SubmissionResponse, 0, len(list))}
	for _, s := range list {
		result.Submissions = append(result.Submissions, FromDomainSubmission(s))
	}
	return result
}
