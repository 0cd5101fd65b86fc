package get_user_submissions

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/submissions/models"
)

type SubmissionService interface {
	GetUserSubmissions(ctx context.Context, req *models.GetUserSubmissionsRequest) (*models.SubmissionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
