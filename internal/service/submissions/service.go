package submissions

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/submissions/models"
)

// Service сервис чтения журнала попыток отправки
type Service struct {
	repo   SubmissionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(repo SubmissionRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetUserSubmissions возвращает последние попытки пользователя, новые первыми.
// Пользователь видит только свой журнал.
func (s *Service) GetUserSubmissions(ctx context.Context, req *models.GetUserSubmissionsRequest) (*models.SubmissionListResponse, error) {
	s.logger.Info("GetUserSubmissions: user=%d, requester=%d, limit=%d", req.UserID, req.RequesterID, req.Limit)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.UserID != req.RequesterID {
		s.logger.Warn("GetUserSubmissions: access denied for requester=%d to user=%d", req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	limit := req.Limit
	switch {
	case limit <= 0:
		limit = domain.DefaultSubmissionsLimit
	case limit > domain.MaxSubmissionsLimit:
		limit = domain.MaxSubmissionsLimit
	}

	list, err := s.repo.ListByUser(ctx, req.UserID, limit)
	if err != nil {
		s.logger.Error("GetUserSubmissions: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserSubmissions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserSubmissions: found %d entries for user=%d", len(list), req.UserID)
	return models.FromDomainSubmissions(list), nil
}
