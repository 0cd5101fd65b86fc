package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/pkg/psqlbuilder"
)

const (
	tableName = "booking_submissions"

	pgUniqueViolation = "23505"
)

var columns = []string{
	"id",
	"user_id",
	"room_id",
	"booking_date",
	"start_time",
	"end_time",
	"purpose",
	"outcome",
	"message",
	"created_at",
}

// Repository журнал попыток отправки бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает попытку отправки
func (r *Repository) Create(ctx context.Context, s *domain.Submission) error {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			s.ID,
			s.UserID,
			s.RoomID,
			s.BookingDate,
			s.StartTime,
			s.EndTime,
			s.Purpose,
			string(s.Outcome),
			s.Message,
			s.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: id=%s", ErrDuplicate, s.ID)
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByUser получает последние попытки пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64, limit int) ([]*domain.Submission, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		var (
			s       domain.Submission
			outcome string
		)
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.RoomID,
			&s.BookingDate,
			&s.StartTime,
			&s.EndTime,
			&s.Purpose,
			&outcome,
			&s.Message,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByUser: %v", ErrScanRow, err)
		}
		s.Outcome = domain.OutcomeKind(outcome)
		submissions = append(submissions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - iterate rows: %v", ErrScanRow, err)
	}

	return submissions, nil
}
