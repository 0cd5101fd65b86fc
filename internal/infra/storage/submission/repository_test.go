package submission

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/pkg/types"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, mock, NewRepository(db)
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func newSubmission(t *testing.T) *domain.Submission {
	msg := "Room has a scheduling conflict"
	return &domain.Submission{
		ID:          "5f0c6f9e-8a4b-4c43-9d0f-3b8e2f1a7c11",
		UserID:      42,
		RoomID:      7,
		BookingDate: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   mustTime(t, "10:00"),
		EndTime:     mustTime(t, "12:00"),
		Purpose:     "Thesis group meeting",
		Outcome:     domain.OutcomeConflict,
		Message:     &msg,
		CreatedAt:   time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC),
	}
}

func TestCreate_Success(t *testing.T) {
	_, mock, repo := setupMockDB(t)
	s := newSubmission(t)

	mock.ExpectExec(`INSERT INTO booking_submissions`).
		WithArgs(s.ID, s.UserID, s.RoomID, s.BookingDate, "10:00", "12:00", s.Purpose, "conflict", *s.Message, s.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NilMessage(t *testing.T) {
	_, mock, repo := setupMockDB(t)
	s := newSubmission(t)
	s.Outcome = domain.OutcomeCreated
	s.Message = nil

	mock.ExpectExec(`INSERT INTO booking_submissions`).
		WithArgs(s.ID, s.UserID, s.RoomID, s.BookingDate, "10:00", "12:00", s.Purpose, "created", nil, s.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "unique violation", dbErr: &pq.Error{Code: "23505"}, wantErr: ErrDuplicate},
		{name: "other error", dbErr: errors.New("connection reset"), wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, repo := setupMockDB(t)

			mock.ExpectExec(`INSERT INTO booking_submissions`).WillReturnError(tt.dbErr)

			err := repo.Create(context.Background(), newSubmission(t))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListByUser_Success(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	createdAt := time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)
	bookingDate := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow("id-2", int64(42), int64(7), bookingDate, "10:00:00", "12:00:00", "Thesis group meeting", "conflict", "Room has a scheduling conflict", createdAt).
		AddRow("id-1", int64(42), int64(3), bookingDate, "14:00:00", "16:00:00", "Chess club weekly", "created", nil, createdAt.Add(-time.Hour))

	mock.ExpectQuery(`SELECT .+ FROM booking_submissions WHERE user_id = \$1 ORDER BY created_at DESC LIMIT 20`).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 42, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "id-2", got[0].ID)
	assert.Equal(t, domain.OutcomeConflict, got[0].Outcome)
	assert.Equal(t, "10:00", got[0].StartTime.String())
	require.NotNil(t, got[0].Message)
	assert.Equal(t, "Room has a scheduling conflict", *got[0].Message)

	assert.Equal(t, domain.OutcomeCreated, got[1].Outcome)
	assert.Nil(t, got[1].Message)
	assert.Equal(t, "16:00", got[1].EndTime.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_Empty(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM booking_submissions`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.ListByUser(context.Background(), 42, 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_QueryError(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT .+ FROM booking_submissions`).
		WillReturnError(errors.New("relation does not exist"))

	_, err := repo.ListByUser(context.Background(), 42, 5)
	assert.ErrorIs(t, err, ErrExecQuery)
}
