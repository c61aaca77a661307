//go:build unit

package repository

import (
	"context"
	"io"
	"log/slog"

	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Rooms), args.Error(1)
}

func (m *MockQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockQueries) FindUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockQueries) UpdateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) FindReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockQueries) FindReservationDetailByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindReservationDetailByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindReservationDetailByIDRow), args.Error(1)
}

func (m *MockQueries) LockRoomDay(ctx context.Context, db sqlc.DBTX, lockKey string) error {
	args := m.Called(ctx, db, lockKey)
	return args.Error(0)
}

func (m *MockQueries) ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockQueries) ListReservationDetailsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.ListReservationDetailsByRoomRow, error) {
	args := m.Called(ctx, db, roomID)
	return args.Get(0).([]sqlc.ListReservationDetailsByRoomRow), args.Error(1)
}

func (m *MockQueries) DeleteReservationsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) DeleteReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) ListReminderCandidates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReminderCandidatesParams) ([]sqlc.ListReminderCandidatesRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListReminderCandidatesRow), args.Error(1)
}

func (m *MockQueries) MarkReminderSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReminderSentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation for MockQueries
func (m *MockQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}
