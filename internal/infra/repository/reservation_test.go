//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pgTime(hour, minute int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(hour*3600+minute*60) * 1_000_000, Valid: true}
}

func pgDate(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func TestReservationRepository_LockRoomDay(t *testing.T) {
	roomID := uuid.MustParse("6f1c2a5e-1111-4c1e-9a55-0b8f4e0c2d11")
	date := reservation.NewDate(2025, 5, 1)

	mockQueries := new(MockQueries)
	mockQueries.On("LockRoomDay", mock.Anything, mock.Anything, "6f1c2a5e-1111-4c1e-9a55-0b8f4e0c2d11/2025-05-01").Return(nil)

	repo := &ReservationRepository{queries: mockQueries, db: mockQueries, logger: discardLogger}
	err := repo.LockRoomDay(context.Background(), roomID, date)

	assert.NoError(t, err)
	mockQueries.AssertExpectations(t)
}

func TestReservationRepository_ExistsOverlapping(t *testing.T) {
	roomID := uuid.New()
	excluded := uuid.New()
	slot, err := reservation.NewTimeSlot(reservation.NewDate(2025, 5, 1), reservation.MustTimeOfDay("09:00"), reservation.MustTimeOfDay("10:30"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		exclude   *uuid.UUID
		wantParam pgtype.UUID
		taken     bool
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "free slot", taken: false},
		{name: "taken slot excluding self", exclude: &excluded, wantParam: pgtype.UUID{Bytes: excluded, Valid: true}, taken: true},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockQueries)
			mockQueries.On("ExistsOverlappingReservation", mock.Anything, mock.Anything, sqlc.ExistsOverlappingReservationParams{
				RoomID:    roomID,
				Date:      pgDate(2025, 5, 1),
				SlotEnd:   pgTime(10, 30),
				SlotStart: pgTime(9, 0),
				ExcludeID: tt.wantParam,
			}).Return(tt.taken, tt.mockError)

			repo := &ReservationRepository{queries: mockQueries, db: mockQueries, logger: discardLogger}
			got, err := repo.ExistsOverlapping(context.Background(), roomID, slot, tt.exclude)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.taken, got)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_FindDetailByID(t *testing.T) {
	id := uuid.New()
	row := sqlc.FindReservationDetailByIDRow{
		ID:           id,
		UserID:       uuid.New(),
		RoomID:       uuid.New(),
		Date:         pgDate(2025, 5, 1),
		StartTime:    pgTime(9, 0),
		EndTime:      pgTime(10, 0),
		RoomName:     "Kauri Room",
		RoomLocation: "Level 2",
		Username:     "aroha",
		Email:        pgtype.Text{String: "aroha@example.com", Valid: true},
	}
	inverted := row
	inverted.EndTime = pgTime(8, 0)

	tests := []struct {
		name     string
		row      sqlc.FindReservationDetailByIDRow
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: row},
		{name: "stored slot is inverted", row: inverted, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockQueries)
			mockQueries.On("FindReservationDetailByID", mock.Anything, mock.Anything, id).Return(tt.row, nil)

			repo := &ReservationRepository{queries: mockQueries, db: mockQueries, logger: discardLogger}
			got, err := repo.FindDetailByID(context.Background(), id)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Kauri Room", got.RoomName)
			assert.Equal(t, "aroha@example.com", got.OwnerEmail)
			assert.Equal(t, "09:00", got.Reservation.Slot().Start().String())
			assert.Equal(t, "2025-05-01", got.Reservation.Slot().Date().String())
		})
	}
}

func TestReservationRepository_ListReminderCandidates(t *testing.T) {
	mockQueries := new(MockQueries)
	mockQueries.On("ListReminderCandidates", mock.Anything, mock.Anything, sqlc.ListReminderCandidatesParams{
		FromDate: pgDate(2025, 5, 1),
		ToDate:   pgDate(2025, 5, 2),
	}).Return([]sqlc.ListReminderCandidatesRow{
		{ID: uuid.New(), UserID: uuid.New(), RoomID: uuid.New(), Date: pgDate(2025, 5, 1), StartTime: pgTime(23, 30), EndTime: pgTime(23, 59), Username: "aroha"},
		{ID: uuid.New(), UserID: uuid.New(), RoomID: uuid.New(), Date: pgDate(2025, 5, 2), StartTime: pgTime(0, 15), EndTime: pgTime(1, 0), Username: "tane"},
	}, nil)

	repo := &ReservationRepository{queries: mockQueries, db: mockQueries, logger: discardLogger}
	got, err := repo.ListReminderCandidates(context.Background(), reservation.NewDate(2025, 5, 1), reservation.NewDate(2025, 5, 2))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "tane", got[1].OwnerUsername)
	assert.Empty(t, got[1].OwnerEmail)
	mockQueries.AssertExpectations(t)
}

func TestReservationRepository_RowsAffected(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	mockQueries := new(MockQueries)
	mockQueries.On("MarkReminderSent", mock.Anything, mock.Anything, mock.AnythingOfType("sqlc.MarkReminderSentParams")).Return(int64(0), nil)
	mockQueries.On("DeleteReservation", mock.Anything, mock.Anything, id).Return(int64(0), nil)
	mockQueries.On("DeleteReservationsByRoom", mock.Anything, mock.Anything, id).Return(int64(3), nil)

	repo := &ReservationRepository{queries: mockQueries, db: mockQueries, logger: discardLogger}

	assert.True(t, infra.IsKind(repo.MarkReminderSent(context.Background(), id, at), infra.KindNotFound))
	assert.True(t, infra.IsKind(repo.Delete(context.Background(), id), infra.KindNotFound))

	n, err := repo.DeleteByRoom(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
