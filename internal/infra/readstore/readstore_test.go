//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/readstore"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/queries"
	readstoremock "room-reservation/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	discardLogger       = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func pgTime(hour, minute int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(hour*3600+minute*60) * 1_000_000, Valid: true}
}

func pgDate(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// =============================================================================
// Rooms
// =============================================================================

func TestRoomReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.Rooms
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: room found",
			row:  sqlc.Rooms{ID: roomID, Name: "Kauri Room", Location: "Level 2", Capacity: 8},
		},
		{name: "error: room not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error", err: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
			mockQueries.EXPECT().FindRoomByID(ctx, gomock.Any(), roomID).Return(tc.row, tc.err)

			store := readstore.NewRoomReadStore(mockQueries, nil, discardLogger)
			got, err := store.FindByID(ctx, roomID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, queries.RoomView{ID: roomID, Name: "Kauri Room", Location: "Level 2", Capacity: 8}, *got)
		})
	}
}

func TestRoomReadStore_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRoomReadQueries(ctrl)
	mockQueries.EXPECT().ListRooms(ctx, gomock.Any()).Return([]sqlc.Rooms{
		{ID: uuid.New(), Name: "Kauri Room", Capacity: 8},
		{ID: uuid.New(), Name: "Rimu Room", Capacity: 4},
	}, nil)

	got, err := readstore.NewRoomReadStore(mockQueries, nil, discardLogger).List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Rimu Room", got[1].Name)
	assert.Equal(t, 4, got[1].Capacity)
}

// =============================================================================
// Reservations
// =============================================================================

func TestReservationReadStore_BookingsForRoom(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	date := reservation.NewDate(2025, 5, 1)

	testCases := []struct {
		name       string
		rows       []sqlc.ListBookingsForRoomRow
		err        error
		wantLen    int
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: bookings converted",
			rows: []sqlc.ListBookingsForRoomRow{
				{ID: uuid.New(), RoomID: roomID, Date: pgDate(2025, 5, 1), StartTime: pgTime(9, 0), EndTime: pgTime(10, 0)},
				{ID: uuid.New(), RoomID: roomID, Date: pgDate(2025, 5, 1), StartTime: pgTime(13, 0), EndTime: pgTime(13, 30)},
			},
			wantLen: 2,
		},
		{
			name:       "error: stored slot is inverted",
			rows:       []sqlc.ListBookingsForRoomRow{{ID: uuid.New(), RoomID: roomID, Date: pgDate(2025, 5, 1), StartTime: pgTime(10, 0), EndTime: pgTime(9, 0)}},
			expectKind: infra.KindDBFailure,
		},
		{name: "error: database error", err: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
			mockQueries.EXPECT().
				ListBookingsForRoom(ctx, gomock.Any(), sqlc.ListBookingsForRoomParams{RoomID: roomID, Date: pgDate(2025, 5, 1)}).
				Return(tc.rows, tc.err)

			store := readstore.NewReservationReadStore(mockQueries, nil, discardLogger)
			got, err := store.BookingsForRoom(ctx, roomID, date)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tc.wantLen)
			assert.Equal(t, "13:00", got[1].Slot.Start().String())
			assert.Equal(t, roomID, got[0].RoomID)
		})
	}
}

func TestReservationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	mockQueries.EXPECT().FindReservationDetailByID(ctx, gomock.Any(), id).Return(sqlc.FindReservationDetailByIDRow{
		ID:           id,
		Date:         pgDate(2025, 5, 1),
		StartTime:    pgTime(9, 0),
		EndTime:      pgTime(10, 30),
		RoomName:     "Kauri Room",
		RoomLocation: "Level 2",
		Username:     "aroha",
	}, nil)

	got, err := readstore.NewReservationReadStore(mockQueries, nil, discardLogger).FindByID(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", got.Date)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, "10:30", got.EndTime)
	assert.Equal(t, "aroha", got.Username)
	assert.Empty(t, got.UserEmail)
}

func TestReservationReadStore_ListUpcomingByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	mockQueries.EXPECT().ListUpcomingReservationsByUser(ctx, gomock.Any(), sqlc.ListUpcomingReservationsByUserParams{
		UserID:  userID,
		Today:   pgDate(2025, 5, 1),
		NowTime: pgTime(10, 30),
	}).Return([]sqlc.ListUpcomingReservationsByUserRow{
		{ID: uuid.New(), UserID: userID, Date: pgDate(2025, 5, 1), StartTime: pgTime(11, 0), EndTime: pgTime(12, 0)},
	}, nil)

	got, err := readstore.NewReservationReadStore(mockQueries, nil, discardLogger).
		ListUpcomingByUser(ctx, userID, reservation.NewDate(2025, 5, 1), reservation.MustTimeOfDay("10:30"))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "11:00", got[0].StartTime)
}

func TestReservationReadStore_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		mockQueries.EXPECT().ListReservationsFirstPage(ctx, gomock.Any(), int32(51)).
			Return([]sqlc.ListReservationsFirstPageRow{{ID: uuid.New(), Date: pgDate(2025, 5, 2), StartTime: pgTime(9, 0), EndTime: pgTime(10, 0)}}, nil)

		got, err := readstore.NewReservationReadStore(mockQueries, nil, discardLogger).ListAll(ctx, nil, 51)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("success: keyset page", func(t *testing.T) {
		after := queries.ReservationCursor{
			Date:  reservation.NewDate(2025, 5, 2),
			Start: reservation.MustTimeOfDay("09:00"),
			ID:    uuid.New(),
		}
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		mockQueries.EXPECT().ListReservationsKeyset(ctx, gomock.Any(), sqlc.ListReservationsKeysetParams{
			CursorDate:  pgDate(2025, 5, 2),
			CursorStart: pgTime(9, 0),
			CursorID:    after.ID,
			RowLimit:    11,
		}).Return(nil, nil)

		got, err := readstore.NewReservationReadStore(mockQueries, nil, discardLogger).ListAll(ctx, &after, 11)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		mockQueries.EXPECT().ListReservationsFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := readstore.NewReservationReadStore(mockQueries, nil, discardLogger).ListAll(ctx, nil, 10)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Users
// =============================================================================

func TestUserReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	login := time.Date(2025, 4, 30, 21, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		row        sqlc.Users
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: user found",
			row: sqlc.Users{
				ID:        userID,
				Username:  "aroha",
				Email:     pgtype.Text{String: "aroha@example.com", Valid: true},
				IsStaff:   true,
				IsActive:  true,
				LastLogin: pgtype.Timestamptz{Time: login, Valid: true},
			},
		},
		{name: "error: user not found", err: pgx.ErrNoRows, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockUserReadQueries(ctrl)
			mockQueries.EXPECT().FindUserByID(ctx, gomock.Any(), userID).Return(tc.row, tc.err)

			got, err := readstore.NewUserReadStore(mockQueries, nil, discardLogger).FindByID(ctx, userID)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "aroha@example.com", got.Email)
			assert.True(t, got.IsStaff)
			require.NotNil(t, got.LastLogin)
			assert.True(t, login.Equal(*got.LastLogin))
		})
	}
}
