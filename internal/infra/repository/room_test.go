//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T) *room.Room {
	t.Helper()
	name, err := room.NewName("Kauri Room")
	require.NoError(t, err)
	location, err := room.NewLocation("Level 2")
	require.NoError(t, err)
	capacity, err := room.NewCapacity(8)
	require.NoError(t, err)
	return room.NewRoom(name, location, capacity, time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC))
}

func TestRoomRepository_Create(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := newRoom(t)
			mockQueries := new(MockQueries)
			mockQueries.On("CreateRoom", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateRoomParams) bool {
				return p.ID == rm.ID() && p.Name == "Kauri Room" && p.Location == "Level 2" && p.Capacity == 8
			})).Return(tt.mockError)

			repo := &RoomRepository{queries: mockQueries, db: mockQueries, logger: discardLogger}
			err := repo.Create(context.Background(), rm)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestRoomRepository_UpdateAndDelete(t *testing.T) {
	rm := newRoom(t)

	tests := []struct {
		name     string
		rows     int64
		wantKind infra.RepositoryErrorKind
	}{
		{name: "row affected", rows: 1},
		{name: "missing row", rows: 0, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockQueries)
			mockQueries.On("UpdateRoom", mock.Anything, mock.Anything, mock.AnythingOfType("sqlc.UpdateRoomParams")).Return(tt.rows, nil)
			mockQueries.On("DeleteRoom", mock.Anything, mock.Anything, rm.ID()).Return(tt.rows, nil)

			repo := &RoomRepository{queries: mockQueries, db: mockQueries, logger: discardLogger}
			updateErr := repo.Update(context.Background(), rm)
			deleteErr := repo.Delete(context.Background(), rm.ID())

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(updateErr, tt.wantKind))
				assert.True(t, infra.IsKind(deleteErr, tt.wantKind))
			} else {
				assert.NoError(t, updateErr)
				assert.NoError(t, deleteErr)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestRoomRepository_FindByID(t *testing.T) {
	id := uuid.New()
	created := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	valid := sqlc.Rooms{
		ID:        id,
		Name:      "Kauri Room",
		Location:  "Level 2",
		Capacity:  8,
		CreatedAt: pgconv.TimeToPgtype(created),
		UpdatedAt: pgconv.TimeToPgtype(created),
	}
	corrupt := valid
	corrupt.Capacity = 0

	tests := []struct {
		name      string
		row       sqlc.Rooms
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", row: valid},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
		{name: "stored row fails validation", row: corrupt, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockQueries)
			mockQueries.On("FindRoomByID", mock.Anything, mock.Anything, id).Return(tt.row, tt.mockError)

			repo := &RoomRepository{queries: mockQueries, db: mockQueries, logger: discardLogger}
			got, err := repo.FindByID(context.Background(), id)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID())
			assert.Equal(t, "Kauri Room", got.Name().Value())
			assert.Equal(t, 8, got.Capacity().Value())
			assert.True(t, created.Equal(got.CreatedAt()))
		})
	}
}
