//go:build unit

package queries_test

import (
	"context"
	"testing"

	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	tests := []struct {
		name    string
		view    *queries.UserView
		wantErr error
	}{
		{name: "active user", view: &queries.UserView{Username: "aroha", IsActive: true}},
		{name: "inactive user", view: &queries.UserView{Username: "aroha"}, wantErr: queries.ErrUserInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			id := uuid.New()
			store.EXPECT().FindByID(gomock.Any(), id).Return(tt.view, nil)

			got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), id)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "aroha", got.Username)
		})
	}
}

func TestUserQueries_Access(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockUserReadStore(ctrl)
	q := queries.NewUserQueries(store)
	ctx := context.Background()
	self := uuid.New()

	_, err := q.List(ctx, shared.Actor{UserID: self})
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	_, err = q.GetByID(ctx, shared.Actor{UserID: self}, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrUserNotFound))

	store.EXPECT().FindByID(gomock.Any(), self).Return(&queries.UserView{ID: self}, nil)
	got, err := q.GetByID(ctx, shared.Actor{UserID: self}, self)
	require.NoError(t, err)
	assert.Equal(t, self, got.ID)

	store.EXPECT().List(gomock.Any()).Return([]queries.UserView{{}, {}}, nil)
	users, err := q.List(ctx, shared.Actor{UserID: self, IsStaff: true})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
