//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/queries"
	"room-reservation/internal/usecase/shared"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	readStore *queriesmock.MockReservationReadStore
	clock     *clock.MockClock
	queries   queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.readStore = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC))
	s.queries = queries.NewReservationQueries(s.readStore, s.clock)
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	ownerID := uuid.New()
	view := &queries.ReservationView{ID: uuid.New(), UserID: ownerID}

	s.Run("success: owner", func() {
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.queries.GetByID(s.ctx, shared.Actor{UserID: ownerID}, view.ID)

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("success: staff", func() {
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetByID(s.ctx, shared.Actor{UserID: uuid.New(), IsStaff: true}, view.ID)

		s.NoError(err)
	})

	s.Run("error: other users see not found", func() {
		s.readStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.GetByID(s.ctx, shared.Actor{UserID: uuid.New()}, view.ID)

		s.True(errs.Is(err, errs.ErrReservationNotFound))
	})

	s.Run("error: missing", func() {
		s.readStore.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.queries.GetByID(s.ctx, shared.Actor{UserID: ownerID}, uuid.New())

		s.True(errs.Is(err, errs.ErrReservationNotFound))
	})
}

func (s *ReservationQueriesTestSuite) TestListUpcoming() {
	actor := shared.Actor{UserID: uuid.New()}
	s.readStore.EXPECT().
		ListUpcomingByUser(gomock.Any(), actor.UserID, reservation.NewDate(2025, 5, 1), reservation.MustTimeOfDay("10:30")).
		Return([]queries.ReservationView{{ID: uuid.New()}}, nil)

	got, err := s.queries.ListUpcoming(s.ctx, actor)

	s.Require().NoError(err)
	s.Len(got, 1)
}

func views(n int) []queries.ReservationView {
	out := make([]queries.ReservationView, n)
	for i := range out {
		out[i] = queries.ReservationView{
			ID:        uuid.New(),
			Date:      "2025-05-01",
			StartTime: fmt.Sprintf("%02d:00", 8+i),
			EndTime:   fmt.Sprintf("%02d:30", 8+i),
		}
	}
	return out
}

func (s *ReservationQueriesTestSuite) TestListAll() {
	staff := shared.Actor{UserID: uuid.New(), IsStaff: true}

	s.Run("success: extra row produces a next cursor", func() {
		rows := views(3)
		s.readStore.EXPECT().ListAll(gomock.Any(), (*queries.ReservationCursor)(nil), 3).Return(rows, nil)

		page, err := s.queries.ListAll(s.ctx, staff, queries.Cursor{}, 2)

		s.Require().NoError(err)
		s.Len(page.Items, 2)
		s.Require().NotNil(page.Next)

		c, err := queries.DecodeReservationCursor(page.Next.After)
		s.Require().NoError(err)
		s.Equal(rows[1].ID, c.ID)
		s.Equal("09:00", c.Start.String())
		s.Equal("2025-05-01", c.Date.String())
	})

	s.Run("success: cursor is passed to the store", func() {
		after := queries.ReservationCursor{
			Date:  reservation.NewDate(2025, 5, 1),
			Start: reservation.MustTimeOfDay("09:00"),
			ID:    uuid.New(),
		}
		s.readStore.EXPECT().ListAll(gomock.Any(), &after, 3).Return(views(1), nil)

		page, err := s.queries.ListAll(s.ctx, staff, queries.Cursor{After: queries.EncodeReservationCursor(after)}, 2)

		s.Require().NoError(err)
		s.Len(page.Items, 1)
		s.Nil(page.Next)
	})

	s.Run("error: malformed cursor", func() {
		_, err := s.queries.ListAll(s.ctx, staff, queries.Cursor{After: "%%%"}, 2)

		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: regular users are forbidden", func() {
		_, err := s.queries.ListAll(s.ctx, shared.Actor{UserID: uuid.New()}, queries.Cursor{}, 2)

		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func TestValidateLimit(t *testing.T) {
	for in, want := range map[int]int{0: 50, -1: 50, 10: 10, 200: 200, 201: 200} {
		if got := queries.ValidateLimit(in); got != want {
			t.Errorf("ValidateLimit(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestReservationCursorRoundTrip(t *testing.T) {
	want := queries.ReservationCursor{
		Date:  reservation.NewDate(2025, 12, 31),
		Start: reservation.MustTimeOfDay("23:59:30"),
		ID:    uuid.New(),
	}

	got, err := queries.DecodeReservationCursor(queries.EncodeReservationCursor(want))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Date.Equal(want.Date) || got.Start != want.Start || got.ID != want.ID {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
