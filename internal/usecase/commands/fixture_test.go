//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"room-reservation/internal/infra"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/usecase/notify"
	"room-reservation/internal/usecase/shared"
	notifymock "room-reservation/tests/mock/notify"
	sharedmock "room-reservation/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const signature = "Te Whare Runaga Conference Room Booking System"

// uowFixture runs every Within callback against one mocked Tx.
type uowFixture struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	rooms        *sharedmock.MockRoomRepository
	reservations *sharedmock.MockReservationRepository
	users        *sharedmock.MockUserRepository
	sender       *notifymock.MockSender
	dispatcher   *notify.Dispatcher
	composer     *notify.Composer
	clock        *clock.MockClock
	logger       *slog.Logger
}

func (f *uowFixture) setupFixture() {
	f.ctx = context.Background()
	f.mockCtrl = gomock.NewController(f.T())
	f.uow = sharedmock.NewMockUnitOfWork(f.mockCtrl)
	f.tx = sharedmock.NewMockTx(f.mockCtrl)
	f.rooms = sharedmock.NewMockRoomRepository(f.mockCtrl)
	f.reservations = sharedmock.NewMockReservationRepository(f.mockCtrl)
	f.users = sharedmock.NewMockUserRepository(f.mockCtrl)
	f.sender = notifymock.NewMockSender(f.mockCtrl)
	f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	f.dispatcher = notify.NewDispatcher(f.sender, f.logger)
	f.composer = notify.NewComposer(signature)
	f.clock = clock.NewMockClock(time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC))

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
}

// captureSend records every message handed to the sender and returns err for each.
func (f *uowFixture) captureSend(err error) *[]notify.Message {
	sent := &[]notify.Message{}
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notify.Message) error {
			*sent = append(*sent, msg)
			return err
		}).AnyTimes()
	return sent
}

func notFound() error {
	return infra.RepositoryError{Kind: infra.KindNotFound}
}

func duplicateKey() error {
	return infra.RepositoryError{Kind: infra.KindDuplicateKey}
}
