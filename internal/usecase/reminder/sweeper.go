package reminder

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/usecase/notify"
	"room-reservation/internal/usecase/shared"
)

const DefaultLookahead = time.Hour

// Result counts what one sweep did.
type Result struct {
	Scanned int `json:"scanned"`
	Due     int `json:"due"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Sweeper sends reminders for reservations starting within the lookahead window.
// The flag is set only after a successful send, so a failed reminder is retried on the next run.
type Sweeper struct {
	uow        shared.UnitOfWork
	dispatcher *notify.Dispatcher
	composer   *notify.Composer
	clock      clock.Clock
	lookahead  time.Duration
	logger     *slog.Logger
}

func NewSweeper(
	uow shared.UnitOfWork,
	dispatcher *notify.Dispatcher,
	composer *notify.Composer,
	clk clock.Clock,
	lookahead time.Duration,
	logger *slog.Logger,
) *Sweeper {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	return &Sweeper{
		uow:        uow,
		dispatcher: dispatcher,
		composer:   composer,
		clock:      clk,
		lookahead:  lookahead,
		logger:     logger,
	}
}

func (s *Sweeper) Run(ctx context.Context) (Result, error) {
	var result Result
	now := s.clock.Now()
	loc := now.Location()

	var candidates []shared.ReservationDetail
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		candidates, err = tx.Reservations().ListReminderCandidates(ctx,
			reservation.DateOf(now), reservation.DateOf(now.Add(s.lookahead)))
		return err
	})
	if err != nil {
		return result, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	result.Scanned = len(candidates)

	for _, c := range candidates {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		res := c.Reservation
		if !res.ReminderDue(now, loc, s.lookahead) {
			continue
		}
		result.Due++

		if c.OwnerEmail == "" {
			result.Skipped++
			continue
		}

		msg := s.composer.Reminder(notify.Recipient{Username: c.OwnerUsername, Email: c.OwnerEmail}, c.RoomName, res.Slot())
		if outcome := s.dispatcher.Deliver(ctx, msg); !outcome.IsSent() {
			result.Failed++
			continue
		}

		err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().MarkReminderSent(ctx, res.ID(), s.clock.Now())
		})
		if err != nil {
			// the email went out; the next run sends it again
			s.logger.ErrorContext(ctx, "failed to mark reminder sent",
				slog.String("reservation_id", res.ID().String()),
				slog.String("error", err.Error()))
		}
		result.Sent++
	}

	s.logger.InfoContext(ctx, "reminder sweep finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("due", result.Due),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped))
	return result, nil
}
