package commands

import (
	"context"
	"log/slog"

	"storefront-payments/internal/pkg/clock"
	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
)

// SweepStats summarizes one housekeeping pass.
type SweepStats struct {
	LeasesReaped        int64
	ReservationsExpired int
	SessionsExpired     int
	RecordsPurged       int64
	EventsPurged        int64
}

// SweepCommands is the periodic housekeeping pass: it reclaims event leases
// from crashed workers, expires overdue stock reservations, times out stale
// checkout sessions and purges aged bookkeeping rows.
type SweepCommands interface {
	SweepExpired(ctx context.Context) (*SweepStats, error)
}

type sweepImpl struct {
	events EventStore
	stocks StockStore
	idem   IdempotencyStore
	cfg    config.ProcessorConfig
	clock  clock.Clock
}

func NewSweepUseCase(
	events EventStore,
	stocks StockStore,
	idem IdempotencyStore,
	cfg config.ProcessorConfig,
	clk clock.Clock,
) SweepCommands {
	return &sweepImpl{
		events: events,
		stocks: stocks,
		idem:   idem,
		cfg:    cfg,
		clock:  clk,
	}
}

const sweepBatchSize = 200

func (s *sweepImpl) SweepExpired(ctx context.Context) (*SweepStats, error) {
	stats := &SweepStats{}
	now := s.clock.Now()

	reaped, err := s.events.ReapExpiredLeases(ctx, now)
	if err != nil {
		return stats, errs.Mark(err, errs.ErrTransientInfra)
	}
	stats.LeasesReaped = reaped
	if reaped > 0 {
		slog.Warn("reclaimed event leases from stalled workers", "count", reaped)
	}

	if err := s.expireReservations(ctx, stats); err != nil {
		return stats, err
	}
	if err := s.expireSessions(ctx, stats); err != nil {
		return stats, err
	}

	purgedIdem, err := s.idem.DeleteExpired(ctx, now)
	if err != nil {
		return stats, errs.Mark(err, errs.ErrTransientInfra)
	}
	stats.RecordsPurged = purgedIdem

	purgedEvents, err := s.events.DeleteProcessedBefore(ctx, now.Add(-s.cfg.RecordRetention))
	if err != nil {
		return stats, errs.Mark(err, errs.ErrTransientInfra)
	}
	stats.EventsPurged = purgedEvents

	slog.Info("sweep pass complete",
		"leases_reaped", stats.LeasesReaped,
		"reservations_expired", stats.ReservationsExpired,
		"sessions_expired", stats.SessionsExpired,
		"records_purged", stats.RecordsPurged,
		"events_purged", stats.EventsPurged)

	return stats, nil
}

func (s *sweepImpl) expireReservations(ctx context.Context, stats *SweepStats) error {
	overdue, err := s.stocks.ListExpiredActive(ctx, s.clock.Now(), sweepBatchSize)
	if err != nil {
		return errs.Mark(err, errs.ErrTransientInfra)
	}
	for _, res := range overdue {
		if err := s.stocks.Expire(ctx, res.ID); err != nil {
			slog.Warn("failed to expire reservation",
				"reservation_id", res.ID, "error", err)
			continue
		}
		stats.ReservationsExpired++
	}
	return nil
}

func (s *sweepImpl) expireSessions(ctx context.Context, stats *SweepStats) error {
	stale, err := s.stocks.ListTimedOutSessions(ctx, s.clock.Now(), sweepBatchSize)
	if err != nil {
		return errs.Mark(err, errs.ErrTransientInfra)
	}
	for _, sess := range stale {
		won, err := s.stocks.ExpireSession(ctx, sess.ID)
		if err != nil {
			slog.Warn("failed to expire checkout session",
				"session_id", sess.ID, "error", err)
			continue
		}
		if !won {
			// A concurrent finalizer completed the session first
			continue
		}
		if _, relErr := s.stocks.ReleaseActiveByOrder(ctx, sess.OrderID); relErr != nil {
			slog.Error("failed to release stock of timed-out session",
				"session_id", sess.ID, "order_id", sess.OrderID, "error", relErr)
			continue
		}
		stats.SessionsExpired++
	}
	return nil
}
