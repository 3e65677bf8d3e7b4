package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/usecase/commands"
)

// Sweeper runs the housekeeping pass on a fixed interval. Every step in the
// pass is a compare-and-swap, so concurrent sweeps across replicas are safe
// and no leader election is needed.
type Sweeper struct {
	commands commands.SweepCommands
	cfg      config.ProcessorConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(cmds commands.SweepCommands, cfg config.ProcessorConfig) *Sweeper {
	return &Sweeper{
		commands: cmds,
		cfg:      cfg,
	}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)
	slog.Info("sweeper started", "interval", s.cfg.SweepInterval)
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	slog.Info("sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.commands.SweepExpired(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("sweep pass failed", "error", err)
			}
		}
	}
}
