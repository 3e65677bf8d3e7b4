package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/usecase/commands"
)

// Processor drains the staged event queue with a pool of pollers. Each
// poller claims at most one event at a time; the claim itself is the
// work-distribution mechanism, so workers never coordinate directly.
type Processor struct {
	commands commands.ProcessorCommands
	cfg      config.ProcessorConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewProcessor(cmds commands.ProcessorCommands, cfg config.ProcessorConfig) *Processor {
	return &Processor{
		commands: cmds,
		cfg:      cfg,
	}
}

func (p *Processor) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	slog.Info("event processor started", "workers", p.cfg.Workers, "poll_interval", p.cfg.PollInterval)
}

func (p *Processor) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.wg.Wait()
	slog.Info("event processor stopped")
}

func (p *Processor) run(ctx context.Context, id int) {
	defer p.wg.Done()

	log := slog.With("worker", id)
	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.drain(ctx, log)
		}
	}
}

// drain claims and processes events until the queue is empty, so a burst of
// deliveries does not wait a poll interval per event.
func (p *Processor) drain(ctx context.Context, log *slog.Logger) {
	for {
		claimed, err := p.commands.ProcessNext(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			if errors.Is(err, errs.ErrManualIntervention) {
				// Already dead-lettered by the use case; keep draining
				continue
			}
			log.Error("event processing failed", "error", err)
			return
		}
		if !claimed {
			return
		}
	}
}
