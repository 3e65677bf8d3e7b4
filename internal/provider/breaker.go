package provider

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sony/gobreaker"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
)

// BreakerClient wraps a StatusClient with a circuit breaker so a degraded
// provider fails fast instead of tying up reconciliation passes.
type BreakerClient struct {
	inner StatusClient
	cb    *gobreaker.CircuitBreaker
}

func NewBreakerClient(cfg config.BreakerConfig, inner StatusClient) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        "payment-provider",
		MaxRequests: 1, // single half-open trial
		Interval:    cfg.Window,
		Timeout:     cfg.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			// A definite "not found" is an answer, not a provider failure
			return err == nil || errors.Is(err, errs.ErrOrderNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	}

	return &BreakerClient{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerClient) FetchStatus(ctx context.Context, providerName, merchantTxID string) (*PaymentStatus, error) {
	result, err := b.cb.Execute(func() (any, error) {
		return b.inner.FetchStatus(ctx, providerName, merchantTxID)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errs.Mark(err, errs.ErrProviderUnavailable)
		}
		return nil, err
	}

	status, ok := result.(*PaymentStatus)
	if !ok {
		return nil, errs.New("unexpected breaker result type")
	}
	return status, nil
}

func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}
