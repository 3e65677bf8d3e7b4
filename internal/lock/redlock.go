package lock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redsync/redsync/v4"
	redsyncredis "github.com/go-redsync/redsync/v4/redis"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"storefront-payments/internal/pkg/config"
	"storefront-payments/internal/pkg/errs"
)

// Manager provides quorum-based mutual exclusion across processes.
// Each configured redis address is an independent lock store; acquisition
// succeeds only on a majority, and every lease carries a TTL so a crashed
// holder can never deadlock the critical section.
type Manager struct {
	rs  *redsync.Redsync
	cfg config.LockConfig
}

func NewManager(cfg config.LockConfig, clients []redis.UniversalClient) *Manager {
	pools := make([]redsyncredis.Pool, len(clients))
	for i, c := range clients {
		pools[i] = goredis.NewPool(c)
	}
	return &Manager{
		rs:  redsync.New(pools...),
		cfg: cfg,
	}
}

// Lease is a held lock. Release is safe to call once per lease; the
// auto-extend loop, if any, stops with it.
type Lease struct {
	mutex      *redsync.Mutex
	stopExtend context.CancelFunc
	done       chan struct{}
}

// Acquire takes the lock with the configured bounded retry budget.
// Failure is a transient condition: callers requeue their work instead of
// skipping business logic.
func (m *Manager) Acquire(ctx context.Context, key string) (*Lease, error) {
	return m.acquire(ctx, key, m.cfg.RetryCount)
}

// TryAcquire attempts a single non-blocking acquisition. Used for
// single-flight guards where losing simply means another instance runs.
func (m *Manager) TryAcquire(ctx context.Context, key string) (*Lease, error) {
	return m.acquire(ctx, key, 1)
}

func (m *Manager) acquire(ctx context.Context, key string, tries int) (*Lease, error) {
	mutex := m.rs.NewMutex("lock:"+key,
		redsync.WithExpiry(m.cfg.TTL),
		redsync.WithTries(tries),
		redsync.WithRetryDelay(m.cfg.RetryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
			return nil, errs.Mark(err, errs.ErrLockNotAcquired)
		}
		return nil, errs.Mark(errs.Wrap(err, "lock acquisition failed"), errs.ErrTransientInfra)
	}

	lease := &Lease{mutex: mutex}
	if m.cfg.ExtendPeriod > 0 {
		extendCtx, cancel := context.WithCancel(context.Background())
		lease.stopExtend = cancel
		lease.done = make(chan struct{})
		go lease.extendLoop(extendCtx, m.cfg.ExtendPeriod, key)
	}

	return lease, nil
}

// extendLoop keeps long critical sections alive. The lease still expires on
// its own if the process dies; extension only covers the healthy-but-slow case.
func (l *Lease) extendLoop(ctx context.Context, period time.Duration, key string) {
	defer close(l.done)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ok, err := l.mutex.ExtendContext(ctx)
			if err != nil || !ok {
				if ctx.Err() == nil {
					slog.Warn("failed to extend lock lease", "key", key, "error", err)
				}
				return
			}
		}
	}
}

func (l *Lease) Release(ctx context.Context) error {
	if l.stopExtend != nil {
		l.stopExtend()
		<-l.done
	}

	ok, err := l.mutex.UnlockContext(ctx)
	if err != nil {
		return errs.Wrap(err, "lock release failed")
	}
	if !ok {
		// Lease already expired; the TTL did its job
		return nil
	}
	return nil
}

// TryWithLock runs fn only if a single non-blocking acquisition succeeds.
// Returns false when another holder owns the lock; that is not an error for
// single-flight jobs.
func (m *Manager) TryWithLock(ctx context.Context, key string, fn func(ctx context.Context) error) (bool, error) {
	lease, err := m.TryAcquire(ctx, key)
	if err != nil {
		if errors.Is(err, errs.ErrLockNotAcquired) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if releaseErr := lease.Release(releaseCtx); releaseErr != nil {
			slog.Warn("failed to release lock", "key", key, "error", releaseErr)
		}
	}()

	return true, fn(ctx)
}

// WithLock runs fn while holding the lock, releasing it on every exit path.
func (m *Manager) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	lease, err := m.Acquire(ctx, key)
	if err != nil {
		return err
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if releaseErr := lease.Release(releaseCtx); releaseErr != nil {
			slog.Warn("failed to release lock", "key", key, "error", releaseErr)
		}
	}()

	return fn(ctx)
}
