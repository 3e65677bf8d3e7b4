package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"storefront-payments/internal/lock"
	"storefront-payments/internal/pkg/config"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClients,
		NewLockManager,
	),
)

// NewRedisClients builds one client per configured address. Multiple
// independent instances give the lock algorithm its quorum; a single
// address degrades to plain single-instance locking.
func NewRedisClients(lc fx.Lifecycle, cfg config.Config) ([]redis.UniversalClient, error) {
	clients := make([]redis.UniversalClient, 0, len(cfg.Redis.Addrs))
	for _, addr := range cfg.Redis.Addrs {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		clients = append(clients, client)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, client := range clients {
				if err := client.Ping(ctx).Err(); err != nil {
					return err
				}
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			for _, client := range clients {
				_ = client.Close()
			}
			return nil
		},
	})

	return clients, nil
}

func NewLockManager(cfg config.Config, clients []redis.UniversalClient) *lock.Manager {
	return lock.NewManager(cfg.Lock, clients)
}
