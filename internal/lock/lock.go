// Package lock provides the non-reentrant guard around PSA sync runs.
package lock

import (
	"context"
	"fmt"
	"sync"

	"github.com/coretech/stack-tracker/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Locker hands out a single exclusive lease. TryLock never blocks: ok is false when the
// lease is already held. release must be called exactly once when ok is true.
type Locker interface {
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}

// LocalLocker guards a single process
type LocalLocker struct {
	mu sync.Mutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{}
}

func (l *LocalLocker) TryLock(ctx context.Context) (func(), bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	var once sync.Once
	return func() { once.Do(l.mu.Unlock) }, true, nil
}

// NewLocker builds the locker selected by cfg.Backend
func NewLocker(cfg *config.SyncLockConfig, logger *zap.Logger) (Locker, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalLocker(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		logger.Info("Using Redis sync lock",
			zap.String("addr", cfg.RedisAddr),
			zap.String("key", cfg.Key),
		)
		return NewRedisLocker(client, cfg.Key, cfg.TTLDuration(), logger), nil
	default:
		return nil, fmt.Errorf("unsupported sync lock backend: %s", cfg.Backend)
	}
}
