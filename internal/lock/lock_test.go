package lock

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coretech/stack-tracker/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalLocker_Exclusive(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	release, ok, err := l.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.TryLock(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	release()
	release() // second call is a no-op

	release2, ok, err := l.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	release2()
}

func TestLocalLocker_OneWinnerUnderContention(t *testing.T) {
	l := NewLocalLocker()
	var winners int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok, _ := l.TryLock(context.Background()); ok {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners)
}

func TestNewLocker(t *testing.T) {
	l, err := NewLocker(&config.SyncLockConfig{Backend: "local"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &LocalLocker{}, l)

	_, err = NewLocker(&config.SyncLockConfig{Backend: "etcd"}, zap.NewNop())
	assert.Error(t, err)
}

func redisClientOrSkip(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Skipping Redis-dependent test: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisLocker(t *testing.T) {
	client := redisClientOrSkip(t)
	key := "stack-tracker:test-lock:" + t.Name()
	ctx := context.Background()
	require.NoError(t, client.Del(ctx, key).Err())

	a := NewRedisLocker(client, key, time.Minute, zap.NewNop())
	b := NewRedisLocker(client, key, time.Minute, zap.NewNop())

	release, ok, err := a.TryLock(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = b.TryLock(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	release()

	releaseB, ok, err := b.TryLock(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	// a stale release from a must not drop b's lease
	release()
	exists, err := client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	releaseB()
}
