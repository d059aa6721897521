package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockBusy 锁被其他请求持有
var ErrLockBusy = errors.New("cache: lock busy")

// 只删除自己持有的锁
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker interface {
	// Lock 获取锁，返回的 unlock 可重复调用
	Lock(ctx context.Context, key string, ttl time.Duration) (unlock func(), err error)
}

type RedisLocker struct {
	redis *redis.Client
	// 获取失败后的重试间隔与次数
	retryInterval time.Duration
	retries       int
}

var _ Locker = (*RedisLocker)(nil)

func NewRedisLocker(rds *redis.Client) *RedisLocker {
	return &RedisLocker{redis: rds, retryInterval: 50 * time.Millisecond, retries: 20}
}

func (r *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	token := uuid.NewString()
	for i := 0; ; i++ {
		ok, err := r.redis.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("cache.Lock %s: %w", key, err)
		}
		if ok {
			break
		}
		if i >= r.retries {
			return nil, ErrLockBusy
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.retryInterval):
		}
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		// 请求 ctx 可能已取消，解锁不跟随它
		_ = unlockScript.Run(context.Background(), r.redis, []string{key}, token).Err()
	}, nil
}

// UserLockKey 同一用户的资金、积分类操作串行执行
func UserLockKey(userID uint64) string {
	return fmt.Sprintf("lock:user:%d", userID)
}
