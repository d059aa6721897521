package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao/cache"
)

const userLockTTL = 10 * time.Second

// lockUser 同一用户的支付、签到、提现等操作串行执行
func lockUser(ctx context.Context, locker cache.Locker, userID uint64) (func(), error) {
	unlock, err := locker.Lock(ctx, cache.UserLockKey(userID), userLockTTL)
	if errors.Is(err, cache.ErrLockBusy) {
		return nil, ErrTooFrequent
	}
	if err != nil {
		return nil, fmt.Errorf("lock user %d: %w", userID, err)
	}
	return unlock, nil
}
