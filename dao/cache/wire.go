package cache

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewRedisLocker,
	wire.Bind(new(Locker), new(*RedisLocker)),
)
