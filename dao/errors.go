package dao

import "errors"

// ErrConditionNotMet 条件更新未命中任何行（余额不足、库存不足、状态已变化等）
var ErrConditionNotMet = errors.New("dao: condition not met")
