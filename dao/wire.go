package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTransactor,
	NewUsers,
	NewAddress,
	NewProduct,
	NewCart,
	NewOrder,
	NewCoupon,
	NewUserCoupon,
	NewPoint,
	NewCheckin,
	NewInvite,
	NewReward,
	NewWallet,
)
