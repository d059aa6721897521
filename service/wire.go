package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(AddressService), "*"),
	wire.Bind(new(IAddressService), new(*AddressService)),

	wire.Struct(new(CouponService), "*"),
	wire.Bind(new(ICouponService), new(*CouponService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(PointService), "*"),
	wire.Bind(new(IPointService), new(*PointService)),

	wire.Struct(new(InviteService), "*"),
	wire.Bind(new(IInviteService), new(*InviteService)),

	wire.Struct(new(WalletService), "*"),
	wire.Bind(new(IWalletService), new(*WalletService)),

	wire.Struct(new(OrderEvents), "*"),
	wire.Bind(new(IEventPublisher), new(*OrderEvents)),

	NewOssService,
)
