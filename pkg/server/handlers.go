package server

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/handler"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Product *handler.Product
	Cart    *handler.Cart
	Address *handler.Address
	Coupon  *handler.Coupon
	Order   *handler.Order
	Points  *handler.Point
	Invite  *handler.Invite
	Wallet  *handler.Wallet
}

func (h *Handlers) RegisterRouter(api gin.IRouter) {
	h.Auth.RegisterRouter(api)
	h.User.RegisterRouter(api)
	h.Product.RegisterRouter(api)
	h.Cart.RegisterRouter(api)
	h.Address.RegisterRouter(api)
	h.Coupon.RegisterRouter(api)
	h.Order.RegisterRouter(api)
	h.Points.RegisterRouter(api)
	h.Invite.RegisterRouter(api)
	h.Wallet.RegisterRouter(api)
}
