//go:build wireinject
// +build wireinject

package main

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao/cache"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/handler"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/client"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/database"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/idgen"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/rocketmq"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/server"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/service"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	database.NewDB,
	client.NewRedisClient,
	config.ProvideOssConfig,
	config.ProvideRocketMQConfig,
	rocketmq.NewProducer,
	clock.New,
	idgen.Provide,
	cache.ProviderSet,
	dao.ProviderSet,
	service.ProviderSet,
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		infraSet,
		server.NewGinEngine,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Address), "*"),
		wire.Struct(new(handler.Coupon), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.Invite), "*"),
		wire.Struct(new(handler.Wallet), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil, nil
}

func InitOrderService(cfg *config.Config) (service.IOrderService, func(), error) {
	wire.Build(infraSet)
	return nil, nil, nil
}
