package main

import (
	"fmt"
	"os"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/database"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/log"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetLevel(cfg.Debug())
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "luxe atelier storefront api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					app, cleanup, err := InitServer(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate success")
					return nil
				},
			},
			{
				Name:  "ship-order",
				Usage: "mark a paid order as shipped",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Usage: "order id", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					orders, cleanup, err := InitOrderService(cfg)
					if err != nil {
						return err
					}
					defer cleanup()
					order, err := orders.Ship(ctx.Context, ctx.String("id"))
					if err != nil {
						return err
					}
					log.L.Info("order shipped", zap.String("order_id", order.ID), zap.String("status", string(order.Status)))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}
