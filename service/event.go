package service

import (
	"context"
	"encoding/json"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/log"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/rocketmq"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"go.uber.org/zap"
)

const TagOrderPaid = "order.paid"

type IEventPublisher interface {
	// OrderPaid 尽力投递，失败只记日志
	OrderPaid(ctx context.Context, order *models.Order)
}

type OrderEvents struct {
	Producer *rocketmq.Producer
}

var _ IEventPublisher = (*OrderEvents)(nil)

func (e *OrderEvents) OrderPaid(ctx context.Context, order *models.Order) {
	evt := types.OrderPaidEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		FinalAmount: order.FinalAmount,
		Method:      order.PaymentMethod,
	}
	if order.PaidAt != nil {
		evt.PaidAt = order.PaidAt.Unix()
	}
	body, err := json.Marshal(evt)
	if err != nil {
		log.L.Warn("marshal order paid event", zap.String("order_id", order.ID), zap.Error(err))
		return
	}
	if err := e.Producer.Publish(ctx, TagOrderPaid, order.ID, body); err != nil {
		log.L.Warn("publish order paid event", zap.String("order_id", order.ID), zap.Error(err))
	}
}
