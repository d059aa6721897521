package rocketmq

import (
	"context"
	"fmt"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// Producer 未启用时 p 为 nil，Publish 直接丢弃
type Producer struct {
	p     rocketmq.Producer
	topic string
}

func NewProducer(cfg *config.RocketMQConfig) (*Producer, func(), error) {
	if cfg == nil || !cfg.Enabled {
		log.L.Info("rocketmq producer disabled")
		return &Producer{}, func() {}, nil
	}

	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("rocketmq.NewProducer: %w", err)
	}
	if err = p.Start(); err != nil {
		return nil, nil, fmt.Errorf("rocketmq producer start: %w", err)
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))

	cleanup := func() {
		if err := p.Shutdown(); err != nil {
			log.L.Warn("rocketmq producer shutdown", zap.Error(err))
		}
	}
	return &Producer{p: p, topic: cfg.Topic}, cleanup, nil
}

func (p *Producer) Enabled() bool {
	return p != nil && p.p != nil
}

// Publish 同步发送，tag 区分事件类型，key 用于按业务 ID 检索
func (p *Producer) Publish(ctx context.Context, tag, key string, body []byte) error {
	if !p.Enabled() {
		return nil
	}
	msg := primitive.NewMessage(p.topic, body).WithTag(tag).WithKeys([]string{key})
	res, err := p.p.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID), zap.String("tag", tag))
	return nil
}
