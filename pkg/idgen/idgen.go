package idgen

import (
	"strconv"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/snowflake"

	"github.com/speps/go-hashids/v2"
)

// InviteAlphabet 邀请码字符集，去掉了易混淆的 0/O/1/I
const InviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const inviteCodeLength = 8

// Generator 订单号、邀请码等业务标识的生成器
type Generator interface {
	OrderID(now time.Time) string
	InviteCode(userID uint64) (string, error)
}

type Hashids struct {
	hash *hashids.HashID
}

var _ Generator = (*Hashids)(nil)

func New(salt string) (*Hashids, error) {
	hd := hashids.NewData()
	hd.Alphabet = InviteAlphabet
	hd.Salt = salt
	hd.MinLength = inviteCodeLength
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Hashids{hash: h}, nil
}

// Provide 按配置设置雪花节点并创建生成器
func Provide(cfg *config.Config) (Generator, error) {
	if cfg.App.NodeID > 0 {
		if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
			return nil, err
		}
	}
	return New(cfg.App.IdSalt)
}

// OrderID 日期前缀 + 雪花 ID，全局唯一且按时间有序
func (g *Hashids) OrderID(now time.Time) string {
	return now.UTC().Format("20060102") + strconv.FormatInt(snowflake.GenID(), 10)
}

// InviteCode 由用户 ID 可逆编码得到，天然唯一
func (g *Hashids) InviteCode(userID uint64) (string, error) {
	return g.hash.EncodeInt64([]int64{int64(userID)})
}
