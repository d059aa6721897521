package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao/cache"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/idgen"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/log"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentWallet 使用钱包余额支付，其他支付方式只做记录
const PaymentWallet = "wallet"

// maxPaymentMethodLen 与 orders.payment_method 列宽一致
const maxPaymentMethodLen = 20

var rewardRate = decimal.RequireFromString(models.RewardRate)

type OrderService struct {
	Tx            *dao.Transactor
	Locker        cache.Locker
	Clock         clock.Clock
	IdGen         idgen.Generator
	OrderDAO      *dao.Order
	ProductDAO    *dao.Product
	CartDAO       *dao.Cart
	AddressDAO    *dao.Address
	UserCouponDAO *dao.UserCoupon
	InviteRepo    *dao.Invite
	RewardDAO     *dao.Reward
	PointService  IPointService
	WalletService IWalletService
	Events        IEventPublisher
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	Create(ctx context.Context, uid uint64, req *types.CreateOrderReq) (*models.Order, error)
	Pay(ctx context.Context, uid uint64, orderID, method string) (*models.Order, error)
	Cancel(ctx context.Context, uid uint64, orderID string) (*models.Order, error)
	Confirm(ctx context.Context, uid uint64, orderID string) (*models.Order, error)
	// Ship 发货，由运营侧调用
	Ship(ctx context.Context, orderID string) (*models.Order, error)
	List(ctx context.Context, uid uint64, req *types.ListOrdersReq) (*types.ListOrdersResp, error)
	Detail(ctx context.Context, uid uint64, orderID string) (*models.Order, error)
}

func (o *OrderService) Create(ctx context.Context, uid uint64, req *types.CreateOrderReq) (*models.Order, error) {
	// 运费可以为 0，但不能为负或超过两位小数
	if req.ShippingFee.IsNegative() || !req.ShippingFee.Equal(req.ShippingFee.Round(2)) {
		return nil, ErrInvalidShipping
	}

	addr, err := o.AddressDAO.FindOwned(ctx, req.AddressID, uid)
	if dao.IsNotFound(err) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, err
	}

	cartIDs := uniqueIds(req.CartItemIDs)
	lines, err := o.CartDAO.FindOwnedByIds(ctx, uid, cartIDs)
	if err != nil {
		return nil, err
	}
	if len(cartIDs) == 0 || len(lines) != len(cartIDs) {
		return nil, ErrCartItemNotFound
	}

	productIDs := make([]uint64, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}
	products, err := o.ProductDAO.FindByIds(ctx, uniqueIds(productIDs))
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	// 同一商品可能有多个规格行，库存按合计数量校验
	wanted := make(map[uint64]int, len(products))
	for _, line := range lines {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		if p.Status != models.ProductOnSale {
			return nil, productOffShelf(p.Name)
		}
		wanted[p.ID] += line.Quantity
		if wanted[p.ID] > p.Stock {
			return nil, insufficientStock(p.Name)
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)
		items = append(items, models.OrderItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.CoverImage,
			Spec:         line.Spec,
			Price:        p.Price,
			Quantity:     line.Quantity,
			Subtotal:     subtotal,
		})
	}

	now := o.Clock.Now()
	discount := decimal.Zero
	var couponID *uint64
	// 不满足条件的优惠券直接忽略，不报错
	if req.CouponID != nil {
		coupon, err := o.UserCouponDAO.FindOwned(ctx, *req.CouponID, uid)
		switch {
		case err == nil:
			if coupon.Usable(total, now) {
				discount = decimal.Min(coupon.Amount, total)
				couponID = &coupon.ID
			}
		case !dao.IsNotFound(err):
			return nil, err
		}
	}

	snapshot, err := json.Marshal(types.AddressSnapshot{
		Name:     addr.Name,
		Phone:    addr.Phone,
		Province: addr.Province,
		City:     addr.City,
		District: addr.District,
		Detail:   addr.Detail,
	})
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:              o.IdGen.OrderID(now),
		UserID:          uid,
		Status:          models.OrderPendingPayment,
		TotalAmount:     total,
		DiscountAmount:  discount,
		ShippingFee:     req.ShippingFee,
		FinalAmount:     total.Sub(discount).Add(req.ShippingFee),
		AddressSnapshot: snapshot,
		CouponID:        couponID,
		Remark:          req.Remark,
		PaymentDeadline: now.Add(models.PaymentTimeout),
		CreatedAt:       now,
		UpdatedAt:       now,
		Items:           items,
	}

	err = o.Tx.Transaction(ctx, func(ctx context.Context) error {
		if err := o.OrderDAO.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		_, err := o.CartDAO.DeleteOwned(ctx, uid, cartIDs)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Pay 状态迁移、扣库存、核销优惠券、扣款、积分、邀请返利在同一事务内完成
func (o *OrderService) Pay(ctx context.Context, uid uint64, orderID, method string) (*models.Order, error) {
	if method == "" || len(method) > maxPaymentMethodLen {
		return nil, ErrInvalidPayment
	}

	unlock, err := lockUser(ctx, o.Locker, uid)
	if err != nil {
		return nil, err
	}
	defer unlock()

	order, err := o.Detail(ctx, uid, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderPendingPayment {
		return nil, ErrOrderStatus
	}

	now := o.Clock.Now()
	if now.After(order.PaymentDeadline) {
		err := o.OrderDAO.TransitStatus(ctx, order.ID, models.OrderPendingPayment, models.OrderCancelled, map[string]any{
			"cancelled_at": now,
		})
		if err != nil && !errors.Is(err, dao.ErrConditionNotMet) {
			return nil, err
		}
		return nil, ErrOrderExpired
	}

	err = o.Tx.Transaction(ctx, func(ctx context.Context) error {
		err := o.OrderDAO.TransitStatus(ctx, order.ID, models.OrderPendingPayment, models.OrderPendingShipment, map[string]any{
			"paid_at":        now,
			"payment_method": method,
		})
		if errors.Is(err, dao.ErrConditionNotMet) {
			return ErrOrderStatus
		}
		if err != nil {
			return err
		}

		// 任一商品库存不足则整单回滚
		for _, item := range order.Items {
			err := o.ProductDAO.DecrStock(ctx, item.ProductID, item.Quantity)
			if errors.Is(err, dao.ErrConditionNotMet) {
				return insufficientStock(item.ProductName)
			}
			if err != nil {
				return err
			}
		}

		if order.CouponID != nil {
			err := o.UserCouponDAO.MarkUsed(ctx, *order.CouponID, order.ID, now)
			if errors.Is(err, dao.ErrConditionNotMet) {
				return ErrCouponUnavailable
			}
			if err != nil {
				return err
			}
		}

		if method == PaymentWallet && order.FinalAmount.IsPositive() {
			if _, err := o.WalletService.Apply(ctx, uid, order.FinalAmount.Neg(), models.WalletTypePayment,
				models.WalletStatusCompleted, "订单支付", order.ID); err != nil {
				return err
			}
		}

		// 实付金额向下取整计积分
		if points := order.FinalAmount.Floor().IntPart(); points > 0 {
			if _, err := o.PointService.Award(ctx, uid, points, models.PointsTypeOrder, "购物奖励", order.ID); err != nil {
				return err
			}
		}

		return o.rewardInviter(ctx, order, now)
	})
	if err != nil {
		return nil, err
	}

	paid, err := o.Detail(ctx, uid, orderID)
	if err != nil {
		return nil, err
	}
	o.Events.OrderPaid(ctx, paid)
	return paid, nil
}

// rewardInviter 被邀请人的首笔支付订单给邀请人返利
func (o *OrderService) rewardInviter(ctx context.Context, order *models.Order, now time.Time) error {
	invite, err := o.InviteRepo.FindByInvitee(ctx, order.UserID)
	if dao.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if invite.FirstOrderID != nil {
		return nil
	}

	amount := order.FinalAmount.Mul(rewardRate).Round(2)
	err = o.InviteRepo.ClaimFirstOrder(ctx, invite.ID, order.ID, now, amount)
	if errors.Is(err, dao.ErrConditionNotMet) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := o.RewardDAO.Create(ctx, &models.RewardRecord{
		UserID:      invite.InviterID,
		InviteeID:   order.UserID,
		OrderID:     order.ID,
		OrderAmount: order.FinalAmount,
		Amount:      amount,
		Status:      models.RewardPending,
		AvailableAt: now.Add(models.RewardHoldPeriod),
		CreatedAt:   now,
	}); err != nil {
		return err
	}
	log.L.Info("invite reward created",
		zap.Uint64("inviter_id", invite.InviterID),
		zap.String("order_id", order.ID),
		zap.String("amount", amount.StringFixed(2)),
	)
	return nil
}

func (o *OrderService) Cancel(ctx context.Context, uid uint64, orderID string) (*models.Order, error) {
	return o.transit(ctx, uid, orderID, models.OrderPendingPayment, models.OrderCancelled, "cancelled_at")
}

func (o *OrderService) Confirm(ctx context.Context, uid uint64, orderID string) (*models.Order, error) {
	return o.transit(ctx, uid, orderID, models.OrderPendingReceipt, models.OrderCompleted, "received_at")
}

func (o *OrderService) transit(ctx context.Context, uid uint64, orderID string, from, to models.OrderStatus, timeField string) (*models.Order, error) {
	order, err := o.Detail(ctx, uid, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != from {
		return nil, ErrOrderStatus
	}
	err = o.OrderDAO.TransitStatus(ctx, order.ID, from, to, map[string]any{timeField: o.Clock.Now()})
	if errors.Is(err, dao.ErrConditionNotMet) {
		return nil, ErrOrderStatus
	}
	if err != nil {
		return nil, err
	}
	return o.Detail(ctx, uid, orderID)
}

func (o *OrderService) Ship(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := o.OrderDAO.FindById(ctx, orderID)
	if dao.IsNotFound(err) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return o.transit(ctx, order.UserID, orderID, models.OrderPendingShipment, models.OrderPendingReceipt, "shipped_at")
}

func (o *OrderService) List(ctx context.Context, uid uint64, req *types.ListOrdersReq) (*types.ListOrdersResp, error) {
	req.Normalize()
	status := models.OrderStatus(req.Status)
	if status != "" && !status.Valid() {
		return nil, ErrInvalidOrderType
	}
	orders, total, err := o.OrderDAO.ListByUser(ctx, uid, status, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	return &types.ListOrdersResp{
		Orders:     orders,
		Pagination: types.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (o *OrderService) Detail(ctx context.Context, uid uint64, orderID string) (*models.Order, error) {
	order, err := o.OrderDAO.FindOwned(ctx, orderID, uid)
	if dao.IsNotFound(err) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

// uniqueIds 去重并保持原顺序
func uniqueIds(ids []uint64) []uint64 {
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
