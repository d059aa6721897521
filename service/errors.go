package service

import (
	"net/http"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"
)

var (
	ErrPhoneRequired     = response.BadRequest("手机号不能为空")
	ErrPasswordTooShort  = response.BadRequest("密码至少 6 位")
	ErrPasswordTooLong   = response.BadRequest("密码不能超过 72 字节")
	ErrPhoneExists       = response.BadRequest("手机号已注册")
	ErrInviteCodeInvalid = response.BadRequest("邀请码无效")
	ErrLoginFailed       = response.BadRequest("手机号或密码错误")
	ErrOldPassword       = response.BadRequest("原密码错误")
	ErrEmptyProfile      = response.BadRequest("没有需要修改的字段")
	ErrUserNotFound      = response.NotFound("用户不存在")

	ErrProductNotFound  = response.NotFound("商品不存在")
	ErrCartItemNotFound = response.NotFound("购物车商品不存在")
	ErrAddressNotFound  = response.NotFound("收货地址不存在")

	ErrOrderNotFound    = response.NotFound("订单不存在")
	ErrOrderStatus      = response.BadRequest("订单状态不允许该操作")
	ErrOrderExpired     = response.BadRequest("订单已超时，已自动取消")
	ErrInvalidShipping  = response.BadRequest("运费金额不合法")
	ErrInvalidPayment   = response.BadRequest("支付方式不合法")
	ErrInvalidOrderType = response.BadRequest("订单状态参数错误")

	ErrCouponNotFound    = response.NotFound("优惠券不存在")
	ErrCouponInactive    = response.BadRequest("优惠券活动已结束")
	ErrCouponClaimed     = response.BadRequest("已领取过该优惠券")
	ErrCouponSoldOut     = response.BadRequest("优惠券已领完")
	ErrCouponUnavailable = response.BadRequest("优惠券不可用")
	ErrCouponStatus      = response.BadRequest("优惠券状态参数错误")

	ErrAlreadyCheckedIn   = response.BadRequest("今天已经签到过了")
	ErrInsufficientPoints = response.BadRequest("积分不足")
	ErrDuplicatePoints    = response.BadRequest("该业务已处理，请勿重复操作")

	ErrNothingToWithdraw   = response.BadRequest("暂无可提现的奖励")
	ErrInsufficientBalance = response.BadRequest("余额不足")
	ErrInvalidAmount       = response.BadRequest("金额不合法")

	ErrTooFrequent = response.NewError(http.StatusTooManyRequests, "操作太频繁，请稍后再试")
)

func insufficientStock(name string) *response.BizError {
	return response.BadRequest("库存不足: " + name)
}

func productOffShelf(name string) *response.BizError {
	return response.BadRequest("商品已下架: " + name)
}
