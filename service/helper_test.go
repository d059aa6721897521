package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/internal/testdb"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type nopLocker struct{}

func (nopLocker) Lock(context.Context, string, time.Duration) (func(), error) {
	return func() {}, nil
}

type recordingEvents struct {
	paid []string
}

func (r *recordingEvents) OrderPaid(_ context.Context, order *models.Order) {
	r.paid = append(r.paid, order.ID)
}

// seqIDs 可预测的订单号和邀请码
type seqIDs struct {
	n int
}

func (s *seqIDs) OrderID(now time.Time) string {
	s.n++
	return fmt.Sprintf("%s%06d", now.Format("20060102"), s.n)
}

func (s *seqIDs) InviteCode(userID uint64) (string, error) {
	return fmt.Sprintf("INV%05d", userID), nil
}

type testEnv struct {
	ctx    context.Context
	db     *gorm.DB
	clock  *clock.Fixed
	events *recordingEvents

	users     *UserService
	products  *ProductService
	carts     *CartService
	addresses *AddressService
	coupons   *CouponService
	orders    *OrderService
	points    *PointService
	invites   *InviteService
	wallet    *WalletService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testdb.New(t)
	clk := &clock.Fixed{T: testNow}
	events := &recordingEvents{}
	tx := dao.NewTransactor(db)
	ids := &seqIDs{}
	var locker nopLocker

	usersDAO := dao.NewUsers(db)
	productDAO := dao.NewProduct(db)
	cartDAO := dao.NewCart(db)
	addressDAO := dao.NewAddress(db)
	userCouponDAO := dao.NewUserCoupon(db)
	inviteDAO := dao.NewInvite(db)
	rewardDAO := dao.NewReward(db)

	points := &PointService{
		Tx:         tx,
		Locker:     locker,
		Clock:      clk,
		UsersRepo:  usersDAO,
		PointDAO:   dao.NewPoint(db),
		CheckinDAO: dao.NewCheckin(db),
	}
	wallet := &WalletService{
		Tx:        tx,
		Locker:    locker,
		Clock:     clk,
		UsersRepo: usersDAO,
		WalletDAO: dao.NewWallet(db),
	}

	return &testEnv{
		ctx:    context.Background(),
		db:     db,
		clock:  clk,
		events: events,
		users: &UserService{
			Config:        &config.Config{Jwt: &config.Jwt{Secret: testSecret}},
			Tx:            tx,
			UsersRepo:     usersDAO,
			InviteRepo:    inviteDAO,
			UserCouponDAO: userCouponDAO,
			IdGen:         ids,
			Clock:         clk,
		},
		products:  &ProductService{ProductDAO: productDAO},
		carts:     &CartService{CartDAO: cartDAO, ProductDAO: productDAO},
		addresses: &AddressService{Tx: tx, AddressDAO: addressDAO},
		coupons: &CouponService{
			Tx:            tx,
			Locker:        locker,
			Clock:         clk,
			CouponDAO:     dao.NewCoupon(db),
			UserCouponDAO: userCouponDAO,
		},
		orders: &OrderService{
			Tx:            tx,
			Locker:        locker,
			Clock:         clk,
			IdGen:         ids,
			OrderDAO:      dao.NewOrder(db),
			ProductDAO:    productDAO,
			CartDAO:       cartDAO,
			AddressDAO:    addressDAO,
			UserCouponDAO: userCouponDAO,
			InviteRepo:    inviteDAO,
			RewardDAO:     rewardDAO,
			PointService:  points,
			WalletService: wallet,
			Events:        events,
		},
		points: points,
		invites: &InviteService{
			Tx:            tx,
			Locker:        locker,
			Clock:         clk,
			UsersRepo:     usersDAO,
			InviteRepo:    inviteDAO,
			RewardDAO:     rewardDAO,
			WalletService: wallet,
		},
		wallet: wallet,
	}
}

func (e *testEnv) register(t *testing.T, phone, inviteCode string) *models.Users {
	t.Helper()
	resp, err := e.users.Register(e.ctx, &types.RegisterReq{
		Phone:      phone,
		Password:   "secret1",
		InviteCode: inviteCode,
	})
	require.NoError(t, err)
	return resp.User
}

func (e *testEnv) product(t *testing.T, name string, price int64, stock int) *models.Product {
	t.Helper()
	p := &models.Product{
		Name:          name,
		Category:      "bags",
		Price:         decimal.NewFromInt(price),
		OriginalPrice: decimal.NewFromInt(price),
		Stock:         stock,
		Status:        models.ProductOnSale,
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) address(t *testing.T, uid uint64) *models.Address {
	t.Helper()
	addr, err := e.addresses.Create(e.ctx, uid, &types.CreateAddressReq{
		Name:     "张三",
		Phone:    "13800000000",
		Province: "浙江省",
		City:     "杭州市",
		District: "西湖区",
		Detail:   "文三路 1 号",
	})
	require.NoError(t, err)
	return addr
}

// cartLine 直接写购物车，绕过加购时的库存校验
func (e *testEnv) cartLine(t *testing.T, uid, productID uint64, qty int) *models.CartItem {
	t.Helper()
	line := &models.CartItem{UserID: uid, ProductID: productID, Quantity: qty}
	require.NoError(t, e.db.Create(line).Error)
	return line
}

func (e *testEnv) placeOrder(t *testing.T, uid uint64, p *models.Product, qty int, couponID *uint64) *models.Order {
	t.Helper()
	addr := e.address(t, uid)
	line := e.cartLine(t, uid, p.ID, qty)
	order, err := e.orders.Create(e.ctx, uid, &types.CreateOrderReq{
		AddressID:   addr.ID,
		CartItemIDs: []uint64{line.ID},
		CouponID:    couponID,
	})
	require.NoError(t, err)
	return order
}

func (e *testEnv) reloadUser(t *testing.T, uid uint64) *models.Users {
	t.Helper()
	var u models.Users
	require.NoError(t, e.db.First(&u, uid).Error)
	return &u
}

func (e *testEnv) reloadProduct(t *testing.T, id uint64) *models.Product {
	t.Helper()
	var p models.Product
	require.NoError(t, e.db.First(&p, id).Error)
	return &p
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func assertBizError(t *testing.T, err error, code int) *response.BizError {
	t.Helper()
	var be *response.BizError
	require.True(t, errors.As(err, &be), "expected BizError, got %v", err)
	assert.Equal(t, code, be.Code)
	return be
}
