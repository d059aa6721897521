package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/handler"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/internal/testdb"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/idgen"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/rocketmq"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/server"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/service"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type nopLocker struct{}

func (nopLocker) Lock(context.Context, string, time.Duration) (func(), error) {
	return func() {}, nil
}

type api struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testdb.New(t)
	cfg := &config.Config{Jwt: &config.Jwt{Secret: "handler-secret"}}

	ids, err := idgen.New("handler-test")
	require.NoError(t, err)
	producer, cleanup, err := rocketmq.NewProducer(nil)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	clk := clock.New()
	tx := dao.NewTransactor(db)
	var locker nopLocker
	usersDAO := dao.NewUsers(db)
	productDAO := dao.NewProduct(db)
	cartDAO := dao.NewCart(db)
	addressDAO := dao.NewAddress(db)
	userCouponDAO := dao.NewUserCoupon(db)
	inviteDAO := dao.NewInvite(db)
	rewardDAO := dao.NewReward(db)

	points := &service.PointService{Tx: tx, Locker: locker, Clock: clk, UsersRepo: usersDAO,
		PointDAO: dao.NewPoint(db), CheckinDAO: dao.NewCheckin(db)}
	wallet := &service.WalletService{Tx: tx, Locker: locker, Clock: clk, UsersRepo: usersDAO, WalletDAO: dao.NewWallet(db)}
	users := &service.UserService{Config: cfg, Tx: tx, UsersRepo: usersDAO, InviteRepo: inviteDAO,
		UserCouponDAO: userCouponDAO, IdGen: ids, Clock: clk}

	handlers := &server.Handlers{
		Auth:    &handler.Auth{UserService: users},
		User:    &handler.User{Config: cfg, UserService: users},
		Product: &handler.Product{ProductService: &service.ProductService{ProductDAO: productDAO}},
		Cart:    &handler.Cart{Config: cfg, CartService: &service.CartService{CartDAO: cartDAO, ProductDAO: productDAO}},
		Address: &handler.Address{Config: cfg, AddressService: &service.AddressService{Tx: tx, AddressDAO: addressDAO}},
		Coupon: &handler.Coupon{Config: cfg, CouponService: &service.CouponService{Tx: tx, Locker: locker, Clock: clk,
			CouponDAO: dao.NewCoupon(db), UserCouponDAO: userCouponDAO}},
		Order: &handler.Order{Config: cfg, OrderService: &service.OrderService{
			Tx: tx, Locker: locker, Clock: clk, IdGen: ids,
			OrderDAO: dao.NewOrder(db), ProductDAO: productDAO, CartDAO: cartDAO, AddressDAO: addressDAO,
			UserCouponDAO: userCouponDAO, InviteRepo: inviteDAO, RewardDAO: rewardDAO,
			PointService: points, WalletService: wallet,
			Events: &service.OrderEvents{Producer: producer},
		}},
		Points: &handler.Point{Config: cfg, PointService: points},
		Invite: &handler.Invite{Config: cfg, InviteService: &service.InviteService{Tx: tx, Locker: locker, Clock: clk,
			UsersRepo: usersDAO, InviteRepo: inviteDAO, RewardDAO: rewardDAO, WalletService: wallet}},
		Wallet: &handler.Wallet{Config: cfg, WalletService: wallet},
	}

	engine := gin.New()
	handlers.RegisterRouter(engine.Group("/api"))
	return &api{t: t, db: db, engine: engine}
}

func (a *api) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *api) register(phone, inviteCode string) types.AuthResp {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"phone": phone, "password": "secret1", "inviteCode": inviteCode,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[types.AuthResp](a.t, w)
}

func TestCheckoutFlow(t *testing.T) {
	a := newAPI(t)
	inviter := a.register("13100000001", "")
	require.NotNil(t, inviter.User.InviteCode)
	assert.Len(t, *inviter.User.InviteCode, 8)
	buyer := a.register("13100000002", *inviter.User.InviteCode)

	bag := &models.Product{Name: "羊皮手袋", Category: "bags", Price: decimal.NewFromInt(100),
		OriginalPrice: decimal.NewFromInt(120), Stock: 10, Status: models.ProductOnSale}
	require.NoError(t, a.db.Create(bag).Error)

	w := a.do(http.MethodGet, "/api/products?category=bags", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decode[types.ListProductsResp](t, w)
	require.Len(t, products.Products, 1)
	assert.Equal(t, int64(1), products.Pagination.Total)

	w = a.do(http.MethodPost, "/api/addresses", buyer.Token, gin.H{
		"name": "张三", "phone": "13800000000", "province": "浙江省", "city": "杭州市", "detail": "文三路 1 号",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	addr := decode[models.Address](t, w)
	assert.True(t, addr.IsDefault)

	w = a.do(http.MethodPost, "/api/cart", buyer.Token, gin.H{"productId": bag.ID, "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	line := decode[models.CartItem](t, w)

	w = a.do(http.MethodGet, "/api/coupons/available?amount=300", buyer.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	coupons := decode[[]models.UserCoupon](t, w)
	require.Len(t, coupons, 2)

	w = a.do(http.MethodPost, "/api/orders", buyer.Token, gin.H{
		"addressId": addr.ID, "cartItemIds": []uint64{line.ID}, "couponId": coupons[0].ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode[models.Order](t, w)
	assert.Equal(t, models.OrderPendingPayment, order.Status)
	assert.True(t, decimal.NewFromInt(290).Equal(order.FinalAmount))

	w = a.do(http.MethodPost, "/api/orders/"+order.ID+"/pay", buyer.Token, gin.H{"paymentMethod": strings.Repeat("x", 21)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/orders/"+order.ID+"/pay", buyer.Token, gin.H{"paymentMethod": "alipay"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	paid := decode[models.Order](t, w)
	assert.Equal(t, models.OrderPendingShipment, paid.Status)
	require.Len(t, paid.Items, 1)

	w = a.do(http.MethodGet, "/api/points", buyer.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(290), decode[types.PointsResp](t, w).Balance)

	w = a.do(http.MethodGet, "/api/invite/stats", inviter.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[types.InviteStatsResp](t, w)
	assert.Equal(t, int64(1), stats.TotalInvites)
	assert.True(t, decimal.RequireFromString("14.5").Equal(stats.PendingReward))

	w = a.do(http.MethodPost, "/api/invite/withdraw", inviter.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, service.ErrNothingToWithdraw.Msg, decode[response.ErrorBody](t, w).Message)

	w = a.do(http.MethodPost, "/api/orders/"+order.ID+"/cancel", buyer.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/orders/"+order.ID, inviter.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/orders?status=pending_shipment", buyer.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[types.ListOrdersResp](t, w)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, order.ID, list.Orders[0].ID)
}

func TestAuthRequired(t *testing.T) {
	a := newAPI(t)
	for _, path := range []string{"/api/user/profile", "/api/orders", "/api/wallet", "/api/points", "/api/coupons"} {
		w := a.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		w = a.do(http.MethodGet, path, "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	// 商品接口无需登录
	w := a.do(http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterAndLoginErrors(t *testing.T) {
	a := newAPI(t)
	a.register("13100000001", "")

	w := a.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": "13100000001", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, service.ErrPhoneExists.Msg, decode[response.ErrorBody](t, w).Message)

	w = a.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": "13100000002", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": "13100000003", "password": "secret1", "inviteCode": "ZZZZZZZZ"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/auth/register", "", gin.H{"phone": "13100000004", "password": strings.Repeat("a", 80)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"phone": "13100000001", "password": "wrong1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"phone": "13100000001", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[types.AuthResp](t, w)

	w = a.do(http.MethodPut, "/api/user/profile", login.Token, gin.H{"name": "Carol"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Carol", decode[models.Users](t, w).Name)

	w = a.do(http.MethodPut, "/api/user/profile", login.Token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWalletAndCheckin(t *testing.T) {
	a := newAPI(t)
	u := a.register("13100000001", "")

	w := a.do(http.MethodPost, "/api/wallet/recharge", u.Token, gin.H{"amount": "88.80"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/api/wallet/recharge", u.Token, gin.H{"amount": "50001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/wallet/withdraw", u.Token, gin.H{"amount": "100"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/wallet", u.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[types.WalletResp](t, w)
	assert.True(t, decimal.RequireFromString("88.8").Equal(overview.Balance), overview.Balance.String())
	assert.Len(t, overview.Transactions, 1)

	w = a.do(http.MethodPost, "/api/points/checkin", u.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(10), decode[types.CheckinResp](t, w).Points)

	w = a.do(http.MethodPost, "/api/points/checkin", u.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/points/checkin/status", u.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[types.CheckinStatusResp](t, w).CheckedIn)

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/cart/%s", "abc"), u.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
