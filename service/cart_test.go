package service

import (
	"net/http"
	"testing"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMerges(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "13300000001", "")
	p := env.product(t, "丝巾", 80, 5)

	line, err := env.carts.Add(env.ctx, u.ID, &types.AddCartReq{ProductID: p.ID, Quantity: 2, Spec: "红色"})
	require.NoError(t, err)
	merged, err := env.carts.Add(env.ctx, u.ID, &types.AddCartReq{ProductID: p.ID, Quantity: 2, Spec: " 红色 "})
	require.NoError(t, err)
	assert.Equal(t, line.ID, merged.ID)
	assert.Equal(t, 4, merged.Quantity)

	_, err = env.carts.Add(env.ctx, u.ID, &types.AddCartReq{ProductID: p.ID, Quantity: 2, Spec: "红色"})
	be := assertBizError(t, err, http.StatusBadRequest)
	assert.Contains(t, be.Msg, "丝巾")

	_, err = env.carts.Add(env.ctx, u.ID, &types.AddCartReq{ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartUpdate(t *testing.T) {
	env := newTestEnv(t)
	u := env.register(t, "13300000001", "")
	other := env.register(t, "13300000002", "")
	p := env.product(t, "丝巾", 80, 5)
	line := env.cartLine(t, u.ID, p.ID, 1)

	updated, err := env.carts.Update(env.ctx, u.ID, line.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	require.NotNil(t, updated.Product)
	assert.Equal(t, p.ID, updated.Product.ID)

	_, err = env.carts.Update(env.ctx, u.ID, line.ID, 6)
	be := assertBizError(t, err, http.StatusBadRequest)
	assert.Contains(t, be.Msg, "库存不足")

	_, err = env.carts.Update(env.ctx, other.ID, line.ID, 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	require.NoError(t, env.db.Model(p).Update("status", models.ProductOffShelf).Error)
	_, err = env.carts.Update(env.ctx, u.ID, line.ID, 1)
	be = assertBizError(t, err, http.StatusBadRequest)
	assert.Contains(t, be.Msg, "下架")

	var stored models.CartItem
	require.NoError(t, env.db.First(&stored, line.ID).Error)
	assert.Equal(t, 5, stored.Quantity)

	require.NoError(t, env.carts.Remove(env.ctx, u.ID, line.ID))
	assert.ErrorIs(t, env.carts.Remove(env.ctx, u.ID, line.ID), ErrCartItemNotFound)
}
