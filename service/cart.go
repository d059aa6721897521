package service

import (
	"context"
	"strings"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"gorm.io/gorm"
)

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	List(ctx context.Context, uid uint64) ([]*models.CartItem, error)
	Add(ctx context.Context, uid uint64, req *types.AddCartReq) (*models.CartItem, error)
	Update(ctx context.Context, uid, id uint64, quantity int) (*models.CartItem, error)
	Remove(ctx context.Context, uid, id uint64) error
}

type CartService struct {
	CartDAO    *dao.Cart
	ProductDAO *dao.Product
}

func (c *CartService) List(ctx context.Context, uid uint64) ([]*models.CartItem, error) {
	return c.CartDAO.ListByUser(ctx, uid)
}

// Add 同一商品同一规格合并为一行
func (c *CartService) Add(ctx context.Context, uid uint64, req *types.AddCartReq) (*models.CartItem, error) {
	product, err := c.ProductDAO.FindById(ctx, req.ProductID)
	if dao.IsNotFound(err) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if product.Status != models.ProductOnSale {
		return nil, productOffShelf(product.Name)
	}

	spec := strings.TrimSpace(req.Spec)
	line, err := c.CartDAO.FindLine(ctx, uid, product.ID, spec)
	switch {
	case err == nil:
		if line.Quantity+req.Quantity > product.Stock {
			return nil, insufficientStock(product.Name)
		}
		_, err = c.CartDAO.UpdateWhere(ctx, map[string]any{
			"quantity": gorm.Expr("quantity + ?", req.Quantity),
		}, "id = ?", line.ID)
		if err != nil {
			return nil, err
		}
		line.Quantity += req.Quantity
	case dao.IsNotFound(err):
		if req.Quantity > product.Stock {
			return nil, insufficientStock(product.Name)
		}
		line = &models.CartItem{
			UserID:    uid,
			ProductID: product.ID,
			Spec:      spec,
			Quantity:  req.Quantity,
		}
		if err := c.CartDAO.Create(ctx, line); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	line.Product = product
	return line, nil
}

func (c *CartService) Update(ctx context.Context, uid, id uint64, quantity int) (*models.CartItem, error) {
	line, err := c.CartDAO.FindByWhere(ctx, "id = ? AND user_id = ?", id, uid)
	if dao.IsNotFound(err) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	product, err := c.ProductDAO.FindById(ctx, line.ProductID)
	if dao.IsNotFound(err) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if product.Status != models.ProductOnSale {
		return nil, productOffShelf(product.Name)
	}
	if quantity > product.Stock {
		return nil, insufficientStock(product.Name)
	}

	if _, err := c.CartDAO.UpdateWhere(ctx, map[string]any{"quantity": quantity}, "id = ?", id); err != nil {
		return nil, err
	}
	line.Quantity = quantity
	line.Product = product
	return line, nil
}

func (c *CartService) Remove(ctx context.Context, uid, id uint64) error {
	rows, err := c.CartDAO.DeleteOwned(ctx, uid, []uint64{id})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
