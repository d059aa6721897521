package service

import (
	"context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"
)

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	List(ctx context.Context, req *types.ListProductsReq) (*types.ListProductsResp, error)
	Detail(ctx context.Context, id uint64) (*models.Product, error)
}

type ProductService struct {
	ProductDAO *dao.Product
}

func (p *ProductService) List(ctx context.Context, req *types.ListProductsReq) (*types.ListProductsResp, error) {
	req.Normalize()
	products, total, err := p.ProductDAO.List(ctx, dao.ProductFilter{
		Category: req.Category,
		Keyword:  req.Keyword,
	}, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	return &types.ListProductsResp{
		Products:   products,
		Pagination: types.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (p *ProductService) Detail(ctx context.Context, id uint64) (*models.Product, error) {
	product, err := p.ProductDAO.FindById(ctx, id)
	if dao.IsNotFound(err) {
		return nil, ErrProductNotFound
	}
	return product, err
}
