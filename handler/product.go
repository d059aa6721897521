package handler

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/context"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/response"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/service"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	ProductService service.IProductService
}

func (p *Product) RegisterRouter(r gin.IRouter) {
	g := r.Group("/products")
	g.GET("", context.Wrap(p.List))
	g.GET("/:id", context.Wrap(p.Detail))
}

func (p *Product) List(c *gin.Context) error {
	var req types.ListProductsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return errBadParams
	}
	resp, err := p.ProductService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Product) Detail(c *gin.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := p.ProductService.Detail(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}
