package types

import "github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

type ListProductsReq struct {
	PageReq
	Category string `form:"category"`
	Keyword  string `form:"keyword"`
}

type ListProductsResp struct {
	Products   []*models.Product `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

type AddCartReq struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Spec      string `json:"spec"`
}

type UpdateCartReq struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type CreateAddressReq struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Province  string `json:"province" binding:"required"`
	City      string `json:"city" binding:"required"`
	District  string `json:"district"`
	Detail    string `json:"detail" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}
