package service

import (
	"context"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"
)

var _ IAddressService = (*AddressService)(nil)

type IAddressService interface {
	List(ctx context.Context, uid uint64) ([]*models.Address, error)
	Create(ctx context.Context, uid uint64, req *types.CreateAddressReq) (*models.Address, error)
	Delete(ctx context.Context, uid, id uint64) error
}

type AddressService struct {
	Tx         *dao.Transactor
	AddressDAO *dao.Address
}

func (a *AddressService) List(ctx context.Context, uid uint64) ([]*models.Address, error) {
	return a.AddressDAO.ListByUser(ctx, uid)
}

// Create 第一个地址自动成为默认地址
func (a *AddressService) Create(ctx context.Context, uid uint64, req *types.CreateAddressReq) (*models.Address, error) {
	addr := &models.Address{
		UserID:    uid,
		Name:      req.Name,
		Phone:     req.Phone,
		Province:  req.Province,
		City:      req.City,
		District:  req.District,
		Detail:    req.Detail,
		IsDefault: req.IsDefault,
	}
	err := a.Tx.Transaction(ctx, func(ctx context.Context) error {
		count, err := a.AddressDAO.Count(ctx, "user_id = ?", uid)
		if err != nil {
			return err
		}
		if count == 0 {
			addr.IsDefault = true
		}
		if addr.IsDefault {
			if err := a.AddressDAO.ClearDefault(ctx, uid); err != nil {
				return err
			}
		}
		return a.AddressDAO.Create(ctx, addr)
	})
	if err != nil {
		return nil, err
	}
	return addr, nil
}

func (a *AddressService) Delete(ctx context.Context, uid, id uint64) error {
	rows, err := a.AddressDAO.DeleteOwned(ctx, id, uid)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAddressNotFound
	}
	return nil
}
