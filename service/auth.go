package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/dao"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/clock"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/encrypt"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/idgen"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/jwt"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/types"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const minPasswordLen = 6

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterReq) (*types.AuthResp, error)
	Login(ctx context.Context, req *types.LoginReq) (*types.AuthResp, error)
	Profile(ctx context.Context, uid uint64) (*models.Users, error)
	UpdateProfile(ctx context.Context, uid uint64, update *types.ProfileUpdate) (*models.Users, error)
	UpdatePassword(ctx context.Context, uid uint64, req *types.UpdatePasswordReq) error
	UploadAvatar(ctx context.Context, uid uint64, header *multipart.FileHeader) (*types.UploadAvatarResp, error)
}

type UserService struct {
	Config        *config.Config
	Tx            *dao.Transactor
	UsersRepo     *dao.Users
	InviteRepo    *dao.Invite
	UserCouponDAO *dao.UserCoupon
	IdGen         idgen.Generator
	Clock         clock.Clock
	OssService    IOssService
}

func (s *UserService) Register(ctx context.Context, req *types.RegisterReq) (*types.AuthResp, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	if err := checkPassword(req.Password); err != nil {
		return nil, err
	}
	exists, err := s.UsersRepo.IsPhoneExist(ctx, phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPhoneExists
	}

	var inviter *models.Users
	if code := strings.ToUpper(strings.TrimSpace(req.InviteCode)); code != "" {
		inviter, err = s.UsersRepo.FindByInviteCode(ctx, code)
		if dao.IsNotFound(err) {
			return nil, ErrInviteCodeInvalid
		}
		if err != nil {
			return nil, err
		}
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultName(phone)
	}
	now := s.Clock.Now()
	user := &models.Users{
		Phone:    phone,
		Password: hash,
		Name:     name,
		Balance:  decimal.Zero,
	}
	if inviter != nil {
		user.InviterID = &inviter.ID
	}

	err = s.Tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.UsersRepo.Create(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrPhoneExists
			}
			return err
		}

		code, err := s.IdGen.InviteCode(user.ID)
		if err != nil {
			return fmt.Errorf("generate invite code: %w", err)
		}
		if err := s.UsersRepo.UpdateById(ctx, user.ID, map[string]any{"invite_code": code}); err != nil {
			return err
		}
		user.InviteCode = &code

		if inviter == nil {
			return nil
		}
		if err := s.InviteRepo.Create(ctx, &models.InviteRecord{
			InviterID:   inviter.ID,
			InviteeID:   user.ID,
			TotalReward: decimal.Zero,
		}); err != nil {
			return err
		}
		for _, c := range newcomerCoupons(user.ID, now) {
			if err := s.UserCouponDAO.Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.authResp(user)
}

func (s *UserService) Login(ctx context.Context, req *types.LoginReq) (*types.AuthResp, error) {
	user, err := s.UsersRepo.FindByPhone(ctx, strings.TrimSpace(req.Phone))
	if dao.IsNotFound(err) {
		return nil, ErrLoginFailed
	}
	if err != nil {
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, ErrLoginFailed
	}
	return s.authResp(user)
}

func (s *UserService) authResp(user *models.Users) (*types.AuthResp, error) {
	expire := jwt.DefaultExpire
	if s.Config.Jwt.ExpireHours > 0 {
		expire = time.Duration(s.Config.Jwt.ExpireHours) * time.Hour
	}
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Phone, jwt.TypeAccess, expire)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &types.AuthResp{Token: token, User: user}, nil
}

func (s *UserService) Profile(ctx context.Context, uid uint64) (*models.Users, error) {
	user, err := s.UsersRepo.FindById(ctx, uid)
	if dao.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) UpdateProfile(ctx context.Context, uid uint64, update *types.ProfileUpdate) (*models.Users, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrEmptyProfile
		}
		update.Name = &name
	}
	fields := update.Fields()
	if len(fields) == 0 {
		return nil, ErrEmptyProfile
	}
	if err := s.UsersRepo.UpdateById(ctx, uid, fields); err != nil {
		return nil, err
	}
	return s.Profile(ctx, uid)
}

func (s *UserService) UpdatePassword(ctx context.Context, uid uint64, req *types.UpdatePasswordReq) error {
	if err := checkPassword(req.NewPassword); err != nil {
		return err
	}
	user, err := s.Profile(ctx, uid)
	if err != nil {
		return err
	}
	if !encrypt.VerifyPassword(user.Password, req.OldPassword) {
		return ErrOldPassword
	}
	hash, err := encrypt.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.UsersRepo.UpdateById(ctx, uid, map[string]any{"password": hash})
}

// checkPassword 长度限制在 6 到 72 字节之间
func checkPassword(password string) error {
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if len(password) > encrypt.MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func (s *UserService) UploadAvatar(ctx context.Context, uid uint64, header *multipart.FileHeader) (*types.UploadAvatarResp, error) {
	url, err := s.OssService.UploadImage(ctx, uid, header)
	if err != nil {
		return nil, err
	}
	if err := s.UsersRepo.UpdateById(ctx, uid, map[string]any{"avatar": url}); err != nil {
		return nil, err
	}
	return &types.UploadAvatarResp{Url: url}, nil
}

// defaultName 用户<手机号后四位>
func defaultName(phone string) string {
	if len(phone) > 4 {
		phone = phone[len(phone)-4:]
	}
	return "用户" + phone
}
