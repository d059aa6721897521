package types

import "github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

type RegisterReq struct {
	Phone      string `json:"phone" binding:"required"`
	Password   string `json:"password" binding:"required,min=6,max=72"`
	Name       string `json:"name"`
	InviteCode string `json:"inviteCode"`
}

type LoginReq struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResp struct {
	Token string        `json:"token"`
	User  *models.Users `json:"user"`
}
