package types

// ProfileUpdate 资料修改的字段集合，只有出现的字段才会被修改
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// Fields 转成待更新的列
func (p *ProfileUpdate) Fields() map[string]any {
	fields := make(map[string]any, 2)
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Avatar != nil {
		fields["avatar"] = *p.Avatar
	}
	return fields
}

type UpdatePasswordReq struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=72"`
}

type UploadAvatarResp struct {
	Url string `json:"url"`
}
