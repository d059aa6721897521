package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpireHours 为空时按 7 天签发
	ExpireHours int `json:"expire_hours" yaml:"expire_hours"`
}
