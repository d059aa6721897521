package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	// Domain 对外访问域名，如 https://cdn.example.com
	Domain string `json:"domain" yaml:"domain"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
