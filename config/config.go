package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	MySQL    *MySQL          `json:"mysql" yaml:"mysql"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	Oss      *OssConfig      `json:"oss" yaml:"oss"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	return conf
}

// Parse 解析 yaml 内容并补齐缺省段
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	if conf.App == nil {
		conf.App = &App{Env: "dev"}
	}
	if conf.Server == nil {
		conf.Server = &Server{Http: 8080}
	}
	if conf.Jwt == nil {
		conf.Jwt = &Jwt{}
	}
	if conf.Oss == nil {
		conf.Oss = &OssConfig{}
	}
	if conf.RocketMQ == nil {
		conf.RocketMQ = &RocketMQConfig{}
	}
	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
