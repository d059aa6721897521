package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// NodeID 雪花算法节点编号，多实例部署时必须不同
	NodeID int64 `json:"node_id" yaml:"node_id"`
	// IdSalt 邀请码编码盐值，上线后不可修改
	IdSalt string `json:"id_salt" yaml:"id_salt"`
}
