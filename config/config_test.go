package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := []byte(`
app:
  env: prod
  debug: false
server:
  http: 9000
mysql:
  host: 127.0.0.1
  port: 3306
  username: root
  password: secret
  database: luxe
redis:
  address: 127.0.0.1
  port: 6379
jwt:
  secret: abc
rocketmq:
  enabled: true
  nameserver: ["127.0.0.1:9876"]
  topic: luxe_order
  producer:
    group: luxe_api
    retry: 2
`)
	conf, err := Parse(content)
	require.NoError(t, err)
	assert.Equal(t, 9000, conf.Server.Http)
	assert.False(t, conf.Debug())
	assert.Equal(t, "root:secret@tcp(127.0.0.1:3306)/luxe?charset=utf8mb4&parseTime=True&loc=UTC", conf.MySQL.Dsn())
	assert.Equal(t, "127.0.0.1:6379", conf.Redis.Addr())
	assert.Equal(t, []string{"127.0.0.1:9876"}, conf.RocketMQ.NameServer)
	assert.Equal(t, 2, ProvideRocketMQConfig(conf).Producer.Retry)
	assert.NotNil(t, ProvideOssConfig(conf))
}

func TestParseDefaults(t *testing.T) {
	conf, err := Parse([]byte("mysql:\n  host: db\n"))
	require.NoError(t, err)
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, "dev", conf.App.Env)
	assert.False(t, conf.RocketMQ.Enabled)
}
