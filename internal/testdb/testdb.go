// Package testdb 为测试提供迁移好的内存 SQLite 库
package testdb

import (
	"strings"
	"testing"

	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// New 每个测试一个独立的共享缓存内存库，单连接保证事务内外看到同一份数据
func New(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + nameReplacer.Replace(t.Name()) + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}
