package database

import (
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/config"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/models"
	"github.com/pppzzzzhhh123/luxe-atelier-premium-store-sub001/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// Migrate 同步全部表结构
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
