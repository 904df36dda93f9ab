package model

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tool-permission/config"
)

var (
	once sync.Once
	db   *gorm.DB
)

func Init(cfg *config.MysqlConfig) error {
	var err error
	once.Do(
		func() {
			dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DbName)
			db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Warn),
			})
			if err != nil {
				return
			}
			idb, _ := db.DB()
			idb.SetConnMaxIdleTime(120 * time.Second)
			idb.SetConnMaxLifetime(7200 * time.Second)
			idb.SetMaxOpenConns(200)
			idb.SetMaxIdleConns(10)

			err = idb.Ping()
		})

	return err
}

func DB() *gorm.DB {
	return db
}

func GetTableName(v interface{}) string {
	stat := gorm.Statement{DB: DB()}
	err := stat.Parse(v)
	if err != nil {
		return ""
	}
	return stat.Schema.Table
}
