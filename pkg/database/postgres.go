package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"social_feed/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase 初始化数据库连接
func InitDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	// 配置 GORM
	gormConfig := &gorm.Config{
		Logger:                 logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		PrepareStmt:            true, // 预编译 SQL 缓存
		TranslateError:         true, // 23505 -> gorm.ErrDuplicatedKey
		SkipDefaultTransaction: true, // 单条写入不需要额外事务，计数由触发器维护
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 获取底层 SQL DB 对象以配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// 连接池配置
	configureConnectionPool(sqlDB)

	return db, nil
}

// configureConnectionPool 配置数据库连接池
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(time.Minute * 30)

	log.Println("Database connection pool configured successfully")
}

func parseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
