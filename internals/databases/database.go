package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/avast/retry-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"summerschool_backend/internals/configs"
)

// ConnectDB opens the pool and pings it, retrying while Postgres comes up.
func ConnectDB(cfg configs.Database) (*gorm.DB, error) {
	log.Println("[INFO] connecting to PostgreSQL...")

	var db *gorm.DB
	err := retry.Do(
		func() error {
			conn, err := gorm.Open(postgres.New(postgres.Config{
				DSN:                  cfg.DSN(),
				PreferSimpleProtocol: true, // PgBouncer (transaction pooling)
			}), &gorm.Config{
				Logger: configs.NewGormLogger(cfg.SlowThreshold),
			})
			if err != nil {
				return err
			}
			if err := Ping(conn); err != nil {
				if sqlDB, e := conn.DB(); e == nil {
					_ = sqlDB.Close()
				}
				return err
			}
			db = conn
			return nil
		},
		retry.Attempts(maxUint(cfg.ConnectAttempts, 1)),
		retry.Delay(cfg.ConnectDelay),
		retry.MaxDelay(10*time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("[WARN] db connect attempt %d failed: %v", n+1, err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	TunePool(db, cfg)
	log.Println("[SUCCESS] DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB, cfg configs.Database) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[ERROR] pool tune: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

// Migrate creates or updates the tables of the given models.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Printf("[INFO] migrated %d tables", len(models))
	return nil
}

var ErrNoDatabase = errors.New("database not connected")

func Ping(db *gorm.DB) error {
	if db == nil {
		return ErrNoDatabase
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("[ERROR] closing db: %v", err)
		}
	}
}

func maxUint(v, min uint) uint {
	if v < min {
		return min
	}
	return v
}
