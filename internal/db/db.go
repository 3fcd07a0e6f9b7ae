package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-pos/internal/config"
	"github.com/BruksfildServices01/salon-pos/internal/models"
)

// NewDB opens the pool and migrates the schema.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.OpeningHours{},
		&models.AvailabilityBlock{},
		&models.Booking{},
		&models.CashSale{},
		&models.CashSaleItem{},
		&models.CashClosing{},
		&models.CashWithdrawal{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(`
        UPDATE salons
        SET timezone = 'UTC'
        WHERE timezone IS NULL OR timezone = ''
    `).Error; err != nil {
		return fmt.Errorf("backfill salon timezone: %w", err)
	}
	return nil
}
