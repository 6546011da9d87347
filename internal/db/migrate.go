package db

import (
	"propdir/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	// Join models with their own columns are registered explicitly so that
	// the many2many relations on Firm/Coupon reuse the same tables.
	if err := db.Gorm.SetupJoinTable(&models.Firm{}, "Coupons", &models.FirmCoupon{}); err != nil {
		return err
	}
	if err := db.Gorm.SetupJoinTable(&models.AccountType{}, "Coupons", &models.CouponAccountType{}); err != nil {
		return err
	}

	return db.Gorm.AutoMigrate(
		&models.User{},
		&models.TradingPlatform{},
		&models.Broker{},
		&models.PayoutMethod{},
		&models.PaymentMethod{},
		&models.Asset{},
		&models.Country{},
		&models.FuturesExchange{},
		&models.InstrumentType{},
		&models.Firm{},
		&models.AccountType{},
		&models.EvaluationStage{},
		&models.FuturesProgram{},
		&models.Commission{},
		&models.Rule{},
		&models.PayoutPolicy{},
		&models.Coupon{},
		&models.FirmCoupon{},
		&models.CouponAccountType{},
		&models.AuditLog{},
	)
}
