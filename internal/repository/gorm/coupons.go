package gormrepo

import (
	"context"

	"github.com/google/uuid"

	"propdir/internal/models"
)

func (s *Store) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	var items []models.Coupon
	err := s.db.WithContext(ctx).
		Preload("Firms").
		Preload("AccountTypes").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetCoupon(ctx context.Context, id uuid.UUID) (*models.Coupon, error) {
	return firstOrNil[models.Coupon](s.db.WithContext(ctx).
		Preload("Firms").
		Preload("AccountTypes").
		Where("id = ?", id))
}

func (s *Store) CreateCoupon(ctx context.Context, item *models.Coupon) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveCoupon(ctx context.Context, item *models.Coupon) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Coupon](s, ctx, id)
}

func (s *Store) CountCouponDependents(ctx context.Context, id uuid.UUID) (map[string]int64, error) {
	counts := map[string]int64{}

	var firms int64
	if err := s.db.WithContext(ctx).Model(&models.FirmCoupon{}).
		Where("coupon_id = ?", id).Count(&firms).Error; err != nil {
		return nil, err
	}
	counts["firms"] = firms

	var accountTypes int64
	if err := s.db.WithContext(ctx).Model(&models.CouponAccountType{}).
		Where("coupon_id = ?", id).Count(&accountTypes).Error; err != nil {
		return nil, err
	}
	counts["account_types"] = accountTypes

	return counts, nil
}

func (s *Store) AssignCouponToFirm(ctx context.Context, item *models.FirmCoupon) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// UnassignCouponFromFirm removes the link row and reports how many rows
// were deleted, so callers can 404 on a link that never existed.
func (s *Store) UnassignCouponFromFirm(ctx context.Context, firmID, couponID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("firm_id = ? AND coupon_id = ?", firmID, couponID).
		Delete(&models.FirmCoupon{})
	return res.RowsAffected, res.Error
}

func (s *Store) AssignCouponToAccountType(ctx context.Context, item *models.CouponAccountType) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) UnassignCouponFromAccountType(ctx context.Context, couponID, accountTypeID uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("coupon_id = ? AND account_type_id = ?", couponID, accountTypeID).
		Delete(&models.CouponAccountType{})
	return res.RowsAffected, res.Error
}
