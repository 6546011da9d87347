package gormrepo

import (
	"context"
	"time"

	"propdir/internal/models"
	"propdir/internal/repository"
)

func (s *Store) CountFirms(ctx context.Context, params repository.CountFirmsParams) (int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Firm{})
	if params.ActiveOnly {
		q = q.Where(activeOnlyCond)
	}
	if params.FirmType != nil {
		q = q.Where("firm_type = ?", *params.FirmType)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// CountVisibleCoupons counts coupons inside their validity window. The
// start bound is inclusive, the end bound exclusive.
func (s *Store) CountVisibleCoupons(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Coupon{}).
		Where(activeOnlyCond).
		Where("(start_date IS NULL OR start_date <= ?)", now).
		Where("(end_date IS NULL OR end_date > ?)", now).
		Count(&n).Error
	return n, err
}

func (s *Store) CountTradingPlatforms(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.TradingPlatform{}).Count(&n).Error
	return n, err
}

func (s *Store) CountBrokers(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Broker{}).Count(&n).Error
	return n, err
}

func (s *Store) ListRecentFirms(ctx context.Context, limit int) ([]models.Firm, error) {
	var items []models.Firm
	err := s.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(normalizeLimit(limit, 5, 50)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListFirmsWithDataGaps surfaces active firms whose public profile is
// missing the fields the frontend cares about most.
func (s *Store) ListFirmsWithDataGaps(ctx context.Context, limit int) ([]models.Firm, error) {
	var items []models.Firm
	err := s.db.WithContext(ctx).
		Where(activeOnlyCond).
		Where("description IS NULL OR description = '' OR logo_url IS NULL OR logo_url = '' OR rating IS NULL").
		Order("name ASC").
		Limit(normalizeLimit(limit, 10, 50)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
