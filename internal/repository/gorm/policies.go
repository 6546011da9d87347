package gormrepo

import (
	"context"

	"github.com/google/uuid"

	"propdir/internal/models"
)

// Rules.

func (s *Store) ListRules(ctx context.Context, firmID *uuid.UUID) ([]models.Rule, error) {
	q := s.db.WithContext(ctx).Model(&models.Rule{})
	if firmID != nil {
		q = q.Where("firm_id = ?", *firmID)
	}
	var items []models.Rule
	if err := q.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetRule(ctx context.Context, id uuid.UUID) (*models.Rule, error) {
	return getByID[models.Rule](s, ctx, id)
}

func (s *Store) CreateRule(ctx context.Context, item *models.Rule) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveRule(ctx context.Context, item *models.Rule) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Rule](s, ctx, id)
}

// Payout policies.

func (s *Store) ListPayoutPolicies(ctx context.Context, firmID *uuid.UUID) ([]models.PayoutPolicy, error) {
	q := s.db.WithContext(ctx).Model(&models.PayoutPolicy{})
	if firmID != nil {
		q = q.Where("firm_id = ?", *firmID)
	}
	var items []models.PayoutPolicy
	if err := q.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetPayoutPolicy(ctx context.Context, id uuid.UUID) (*models.PayoutPolicy, error) {
	return getByID[models.PayoutPolicy](s, ctx, id)
}

func (s *Store) CreatePayoutPolicy(ctx context.Context, item *models.PayoutPolicy) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SavePayoutPolicy(ctx context.Context, item *models.PayoutPolicy) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeletePayoutPolicy(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.PayoutPolicy](s, ctx, id)
}
