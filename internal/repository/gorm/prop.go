package gormrepo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propdir/internal/models"
)

// Account types.

func (s *Store) ListAccountTypes(ctx context.Context, firmID *uuid.UUID) ([]models.AccountType, error) {
	q := s.db.WithContext(ctx).Model(&models.AccountType{})
	if firmID != nil {
		q = q.Where("firm_id = ?", *firmID)
	}
	var items []models.AccountType
	if err := q.Order("starting_balance ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetAccountType(ctx context.Context, id uuid.UUID) (*models.AccountType, error) {
	return firstOrNil[models.AccountType](s.db.WithContext(ctx).
		Preload("EvaluationStages", func(db *gorm.DB) *gorm.DB {
			return db.Order("stage_number ASC")
		}).
		Preload("Commissions").
		Where("id = ?", id))
}

func (s *Store) CreateAccountType(ctx context.Context, item *models.AccountType) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveAccountType(ctx context.Context, item *models.AccountType) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteAccountType(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.AccountType](s, ctx, id)
}

func (s *Store) CountAccountTypeDependents(ctx context.Context, id uuid.UUID) (map[string]int64, error) {
	counts := map[string]int64{}

	var stages int64
	if err := s.db.WithContext(ctx).Model(&models.EvaluationStage{}).
		Where("account_type_id = ?", id).Count(&stages).Error; err != nil {
		return nil, err
	}
	counts["evaluation_stages"] = stages

	var commissions int64
	if err := s.db.WithContext(ctx).Model(&models.Commission{}).
		Where("account_type_id = ?", id).Count(&commissions).Error; err != nil {
		return nil, err
	}
	counts["commissions"] = commissions

	var coupons int64
	if err := s.db.WithContext(ctx).Model(&models.CouponAccountType{}).
		Where("account_type_id = ?", id).Count(&coupons).Error; err != nil {
		return nil, err
	}
	counts["coupons"] = coupons

	return counts, nil
}

// Evaluation stages.

func (s *Store) ListEvaluationStages(ctx context.Context, accountTypeID *uuid.UUID) ([]models.EvaluationStage, error) {
	q := s.db.WithContext(ctx).Model(&models.EvaluationStage{})
	if accountTypeID != nil {
		q = q.Where("account_type_id = ?", *accountTypeID)
	}
	var items []models.EvaluationStage
	if err := q.Order("stage_number ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetEvaluationStage(ctx context.Context, id uuid.UUID) (*models.EvaluationStage, error) {
	return getByID[models.EvaluationStage](s, ctx, id)
}

func (s *Store) CreateEvaluationStage(ctx context.Context, item *models.EvaluationStage) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveEvaluationStage(ctx context.Context, item *models.EvaluationStage) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteEvaluationStage(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.EvaluationStage](s, ctx, id)
}
