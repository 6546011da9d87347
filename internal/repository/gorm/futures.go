package gormrepo

import (
	"context"

	"github.com/google/uuid"

	"propdir/internal/models"
	"propdir/internal/repository"
)

// Futures programs.

func (s *Store) ListFuturesPrograms(ctx context.Context, firmID *uuid.UUID) ([]models.FuturesProgram, error) {
	q := s.db.WithContext(ctx).Model(&models.FuturesProgram{})
	if firmID != nil {
		q = q.Where("firm_id = ?", *firmID)
	}
	var items []models.FuturesProgram
	if err := q.Order("account_size ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetFuturesProgram(ctx context.Context, id uuid.UUID) (*models.FuturesProgram, error) {
	return firstOrNil[models.FuturesProgram](s.db.WithContext(ctx).
		Preload("Commissions").
		Where("id = ?", id))
}

func (s *Store) CreateFuturesProgram(ctx context.Context, item *models.FuturesProgram) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveFuturesProgram(ctx context.Context, item *models.FuturesProgram) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteFuturesProgram(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.FuturesProgram](s, ctx, id)
}

// Commissions.

func (s *Store) ListCommissions(ctx context.Context, params repository.ListCommissionsParams) ([]models.Commission, error) {
	q := s.db.WithContext(ctx).Model(&models.Commission{})
	if params.AccountTypeID != nil {
		q = q.Where("account_type_id = ?", *params.AccountTypeID)
	}
	if params.FuturesProgramID != nil {
		q = q.Where("futures_program_id = ?", *params.FuturesProgramID)
	}
	var items []models.Commission
	if err := q.Order("asset_name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetCommission(ctx context.Context, id uuid.UUID) (*models.Commission, error) {
	return getByID[models.Commission](s, ctx, id)
}

func (s *Store) CreateCommission(ctx context.Context, item *models.Commission) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveCommission(ctx context.Context, item *models.Commission) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteCommission(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Commission](s, ctx, id)
}
