// Package gormrepo implements repository.Repository on top of GORM and
// Postgres.
package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type Store struct {
	db *gorm.DB
}

var _ repository.Repository = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

func (s *Store) InsertAuditLog(ctx context.Context, item *models.AuditLog) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// applyOrder appends the given order clauses in sequence.
func applyOrder(q *gorm.DB, clauses []repository.OrderClause) *gorm.DB {
	for _, c := range clauses {
		col := c.Column
		if c.Desc {
			col += " DESC"
		}
		q = q.Order(col)
	}
	return q
}

func normalizeLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// firstOrNil returns (nil, nil) when the lookup finds no row, so callers
// can map absence to a 404 without inspecting gorm sentinel errors.
func firstOrNil[T any](q *gorm.DB) (*T, error) {
	var item T
	if err := q.First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
