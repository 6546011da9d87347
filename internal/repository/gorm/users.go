package gormrepo

import (
	"context"

	"github.com/google/uuid"

	"propdir/internal/models"
)

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return listAll[models.User](s, ctx, "created_at DESC")
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return getByID[models.User](s, ctx, id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return firstOrNil[models.User](s.db.WithContext(ctx).Where("email = ?", email))
}

func (s *Store) CreateUser(ctx context.Context, item *models.User) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) SaveUser(ctx context.Context, item *models.User) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.User](s, ctx, id)
}

func (s *Store) CountUsers(ctx context.Context, role *string) (int64, error) {
	q := s.db.WithContext(ctx).Model(&models.User{})
	if role != nil {
		q = q.Where("role = ?", *role)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}
