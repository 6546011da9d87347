package handler

import (
	"context"

	"github.com/google/uuid"

	"propdir/internal/models"
	"propdir/internal/repository"
)

// stubRepo is a test-only partial implementation of
// repository.Repository; unimplemented methods panic through the
// embedded nil interface, which is fine because each test only exercises
// the methods it stubs.
type stubRepo struct {
	repository.Repository

	firms        map[uuid.UUID]*models.Firm
	users        map[uuid.UUID]*models.User
	usersEmail   map[string]*models.User
	accountTypes map[uuid.UUID]*models.AccountType

	createdRules       []models.Rule
	createdCommissions []models.Commission

	firmDependents   map[string]int64
	couponDependents map[string]int64

	listedFirms []models.Firm
	lastParams  repository.ListFirmsParams

	deletedFirms []uuid.UUID
}

func (s *stubRepo) GetFirmByID(ctx context.Context, id uuid.UUID) (*models.Firm, error) {
	return s.firms[id], nil
}

func (s *stubRepo) ListFirms(ctx context.Context, params repository.ListFirmsParams) ([]models.Firm, error) {
	s.lastParams = params
	return s.listedFirms, nil
}

func (s *stubRepo) CountFirmDependents(ctx context.Context, id uuid.UUID) (map[string]int64, error) {
	return s.firmDependents, nil
}

func (s *stubRepo) DeleteFirm(ctx context.Context, id uuid.UUID) error {
	s.deletedFirms = append(s.deletedFirms, id)
	return nil
}

func (s *stubRepo) GetAccountType(ctx context.Context, id uuid.UUID) (*models.AccountType, error) {
	return s.accountTypes[id], nil
}

func (s *stubRepo) CreateRule(ctx context.Context, item *models.Rule) error {
	s.createdRules = append(s.createdRules, *item)
	return nil
}

func (s *stubRepo) CreateCommission(ctx context.Context, item *models.Commission) error {
	s.createdCommissions = append(s.createdCommissions, *item)
	return nil
}

func (s *stubRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.usersEmail[email], nil
}

func (s *stubRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users[id], nil
}
