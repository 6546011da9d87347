package service

import (
	"context"
	"time"

	"propdir/internal/models"
	"propdir/internal/repository"
)

type DashboardStats struct {
	TotalFirms       int64 `json:"total_firms"`
	ActiveFirms      int64 `json:"active_firms"`
	InactiveFirms    int64 `json:"inactive_firms"`
	PropFirms        int64 `json:"prop_firms"`
	FuturesFirms     int64 `json:"futures_firms"`
	ActiveCoupons    int64 `json:"active_coupons"`
	TradingPlatforms int64 `json:"trading_platforms"`
	Brokers          int64 `json:"brokers"`
	Users            int64 `json:"users"`

	RecentFirms      []models.Firm `json:"recent_firms"`
	FirmsMissingData []models.Firm `json:"firms_missing_data"`
}

type DashboardService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewDashboardService(repo repository.Repository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalFirms, err = s.repo.CountFirms(ctx, repository.CountFirmsParams{}); err != nil {
		return nil, err
	}
	if stats.ActiveFirms, err = s.repo.CountFirms(ctx, repository.CountFirmsParams{ActiveOnly: true}); err != nil {
		return nil, err
	}
	stats.InactiveFirms = stats.TotalFirms - stats.ActiveFirms
	propType := models.FirmTypeProp
	if stats.PropFirms, err = s.repo.CountFirms(ctx, repository.CountFirmsParams{FirmType: &propType}); err != nil {
		return nil, err
	}
	futuresType := models.FirmTypeFutures
	if stats.FuturesFirms, err = s.repo.CountFirms(ctx, repository.CountFirmsParams{FirmType: &futuresType}); err != nil {
		return nil, err
	}
	if stats.ActiveCoupons, err = s.repo.CountVisibleCoupons(ctx, s.now()); err != nil {
		return nil, err
	}
	if stats.TradingPlatforms, err = s.repo.CountTradingPlatforms(ctx); err != nil {
		return nil, err
	}
	if stats.Brokers, err = s.repo.CountBrokers(ctx); err != nil {
		return nil, err
	}
	if stats.Users, err = s.repo.CountUsers(ctx, nil); err != nil {
		return nil, err
	}
	if stats.RecentFirms, err = s.repo.ListRecentFirms(ctx, 5); err != nil {
		return nil, err
	}
	if stats.FirmsMissingData, err = s.repo.ListFirmsWithDataGaps(ctx, 10); err != nil {
		return nil, err
	}
	return stats, nil
}
