package usecase

import (
	"fmt"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
)

// AdsUseCase records completed ad impressions at the fixed per-view rate.
// Impressions are append-only; nothing updates or deletes them.
type AdsUseCase interface {
	RecordView(userID, movieID string) (*entity.AdView, error)
	Revenue() (*entity.AdRevenue, error)
}

type adsUseCase struct {
	adViewRepo persistent.AdViewRepository
	rateGrosz  int
	logger     *logger.Logger
}

func NewAdsUseCase(adViewRepo persistent.AdViewRepository, rateGrosz int, logger *logger.Logger) AdsUseCase {
	return &adsUseCase{
		adViewRepo: adViewRepo,
		rateGrosz:  rateGrosz,
		logger:     logger,
	}
}

func (uc *adsUseCase) RecordView(userID, movieID string) (*entity.AdView, error) {
	adView := &entity.AdView{
		UserID:       userID,
		MovieID:      movieID,
		RevenueGrosz: uc.rateGrosz,
		ViewedAt:     time.Now(),
	}
	if err := uc.adViewRepo.Create(adView); err != nil {
		uc.logger.Error("Failed to record ad view: %v", err)
		return nil, fmt.Errorf("failed to record ad view")
	}
	return adView, nil
}

func (uc *adsUseCase) Revenue() (*entity.AdRevenue, error) {
	revenue, err := uc.adViewRepo.Revenue(time.Now())
	if err != nil {
		uc.logger.Error("Failed to aggregate ad revenue: %v", err)
		return nil, fmt.Errorf("failed to aggregate ad revenue")
	}
	return revenue, nil
}
