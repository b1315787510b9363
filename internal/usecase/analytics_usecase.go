package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

type RevenueStats struct {
	Ads          float64 `json:"ads"`
	AdsThisMonth float64 `json:"ads_this_month"`
}

type Stats struct {
	Users        int64        `json:"users"`
	PremiumUsers int64        `json:"premium_users"`
	Movies       int64        `json:"movies"`
	Revenue      RevenueStats `json:"revenue"`
}

type AnalyticsUseCase interface {
	Stats() (*Stats, error)
}

type analyticsUseCase struct {
	userRepo    persistent.UserRepository
	movieRepo   persistent.MovieRepository
	ads         AdsUseCase
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewAnalyticsUseCase(
	userRepo persistent.UserRepository,
	movieRepo persistent.MovieRepository,
	ads AdsUseCase,
	redisClient *redis.Client,
	logger *logger.Logger,
) AnalyticsUseCase {
	return &analyticsUseCase{
		userRepo:    userRepo,
		movieRepo:   movieRepo,
		ads:         ads,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *analyticsUseCase) Stats() (*Stats, error) {
	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(context.Background(), statsCacheKey).Result()
		if err == nil {
			var stats Stats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	userCount, err := uc.userRepo.CountUsers()
	if err != nil {
		uc.logger.Error("Failed to count users: %v", err)
		return nil, fmt.Errorf("failed to fetch stats")
	}

	premiumCount, err := uc.userRepo.CountPremiumUsers(time.Now())
	if err != nil {
		uc.logger.Error("Failed to count premium users: %v", err)
		return nil, fmt.Errorf("failed to fetch stats")
	}

	movieCount, err := uc.movieRepo.CountActive()
	if err != nil {
		uc.logger.Error("Failed to count movies: %v", err)
		return nil, fmt.Errorf("failed to fetch stats")
	}

	revenue, err := uc.ads.Revenue()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats")
	}

	stats := &Stats{
		Users:        userCount,
		PremiumUsers: premiumCount,
		Movies:       movieCount,
		Revenue: RevenueStats{
			Ads:          revenue.Total(),
			AdsThisMonth: revenue.ThisMonth(),
		},
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(stats); err == nil {
			uc.redisClient.Set(context.Background(), statsCacheKey, data, statsCacheTTL)
		}
	}

	return stats, nil
}
