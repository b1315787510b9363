package persistent

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type AdViewRepository interface {
	Create(adView *entity.AdView) error
	Revenue(now time.Time) (*entity.AdRevenue, error)
}

type adViewRepository struct {
	db *gorm.DB
}

func NewAdViewRepository(db *gorm.DB) AdViewRepository {
	return &adViewRepository{db: db}
}

func (r *adViewRepository) Create(adView *entity.AdView) error {
	adViewModel := ToAdViewModel(adView)
	if err := r.db.Create(adViewModel).Error; err != nil {
		return err
	}
	adView.ID = adViewModel.ID
	adView.ViewedAt = adViewModel.ViewedAt
	return nil
}

func (r *adViewRepository) Revenue(now time.Time) (*entity.AdRevenue, error) {
	var total int64
	err := r.db.Model(&model.AdViewModel{}).
		Select("COALESCE(SUM(revenue_grosz), 0)").
		Scan(&total).Error
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var thisMonth int64
	err = r.db.Model(&model.AdViewModel{}).
		Select("COALESCE(SUM(revenue_grosz), 0)").
		Where("viewed_at >= ?", monthStart).
		Scan(&thisMonth).Error
	if err != nil {
		return nil, err
	}

	return &entity.AdRevenue{
		TotalGrosz:     total,
		ThisMonthGrosz: thisMonth,
	}, nil
}
