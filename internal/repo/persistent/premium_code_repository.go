package persistent

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type PremiumCodeRepository interface {
	Create(code *entity.PremiumCode) error
	GetByCode(code string) (*entity.PremiumCode, error)
	RedeemCode(code, userID string, now time.Time) (bool, error)
	GetAll() ([]*entity.PremiumCode, error)
}

type premiumCodeRepository struct {
	db *gorm.DB
}

func NewPremiumCodeRepository(db *gorm.DB) PremiumCodeRepository {
	return &premiumCodeRepository{db: db}
}

func (r *premiumCodeRepository) Create(code *entity.PremiumCode) error {
	codeModel := ToPremiumCodeModel(code)
	if err := r.db.Create(codeModel).Error; err != nil {
		return err
	}
	code.ID = codeModel.ID
	code.CreatedAt = codeModel.CreatedAt
	return nil
}

func (r *premiumCodeRepository) GetByCode(code string) (*entity.PremiumCode, error) {
	var codeModel model.PremiumCodeModel
	if err := r.db.Where("code = ? AND is_active = ?", code, true).First(&codeModel).Error; err != nil {
		return nil, err
	}
	return ToPremiumCodeEntity(&codeModel), nil
}

// RedeemCode consumes one use of a code in a single conditional UPDATE, so
// two concurrent redemptions of a single-use code cannot both succeed.
// All assignments read the pre-update row, so the is_active expression sees
// the counter before the decrement. Returns false when the code is absent,
// exhausted or inactive.
func (r *premiumCodeRepository) RedeemCode(code, userID string, now time.Time) (bool, error) {
	result := r.db.Model(&model.PremiumCodeModel{}).
		Where("code = ? AND is_active = ? AND uses_left > 0", code, true).
		Updates(map[string]interface{}{
			"uses_left": gorm.Expr("uses_left - 1"),
			"is_active": gorm.Expr("uses_left - 1 > 0"),
			"used_by":   userID,
			"used_at":   now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *premiumCodeRepository) GetAll() ([]*entity.PremiumCode, error) {
	var codeModels []model.PremiumCodeModel
	if err := r.db.Order("created_at DESC").Find(&codeModels).Error; err != nil {
		return nil, err
	}

	codes := make([]*entity.PremiumCode, len(codeModels))
	for i := range codeModels {
		codes[i] = ToPremiumCodeEntity(&codeModels[i])
	}
	return codes, nil
}
