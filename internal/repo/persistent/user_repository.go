package persistent

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByVerificationToken(token string) (*entity.User, error)
	GetByStripeCustomerID(customerID string) (*entity.User, error)
	Update(user *entity.User) error
	UpdatePremiumStatus(id string, isPremium bool, expiresAt *time.Time) error
	UpdateStripeInfo(id, customerID, subscriptionID string) error
	UpdateTwoFactor(id, secret string, enabled bool) error
	SetAdminStatus(id string, isAdmin bool) error
	UpdateProfile(id string, updates map[string]interface{}) error
	InitiateEmailChange(id, newEmail, token string, expiresAt time.Time) error
	CompleteEmailChange(id, newEmail string) error
	CountUsers() (int64, error)
	CountPremiumUsers(now time.Time) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByVerificationToken(token string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email_verification_token = ?", token).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByStripeCustomerID(customerID string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("stripe_customer_id = ?", customerID).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) UpdatePremiumStatus(id string, isPremium bool, expiresAt *time.Time) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_premium":         isPremium,
		"premium_expires_at": expiresAt,
	}).Error
}

func (r *userRepository) UpdateStripeInfo(id, customerID, subscriptionID string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"stripe_customer_id":     customerID,
		"stripe_subscription_id": subscriptionID,
	}).Error
}

func (r *userRepository) UpdateTwoFactor(id, secret string, enabled bool) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"two_factor_secret":  secret,
		"two_factor_enabled": enabled,
	}).Error
}

func (r *userRepository) SetAdminStatus(id string, isAdmin bool) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).
		Update("is_admin", isAdmin).Error
}

func (r *userRepository) UpdateProfile(id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(updates).Error
}

func (r *userRepository) InitiateEmailChange(id, newEmail, token string, expiresAt time.Time) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"pending_email":              newEmail,
		"email_verification_token":   token,
		"email_verification_expires": expiresAt,
	}).Error
}

func (r *userRepository) CompleteEmailChange(id, newEmail string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email":                      newEmail,
		"pending_email":              "",
		"email_verification_token":   "",
		"email_verification_expires": nil,
	}).Error
}

func (r *userRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).Count(&count).Error
	return count, err
}

func (r *userRepository) CountPremiumUsers(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserModel{}).
		Where("is_premium = ? AND (premium_expires_at IS NULL OR premium_expires_at >= ?)", true, now).
		Count(&count).Error
	return count, err
}
