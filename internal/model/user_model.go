package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string `gorm:"type:uuid;primary_key" json:"id"`
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	IsAdmin          bool       `gorm:"default:false" json:"is_admin"`
	IsPremium        bool       `gorm:"default:false" json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at"`

	StripeCustomerID     string `gorm:"index" json:"-"`
	StripeSubscriptionID string `json:"-"`

	TwoFactorSecret  string `json:"-"`
	TwoFactorEnabled bool   `gorm:"default:false" json:"two_factor_enabled"`

	DisplayName string `gorm:"type:varchar(50)" json:"display_name"`
	Bio         string `gorm:"type:varchar(500)" json:"bio"`
	Theme       string `gorm:"type:varchar(20);default:'dark'" json:"theme"`
	AccentColor string `gorm:"type:varchar(20);default:'blue'" json:"accent_color"`

	PendingEmail             string     `json:"pending_email"`
	EmailVerificationToken   string     `gorm:"index" json:"-"`
	EmailVerificationExpires *time.Time `json:"-"`

	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
