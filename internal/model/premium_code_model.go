package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PremiumCodeModel struct {
	ID           string     `gorm:"type:uuid;primary_key" json:"id"`
	Code         string     `gorm:"uniqueIndex;not null" json:"code"`
	DurationDays int        `gorm:"not null" json:"duration_days"`
	UsesLeft     int        `gorm:"not null" json:"uses_left"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	UsedBy       *string    `gorm:"type:uuid" json:"used_by"`
	UsedAt       *time.Time `json:"used_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (PremiumCodeModel) TableName() string {
	return "premium_codes"
}

func (p *PremiumCodeModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
