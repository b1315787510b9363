package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdViewModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID       string    `gorm:"type:uuid;index" json:"user_id"`
	MovieID      string    `gorm:"type:uuid;index" json:"movie_id"`
	RevenueGrosz int       `gorm:"not null" json:"revenue_grosz"`
	ViewedAt     time.Time `gorm:"index" json:"viewed_at"`
}

func (AdViewModel) TableName() string {
	return "ad_views"
}

func (a *AdViewModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
