package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MovieModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	VideoURL     string    `json:"video_url"`
	Duration     int       `json:"duration"`
	Year         int       `json:"year"`
	Genre        string    `gorm:"type:varchar(50);index" json:"genre"`
	IsPremium    bool      `gorm:"default:false" json:"is_premium"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	ViewCount    int64     `gorm:"default:0" json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (MovieModel) TableName() string {
	return "movies"
}

func (m *MovieModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
