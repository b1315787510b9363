package entity

import "time"

type Movie struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	VideoURL     string    `json:"video_url,omitempty"`
	Duration     int       `json:"duration,omitempty"` // minutes
	Year         int       `json:"year,omitempty"`
	Genre        string    `json:"genre,omitempty"`
	IsPremium    bool      `json:"is_premium"`
	IsActive     bool      `json:"is_active"`
	ViewCount    int64     `json:"view_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
