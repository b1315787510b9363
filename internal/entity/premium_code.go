package entity

import "time"

// PremiumCode is one entry in the redemption ledger. UsesLeft never goes
// negative; IsActive flips to false once the counter reaches zero.
type PremiumCode struct {
	ID           string     `json:"id"`
	Code         string     `json:"code"`
	DurationDays int        `json:"duration_days"`
	UsesLeft     int        `json:"uses_left"`
	IsActive     bool       `json:"is_active"`
	UsedBy       *string    `json:"used_by,omitempty"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
