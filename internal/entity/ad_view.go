package entity

import "time"

// AdView is one completed advertisement impression. Append-only.
type AdView struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	MovieID      string    `json:"movie_id"`
	RevenueGrosz int       `json:"revenue_grosz"`
	ViewedAt     time.Time `json:"viewed_at"`
}

// AdRevenue aggregates impression earnings, in grosz.
type AdRevenue struct {
	TotalGrosz     int64 `json:"total_grosz"`
	ThisMonthGrosz int64 `json:"this_month_grosz"`
}

func (r AdRevenue) Total() float64 {
	return float64(r.TotalGrosz) / 100
}

func (r AdRevenue) ThisMonth() float64 {
	return float64(r.ThisMonthGrosz) / 100
}
