package entity

import "time"

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	IsAdmin          bool       `json:"is_admin"`
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`

	StripeCustomerID     string `json:"-"`
	StripeSubscriptionID string `json:"-"`

	TwoFactorSecret  string `json:"-"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`

	// Display profile
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Theme       string `json:"theme"`
	AccentColor string `json:"accent_color"`

	// Pending email change
	PendingEmail             string     `json:"pending_email,omitempty"`
	EmailVerificationToken   string     `json:"-"`
	EmailVerificationExpires *time.Time `json:"-"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasValidPremium reports whether the premium flag is still honest at the
// given instant. A nil expiry never lapses.
func (u *User) HasValidPremium(now time.Time) bool {
	if !u.IsPremium {
		return false
	}
	if u.PremiumExpiresAt == nil {
		return true
	}
	return now.Before(*u.PremiumExpiresAt)
}
