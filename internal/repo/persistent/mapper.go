package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                       m.ID,
		Email:                    m.Email,
		Password:                 m.Password,
		FirstName:                m.FirstName,
		LastName:                 m.LastName,
		IsAdmin:                  m.IsAdmin,
		IsPremium:                m.IsPremium,
		PremiumExpiresAt:         m.PremiumExpiresAt,
		StripeCustomerID:         m.StripeCustomerID,
		StripeSubscriptionID:     m.StripeSubscriptionID,
		TwoFactorSecret:          m.TwoFactorSecret,
		TwoFactorEnabled:         m.TwoFactorEnabled,
		DisplayName:              m.DisplayName,
		Bio:                      m.Bio,
		Theme:                    m.Theme,
		AccentColor:              m.AccentColor,
		PendingEmail:             m.PendingEmail,
		EmailVerificationToken:   m.EmailVerificationToken,
		EmailVerificationExpires: m.EmailVerificationExpires,
		IsActive:                 m.IsActive,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:                       e.ID,
		Email:                    e.Email,
		Password:                 e.Password,
		FirstName:                e.FirstName,
		LastName:                 e.LastName,
		IsAdmin:                  e.IsAdmin,
		IsPremium:                e.IsPremium,
		PremiumExpiresAt:         e.PremiumExpiresAt,
		StripeCustomerID:         e.StripeCustomerID,
		StripeSubscriptionID:     e.StripeSubscriptionID,
		TwoFactorSecret:          e.TwoFactorSecret,
		TwoFactorEnabled:         e.TwoFactorEnabled,
		DisplayName:              e.DisplayName,
		Bio:                      e.Bio,
		Theme:                    e.Theme,
		AccentColor:              e.AccentColor,
		PendingEmail:             e.PendingEmail,
		EmailVerificationToken:   e.EmailVerificationToken,
		EmailVerificationExpires: e.EmailVerificationExpires,
		IsActive:                 e.IsActive,
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}
}

func ToMovieEntity(m *model.MovieModel) *entity.Movie {
	if m == nil {
		return nil
	}

	return &entity.Movie{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		ThumbnailURL: m.ThumbnailURL,
		VideoURL:     m.VideoURL,
		Duration:     m.Duration,
		Year:         m.Year,
		Genre:        m.Genre,
		IsPremium:    m.IsPremium,
		IsActive:     m.IsActive,
		ViewCount:    m.ViewCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToMovieModel(e *entity.Movie) *model.MovieModel {
	if e == nil {
		return nil
	}

	return &model.MovieModel{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		ThumbnailURL: e.ThumbnailURL,
		VideoURL:     e.VideoURL,
		Duration:     e.Duration,
		Year:         e.Year,
		Genre:        e.Genre,
		IsPremium:    e.IsPremium,
		IsActive:     e.IsActive,
		ViewCount:    e.ViewCount,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToPremiumCodeEntity(m *model.PremiumCodeModel) *entity.PremiumCode {
	if m == nil {
		return nil
	}

	return &entity.PremiumCode{
		ID:           m.ID,
		Code:         m.Code,
		DurationDays: m.DurationDays,
		UsesLeft:     m.UsesLeft,
		IsActive:     m.IsActive,
		UsedBy:       m.UsedBy,
		UsedAt:       m.UsedAt,
		CreatedAt:    m.CreatedAt,
	}
}

func ToPremiumCodeModel(e *entity.PremiumCode) *model.PremiumCodeModel {
	if e == nil {
		return nil
	}

	return &model.PremiumCodeModel{
		ID:           e.ID,
		Code:         e.Code,
		DurationDays: e.DurationDays,
		UsesLeft:     e.UsesLeft,
		IsActive:     e.IsActive,
		UsedBy:       e.UsedBy,
		UsedAt:       e.UsedAt,
		CreatedAt:    e.CreatedAt,
	}
}

func ToAdViewEntity(m *model.AdViewModel) *entity.AdView {
	if m == nil {
		return nil
	}

	return &entity.AdView{
		ID:           m.ID,
		UserID:       m.UserID,
		MovieID:      m.MovieID,
		RevenueGrosz: m.RevenueGrosz,
		ViewedAt:     m.ViewedAt,
	}
}

func ToAdViewModel(e *entity.AdView) *model.AdViewModel {
	if e == nil {
		return nil
	}

	return &model.AdViewModel{
		ID:           e.ID,
		UserID:       e.UserID,
		MovieID:      e.MovieID,
		RevenueGrosz: e.RevenueGrosz,
		ViewedAt:     e.ViewedAt,
	}
}
