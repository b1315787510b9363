package usecase

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/payments"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByVerificationToken(token string) (*entity.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByStripeCustomerID(customerID string) (*entity.User, error) {
	args := m.Called(customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePremiumStatus(id string, isPremium bool, expiresAt *time.Time) error {
	args := m.Called(id, isPremium, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStripeInfo(id, customerID, subscriptionID string) error {
	args := m.Called(id, customerID, subscriptionID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateTwoFactor(id, secret string, enabled bool) error {
	args := m.Called(id, secret, enabled)
	return args.Error(0)
}

func (m *MockUserRepository) SetAdminStatus(id string, isAdmin bool) error {
	args := m.Called(id, isAdmin)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(id string, updates map[string]interface{}) error {
	args := m.Called(id, updates)
	return args.Error(0)
}

func (m *MockUserRepository) InitiateEmailChange(id, newEmail, token string, expiresAt time.Time) error {
	args := m.Called(id, newEmail, token, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) CompleteEmailChange(id, newEmail string) error {
	args := m.Called(id, newEmail)
	return args.Error(0)
}

func (m *MockUserRepository) CountUsers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountPremiumUsers(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockMovieRepository is a mock implementation of persistent.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(movie *entity.Movie) error {
	args := m.Called(movie)
	return args.Error(0)
}

func (m *MockMovieRepository) GetAllActive(genre string) ([]*entity.Movie, error) {
	args := m.Called(genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetActiveByID(id string) (*entity.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Update(id string, updates map[string]interface{}) error {
	args := m.Called(id, updates)
	return args.Error(0)
}

func (m *MockMovieRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMovieRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMovieRepository) CountActive() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.MovieRepository = (*MockMovieRepository)(nil)

// MockPremiumCodeRepository is a mock implementation of persistent.PremiumCodeRepository
type MockPremiumCodeRepository struct {
	mock.Mock
}

func (m *MockPremiumCodeRepository) Create(code *entity.PremiumCode) error {
	args := m.Called(code)
	return args.Error(0)
}

func (m *MockPremiumCodeRepository) GetByCode(code string) (*entity.PremiumCode, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PremiumCode), args.Error(1)
}

func (m *MockPremiumCodeRepository) RedeemCode(code, userID string, now time.Time) (bool, error) {
	args := m.Called(code, userID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockPremiumCodeRepository) GetAll() ([]*entity.PremiumCode, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PremiumCode), args.Error(1)
}

var _ persistent.PremiumCodeRepository = (*MockPremiumCodeRepository)(nil)

// MockAdViewRepository is a mock implementation of persistent.AdViewRepository
type MockAdViewRepository struct {
	mock.Mock
}

func (m *MockAdViewRepository) Create(adView *entity.AdView) error {
	args := m.Called(adView)
	return args.Error(0)
}

func (m *MockAdViewRepository) Revenue(now time.Time) (*entity.AdRevenue, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdRevenue), args.Error(1)
}

var _ persistent.AdViewRepository = (*MockAdViewRepository)(nil)

// MockEntitlementUseCase is a mock implementation of EntitlementUseCase
type MockEntitlementUseCase struct {
	mock.Mock
}

func (m *MockEntitlementUseCase) CurrentUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockEntitlementUseCase) HasPremiumAccess(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntitlementUseCase) GrantPremium(userID string, expiresAt *time.Time) error {
	args := m.Called(userID, expiresAt)
	return args.Error(0)
}

func (m *MockEntitlementUseCase) GrantAdmin(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockEntitlementUseCase) RevokePremium(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockEntitlementUseCase) IsAdmin(userID string) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

var _ EntitlementUseCase = (*MockEntitlementUseCase)(nil)

// MockPaymentGateway is a mock implementation of PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) ResumeSubscription(subscriptionID string) (*payments.CheckoutIntent, error) {
	args := m.Called(subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.CheckoutIntent), args.Error(1)
}

func (m *MockPaymentGateway) CreateSubscription(email, name string) (*payments.CheckoutIntent, error) {
	args := m.Called(email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.CheckoutIntent), args.Error(1)
}

func (m *MockPaymentGateway) ParseWebhook(payload []byte, sigHeader string) (*payments.WebhookEvent, error) {
	args := m.Called(payload, sigHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payments.WebhookEvent), args.Error(1)
}

var _ PaymentGateway = (*MockPaymentGateway)(nil)
