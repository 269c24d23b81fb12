package testutil

import (
	"wheelbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSettingsRepository is a mock for SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(chatID int64) (*domain.Settings, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(s domain.Settings) error {
	args := m.Called(s)
	return args.Error(0)
}
