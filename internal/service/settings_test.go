package service

import (
	"fmt"
	"testing"

	"wheelbot/internal/domain"
	"wheelbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestSettingsService_Get(t *testing.T) {
	stored := &domain.Settings{
		ChatID:         123,
		MaxScore:       25,
		TimeoutSeconds: 90,
		RevealSeconds:  5,
		BotPlays:       true,
		RevealAnswer:   true,
	}

	tests := []struct {
		name          string
		chatID        int64
		mockReturn    *domain.Settings
		mockError     error
		expected      domain.Settings
		expectedError bool
	}{
		{
			name:       "stored settings returned",
			chatID:     123,
			mockReturn: stored,
			expected:   *stored,
		},
		{
			name:     "defaults when nothing stored",
			chatID:   456,
			expected: domain.DefaultSettings(456),
		},
		{
			name:          "defaults with error on repo failure",
			chatID:        789,
			mockError:     fmt.Errorf("connection refused"),
			expected:      domain.DefaultSettings(789),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSettingsRepository)
			mockRepo.On("GetSettings", tt.chatID).Return(tt.mockReturn, tt.mockError)

			service := NewSettingsService(mockRepo, testutil.NewTestLogger())

			settings, err := service.Get(tt.chatID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, settings)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSettingsService_SetMaxScore(t *testing.T) {
	t.Run("rejects non-positive score", func(t *testing.T) {
		mockRepo := new(testutil.MockSettingsRepository)
		service := NewSettingsService(mockRepo, testutil.NewTestLogger())

		assert.ErrorIs(t, service.SetMaxScore(123, 0), ErrInvalidMaxScore)
		assert.ErrorIs(t, service.SetMaxScore(123, -5), ErrInvalidMaxScore)
		mockRepo.AssertNotCalled(t, "SaveSettings")
	})

	t.Run("saves defaults plus score for a new chat", func(t *testing.T) {
		mockRepo := new(testutil.MockSettingsRepository)
		mockRepo.On("GetSettings", int64(123)).Return(nil, nil)

		expected := domain.DefaultSettings(123)
		expected.MaxScore = 25
		mockRepo.On("SaveSettings", expected).Return(nil)

		service := NewSettingsService(mockRepo, testutil.NewTestLogger())

		assert.NoError(t, service.SetMaxScore(123, 25))
		mockRepo.AssertExpectations(t)
	})

	t.Run("preserves other stored fields", func(t *testing.T) {
		stored := &domain.Settings{
			ChatID:         123,
			MaxScore:       10,
			TimeoutSeconds: 90,
			RevealSeconds:  5,
			BotPlays:       true,
			RevealAnswer:   true,
		}
		mockRepo := new(testutil.MockSettingsRepository)
		mockRepo.On("GetSettings", int64(123)).Return(stored, nil)

		expected := *stored
		expected.MaxScore = 3
		mockRepo.On("SaveSettings", expected).Return(nil)

		service := NewSettingsService(mockRepo, testutil.NewTestLogger())

		assert.NoError(t, service.SetMaxScore(123, 3))
		mockRepo.AssertExpectations(t)
	})
}

func TestSettingsService_ToggleBotPlays(t *testing.T) {
	tests := []struct {
		name     string
		stored   *domain.Settings
		expected bool
	}{
		{
			name:     "off by default, toggles on",
			stored:   nil,
			expected: true,
		},
		{
			name: "on toggles off",
			stored: &domain.Settings{
				ChatID:         123,
				MaxScore:       10,
				TimeoutSeconds: 120,
				RevealSeconds:  4,
				BotPlays:       true,
				RevealAnswer:   true,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSettingsRepository)
			mockRepo.On("GetSettings", int64(123)).Return(tt.stored, nil)

			expected := domain.DefaultSettings(123)
			if tt.stored != nil {
				expected = *tt.stored
			}
			expected.BotPlays = tt.expected
			mockRepo.On("SaveSettings", expected).Return(nil)

			service := NewSettingsService(mockRepo, testutil.NewTestLogger())

			enabled, err := service.ToggleBotPlays(123)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, enabled)
			mockRepo.AssertExpectations(t)
		})
	}
}
