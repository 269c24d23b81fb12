package service

import (
	"errors"

	"wheelbot/internal/domain"
	"wheelbot/internal/repository"

	"go.uber.org/zap"
)

// ErrInvalidMaxScore is returned when a max score of zero or less is requested
var ErrInvalidMaxScore = errors.New("max score must be greater than zero")

// SettingsService handles per-chat game settings
type SettingsService struct {
	repo   repository.SettingsRepository
	logger *zap.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the chat's settings, falling back to defaults when the chat
// has none stored. On a repository error the defaults are returned along
// with the error so a game can still start.
func (s *SettingsService) Get(chatID int64) (domain.Settings, error) {
	stored, err := s.repo.GetSettings(chatID)
	if err != nil {
		return domain.DefaultSettings(chatID), err
	}
	if stored == nil {
		return domain.DefaultSettings(chatID), nil
	}
	return *stored, nil
}

// SetMaxScore updates the points required to win for a chat
func (s *SettingsService) SetMaxScore(chatID int64, score int) error {
	if score <= 0 {
		return ErrInvalidMaxScore
	}

	settings, err := s.Get(chatID)
	if err != nil {
		return err
	}

	settings.MaxScore = score
	if err := s.repo.SaveSettings(settings); err != nil {
		return err
	}

	s.logger.Info("max score updated",
		zap.Int64("chat_id", chatID),
		zap.Int("max_score", score),
	)
	return nil
}

// ToggleBotPlays flips whether the bot scores a point on unanswered
// questions and returns the new value
func (s *SettingsService) ToggleBotPlays(chatID int64) (bool, error) {
	settings, err := s.Get(chatID)
	if err != nil {
		return false, err
	}

	settings.BotPlays = !settings.BotPlays
	if err := s.repo.SaveSettings(settings); err != nil {
		return false, err
	}

	s.logger.Info("bot plays toggled",
		zap.Int64("chat_id", chatID),
		zap.Bool("bot_plays", settings.BotPlays),
	)
	return settings.BotPlays, nil
}
