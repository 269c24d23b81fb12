package repository

import "wheelbot/internal/domain"

// SettingsRepository defines per-chat settings persistence
type SettingsRepository interface {
	GetSettings(chatID int64) (*domain.Settings, error)
	SaveSettings(s domain.Settings) error
}
