package testutil

import (
	"wheelbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPhrase creates a phrase entry for tests
func NewTestPhrase(category, answer string) domain.PhraseEntry {
	return domain.PhraseEntry{
		Category: category,
		Answer:   answer,
	}
}

// NewTestSettings creates chat settings with defaults for tests
func NewTestSettings(chatID int64) domain.Settings {
	return domain.DefaultSettings(chatID)
}
