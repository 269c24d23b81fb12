package handler

import (
	"testing"
	"time"

	"wheelbot/internal/domain"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestSenderName(t *testing.T) {
	tests := []struct {
		name     string
		user     *tele.User
		expected string
	}{
		{
			name:     "username preferred",
			user:     &tele.User{Username: "alice", FirstName: "Alice", LastName: "Smith"},
			expected: "alice",
		},
		{
			name:     "full name fallback",
			user:     &tele.User{FirstName: "Alice", LastName: "Smith"},
			expected: "Alice Smith",
		},
		{
			name:     "first name only",
			user:     &tele.User{FirstName: "Alice"},
			expected: "Alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, senderName(tt.user))
		})
	}
}

func TestGameConfig(t *testing.T) {
	settings := domain.Settings{
		ChatID:         123,
		MaxScore:       25,
		TimeoutSeconds: 90,
		RevealSeconds:  5,
		BotPlays:       true,
		RevealAnswer:   true,
	}

	cfg := gameConfig(settings)

	assert.Equal(t, 25, cfg.MaxScore)
	assert.Equal(t, 90*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 5*time.Second, cfg.RevealInterval)
	assert.True(t, cfg.BotPlays)
	assert.True(t, cfg.RevealAnswer)
}

func TestRenderSettings(t *testing.T) {
	result := renderSettings(domain.DefaultSettings(123))

	assert.Contains(t, result, "Bot gains points: false")
	assert.Contains(t, result, "Points to win: 10")
	assert.Contains(t, result, "Idle timeout: 120s")
	assert.Contains(t, result, "Letter reveal every: 4s")
	assert.Contains(t, result, "Reveal answer on timeout: true")
}
