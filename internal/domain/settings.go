package domain

// Default values applied when a chat has no stored settings
const (
	DefaultMaxScore       = 10
	DefaultTimeoutSeconds = 120
	DefaultRevealSeconds  = 4
)

// Settings holds per-chat game configuration
type Settings struct {
	ChatID         int64
	MaxScore       int
	TimeoutSeconds int
	RevealSeconds  int
	BotPlays       bool
	RevealAnswer   bool
}

// DefaultSettings returns the settings used for a chat without a stored row
func DefaultSettings(chatID int64) Settings {
	return Settings{
		ChatID:         chatID,
		MaxScore:       DefaultMaxScore,
		TimeoutSeconds: DefaultTimeoutSeconds,
		RevealSeconds:  DefaultRevealSeconds,
		BotPlays:       false,
		RevealAnswer:   true,
	}
}
