package postgres

import (
	"database/sql"

	"wheelbot/internal/domain"
)

// SettingsRepo implements repository.SettingsRepository
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// GetSettings returns the stored settings for a chat, or nil when the
// chat has never saved any
func (r *SettingsRepo) GetSettings(chatID int64) (*domain.Settings, error) {
	var s domain.Settings
	query := `
		SELECT chat_id, max_score, timeout_seconds, reveal_seconds, bot_plays, reveal_answer
		FROM channel_settings
		WHERE chat_id = $1
	`
	err := r.db.QueryRow(query, chatID).Scan(
		&s.ChatID, &s.MaxScore, &s.TimeoutSeconds, &s.RevealSeconds, &s.BotPlays, &s.RevealAnswer,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// SaveSettings upserts the chat's settings row
func (r *SettingsRepo) SaveSettings(s domain.Settings) error {
	query := `
		INSERT INTO channel_settings (chat_id, max_score, timeout_seconds, reveal_seconds, bot_plays, reveal_answer)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (chat_id) DO UPDATE SET
			max_score = EXCLUDED.max_score,
			timeout_seconds = EXCLUDED.timeout_seconds,
			reveal_seconds = EXCLUDED.reveal_seconds,
			bot_plays = EXCLUDED.bot_plays,
			reveal_answer = EXCLUDED.reveal_answer
	`
	_, err := r.db.Exec(query, s.ChatID, s.MaxScore, s.TimeoutSeconds, s.RevealSeconds, s.BotPlays, s.RevealAnswer)
	return err
}
