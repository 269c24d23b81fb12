package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wheelbot/internal/domain"
	"wheelbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleSettings handles /wofset: without arguments it shows the chat's
// settings, with arguments it mutates them (admins only)
func (h *Handler) handleSettings(c tele.Context) error {
	chatID := c.Chat().ID
	args := strings.Fields(c.Message().Payload)

	if len(args) == 0 {
		settings, err := h.settings.Get(chatID)
		if err != nil {
			h.logger.Warn("failed to load settings, showing defaults",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
		return c.Send(renderSettings(settings))
	}

	if !h.isChatAdmin(c) {
		return c.Send("You are not allowed to do that.")
	}

	switch args[0] {
	case "maxscore":
		return h.handleSetMaxScore(c, args[1:])
	case "botplays":
		return h.handleToggleBotPlays(c)
	default:
		return c.Send("Usage: /wofset [maxscore <points>|botplays]")
	}
}

func (h *Handler) handleSetMaxScore(c tele.Context, args []string) error {
	if len(args) != 1 {
		return c.Send("Usage: /wofset maxscore <points>")
	}

	score, err := strconv.Atoi(args[0])
	if err != nil {
		return c.Send("Usage: /wofset maxscore <points>")
	}

	if err := h.settings.SetMaxScore(c.Chat().ID, score); err != nil {
		if errors.Is(err, service.ErrInvalidMaxScore) {
			return c.Send("Score must be greater than 0.")
		}
		h.logger.Error("failed to save max score",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send("Failed to save settings. Try again later.")
	}

	return c.Send(fmt.Sprintf("Points required to win set to %d.", score))
}

func (h *Handler) handleToggleBotPlays(c tele.Context) error {
	enabled, err := h.settings.ToggleBotPlays(c.Chat().ID)
	if err != nil {
		h.logger.Error("failed to toggle bot plays",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send("Failed to save settings. Try again later.")
	}

	if enabled {
		return c.Send("I'll gain a point every time you don't answer in time.")
	}
	return c.Send("Alright, I won't embarrass you at Wheel of Fortune anymore.")
}

func renderSettings(s domain.Settings) string {
	return fmt.Sprintf(
		"```\nBot gains points: %t\nPoints to win: %d\nIdle timeout: %ds\nLetter reveal every: %ds\nReveal answer on timeout: %t\n```\n"+
			"Use /wofset maxscore <points> or /wofset botplays to change them.",
		s.BotPlays, s.MaxScore, s.TimeoutSeconds, s.RevealSeconds, s.RevealAnswer,
	)
}
