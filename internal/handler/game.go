package handler

import (
	"errors"
	"strings"
	"time"

	"wheelbot/internal/domain"
	"wheelbot/internal/game"
	"wheelbot/internal/phrases"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleGame handles /wof and the /wof stop subcommand
func (h *Handler) handleGame(c tele.Context) error {
	if strings.TrimSpace(c.Message().Payload) == "stop" {
		return h.handleStop(c)
	}
	return h.handleStart(c)
}

// handleStart starts a game in the current chat
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID
	starter := c.Sender()

	if _, ok := h.registry.Lookup(chatID); ok {
		return c.Send("A Wheel of Fortune game is already ongoing in this channel.")
	}

	// the list is re-read per game so it can be edited without a restart;
	// a broken list fails this start attempt only
	entries, err := phrases.LoadFile(h.phrasesPath)
	if err != nil {
		h.logger.Error("failed to load phrase list",
			zap.String("path", h.phrasesPath),
			zap.Error(err),
		)
		if errors.Is(err, phrases.ErrEmptyList) {
			return c.Send("The Wheel of Fortune phrase list is empty.")
		}
		return c.Send("Error loading the Wheel of Fortune list.")
	}

	settings, err := h.settings.Get(chatID)
	if err != nil {
		h.logger.Warn("failed to load settings, using defaults",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}

	_, err = h.registry.Start(chatID, starter.ID, entries, gameConfig(settings))
	switch {
	case errors.Is(err, game.ErrAlreadyActive):
		return c.Send("A Wheel of Fortune game is already ongoing in this channel.")
	case errors.Is(err, game.ErrNoPhrases):
		return c.Send("The Wheel of Fortune phrase list is empty.")
	case err != nil:
		h.logger.Error("failed to start game",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return c.Send("Error starting the Wheel of Fortune game.")
	}

	return nil
}

// handleStop stops the chat's game. Only the starter or a chat admin may stop it.
func (h *Handler) handleStop(c tele.Context) error {
	session, ok := h.registry.Lookup(c.Chat().ID)
	if !ok {
		return c.Send("There's no Wheel of Fortune game ongoing in this channel.")
	}

	if c.Sender().ID != session.StarterID && !h.isChatAdmin(c) {
		return c.Send("You are not allowed to do that.")
	}

	session.Stop()
	return c.Send("Wheel of Fortune stopped.")
}

// gameConfig maps stored chat settings onto a game configuration
func gameConfig(s domain.Settings) game.Config {
	return game.Config{
		MaxScore:       s.MaxScore,
		IdleTimeout:    time.Duration(s.TimeoutSeconds) * time.Second,
		RevealInterval: time.Duration(s.RevealSeconds) * time.Second,
		GracePeriod:    game.DefaultGracePeriod,
		BotPlays:       s.BotPlays,
		RevealAnswer:   s.RevealAnswer,
	}
}
