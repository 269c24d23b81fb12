package handler

import (
	"strings"

	"wheelbot/internal/game"
	"wheelbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	registry    *game.Registry
	settings    *service.SettingsService
	phrasesPath string
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	registry *game.Registry,
	settings *service.SettingsService,
	phrasesPath string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		registry:    registry,
		settings:    settings,
		phrasesPath: phrasesPath,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/wof", h.handleGame)
	h.bot.Handle("/wofset", h.handleSettings)

	// every other text message is a potential guess
	h.bot.Handle(tele.OnText, h.handleText)
}

// handleText offers plain messages to the chat's game session, if any
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()
	if strings.HasPrefix(text, "/") {
		return nil
	}

	h.registry.HandleMessage(c.Chat().ID, c.Sender().ID, senderName(c.Sender()), text, c.Message().ID)
	return nil
}

// isChatAdmin reports whether the sender is the chat's creator or an admin
func (h *Handler) isChatAdmin(c tele.Context) bool {
	member, err := h.bot.ChatMemberOf(c.Chat(), c.Sender())
	if err != nil {
		h.logger.Warn("failed to check chat member role",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return false
	}
	return member.Role == tele.Creator || member.Role == tele.Administrator
}

func senderName(u *tele.User) string {
	if u.Username != "" {
		return u.Username
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
