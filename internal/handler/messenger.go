package handler

import (
	"strconv"

	"wheelbot/internal/game"

	tele "gopkg.in/telebot.v3"
)

// TelebotMessenger adapts a telebot bot to the game.Messenger interface
type TelebotMessenger struct {
	bot *tele.Bot
}

// NewTelebotMessenger creates the Telegram-backed messenger
func NewTelebotMessenger(bot *tele.Bot) *TelebotMessenger {
	return &TelebotMessenger{bot: bot}
}

func (m *TelebotMessenger) Send(chatID int64, text string) (game.MessageRef, error) {
	msg, err := m.bot.Send(tele.ChatID(chatID), text, tele.ModeMarkdown)
	if err != nil {
		return game.MessageRef{}, err
	}
	return game.MessageRef{ChatID: chatID, MessageID: msg.ID}, nil
}

func (m *TelebotMessenger) Edit(ref game.MessageRef, text string) (game.MessageRef, error) {
	msg, err := m.bot.Edit(tele.StoredMessage{
		MessageID: strconv.Itoa(ref.MessageID),
		ChatID:    ref.ChatID,
	}, text, tele.ModeMarkdown)
	if err != nil {
		return ref, err
	}
	return game.MessageRef{ChatID: ref.ChatID, MessageID: msg.ID}, nil
}
