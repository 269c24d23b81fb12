package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequestLogger creates middleware that logs every incoming update
// before it reaches a handler
func RequestLogger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Chat() != nil && c.Sender() != nil {
				logger.Debug("update received",
					zap.Int64("chat_id", c.Chat().ID),
					zap.Int64("user_id", c.Sender().ID),
					zap.String("text", c.Text()),
				)
			}
			return next(c)
		}
	}
}
