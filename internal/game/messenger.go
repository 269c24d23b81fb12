package game

// MessageRef identifies a message previously posted to a chat,
// so it can be edited in place.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Messenger is the outbound side of the chat transport.
// The game only needs to post messages and edit ones it posted before.
type Messenger interface {
	Send(chatID int64, text string) (MessageRef, error)
	Edit(ref MessageRef, text string) (MessageRef, error)
}
