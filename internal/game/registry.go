package game

import (
	"errors"
	"sync"

	"wheelbot/internal/domain"

	"go.uber.org/zap"
)

var (
	// ErrAlreadyActive is returned when a chat already has a running game
	ErrAlreadyActive = errors.New("a game is already active in this channel")
	// ErrNoPhrases is returned when a game is started with an empty phrase list
	ErrNoPhrases = errors.New("phrase list is empty")
)

// Registry tracks at most one active Session per chat
type Registry struct {
	msgr    Messenger
	logger  *zap.Logger
	botID   int64
	botName string

	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewRegistry creates a session registry. botID identifies the bot's own
// user so its messages are never scored; botName labels its scoreboard row.
func NewRegistry(msgr Messenger, botID int64, botName string, logger *zap.Logger) *Registry {
	return &Registry{
		msgr:     msgr,
		logger:   logger,
		botID:    botID,
		botName:  botName,
		sessions: make(map[int64]*Session),
	}
}

// Start registers a new session for the chat and launches its run loop.
// The entries slice is copied, so callers can reuse their phrase list
// across games.
func (r *Registry) Start(channelID, starterID int64, entries []domain.PhraseEntry, cfg Config) (*Session, error) {
	if len(entries) == 0 {
		return nil, ErrNoPhrases
	}

	r.mu.Lock()
	if _, ok := r.sessions[channelID]; ok {
		r.mu.Unlock()
		return nil, ErrAlreadyActive
	}
	s := newSession(channelID, starterID, entries, cfg, r.msgr, r.botID, r.botName, r.logger)
	r.sessions[channelID] = s
	r.mu.Unlock()

	go func() {
		s.run()
		r.remove(channelID)
	}()

	r.logger.Info("game started",
		zap.Int64("chat_id", channelID),
		zap.Int64("starter_id", starterID),
		zap.Int("phrases", len(entries)),
	)

	return s, nil
}

// Lookup returns the active session for the chat, if any
func (r *Registry) Lookup(channelID int64) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[channelID]
	return s, ok
}

// remove drops the chat's registry entry. Idempotent; called once the
// session's run loop has exited.
func (r *Registry) remove(channelID int64) {
	r.mu.Lock()
	_, ok := r.sessions[channelID]
	delete(r.sessions, channelID)
	r.mu.Unlock()

	if ok {
		r.logger.Info("game ended", zap.Int64("chat_id", channelID))
	}
}

// HandleMessage offers an incoming chat message to the chat's session.
// No-op when the chat has no active game.
func (r *Registry) HandleMessage(channelID, senderID int64, senderName, text string, messageID int) {
	if s, ok := r.Lookup(channelID); ok {
		s.CheckAnswer(senderID, senderName, text, messageID)
	}
}

// StopAll stops every active session and waits for the loops to exit.
// Used during shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.Unlock()

	for _, s := range sessions {
		s.Stop()
		<-s.Done()
	}
}
