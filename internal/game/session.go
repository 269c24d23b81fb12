package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"wheelbot/internal/domain"

	"go.uber.org/zap"
)

// State is the lifecycle state of a session
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingAnswer State = "awaiting_answer"
	StateAnswerRevealed State = "answer_revealed"
	StateStopped        State = "stopped"
)

// DefaultGracePeriod is the pause between a question's results and the next question
const DefaultGracePeriod = 3 * time.Second

// Config controls a single game
type Config struct {
	MaxScore       int
	IdleTimeout    time.Duration
	RevealInterval time.Duration
	GracePeriod    time.Duration
	BotPlays       bool
	RevealAnswer   bool
}

var failMessages = []string{
	"To the next one I guess...",
	"Moving on...",
	"I'm sure you'll know the answer of the next one.",
	"Next one.",
}

const stoppedMessage = "Done so soon? See you next time!"

// Session runs one Wheel of Fortune game in a single chat.
// All chat output for the game goes through its Messenger; all mutable
// state is guarded by mu because guesses arrive from the dispatch
// goroutine while the run loop owns the timing.
type Session struct {
	ChannelID int64
	StarterID int64

	cfg     Config
	msgr    Messenger
	logger  *zap.Logger
	botID   int64
	botName string
	rnd     *rand.Rand

	ctx    context.Context
	cancel context.CancelFunc
	wake   chan struct{}
	done   chan struct{}

	mu            sync.Mutex
	state         State
	bag           []domain.PhraseEntry
	answer        string
	category      string
	mask          map[rune]struct{}
	guessed       bool
	scores        map[int64]int
	names         map[int64]string
	lastActivity  time.Time
	questionCount int
	renderRef     *MessageRef
}

func newSession(channelID, starterID int64, entries []domain.PhraseEntry, cfg Config, msgr Messenger, botID int64, botName string, logger *zap.Logger) *Session {
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}

	bag := make([]domain.PhraseEntry, len(entries))
	copy(bag, entries)

	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		ChannelID:    channelID,
		StarterID:    starterID,
		cfg:          cfg,
		msgr:         msgr,
		logger:       logger,
		botID:        botID,
		botName:      botName,
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
		ctx:          ctx,
		cancel:       cancel,
		wake:         make(chan struct{}, 1),
		done:         make(chan struct{}),
		state:        StateIdle,
		bag:          bag,
		scores:       make(map[int64]int),
		names:        make(map[int64]string),
		lastActivity: time.Now(),
	}
}

// State returns the session's current lifecycle state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed when the session's run loop has exited
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Scores returns a snapshot of the current scores by player id
func (s *Session) Scores() map[int64]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]int, len(s.scores))
	for id, score := range s.scores {
		out[id] = score
	}
	return out
}

// Stop ends the game. It is idempotent and takes effect before the next
// reveal tick or question transition.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		return
	}
	s.state = StateStopped
	s.mu.Unlock()
	s.cancel()
}

// CheckAnswer scores an incoming chat message against the active question.
// Only a case-insensitive exact match on the full answer counts, and only
// while the question is still open; the award equals the number of letters
// still masked at receipt, so the first matching guess wins everything.
// messageID is the incoming message's id; once chat has moved past the
// tracked render, the next render is posted fresh instead of edited.
func (s *Session) CheckAnswer(senderID int64, senderName, text string, messageID int) {
	if senderID == s.botID {
		return
	}

	s.mu.Lock()
	if s.renderRef != nil && messageID > s.renderRef.MessageID {
		s.renderRef = nil
	}
	if s.state != StateAwaitingAnswer || len(s.mask) == 0 || !strings.EqualFold(text, s.answer) {
		s.mu.Unlock()
		return
	}
	points := len(s.mask)
	s.scores[senderID] += points
	s.names[senderID] = senderName
	s.state = StateAnswerRevealed
	s.guessed = true
	s.lastActivity = time.Now()
	s.mu.Unlock()

	s.post(fmt.Sprintf("You got it %s! *+%d* to you!", senderName, points))
	s.signal()
}

// run drives the whole game and must be the only goroutine calling the
// question loop. A panic anywhere in the loop forces the session to
// Stopped so the registry entry is never left dangling.
func (s *Session) run() {
	defer close(s.done)
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("game loop panicked",
				zap.Int64("chat_id", s.ChannelID),
				zap.Any("panic", r),
			)
			s.Stop()
		}
	}()

	for s.playQuestion() {
	}
}

// playQuestion runs one full question and reports whether the game continues
func (s *Session) playQuestion() bool {
	if !s.drawPhrase() {
		s.mu.Lock()
		stopped := s.state == StateStopped
		s.mu.Unlock()
		if stopped {
			return false
		}
		s.post("No more phrases, game is over!")
		s.finish()
		return false
	}

	s.mu.Lock()
	number := s.questionCount
	s.mu.Unlock()

	s.post(fmt.Sprintf("*Phrase number %d!*", number))
	s.render()

	if !s.revealLoop() {
		return false
	}

	// resolve the question: reveal the answer as a fresh post
	s.mu.Lock()
	if s.state == StateAwaitingAnswer {
		s.state = StateAnswerRevealed
	}
	s.mask = make(map[rune]struct{})
	guessed := s.guessed
	s.renderRef = nil
	s.mu.Unlock()

	s.post("The answer was:")
	s.render()

	if !guessed {
		s.post(failMessages[s.rnd.Intn(len(failMessages))])
		if s.cfg.BotPlays {
			s.mu.Lock()
			s.scores[s.botID]++
			s.names[s.botID] = s.botName
			s.mu.Unlock()
			s.post("*+1* for me!")
		}
	}

	s.mu.Lock()
	won := false
	for _, score := range s.scores {
		if score >= s.cfg.MaxScore {
			won = true
			break
		}
	}
	rows := s.scoreRowsLocked()
	s.mu.Unlock()

	if won {
		s.post("We have a winner! Final results:")
		s.finish()
		return false
	}

	s.post("Current score is:")
	s.post(renderScores(rows))

	s.wait(s.cfg.GracePeriod)

	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		s.post(stoppedMessage)
		return false
	}
	s.state = StateIdle
	s.mu.Unlock()
	return true
}

// drawPhrase picks a random entry from the bag without replacement and
// arms the next question. It reports false when the bag is empty or the
// game has been stopped. The idle clock is deliberately untouched: only
// a correct guess counts as activity, so a silent chat runs out of time
// no matter how many questions resolve on their own.
func (s *Session) drawPhrase() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateStopped || len(s.bag) == 0 {
		return false
	}

	i := s.rnd.Intn(len(s.bag))
	entry := s.bag[i]
	s.bag = append(s.bag[:i], s.bag[i+1:]...)

	s.answer = entry.Answer
	s.category = entry.Category
	s.mask = maskLetters(entry.Answer)
	s.guessed = false
	s.state = StateAwaitingAnswer
	s.questionCount++
	s.renderRef = nil

	return true
}

// revealLoop uncovers one masked letter per interval until the question
// resolves. It reports false when the whole game should end.
func (s *Session) revealLoop() bool {
	for {
		fired := s.wait(s.cfg.RevealInterval)

		s.mu.Lock()
		if s.state == StateStopped {
			s.mu.Unlock()
			s.post(stoppedMessage)
			return false
		}
		if s.state != StateAwaitingAnswer || len(s.mask) == 0 {
			s.mu.Unlock()
			return true
		}
		if time.Since(s.lastActivity) >= s.cfg.IdleTimeout {
			s.state = StateStopped
			s.mu.Unlock()
			s.post("Guys...? Well, I guess I'll stop then.")
			s.cancel()
			return false
		}
		if !fired {
			s.mu.Unlock()
			continue
		}
		s.removeRandomLetterLocked()
		empty := len(s.mask) == 0
		s.mu.Unlock()

		s.render()
		if empty {
			return true
		}
	}
}

// finish moves the session to Stopped and posts the final score table
func (s *Session) finish() {
	s.mu.Lock()
	s.state = StateStopped
	rows := s.scoreRowsLocked()
	s.mu.Unlock()

	if len(rows) > 0 {
		s.post(renderScores(rows))
	}
	s.cancel()
}

// wait blocks for d. It returns true when the full interval elapsed and
// false when the session was woken early by a guess or a stop.
func (s *Session) wait(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.wake:
		return false
	case <-s.ctx.Done():
		return false
	}
}

// signal wakes the run loop out of its current wait
func (s *Session) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Session) removeRandomLetterLocked() {
	if len(s.mask) == 0 {
		return
	}
	n := s.rnd.Intn(len(s.mask))
	for r := range s.mask {
		if n == 0 {
			delete(s.mask, r)
			return
		}
		n--
	}
}

func (s *Session) scoreRowsLocked() []ScoreRow {
	rows := make([]ScoreRow, 0, len(s.scores))
	for id, score := range s.scores {
		name := s.names[id]
		if name == "" {
			name = fmt.Sprintf("player %d", id)
		}
		rows = append(rows, ScoreRow{Name: name, Score: score})
	}
	return rows
}

// render posts the phrase box, editing the tracked message in place when
// one exists so the chat is not flooded with renders
func (s *Session) render() {
	s.mu.Lock()
	content := renderPhrase(s.answer, s.category, s.mask)
	ref := s.renderRef
	s.mu.Unlock()

	if ref == nil {
		newRef, err := s.msgr.Send(s.ChannelID, content)
		if err != nil {
			s.logger.Warn("failed to post phrase render",
				zap.Int64("chat_id", s.ChannelID),
				zap.Error(err),
			)
			return
		}
		s.mu.Lock()
		s.renderRef = &newRef
		s.mu.Unlock()
		return
	}

	if _, err := s.msgr.Edit(*ref, content); err != nil {
		s.logger.Warn("failed to edit phrase render",
			zap.Int64("chat_id", s.ChannelID),
			zap.Error(err),
		)
	}
}

func (s *Session) post(text string) {
	if _, err := s.msgr.Send(s.ChannelID, text); err != nil {
		s.logger.Warn("failed to send message",
			zap.Int64("chat_id", s.ChannelID),
			zap.Error(err),
		)
	}
}
