package game

import (
	"testing"
	"time"

	"wheelbot/internal/domain"
	"wheelbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func longConfig() Config {
	return Config{
		MaxScore:       10,
		IdleTimeout:    time.Minute,
		RevealInterval: time.Minute,
		GracePeriod:    time.Minute,
	}
}

func TestRegistry_StartAlreadyActive(t *testing.T) {
	fake := &fakeMessenger{}
	reg := newTestRegistry(fake)
	entries := []domain.PhraseEntry{testutil.NewTestPhrase("Words", "abcdef")}

	first, err := reg.Start(100, 42, entries, longConfig())
	assert.NoError(t, err)

	_, err = reg.Start(100, 43, entries, longConfig())
	assert.ErrorIs(t, err, ErrAlreadyActive)

	// a different channel is unaffected
	other, err := reg.Start(200, 43, entries, longConfig())
	assert.NoError(t, err)

	first.Stop()
	waitDone(t, first)
	waitRemoved(t, reg, 100)

	// once deregistered the channel can host a new game
	again, err := reg.Start(100, 42, entries, longConfig())
	assert.NoError(t, err)

	for _, s := range []*Session{other, again} {
		s.Stop()
		waitDone(t, s)
	}
}

func TestRegistry_StartEmptyPhrases(t *testing.T) {
	reg := newTestRegistry(&fakeMessenger{})

	_, err := reg.Start(100, 42, nil, longConfig())
	assert.ErrorIs(t, err, ErrNoPhrases)

	_, ok := reg.Lookup(100)
	assert.False(t, ok)
}

func TestRegistry_Lookup(t *testing.T) {
	reg := newTestRegistry(&fakeMessenger{})
	entries := []domain.PhraseEntry{testutil.NewTestPhrase("Words", "abcdef")}

	_, ok := reg.Lookup(100)
	assert.False(t, ok)

	s, err := reg.Start(100, 42, entries, longConfig())
	assert.NoError(t, err)

	found, ok := reg.Lookup(100)
	assert.True(t, ok)
	assert.Same(t, s, found)

	s.Stop()
	waitDone(t, s)
}

func TestRegistry_RemoveIdempotent(t *testing.T) {
	reg := newTestRegistry(&fakeMessenger{})

	reg.remove(100)
	reg.remove(100)

	_, ok := reg.Lookup(100)
	assert.False(t, ok)
}

func TestRegistry_HandleMessageNoSession(t *testing.T) {
	reg := newTestRegistry(&fakeMessenger{})

	// must be a silent no-op
	reg.HandleMessage(100, 7, "alice", "cat", 0)
}

func TestRegistry_HandleMessageRoutesToSession(t *testing.T) {
	fake := &fakeMessenger{}
	reg := newTestRegistry(fake)

	s, err := reg.Start(100, 42, []domain.PhraseEntry{
		testutil.NewTestPhrase("Animals", "cat"),
	}, longConfig())
	assert.NoError(t, err)

	waitForState(t, s, StateAwaitingAnswer)
	reg.HandleMessage(100, 7, "alice", "cat", 0)

	assert.Equal(t, 3, s.Scores()[7])

	s.Stop()
	waitDone(t, s)
}

func TestRegistry_StopAll(t *testing.T) {
	fake := &fakeMessenger{}
	reg := newTestRegistry(fake)
	entries := []domain.PhraseEntry{testutil.NewTestPhrase("Words", "abcdef")}

	a, err := reg.Start(100, 42, entries, longConfig())
	assert.NoError(t, err)
	b, err := reg.Start(200, 43, entries, longConfig())
	assert.NoError(t, err)

	reg.StopAll()

	assert.Equal(t, StateStopped, a.State())
	assert.Equal(t, StateStopped, b.State())
	waitRemoved(t, reg, 100)
	waitRemoved(t, reg, 200)
}
