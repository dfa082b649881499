package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

type fixedSource struct{}

func (fixedSource) Generate(mode entities.Mode) (*entities.Question, error) {
	return &entities.Question{
		Mode:            mode,
		CorrectAnswerID: "a",
		Options:         []string{"a", "b", "c", "d"},
	}, nil
}

type silentAnnouncer struct{}

func (silentAnnouncer) Greet()     {}
func (silentAnnouncer) Correct()   {}
func (silentAnnouncer) Wrong()     {}
func (silentAnnouncer) Celebrate() {}
func (silentAnnouncer) Silence()   {}

func newStartedSession(t *testing.T, id string) *service.Session {
	t.Helper()
	s := service.NewSession(id, entities.ModeLogo, service.DefaultSessionConfig(), fixedSource{},
		silentAnnouncer{}, service.RealScheduler{}, zap.NewNop())
	require.NoError(t, s.Start())
	return s
}

func TestSessionStorage(t *testing.T) {
	st := NewSessionStorage(time.Minute)

	s := newStartedSession(t, "s1")
	st.Store(s)
	assert.Equal(t, 1, st.Len())

	got, ok := st.Get("s1")
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("missing")
	assert.False(t, ok)

	assert.True(t, st.Delete("s1"))
	assert.False(t, st.Delete("s1"))
	assert.Zero(t, st.Len())
	assert.Equal(t, entities.StateClosed, s.Snapshot().State)
}

func TestSessionStorageReplaceLeavesPrevious(t *testing.T) {
	st := NewSessionStorage(time.Minute)

	old := newStartedSession(t, "s1")
	st.Store(old)
	fresh := newStartedSession(t, "s1")
	st.Store(fresh)

	assert.Equal(t, 1, st.Len())
	assert.Equal(t, entities.StateClosed, old.Snapshot().State)
	assert.Equal(t, entities.StateUnanswered, fresh.Snapshot().State)
}

func TestSessionStorageSweepIdle(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewSessionStorage(10 * time.Minute)
	st.now = func() time.Time { return now }

	idle := newStartedSession(t, "idle")
	active := newStartedSession(t, "active")
	st.Store(idle)
	st.Store(active)

	now = now.Add(8 * time.Minute)
	_, _ = st.Get("active")

	now = now.Add(5 * time.Minute)
	assert.Equal(t, 1, st.SweepIdle())

	_, ok := st.Get("idle")
	assert.False(t, ok)
	_, ok = st.Get("active")
	assert.True(t, ok)
	assert.Equal(t, entities.StateClosed, idle.Snapshot().State)
}

func TestSessionStorageOnEvict(t *testing.T) {
	st := NewSessionStorage(time.Minute)

	var evicted []string
	st.OnEvict(func(id string) { evicted = append(evicted, id) })

	st.Store(newStartedSession(t, "s1"))
	st.Store(newStartedSession(t, "s2"))
	st.Delete("s1")

	st.now = func() time.Time { return time.Now().Add(time.Hour) }
	st.SweepIdle()

	assert.Equal(t, []string{"s1", "s2"}, evicted)
}
