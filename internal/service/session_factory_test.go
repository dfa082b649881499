package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

func TestSessionFactoryNew(t *testing.T) {
	factory := NewSessionFactory(shippedCatalog(t), DefaultSessionConfig(), &manualScheduler{}, "Luca", 9, zap.NewNop())

	speech := &recordingSpeech{}
	s, err := factory.New("s1", entities.ModeSpec, speech)
	require.NoError(t, err)

	assert.Equal(t, "s1", s.ID())
	assert.Equal(t, entities.ModeSpec, s.Mode())
	assert.Equal(t, entities.StateIdle, s.Snapshot().State)

	require.NoError(t, s.Start())
	assert.Equal(t, []string{"Let's go, Luca!"}, speech.phrases)
	assert.Equal(t, entities.ModeSpec, s.Snapshot().Question.Mode)
}

func TestSessionFactoryRejectsUnknownMode(t *testing.T) {
	factory := NewSessionFactory(shippedCatalog(t), DefaultSessionConfig(), RealScheduler{}, "Luca", 0, zap.NewNop())

	_, err := factory.New("s1", "quiz", &recordingSpeech{})
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestSessionFactorySeedIsReproducible(t *testing.T) {
	catalog := shippedCatalog(t)
	first := NewSessionFactory(catalog, DefaultSessionConfig(), &manualScheduler{}, "Luca", 123, zap.NewNop())
	second := NewSessionFactory(catalog, DefaultSessionConfig(), &manualScheduler{}, "Luca", 123, zap.NewNop())

	for i := 0; i < 3; i++ {
		a, err := first.New("a", entities.ModeLogo, &recordingSpeech{})
		require.NoError(t, err)
		b, err := second.New("b", entities.ModeLogo, &recordingSpeech{})
		require.NoError(t, err)

		require.NoError(t, a.Start())
		require.NoError(t, b.Start())
		assert.Equal(t, a.Snapshot().Question.Options, b.Snapshot().Question.Options)
	}
}

func TestSessionWithRealScheduler(t *testing.T) {
	cfg := SessionConfig{
		IdentifyDelay:    10 * time.Millisecond,
		DetailDelay:      20 * time.Millisecond,
		CelebrationDelay: 5 * time.Millisecond,
		CelebrationEvery: 5,
	}
	factory := NewSessionFactory(shippedCatalog(t), cfg, RealScheduler{}, "Luca", 1, zap.NewNop())

	s, err := factory.New("s1", entities.ModeLogo, &recordingSpeech{})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	out := s.Submit(s.Snapshot().Question.CorrectAnswerID)
	require.True(t, out.Correct)

	assert.Eventually(t, func() bool {
		snap := s.Snapshot()
		return snap.Round == 2 && snap.State == entities.StateUnanswered
	}, time.Second, 5*time.Millisecond)

	s.Leave()
	assert.Equal(t, entities.StateClosed, s.Snapshot().State)
}
