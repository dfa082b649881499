package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

// SessionFactory wires new sessions to the catalog, the scheduler and a
// speech notifier.
type SessionFactory struct {
	catalog    Catalog
	cfg        SessionConfig
	scheduler  Scheduler
	playerName string
	seed       int64
	logger     *zap.Logger

	mu  sync.Mutex
	seq int64
}

// NewSessionFactory creates a factory. A zero seed seeds every session from
// the clock; a non-zero seed makes the question sequence of the n-th session
// reproducible.
func NewSessionFactory(
	catalog Catalog,
	cfg SessionConfig,
	scheduler Scheduler,
	playerName string,
	seed int64,
	logger *zap.Logger,
) *SessionFactory {
	return &SessionFactory{
		catalog:    catalog,
		cfg:        cfg,
		scheduler:  scheduler,
		playerName: playerName,
		seed:       seed,
		logger:     logger,
	}
}

// New creates an idle session for mode that speaks through notifier.
func (f *SessionFactory) New(id string, mode entities.Mode, notifier SpeechNotifier) (*Session, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	seed := f.nextSeed()
	generator := NewQuestionGenerator(f.catalog, rand.New(rand.NewSource(seed)))
	announcer := NewPhraseAnnouncer(notifier, f.playerName, rand.New(rand.NewSource(seed+1)))

	return NewSession(id, mode, f.cfg, generator, announcer, f.scheduler, f.logger), nil
}

func (f *SessionFactory) nextSeed() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	if f.seed != 0 {
		return f.seed + 2*f.seq
	}
	return time.Now().UnixNano() + 2*f.seq
}
