package service

import (
	"math/rand"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/repository"
)

func shippedCatalog(t *testing.T) *repository.Catalog {
	t.Helper()
	c, err := repository.LoadCatalog(filepath.Join("..", "..", "assets", "data", "catalog.json"))
	require.NoError(t, err)
	return c
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// manualTimer is a task registered with manualScheduler.
type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// manualScheduler runs tasks only when the test advances its clock.
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward and runs every due task in time order.
func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of tasks that are neither stopped nor fired.
func (s *manualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// recordingAnnouncer remembers every event it receives.
type recordingAnnouncer struct {
	mu     sync.Mutex
	events []string
}

func (a *recordingAnnouncer) record(e string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *recordingAnnouncer) Greet()     { a.record("greet") }
func (a *recordingAnnouncer) Correct()   { a.record("correct") }
func (a *recordingAnnouncer) Wrong()     { a.record("wrong") }
func (a *recordingAnnouncer) Celebrate() { a.record("celebrate") }
func (a *recordingAnnouncer) Silence()   { a.record("silence") }

func (a *recordingAnnouncer) Count(e string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, got := range a.events {
		if got == e {
			n++
		}
	}
	return n
}

// scriptedSource hands out prepared questions in order, then repeats the last one.
type scriptedSource struct {
	questions []*entities.Question
	calls     int
}

func (s *scriptedSource) Generate(entities.Mode) (*entities.Question, error) {
	i := s.calls
	if i >= len(s.questions) {
		i = len(s.questions) - 1
	}
	s.calls++
	return s.questions[i], nil
}

func brandQuestion(correct string, options ...string) *entities.Question {
	return &entities.Question{
		Mode:            entities.ModeLogo,
		Brand:           &entities.Brand{ID: correct},
		CorrectAnswerID: correct,
		Options:         options,
	}
}

// recordingSpeech collects spoken phrases.
type recordingSpeech struct {
	mu        sync.Mutex
	phrases   []string
	rates     []float64
	cancelled int
}

func (r *recordingSpeech) Speak(text string, rate float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phrases = append(r.phrases, text)
	r.rates = append(r.rates, rate)
}

func (r *recordingSpeech) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelled++
}
