package service

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/rpedroni/project-luca-car-trivia/internal/random"
)

const (
	normalRate      = 1.0
	celebrationRate = 0.9
)

var (
	correctPhrases = []string{
		"Correct!",
		"Yes!",
		"Nice!",
		"Great!",
		"Right!",
		"Perfect!",
		"Awesome!",
		"Excellent!",
	}

	wrongPhrases = []string{
		"Try again!",
		"Not quite!",
		"Oops!",
		"Almost!",
		"Close!",
	}

	// {name} is replaced with the player name.
	celebrationPhrases = []string{
		"Amazing, {name}!",
		"You are on fire!",
		"Incredible driving knowledge!",
		"Supercar expert!",
		"{name}, the car master!",
		"Unbelievable!",
		"Racing champion!",
		"Speed demon!",
	}
)

// PhraseAnnouncer picks a random phrase for each game event and hands it to a
// SpeechNotifier.
type PhraseAnnouncer struct {
	notifier   SpeechNotifier
	playerName string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPhraseAnnouncer creates an announcer that addresses playerName.
func NewPhraseAnnouncer(notifier SpeechNotifier, playerName string, rng *rand.Rand) *PhraseAnnouncer {
	return &PhraseAnnouncer{
		notifier:   notifier,
		playerName: playerName,
		rng:        rng,
	}
}

// Greet welcomes the player at the start of a session.
func (a *PhraseAnnouncer) Greet() {
	a.notifier.Speak(fmt.Sprintf("Let's go, %s!", a.playerName), normalRate)
}

// Correct praises a correct answer.
func (a *PhraseAnnouncer) Correct() {
	a.notifier.Speak(a.pick(correctPhrases), normalRate)
}

// Wrong encourages after a wrong answer.
func (a *PhraseAnnouncer) Wrong() {
	a.notifier.Speak(a.pick(wrongPhrases), normalRate)
}

// Celebrate cheers a streak milestone, a little slower than normal speech.
func (a *PhraseAnnouncer) Celebrate() {
	phrase := strings.ReplaceAll(a.pick(celebrationPhrases), "{name}", a.playerName)
	a.notifier.Speak(phrase, celebrationRate)
}

// Silence stops ongoing speech if the notifier supports it.
func (a *PhraseAnnouncer) Silence() {
	if c, ok := a.notifier.(interface{ Cancel() }); ok {
		c.Cancel()
	}
}

func (a *PhraseAnnouncer) pick(phrases []string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, _ := random.Pick(a.rng, phrases)
	return p
}
