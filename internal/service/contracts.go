package service

import (
	"context"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

// Catalog is the read-only source of brands and cars.
type Catalog interface {
	AllBrands() []*entities.Brand
	AllCars() []*entities.Car
	BrandByID(id string) (*entities.Brand, bool)
	CarByID(id string) (*entities.Car, bool)
	CarsByBrand(brandID string) []*entities.Car
}

// SpeechNotifier speaks short phrases. Calls are fire-and-forget.
type SpeechNotifier interface {
	Speak(text string, rate float64)
}

// SpeechFunc adapts a function to SpeechNotifier.
type SpeechFunc func(text string, rate float64)

// Speak calls f(text, rate).
func (f SpeechFunc) Speak(text string, rate float64) { f(text, rate) }

// Announcer turns game events into spoken feedback.
type Announcer interface {
	Greet()
	Correct()
	Wrong()
	Celebrate()
	Silence()
}

// Presenter receives a snapshot after every session transition.
type Presenter interface {
	Present(snapshot entities.Snapshot)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(snapshot entities.Snapshot)

// Present calls f(snapshot).
func (f PresenterFunc) Present(snapshot entities.Snapshot) { f(snapshot) }

// PlayerRepository records who plays the game.
type PlayerRepository interface {
	Save(ctx context.Context, player *entities.Player) (bool, error)
}

// SessionSweeper evicts idle sessions.
type SessionSweeper interface {
	SweepIdle() int
}
