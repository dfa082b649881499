package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/random"
)

const distractorCount = 3

var (
	ErrCatalogInsufficient = errors.New("catalog has too few entries for a question")
	ErrUnknownMode         = errors.New("unknown question mode")
)

func brandKey(b *entities.Brand) string { return b.ID }

func carKey(c *entities.Car) string { return c.ID }

// QuestionGenerator builds randomized questions from a catalog.
// It is not safe for concurrent use: each session owns its generator.
type QuestionGenerator struct {
	catalog Catalog
	rng     *rand.Rand
}

// NewQuestionGenerator creates a generator that draws from catalog using rng.
func NewQuestionGenerator(catalog Catalog, rng *rand.Rand) *QuestionGenerator {
	return &QuestionGenerator{
		catalog: catalog,
		rng:     rng,
	}
}

// Generate builds a question of the given mode.
func (g *QuestionGenerator) Generate(mode entities.Mode) (*entities.Question, error) {
	switch mode {
	case entities.ModeLogo, entities.ModeBrand:
		return g.brandQuestion(mode)
	case entities.ModeSpec:
		return g.specQuestion()
	case entities.ModeCompare:
		return g.compareQuestion()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// brandQuestion serves both logo and brand modes; they differ only in
// what presentation shows as the prompt and as the option labels.
func (g *QuestionGenerator) brandQuestion(mode entities.Mode) (*entities.Question, error) {
	brands := g.catalog.AllBrands()
	if len(brands) < distractorCount+1 {
		return nil, fmt.Errorf("%w: %d brands", ErrCatalogInsufficient, len(brands))
	}

	correct, _ := random.Pick(g.rng, brands)
	distractors := random.PickExcluding(g.rng, brands, distractorCount, brandKey, correct.ID)

	ids := make([]string, 0, distractorCount+1)
	ids = append(ids, correct.ID)
	for _, d := range distractors {
		ids = append(ids, d.ID)
	}

	return &entities.Question{
		Mode:            mode,
		Brand:           correct,
		CorrectAnswerID: correct.ID,
		Options:         random.Shuffle(g.rng, ids),
	}, nil
}

func (g *QuestionGenerator) specQuestion() (*entities.Question, error) {
	cars := g.catalog.AllCars()
	if len(cars) < distractorCount+1 {
		return nil, fmt.Errorf("%w: %d cars", ErrCatalogInsufficient, len(cars))
	}

	correct, _ := random.Pick(g.rng, cars)
	distractors := random.PickExcluding(g.rng, cars, distractorCount, carKey, correct.ID)

	ids := make([]string, 0, distractorCount+1)
	ids = append(ids, correct.ID)
	for _, d := range distractors {
		ids = append(ids, d.ID)
	}

	return &entities.Question{
		Mode:            entities.ModeSpec,
		Car:             correct,
		CorrectAnswerID: correct.ID,
		Options:         random.Shuffle(g.rng, ids),
	}, nil
}

func (g *QuestionGenerator) compareQuestion() (*entities.Question, error) {
	cars := g.catalog.AllCars()
	if len(cars) < 2 {
		return nil, fmt.Errorf("%w: %d cars", ErrCatalogInsufficient, len(cars))
	}

	shuffled := random.Shuffle(g.rng, cars)
	first, second := pickRivals(shuffled)

	attr, _ := random.Pick(g.rng, entities.Attributes())
	winner := attr.Winner(first, second)

	return &entities.Question{
		Mode:            entities.ModeCompare,
		Car:             first,
		Rival:           second,
		Attribute:       attr,
		CorrectAnswerID: winner.ID,
		Options:         random.Shuffle(g.rng, []string{first.ID, second.ID}),
	}, nil
}

// pickRivals takes the first car and the first later car that differs from it
// on every comparable attribute. Without such a car it falls back to the
// second element, which may produce a tie on the drawn attribute.
func pickRivals(shuffled []*entities.Car) (*entities.Car, *entities.Car) {
	first := shuffled[0]
	for _, c := range shuffled[1:] {
		if distinguishable(first, c) {
			return first, c
		}
	}
	return first, shuffled[1]
}

func distinguishable(a, b *entities.Car) bool {
	return a.Acceleration != b.Acceleration &&
		a.Horsepower != b.Horsepower &&
		a.TopSpeed != b.TopSpeed
}
