package httpapi

import (
	"strconv"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

type modeView struct {
	ID          entities.Mode `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

type specView struct {
	Horsepower   string `json:"horsepower"`
	Acceleration string `json:"acceleration"`
	TopSpeed     string `json:"topSpeed"`
	Type         string `json:"type"`
	Price        string `json:"price"`
}

type optionView struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Value    string `json:"value,omitempty"` // compared value, revealed once answered
	Mark     string `json:"mark,omitempty"`
}

type questionView struct {
	Prompt  string       `json:"prompt"`
	Hint    string       `json:"hint,omitempty"`
	LogoURL string       `json:"logoUrl,omitempty"`
	Subject string       `json:"subject,omitempty"`
	Specs   *specView    `json:"specs,omitempty"`
	Options []optionView `json:"options"`
}

type sessionView struct {
	ID             string        `json:"id"`
	Mode           entities.Mode `json:"mode"`
	State          string        `json:"state"`
	Round          int           `json:"round"`
	Score          int           `json:"score"`
	Streak         int           `json:"streak"`
	BestStreak     int           `json:"bestStreak"`
	Attempts       int           `json:"attempts"`
	LockedAnswerID string        `json:"lockedAnswerId,omitempty"`
	Question       *questionView `json:"question,omitempty"`
	Speech         []Utterance   `json:"speech"`
	Accepted       *bool         `json:"accepted,omitempty"`
	Correct        *bool         `json:"correct,omitempty"`
}

func renderSession(snap entities.Snapshot, catalog service.Catalog, speech []Utterance) sessionView {
	return sessionView{
		ID:             snap.SessionID,
		Mode:           snap.Mode,
		State:          string(snap.State),
		Round:          snap.Round,
		Score:          snap.Score,
		Streak:         snap.Streak,
		BestStreak:     snap.BestStreak,
		Attempts:       snap.Attempts,
		LockedAnswerID: snap.LockedAnswerID,
		Question:       renderQuestion(snap, catalog),
		Speech:         speech,
	}
}

func renderQuestion(snap entities.Snapshot, catalog service.Catalog) *questionView {
	q := snap.Question
	if q == nil {
		return nil
	}

	v := &questionView{Options: make([]optionView, 0, len(q.Options))}

	switch q.Mode {
	case entities.ModeLogo:
		v.Prompt = "Which brand is this?"
		if q.Brand != nil {
			v.LogoURL = q.Brand.LogoURL
		}
	case entities.ModeBrand:
		v.Prompt = "Find the logo for"
		if q.Brand != nil {
			v.Subject = q.Brand.Name
		}
	case entities.ModeSpec:
		v.Prompt = "Which car has these specs?"
		if q.Car != nil {
			v.Specs = &specView{
				Horsepower:   q.Car.HorsepowerLabel(),
				Acceleration: q.Car.AccelerationLabel(),
				TopSpeed:     q.Car.TopSpeedLabel(),
				Type:         string(q.Car.Category),
				Price:        q.Car.Price,
			}
		}
	case entities.ModeCompare:
		v.Prompt = q.Attribute.Prompt()
		v.Hint = q.Attribute.Hint()
	}

	for i, id := range q.Options {
		v.Options = append(v.Options, renderOption(snap, catalog, i, id))
	}

	return v
}

func renderOption(snap entities.Snapshot, catalog service.Catalog, index int, id string) optionView {
	q := snap.Question
	o := optionView{ID: id, Mark: string(snap.MarkOf(id))}

	switch q.Mode {
	case entities.ModeLogo:
		o.Label = id
		if b, ok := catalog.BrandByID(id); ok {
			o.Label = b.Name
		}
	case entities.ModeBrand:
		// The logo is the answer; its name stays hidden until the round locks.
		o.Label = optionLetter(index)
		if b, ok := catalog.BrandByID(id); ok {
			o.ImageURL = b.LogoURL
			if snap.Answered() {
				o.Label = b.Name
			}
		}
	case entities.ModeSpec, entities.ModeCompare:
		o.Label = id
		car, ok := catalog.CarByID(id)
		if !ok {
			break
		}
		o.Label = car.FullName
		o.ImageURL = car.ImageURL
		if q.Mode == entities.ModeSpec {
			if b, ok := catalog.BrandByID(car.BrandID); ok {
				o.ImageURL = b.LogoURL
			}
			o.Subtitle = strconv.Itoa(car.Year)
		} else if snap.Answered() {
			o.Value = q.Attribute.Value(car)
		}
	}

	return o
}

func optionLetter(i int) string {
	return string(rune('A' + i))
}
