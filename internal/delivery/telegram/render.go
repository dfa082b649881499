package telegram

import (
	"fmt"
	"strings"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

// renderQuestion builds the MarkdownV2 text of the current question.
func renderQuestion(snap entities.Snapshot) string {
	q := snap.Question

	var sb strings.Builder
	sb.WriteString(md(fmt.Sprintf("Round %d · Score %d · Streak %d", snap.Round, snap.Score, snap.Streak)))
	sb.WriteString("\n\n")

	switch q.Mode {
	case entities.ModeLogo:
		sb.WriteString(bold("Which brand is this?"))

	case entities.ModeBrand:
		sb.WriteString(md("Find the logo for "))
		if q.Brand != nil {
			sb.WriteString(bold(q.Brand.Name))
		}

	case entities.ModeSpec:
		sb.WriteString(bold("Which car has these specs?"))
		if c := q.Car; c != nil {
			sb.WriteString("\n\n")
			sb.WriteString(md("Horsepower: " + c.HorsepowerLabel()))
			sb.WriteString("\n")
			sb.WriteString(md("0-60 mph: " + c.AccelerationLabel()))
			sb.WriteString("\n")
			sb.WriteString(md("Top speed: " + c.TopSpeedLabel()))
			sb.WriteString("\n")
			sb.WriteString(md("Type: " + string(c.Category)))
			sb.WriteString("\n")
			sb.WriteString(md("Starting at " + c.Price))
		}

	case entities.ModeCompare:
		sb.WriteString(bold(q.Attribute.Prompt()))
		sb.WriteString("\n")
		sb.WriteString(italic(q.Attribute.Hint()))
	}

	return sb.String()
}

// optionLabel returns the button text of the option at index.
func optionLabel(snap entities.Snapshot, catalog service.Catalog, index int, id string) string {
	q := snap.Question

	var label string
	switch q.Mode {
	case entities.ModeLogo:
		label = id
		if b, ok := catalog.BrandByID(id); ok {
			label = b.Name
		}
	case entities.ModeBrand:
		// Logos arrive as a lettered album; names show once the round locks.
		label = optionLetter(index)
		if b, ok := catalog.BrandByID(id); ok && snap.Answered() {
			label += " · " + b.Name
		}
	case entities.ModeSpec, entities.ModeCompare:
		label = id
		if c, ok := catalog.CarByID(id); ok {
			label = c.FullName
			if q.Mode == entities.ModeSpec {
				label = fmt.Sprintf("%s (%d)", c.FullName, c.Year)
			} else if snap.Answered() {
				label += " · " + q.Attribute.Value(c)
			}
		}
	}

	switch snap.MarkOf(id) {
	case entities.MarkCorrect:
		return "✅ " + label
	case entities.MarkWrong:
		return "❌ " + label
	default:
		return label
	}
}

// brandLogos returns the logo urls of a brand question's options in display order.
func brandLogos(q *entities.Question, catalog service.Catalog) []string {
	out := make([]string, 0, len(q.Options))
	for _, id := range q.Options {
		if b, ok := catalog.BrandByID(id); ok && b.LogoURL != "" {
			out = append(out, b.LogoURL)
		}
	}
	return out
}

func optionLetter(i int) string {
	return string(rune('A' + i))
}
