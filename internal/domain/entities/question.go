package entities

import "slices"

// Mode is a question type.
type Mode string

const (
	ModeLogo    Mode = "logo-identify"  // show a logo, pick the brand name
	ModeBrand   Mode = "brand-identify" // show a brand name, pick the logo
	ModeSpec    Mode = "spec-identify"  // show a spec sheet, pick the car
	ModeCompare Mode = "compare"        // show two cars, pick the better one on an attribute
)

// Modes lists all question modes in menu order.
func Modes() []Mode {
	return []Mode{ModeLogo, ModeBrand, ModeSpec, ModeCompare}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return slices.Contains(Modes(), m)
}

// Detailed reports whether the mode shows enough information that players
// need more time to read the answer before the next round.
func (m Mode) Detailed() bool {
	return m == ModeSpec || m == ModeCompare
}

// Title returns the menu title of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeLogo:
		return "Logo Match"
	case ModeBrand:
		return "Brand Guess"
	case ModeSpec:
		return "Car Specs"
	case ModeCompare:
		return "Speed Challenge"
	default:
		return string(m)
	}
}

// Description returns a one-line description of the mode.
func (m Mode) Description() string {
	switch m {
	case ModeLogo:
		return "Identify car brands by their logos"
	case ModeBrand:
		return "Find the logo for the brand name"
	case ModeSpec:
		return "Guess the car from its specs"
	case ModeCompare:
		return "Which car is faster or more powerful?"
	default:
		return ""
	}
}

// Attribute is the numeric property two cars are compared on.
type Attribute string

const (
	AttributeAcceleration Attribute = "acceleration"
	AttributeHorsepower   Attribute = "horsepower"
	AttributeTopSpeed     Attribute = "top-speed"
)

// Attributes lists the comparable attributes.
func Attributes() []Attribute {
	return []Attribute{AttributeAcceleration, AttributeHorsepower, AttributeTopSpeed}
}

// Winner returns the car that wins the comparison on a.
// The first car wins only when it is strictly better; equal values go to second.
func (a Attribute) Winner(first, second *Car) *Car {
	switch a {
	case AttributeAcceleration:
		if first.Acceleration < second.Acceleration {
			return first
		}
	case AttributeHorsepower:
		if first.Horsepower > second.Horsepower {
			return first
		}
	case AttributeTopSpeed:
		if first.TopSpeed > second.TopSpeed {
			return first
		}
	}
	return second
}

// Prompt returns the question text for the attribute.
func (a Attribute) Prompt() string {
	switch a {
	case AttributeAcceleration:
		return "Which car is FASTER? (0-60 mph)"
	case AttributeHorsepower:
		return "Which car has MORE HORSEPOWER?"
	case AttributeTopSpeed:
		return "Which car has a HIGHER TOP SPEED?"
	default:
		return ""
	}
}

// Hint explains how the attribute is judged.
func (a Attribute) Hint() string {
	switch a {
	case AttributeAcceleration:
		return "Lower 0-60 time = Faster acceleration"
	case AttributeHorsepower:
		return "Higher HP = More power"
	case AttributeTopSpeed:
		return "Higher mph = Faster top speed"
	default:
		return ""
	}
}

// Value formats the attribute value of c.
func (a Attribute) Value(c *Car) string {
	switch a {
	case AttributeAcceleration:
		return c.AccelerationLabel()
	case AttributeHorsepower:
		return c.HorsepowerLabel()
	case AttributeTopSpeed:
		return c.TopSpeedLabel()
	default:
		return ""
	}
}

// Question is a single multiple choice round.
type Question struct {
	Mode            Mode      // question type
	Brand           *Brand    // prompt entity of the logo and brand modes
	Car             *Car      // prompt entity of the spec mode, first car of the compare mode
	Rival           *Car      // second car of the compare mode
	Attribute       Attribute // compared attribute, compare mode only
	CorrectAnswerID string    // id that scores as correct
	Options         []string  // candidate ids in display order
}

// HasOption reports whether id is one of the options.
func (q *Question) HasOption(id string) bool {
	return slices.Contains(q.Options, id)
}

// OptionIndex returns the display index of id, or -1.
func (q *Question) OptionIndex(id string) int {
	return slices.Index(q.Options, id)
}

// Clone returns a copy that does not share the options slice.
func (q *Question) Clone() *Question {
	if q == nil {
		return nil
	}
	c := *q
	c.Options = slices.Clone(q.Options)
	return &c
}
