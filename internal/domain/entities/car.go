package entities

import (
	"fmt"
	"strconv"
)

// Category classifies a car model.
type Category string

const (
	CategorySupercar Category = "supercar"
	CategorySports   Category = "sports"
	CategoryLuxury   Category = "luxury"
	CategoryHypercar Category = "hypercar"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySupercar, CategorySports, CategoryLuxury, CategoryHypercar:
		return true
	default:
		return false
	}
}

// Car represents a single car model of a brand.
type Car struct {
	ID           string   `json:"id"`           // unique key, e.g. "ferrari-sf90"
	BrandID      string   `json:"brandId"`      // key of the owning Brand
	Name         string   `json:"name"`         // short model name
	FullName     string   `json:"fullName"`     // brand and model name
	Year         int      `json:"year"`         // model year
	Category     Category `json:"type"`         // supercar, sports, luxury or hypercar
	TopSpeed     int      `json:"topSpeed"`     // mph
	Acceleration float64  `json:"acceleration"` // 0-60 mph in seconds, lower is faster
	Horsepower   int      `json:"horsepower"`   // peak horsepower
	ImageURL     string   `json:"imageUrl"`     // reference to a photo asset
	Price        string   `json:"price"`        // approximate starting price, display only
}

// AccelerationLabel formats the 0-60 time the way it is shown to players.
func (c *Car) AccelerationLabel() string {
	return strconv.FormatFloat(c.Acceleration, 'f', -1, 64) + "s"
}

// HorsepowerLabel formats the horsepower figure.
func (c *Car) HorsepowerLabel() string {
	return fmt.Sprintf("%d HP", c.Horsepower)
}

// TopSpeedLabel formats the top speed.
func (c *Car) TopSpeedLabel() string {
	return fmt.Sprintf("%d mph", c.TopSpeed)
}
