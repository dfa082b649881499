package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

// MinOptions is the number of options of an identify question. A catalog
// needs at least this many brands and cars to be playable.
const MinOptions = 4

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog provides read-only access to car brands and models.
// It is built once at startup and never modified.
type Catalog struct {
	brands     []*entities.Brand
	cars       []*entities.Car
	brandsByID map[string]*entities.Brand
	carsByID   map[string]*entities.Car
	carsByBr   map[string][]*entities.Car
}

// NewCatalog validates brands and cars and builds the lookup indexes.
func NewCatalog(brands []*entities.Brand, cars []*entities.Car) (*Catalog, error) {
	c := &Catalog{
		brands:     brands,
		cars:       cars,
		brandsByID: make(map[string]*entities.Brand, len(brands)),
		carsByID:   make(map[string]*entities.Car, len(cars)),
		carsByBr:   make(map[string][]*entities.Car),
	}

	for _, b := range brands {
		if b == nil || b.ID == "" {
			return nil, fmt.Errorf("%w: brand without id", ErrInvalidCatalog)
		}
		if _, dup := c.brandsByID[b.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate brand id %q", ErrInvalidCatalog, b.ID)
		}
		c.brandsByID[b.ID] = b
	}

	for _, car := range cars {
		if err := c.validateCar(car); err != nil {
			return nil, err
		}
		c.carsByID[car.ID] = car
		c.carsByBr[car.BrandID] = append(c.carsByBr[car.BrandID], car)
	}

	if len(brands) < MinOptions {
		return nil, fmt.Errorf("%w: need at least %d brands, got %d", ErrInvalidCatalog, MinOptions, len(brands))
	}
	if len(cars) < MinOptions {
		return nil, fmt.Errorf("%w: need at least %d cars, got %d", ErrInvalidCatalog, MinOptions, len(cars))
	}

	return c, nil
}

func (c *Catalog) validateCar(car *entities.Car) error {
	if car == nil || car.ID == "" {
		return fmt.Errorf("%w: car without id", ErrInvalidCatalog)
	}
	if _, dup := c.carsByID[car.ID]; dup {
		return fmt.Errorf("%w: duplicate car id %q", ErrInvalidCatalog, car.ID)
	}
	if _, ok := c.brandsByID[car.BrandID]; !ok {
		return fmt.Errorf("%w: car %q references unknown brand %q", ErrInvalidCatalog, car.ID, car.BrandID)
	}
	if !car.Category.Valid() {
		return fmt.Errorf("%w: car %q has unknown category %q", ErrInvalidCatalog, car.ID, car.Category)
	}
	if car.TopSpeed <= 0 || car.Acceleration <= 0 || car.Horsepower <= 0 {
		return fmt.Errorf("%w: car %q has non-positive specs", ErrInvalidCatalog, car.ID)
	}
	return nil
}

// LoadCatalog reads a catalog from a JSON file of the form
// {"brands": [...], "cars": [...]} and validates it.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var wrapper struct {
		Brands []*entities.Brand `json:"brands"`
		Cars   []*entities.Car   `json:"cars"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	return NewCatalog(wrapper.Brands, wrapper.Cars)
}

// AllBrands returns every brand in catalog order.
func (c *Catalog) AllBrands() []*entities.Brand {
	return c.brands
}

// AllCars returns every car in catalog order.
func (c *Catalog) AllCars() []*entities.Car {
	return c.cars
}

// BrandByID looks up a brand. The second result is false when it does not exist.
func (c *Catalog) BrandByID(id string) (*entities.Brand, bool) {
	b, ok := c.brandsByID[id]
	return b, ok
}

// CarByID looks up a car. The second result is false when it does not exist.
func (c *Catalog) CarByID(id string) (*entities.Car, bool) {
	car, ok := c.carsByID[id]
	return car, ok
}

// CarsByBrand returns the cars of a brand, or an empty slice.
func (c *Catalog) CarsByBrand(brandID string) []*entities.Car {
	cars := c.carsByBr[brandID]
	if cars == nil {
		return []*entities.Car{}
	}
	return cars
}
