package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

func testBrands() []*entities.Brand {
	return []*entities.Brand{
		{ID: "ferrari", Name: "Ferrari"},
		{ID: "porsche", Name: "Porsche"},
		{ID: "mclaren", Name: "McLaren"},
		{ID: "bugatti", Name: "Bugatti"},
	}
}

func testCar(id, brandID string) *entities.Car {
	return &entities.Car{
		ID:           id,
		BrandID:      brandID,
		Name:         id,
		Category:     entities.CategorySupercar,
		TopSpeed:     200,
		Acceleration: 2.9,
		Horsepower:   700,
	}
}

func testCars() []*entities.Car {
	return []*entities.Car{
		testCar("ferrari-296", "ferrari"),
		testCar("ferrari-812", "ferrari"),
		testCar("porsche-918", "porsche"),
		testCar("mclaren-p1", "mclaren"),
	}
}

func TestLoadCatalogShipped(t *testing.T) {
	c, err := LoadCatalog(filepath.Join("..", "..", "assets", "data", "catalog.json"))
	require.NoError(t, err)

	assert.Len(t, c.AllBrands(), 20)
	assert.Len(t, c.AllCars(), 27)

	ferrari, ok := c.BrandByID("ferrari")
	require.True(t, ok)
	assert.Equal(t, "Italy", ferrari.Country)
	assert.Len(t, c.CarsByBrand("ferrari"), 3)

	sf90, ok := c.CarByID("ferrari-sf90")
	require.True(t, ok)
	assert.Equal(t, 986, sf90.Horsepower)
	assert.Equal(t, entities.CategoryHypercar, sf90.Category)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = LoadCatalog(path)
	require.Error(t, err)
}

func TestCatalogLookups(t *testing.T) {
	c, err := NewCatalog(testBrands(), testCars())
	require.NoError(t, err)

	_, ok := c.BrandByID("lotus")
	assert.False(t, ok)

	_, ok = c.CarByID("lotus-evija")
	assert.False(t, ok)

	assert.Empty(t, c.CarsByBrand("bugatti"))
	assert.NotNil(t, c.CarsByBrand("bugatti"))
	assert.Len(t, c.CarsByBrand("ferrari"), 2)
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name   string
		brands func() []*entities.Brand
		cars   func() []*entities.Car
	}{
		{
			name: "duplicate brand",
			brands: func() []*entities.Brand {
				return append(testBrands(), &entities.Brand{ID: "ferrari"})
			},
			cars: testCars,
		},
		{
			name:   "duplicate car",
			brands: testBrands,
			cars: func() []*entities.Car {
				return append(testCars(), testCar("mclaren-p1", "mclaren"))
			},
		},
		{
			name:   "unknown brand",
			brands: testBrands,
			cars: func() []*entities.Car {
				return append(testCars(), testCar("lotus-evija", "lotus"))
			},
		},
		{
			name:   "bad category",
			brands: testBrands,
			cars: func() []*entities.Car {
				c := testCar("bmw-m8", "ferrari")
				c.Category = "truck"
				return append(testCars(), c)
			},
		},
		{
			name:   "non-positive spec",
			brands: testBrands,
			cars: func() []*entities.Car {
				c := testCar("bmw-m8", "ferrari")
				c.Acceleration = 0
				return append(testCars(), c)
			},
		},
		{
			name:   "too few brands",
			brands: func() []*entities.Brand { return testBrands()[:3] },
			cars: func() []*entities.Car {
				return testCars()[:3]
			},
		},
		{
			name:   "too few cars",
			brands: testBrands,
			cars:   func() []*entities.Car { return testCars()[:3] },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.brands(), tt.cars())
			require.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}
