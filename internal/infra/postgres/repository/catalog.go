package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/infra/postgres"
)

// CatalogRepository provides access to brands and cars stored in the database.
type CatalogRepository struct {
	db postgres.DBTX
}

// NewCatalogRepository creates a new CatalogRepository on a pool or a transaction.
func NewCatalogRepository(db postgres.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Brands returns all brands in catalog order.
func (r *CatalogRepository) Brands(ctx context.Context) ([]*entities.Brand, error) {
	query := `
		SELECT id, name, country, founded, logo_url, primary_color, description
		FROM brands
		ORDER BY position, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query brands: %w", err)
	}

	brands, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.Brand, error) {
		var b entities.Brand
		err := row.Scan(&b.ID, &b.Name, &b.Country, &b.Founded, &b.LogoURL, &b.PrimaryColor, &b.Description)
		return &b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan brands: %w", err)
	}

	return brands, nil
}

// Cars returns all cars in catalog order.
func (r *CatalogRepository) Cars(ctx context.Context) ([]*entities.Car, error) {
	query := `
		SELECT id, brand_id, name, full_name, year, category,
		       top_speed, acceleration, horsepower, image_url, price
		FROM cars
		ORDER BY position, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}

	cars, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.Car, error) {
		var c entities.Car
		err := row.Scan(
			&c.ID,
			&c.BrandID,
			&c.Name,
			&c.FullName,
			&c.Year,
			&c.Category,
			&c.TopSpeed,
			&c.Acceleration,
			&c.Horsepower,
			&c.ImageURL,
			&c.Price,
		)
		return &c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan cars: %w", err)
	}

	return cars, nil
}

// UpsertBrand inserts a brand or updates the stored one with the same id.
func (r *CatalogRepository) UpsertBrand(ctx context.Context, position int, b *entities.Brand) error {
	query := `
		INSERT INTO brands (id, position, name, country, founded, logo_url, primary_color, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			position = EXCLUDED.position,
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			founded = EXCLUDED.founded,
			logo_url = EXCLUDED.logo_url,
			primary_color = EXCLUDED.primary_color,
			description = EXCLUDED.description
	`

	_, err := r.db.Exec(ctx, query,
		b.ID, position, b.Name, b.Country, b.Founded, b.LogoURL, b.PrimaryColor, b.Description)
	if err != nil {
		return fmt.Errorf("upsert brand %s: %w", b.ID, err)
	}

	return nil
}

// UpsertCar inserts a car or updates the stored one with the same id.
func (r *CatalogRepository) UpsertCar(ctx context.Context, position int, c *entities.Car) error {
	query := `
		INSERT INTO cars (
			id, position, brand_id, name, full_name, year, category,
			top_speed, acceleration, horsepower, image_url, price
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			position = EXCLUDED.position,
			brand_id = EXCLUDED.brand_id,
			name = EXCLUDED.name,
			full_name = EXCLUDED.full_name,
			year = EXCLUDED.year,
			category = EXCLUDED.category,
			top_speed = EXCLUDED.top_speed,
			acceleration = EXCLUDED.acceleration,
			horsepower = EXCLUDED.horsepower,
			image_url = EXCLUDED.image_url,
			price = EXCLUDED.price
	`

	_, err := r.db.Exec(ctx, query,
		c.ID, position, c.BrandID, c.Name, c.FullName, c.Year, string(c.Category),
		c.TopSpeed, c.Acceleration, c.Horsepower, c.ImageURL, c.Price)
	if err != nil {
		return fmt.Errorf("upsert car %s: %w", c.ID, err)
	}

	return nil
}
