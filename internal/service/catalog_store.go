package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	pgrepo "github.com/rpedroni/project-luca-car-trivia/internal/infra/postgres/repository"
	"github.com/rpedroni/project-luca-car-trivia/internal/repository"
)

// Transactor runs a function inside a database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// CatalogStore reads and writes the catalog kept in PostgreSQL.
type CatalogStore struct {
	tr     Transactor
	logger *zap.Logger
}

func NewCatalogStore(tr Transactor, logger *zap.Logger) *CatalogStore {
	return &CatalogStore{tr: tr, logger: logger}
}

// Load reads brands and cars in one transaction and validates them.
func (s *CatalogStore) Load(ctx context.Context) (*repository.Catalog, error) {
	var (
		brands []*entities.Brand
		cars   []*entities.Car
	)

	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := pgrepo.NewCatalogRepository(tx)

		var err error
		if brands, err = repo.Brands(ctx); err != nil {
			return err
		}
		cars, err = repo.Cars(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	s.logger.Info("catalog loaded from database",
		zap.Int("brands", len(brands)),
		zap.Int("cars", len(cars)),
	)

	return repository.NewCatalog(brands, cars)
}

// Seed upserts every brand and car of catalog, keeping catalog order.
func (s *CatalogStore) Seed(ctx context.Context, catalog Catalog) error {
	brands, cars := catalog.AllBrands(), catalog.AllCars()

	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repo := pgrepo.NewCatalogRepository(tx)

		for i, b := range brands {
			if err := repo.UpsertBrand(ctx, i, b); err != nil {
				return err
			}
		}
		for i, c := range cars {
			if err := repo.UpsertCar(ctx, i, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	s.logger.Info("catalog seeded",
		zap.Int("brands", len(brands)),
		zap.Int("cars", len(cars)),
	)
	return nil
}
