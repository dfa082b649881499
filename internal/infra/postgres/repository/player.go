package repository

import (
	"context"
	"fmt"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/infra/postgres"
)

// PlayerRepository provides access to player data in the database.
type PlayerRepository struct {
	db postgres.DBTX
}

// NewPlayerRepository creates a new PlayerRepository with the provided database pool.
func NewPlayerRepository(db postgres.DBTX) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Save inserts a new player or refreshes the name and last seen time of an
// existing one. It reports whether the player was created.
func (r *PlayerRepository) Save(ctx context.Context, player *entities.Player) (bool, error) {
	query := `
		INSERT INTO players (id, display_name, first_seen_at, last_seen_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			last_seen_at = EXCLUDED.last_seen_at
		RETURNING (xmax = 0) AS created
	`

	var created bool
	err := r.db.QueryRow(ctx, query, player.ID, player.DisplayName, player.FirstSeenAt, player.LastSeenAt).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("save player: %w", err)
	}

	return created, nil
}
