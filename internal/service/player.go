package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

type PlayerService struct {
	repository PlayerRepository
	logger     *zap.Logger
}

// NewPlayerService creates a player service. A nil repository disables the
// registry.
func NewPlayerService(repository PlayerRepository, logger *zap.Logger) *PlayerService {
	return &PlayerService{repository: repository, logger: logger}
}

// EnsurePlayer records that the player was seen now.
func (s *PlayerService) EnsurePlayer(ctx context.Context, playerID, displayName string) error {
	if s.repository == nil {
		return nil
	}

	created, err := s.repository.Save(ctx, entities.NewPlayer(playerID, displayName))
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("new player registered", zap.String("player_id", playerID))
	}

	return nil
}
