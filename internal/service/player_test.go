package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

type memoryPlayers struct {
	saved map[string]*entities.Player
	err   error
}

func (m *memoryPlayers) Save(_ context.Context, p *entities.Player) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if m.saved == nil {
		m.saved = map[string]*entities.Player{}
	}
	_, existed := m.saved[p.ID]
	m.saved[p.ID] = p
	return !existed, nil
}

func TestPlayerServiceEnsurePlayer(t *testing.T) {
	repo := &memoryPlayers{}
	svc := NewPlayerService(repo, zap.NewNop())

	require.NoError(t, svc.EnsurePlayer(context.Background(), "tg:1", "Luca"))
	require.NoError(t, svc.EnsurePlayer(context.Background(), "tg:1", "Luca R."))

	require.Contains(t, repo.saved, "tg:1")
	assert.Equal(t, "Luca R.", repo.saved["tg:1"].DisplayName)
}

func TestPlayerServiceErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewPlayerService(&memoryPlayers{err: boom}, zap.NewNop())
	require.ErrorIs(t, svc.EnsurePlayer(context.Background(), "tg:1", "Luca"), boom)

	require.NoError(t, NewPlayerService(nil, zap.NewNop()).EnsurePlayer(context.Background(), "tg:1", "Luca"))
}
