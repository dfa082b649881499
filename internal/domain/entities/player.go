package entities

import "time"

// Player represents someone who started the game from a chat.
type Player struct {
	ID          string // source-qualified id, e.g. "tg:12345"
	DisplayName string
	FirstSeenAt time.Time
	LastSeenAt  time.Time
}

// NewPlayer creates a player seen for the first time now.
func NewPlayer(id, displayName string) *Player {
	now := time.Now().UTC()
	return &Player{
		ID:          id,
		DisplayName: displayName,
		FirstSeenAt: now,
		LastSeenAt:  now,
	}
}
