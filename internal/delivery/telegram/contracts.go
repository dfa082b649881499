package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

// BotClient is the part of *tgbotapi.BotAPI the handler uses.
type BotClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type PlayerService interface {
	EnsurePlayer(ctx context.Context, playerID, displayName string) error
}

type SessionFactory interface {
	New(id string, mode entities.Mode, notifier service.SpeechNotifier) (*service.Session, error)
}

type SessionStore interface {
	Store(session *service.Session)
	Get(id string) (*service.Session, bool)
	Delete(id string) bool
}
