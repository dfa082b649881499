package httpapi

import (
	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

type SessionFactory interface {
	New(id string, mode entities.Mode, notifier service.SpeechNotifier) (*service.Session, error)
}

type SessionStore interface {
	Store(session *service.Session)
	Get(id string) (*service.Session, bool)
	Delete(id string) bool
	OnEvict(fn func(id string))
}
