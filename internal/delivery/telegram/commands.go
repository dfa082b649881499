package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

func (h *Handler) handleStart(from *tgbotapi.User) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		name := h.playerName
		if from != nil {
			display := strings.TrimSpace(from.FirstName + " " + from.LastName)
			if err := h.playerService.EnsurePlayer(ctx, playerID(from.ID), display); err != nil {
				// Registration is bookkeeping; the game works without it.
				h.logger.Error("failed to ensure player", zap.Int64("user_id", from.ID), zap.Error(err))
			}
			if from.FirstName != "" {
				name = from.FirstName
			}
		}

		msg := newMessage(chatID, welcomeText(name))
		msg.ReplyMarkup = buildModeKeyboard()
		h.send(msg)
		return nil
	}
}

func (h *Handler) handlePlay() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		msg := newMessage(chatID, modesText())
		msg.ReplyMarkup = buildModeKeyboard()
		h.send(msg)
		return nil
	}
}

func (h *Handler) handleScore() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		session, ok := h.sessions.Get(sessionID(chatID))
		if !ok {
			h.send(newMessage(chatID, md(msgNoGame)))
			return nil
		}

		h.send(newMessage(chatID, scoreText(session.Snapshot())))
		return nil
	}
}

func (h *Handler) handleStop() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		session, ok := h.sessions.Get(sessionID(chatID))
		if !ok {
			h.send(newMessage(chatID, md(msgNoGame)))
			return nil
		}

		snap := session.Snapshot()
		h.sessions.Delete(sessionID(chatID))

		h.send(newMessage(chatID, scoreText(snap)+"\n\n"+md(msgGameStopped)))
		return nil
	}
}

// startGame replaces the chat's session with a new one in mode.
func (h *Handler) startGame(chatID int64, mode entities.Mode) error {
	id := sessionID(chatID)

	session, err := h.factory.New(id, mode, NewSpeechNotifier(h.bot, chatID, h.logger))
	if err != nil {
		return err
	}
	session.SetPresenter(newChatPresenter(h.bot, h.catalog, chatID, h.logger))

	h.sessions.Store(session)
	if err = session.Start(); err != nil {
		h.sessions.Delete(id)
		return err
	}

	h.logger.Info("game started", zap.Int64("chat_id", chatID), zap.String("mode", string(mode)))
	return nil
}
