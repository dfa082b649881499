package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb, "")
		return
	}
	chatID := cb.Message.Chat.ID
	data := decodeCallback(cb.Data)

	switch data.Action {
	case actionMode:
		mode, ok := data.parseMode()
		if !ok {
			h.logger.Debug("invalid mode callback", zap.String("data", cb.Data))
			h.answerCallback(cb, "")
			return
		}
		h.answerCallback(cb, mode.Title())
		_ = h.withErrorHandling(func(context.Context, int64) error {
			return h.startGame(chatID, mode)
		})(ctx, chatID)

	case actionAnswer:
		h.handleAnswerCallback(cb, data)

	case actionStop:
		h.answerCallback(cb, "")
		_ = h.withErrorHandling(h.handleStop())(ctx, chatID)

	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb, "")
	}
}

func (h *Handler) handleAnswerCallback(cb *tgbotapi.CallbackQuery, data callbackData) {
	chatID := cb.Message.Chat.ID

	round, index, ok := data.parseAnswer()
	if !ok {
		h.logger.Debug("invalid answer callback", zap.String("data", cb.Data))
		h.answerCallback(cb, "")
		return
	}

	session, ok := h.sessions.Get(sessionID(chatID))
	if !ok {
		h.answerCallback(cb, msgNoGame)
		return
	}

	snap := session.Snapshot()
	if snap.Question == nil || round != snap.Round {
		h.answerCallback(cb, msgStaleAnswer)
		return
	}
	if index >= len(snap.Question.Options) {
		h.answerCallback(cb, "")
		return
	}

	out := session.SubmitRound(round, snap.Question.Options[index])
	if !out.Accepted {
		h.answerCallback(cb, msgAlreadyAnswer)
		return
	}
	h.answerCallback(cb, "")
}
