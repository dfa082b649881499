package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

type Handler struct {
	bot           BotClient
	logger        *zap.Logger
	catalog       service.Catalog
	factory       SessionFactory
	sessions      SessionStore
	playerService PlayerService
	playerName    string
}

func NewHandler(
	bot BotClient,
	logger *zap.Logger,
	catalog service.Catalog,
	factory SessionFactory,
	sessions SessionStore,
	playerService PlayerService,
	playerName string,
) *Handler {
	return &Handler{
		bot:           bot,
		logger:        logger,
		catalog:       catalog,
		factory:       factory,
		sessions:      sessions,
		playerService: playerService,
		playerName:    playerName,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newMessage(chatID, md(msgUnknownCommand)))
		return
	}

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.handleStart(update.Message.From))(ctx, chatID)
	case "play":
		_ = h.withErrorHandling(h.handlePlay())(ctx, chatID)
	case "score":
		_ = h.withErrorHandling(h.handleScore())(ctx, chatID)
	case "stop":
		_ = h.withErrorHandling(h.handleStop())(ctx, chatID)
	case "help":
		h.send(newMessage(chatID, helpText()))
	default:
		h.send(newMessage(chatID, md(msgUnknownCommand)))
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	h.send(newMessage(chatID, md(err)))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// answerCallback removes the loading indicator of a pressed button, showing
// text as a toast when it is not empty.
func (h *Handler) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

func sessionID(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

func playerID(userID int64) string {
	return "tg:" + strconv.FormatInt(userID, 10)
}
