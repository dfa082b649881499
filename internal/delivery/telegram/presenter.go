package telegram

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

// chatPresenter shows a session in one chat. A new round sends a new question
// message; locking the round edits that message's keyboard to show the marks.
type chatPresenter struct {
	bot     BotClient
	catalog service.Catalog
	chatID  int64
	logger  *zap.Logger

	mu        sync.Mutex
	round     int
	messageID int
}

func newChatPresenter(bot BotClient, catalog service.Catalog, chatID int64, logger *zap.Logger) *chatPresenter {
	return &chatPresenter{
		bot:     bot,
		catalog: catalog,
		chatID:  chatID,
		logger:  logger,
	}
}

// Present implements service.Presenter.
func (p *chatPresenter) Present(snap entities.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case snap.State == entities.StateUnanswered && snap.Question != nil:
		p.showQuestion(snap)
	case snap.Answered() && snap.Round == p.round:
		p.showMarks(snap)
	}
}

func (p *chatPresenter) showQuestion(snap entities.Snapshot) {
	q := snap.Question
	text := renderQuestion(snap)
	kb := buildAnswerKeyboard(snap, p.catalog)

	if q.Mode == entities.ModeBrand {
		p.sendLogoAlbum(q)
	}

	var c tgbotapi.Chattable
	if q.Mode == entities.ModeLogo && q.Brand != nil && q.Brand.LogoURL != "" {
		photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FileURL(q.Brand.LogoURL))
		photo.Caption = text
		photo.ParseMode = tgbotapi.ModeMarkdownV2
		photo.ReplyMarkup = kb
		c = photo
	} else {
		msg := newMessage(p.chatID, text)
		msg.ReplyMarkup = kb
		c = msg
	}

	sent, err := p.bot.Send(c)
	if err != nil {
		p.logger.Error("failed to send question",
			zap.Int64("chat_id", p.chatID),
			zap.Int("round", snap.Round),
			zap.Error(err),
		)
		return
	}

	p.round = snap.Round
	p.messageID = sent.MessageID
}

func (p *chatPresenter) sendLogoAlbum(q *entities.Question) {
	logos := brandLogos(q, p.catalog)
	if len(logos) != len(q.Options) {
		return
	}

	media := make([]any, 0, len(logos))
	for i, url := range logos {
		photo := tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(url))
		photo.Caption = optionLetter(i)
		media = append(media, photo)
	}

	if _, err := p.bot.Request(tgbotapi.NewMediaGroup(p.chatID, media)); err != nil {
		p.logger.Error("failed to send logo album", zap.Int64("chat_id", p.chatID), zap.Error(err))
	}
}

func (p *chatPresenter) showMarks(snap entities.Snapshot) {
	if p.messageID == 0 {
		return
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(p.chatID, p.messageID, buildAnswerKeyboard(snap, p.catalog))
	if _, err := p.bot.Request(edit); err != nil {
		p.logger.Error("failed to mark answer",
			zap.Int64("chat_id", p.chatID),
			zap.Int("round", snap.Round),
			zap.Error(err),
		)
	}
}

// SpeechNotifier sends spoken feedback as short chat messages.
type SpeechNotifier struct {
	bot    BotClient
	chatID int64
	logger *zap.Logger
}

func NewSpeechNotifier(bot BotClient, chatID int64, logger *zap.Logger) *SpeechNotifier {
	return &SpeechNotifier{bot: bot, chatID: chatID, logger: logger}
}

// Speak implements service.SpeechNotifier. The rate has no meaning in chat.
func (n *SpeechNotifier) Speak(text string, _ float64) {
	if _, err := n.bot.Send(newMessage(n.chatID, speechText(text))); err != nil {
		n.logger.Error("failed to send speech message", zap.Int64("chat_id", n.chatID), zap.Error(err))
	}
}
