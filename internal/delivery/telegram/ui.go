package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
	"github.com/rpedroni/project-luca-car-trivia/internal/service"
)

// buildModeKeyboard builds one button per game mode.
func buildModeKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entities.Modes()))
	for _, m := range entities.Modes() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(m.Title(), buildModeCallback(m)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildAnswerKeyboard builds keyboard for the current question, with marks
// once the round is locked.
func buildAnswerKeyboard(snap entities.Snapshot, catalog service.Catalog) tgbotapi.InlineKeyboardMarkup {
	q := snap.Question

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, id := range q.Options {
		btn := tgbotapi.NewInlineKeyboardButtonData(
			optionLabel(snap, catalog, i, id),
			buildAnswerCallback(snap.Round, i),
		)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏁 Stop", buildStopCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
