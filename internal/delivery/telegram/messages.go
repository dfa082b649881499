// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rpedroni/project-luca-car-trivia/internal/domain/entities"
)

// Error messages.
const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgUnknownCommand = "Unknown command. Try /play to pick a game or /help for the list of commands."
	msgNoGame         = "No game is running. Use /play to start one."
	msgGameStopped    = "Game over. Use /play when you are ready for another round."
	msgAlreadyAnswer  = "Already answered"
	msgStaleAnswer    = "This question has expired"
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

func welcomeText(playerName string) string {
	var sb strings.Builder

	sb.WriteString(bold("🏎 Car Trivia"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Hi %s! Test what you know about supercars: logos, brands, specs and speed.", playerName)))
	sb.WriteString("\n\n")
	sb.WriteString(md("Pick a game to start:"))

	return sb.String()
}

func helpText() string {
	var sb strings.Builder

	sb.WriteString(bold("Commands"))
	sb.WriteString("\n\n")
	sb.WriteString(md("/play - choose a game"))
	sb.WriteString("\n")
	sb.WriteString(md("/score - show your score and streak"))
	sb.WriteString("\n")
	sb.WriteString(md("/stop - end the current game"))
	sb.WriteString("\n")
	sb.WriteString(md("/help - this message"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Every 5 correct answers in a row earns a celebration!"))

	return sb.String()
}

func modesText() string {
	var sb strings.Builder

	sb.WriteString(bold("Choose a game"))
	sb.WriteString("\n")
	for _, m := range entities.Modes() {
		sb.WriteString("\n")
		sb.WriteString(bold(m.Title()))
		sb.WriteString(md(" - " + m.Description()))
	}

	return sb.String()
}

func scoreText(snap entities.Snapshot) string {
	return fmt.Sprintf("%s\n\n%s\n%s\n%s",
		bold("📊 "+snap.Mode.Title()),
		md(fmt.Sprintf("⭐ Score: %d of %d", snap.Score, snap.Attempts)),
		md(fmt.Sprintf("🔥 Streak: %d", snap.Streak)),
		md(fmt.Sprintf("🏆 Best streak: %d", snap.BestStreak)),
	)
}

func speechText(text string) string {
	return italic("🔊 " + text)
}
