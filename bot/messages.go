package bot

import (
	"fmt"
	"strings"
	"unicode"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const welcomeText = "👋 Welcome to *NewsPulse Bot!*\n\n" +
	"Choose a category below or simply *type any topic* (like 'NVIDIA' or 'Tesla') to search for news."

const welcomeBackText = "👋 Welcome back! Choose a category or type a topic to search 👇"

func fetchingText(title string) string {
	return fmt.Sprintf("⏳ Fetching latest *%s* news...", title)
}

func searchingText(title string) string {
	return fmt.Sprintf("⏳ Searching for news about *%s*...", title)
}

func categoryResultText(title, body string) string {
	return fmt.Sprintf("🗞 *Latest %s News:*\n\n%s", title, body)
}

func searchResultText(title, body string) string {
	return fmt.Sprintf("🗞 *Search Results for %s:*\n\n%s", title, body)
}

// topicTitle upper-cases the first rune and lower-cases the rest, matching
// how topics are shown in headers ("crypto" -> "Crypto").
func topicTitle(topic string) string {
	if topic == "" {
		return topic
	}
	runes := []rune(strings.ToLower(topic))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func mainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📰 Tech News", "tech")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💹 Stock Market", "stocks")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🤖 AI Updates", "ai")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🪙 Crypto", "crypto")),
	)
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to Categories", "start")),
	)
}
