package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"newspulse/config"
	"newspulse/internal/telemetry"
	"newspulse/news"
)

// Bot is the Telegram front-end adapter around the news retriever.
type Bot struct {
	api           *tgbotapi.BotAPI
	retriever     *news.Retriever
	metrics       *telemetry.Metrics
	logger        *log.Logger
	timeout       time.Duration
	updateTimeout int
}

// New authenticates against the Telegram API and wires the adapter.
func New(cfg config.TelegramConfig, timeout time.Duration, retriever *news.Retriever, metrics *telemetry.Metrics, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	api.Debug = cfg.Debug

	if logger == nil {
		logger = log.New(log.Writer(), "[BOT] ", log.LstdFlags)
	}

	return &Bot{
		api:           api,
		retriever:     retriever,
		metrics:       metrics,
		logger:        logger,
		timeout:       timeout,
		updateTimeout: cfg.UpdateTimeout,
	}, nil
}

// Run long-polls for updates until ctx is cancelled. Each update is handled
// independently; there is no state shared between interactions.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout
	updates := b.api.GetUpdatesChan(u)

	b.logger.Printf("authorized as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	reqID := uuid.NewString()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, reqID, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		if update.Message.Command() == "start" {
			b.handleStart(reqID, update.Message)
		}
	case update.Message != nil && update.Message.Text != "":
		b.handleSearch(ctx, reqID, update.Message)
	}
}

func (b *Bot) handleStart(reqID string, msg *tgbotapi.Message) {
	b.metrics.Interactions.WithLabelValues("start").Inc()
	b.logger.Printf("[%s] /start from chat %d", reqID, msg.Chat.ID)

	reply := tgbotapi.NewMessage(msg.Chat.ID, welcomeText)
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = mainKeyboard()
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Printf("[%s] sending welcome: %v", reqID, err)
	}
}

func (b *Bot) handleCallback(ctx context.Context, reqID string, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		b.logger.Printf("[%s] answering callback: %v", reqID, err)
	}
	if cq.Message == nil {
		// Telegram omits the message on stale callbacks; nothing to edit.
		return
	}

	chatID := cq.Message.Chat.ID
	msgID := cq.Message.MessageID
	topic := cq.Data

	if topic == "start" {
		b.metrics.Interactions.WithLabelValues("start").Inc()
		b.logger.Printf("[%s] back to categories in chat %d", reqID, chatID)
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, welcomeBackText, mainKeyboard())
		edit.ParseMode = tgbotapi.ModeMarkdown
		if _, err := b.api.Send(edit); err != nil {
			b.logger.Printf("[%s] editing to menu: %v", reqID, err)
		}
		return
	}

	b.metrics.Interactions.WithLabelValues("category").Inc()
	b.logger.Printf("[%s] category %q in chat %d", reqID, topic, chatID)

	title := topicTitle(topic)
	interstitial := tgbotapi.NewEditMessageText(chatID, msgID, fetchingText(title))
	interstitial.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(interstitial); err != nil {
		b.logger.Printf("[%s] editing interstitial: %v", reqID, err)
	}

	body := b.retriever.ResolveAndFetch(ctx, topic)

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, categoryResultText(title, body), backKeyboard())
	edit.ParseMode = tgbotapi.ModeMarkdown
	edit.DisableWebPagePreview = true
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Printf("[%s] editing result: %v", reqID, err)
	}
}

func (b *Bot) handleSearch(ctx context.Context, reqID string, msg *tgbotapi.Message) {
	b.metrics.Interactions.WithLabelValues("search").Inc()
	b.logger.Printf("[%s] free-text search in chat %d", reqID, msg.Chat.ID)

	title := topicTitle(msg.Text)
	searching := tgbotapi.NewMessage(msg.Chat.ID, searchingText(title))
	searching.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(searching); err != nil {
		b.logger.Printf("[%s] sending interstitial: %v", reqID, err)
	}

	body := b.retriever.ResolveAndFetch(ctx, msg.Text)

	reply := tgbotapi.NewMessage(msg.Chat.ID, searchResultText(title, body))
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.DisableWebPagePreview = true
	reply.ReplyMarkup = backKeyboard()
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Printf("[%s] sending result: %v", reqID, err)
	}
}
