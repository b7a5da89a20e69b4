package logic

import (
	"follower_bot/shared"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notifier.go -package mocks follower_bot/logic INotifier

// INotifier delivers operator notifications. Delivery is best effort: failures are logged, never returned.
type INotifier interface {
	Send(text string)
}

const telegramTimeoutSec = 10

func NewNotifier(cfg *shared.Config, logger shared.ILogger) INotifier {
	if cfg.Secrets.TelegramBotToken == "" || cfg.Secrets.TelegramChatId == "" {
		logger.Info("Telegram not configured; notifications go to the log")
		return &logNotifier{logger}
	}
	return &telegramNotifier{
		logger:   logger,
		token:    cfg.Secrets.TelegramBotToken,
		chatId:   cfg.Secrets.TelegramChatId,
		endpoint: tgbotapi.APIEndpoint,
		client:   &http.Client{Timeout: telegramTimeoutSec * time.Second},
	}
}

type logNotifier struct {
	logger shared.ILogger
}

func (ln *logNotifier) Send(text string) {
	ln.logger.Info("Notification", "text", shared.StripHtml(text))
}

type telegramNotifier struct {
	logger   shared.ILogger
	token    string
	chatId   string
	endpoint string
	client   *http.Client
	muBot    sync.Mutex
	bot      *tgbotapi.BotAPI
}

func (tn *telegramNotifier) Send(text string) {

	tn.muBot.Lock()
	defer tn.muBot.Unlock()

	if tn.bot == nil {
		bot, err := tgbotapi.NewBotAPIWithClient(tn.token, tn.endpoint, tn.client)
		if err != nil {
			tn.logger.Warnf("Failed to connect to Telegram: %v", err)
			return
		}
		tn.bot = bot
	}

	msg := tn.newMessage(text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := tn.bot.Send(msg); err != nil {
		tn.logger.Warnf("Telegram notification error: %v", err)
		// Reconnect on next send
		tn.bot = nil
	}
}

func (tn *telegramNotifier) newMessage(text string) tgbotapi.MessageConfig {
	if strings.HasPrefix(tn.chatId, "@") {
		return tgbotapi.NewMessageToChannel(tn.chatId, text)
	}
	if id, err := strconv.ParseInt(tn.chatId, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	return tgbotapi.NewMessageToChannel("@"+tn.chatId, text)
}
