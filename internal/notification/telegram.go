package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramAlerter posts operational alerts to an on-call chat. Unlike user
// notifications these carry money amounts and internal ids, so they go to a
// private ops channel instead of the notification exchange.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, ops alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (a *TelegramAlerter) PayoutFailed(ctx context.Context, providerID, earningsID string, amountCents int64, reason string) {
	text := fmt.Sprintf(
		"*Payout failure*\n\n"+
			"Provider: `%s`\n"+
			"Earnings: `%s`\n"+
			"Amount: %d.%02d\n"+
			"Reason: %s",
		providerID, earningsID, amountCents/100, amountCents%100, reason,
	)
	a.send(ctx, text)
}

func (a *TelegramAlerter) send(ctx context.Context, text string) {
	if a.bot == nil {
		a.logger.Debug("ops alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if a.chatID == 0 {
		a.logger.Debug("ops alert skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		a.logger.Debug("ops alert skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(a.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("failed to send ops alert",
			logger.Int64("chat_id", a.chatID),
			logger.String("error", err.Error()),
		)
	}
}
