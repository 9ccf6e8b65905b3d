package notification

import (
	"context"
	"fmt"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, user *domain.User, event *domain.Event, amount int64) {
	text := fmt.Sprintf(
		"*Payment received!*\n\n"+"Event: %s\n"+"Amount: KES %d\n"+"Date: %s\n\n"+"Your registration is confirmed.",
		event.Title, amount, event.EventDate.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentFailed(ctx context.Context, user *domain.User, event *domain.Event, reason string) {
	text := fmt.Sprintf(
		"*Payment failed*\n\n"+"Event: %s\n"+"Reason: %s\n\n"+"You can retry the payment from your bookings page.",
		event.Title, reason,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCertificateIssued(ctx context.Context, user *domain.User, event *domain.Event) {
	text := fmt.Sprintf(
		"*Certificate issued!*\n\n"+"Event: %s\n\n"+"Check your email for your participation certificate.",
		event.Title,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
