package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramAlerter posts operational alerts to the admin chat.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, adminChatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" || adminChatID == 0 {
		logger.Warn("telegram bot token or admin chat is empty, admin alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: adminChatID, logger: logger}, nil
}

func (n *TelegramAlerter) NotifyDisputeOpened(ctx context.Context, b *domain.Booking) {
	n.send(ctx, disputeText(b))
}

func (n *TelegramAlerter) NotifySettlementFailed(ctx context.Context, b *domain.Booking, op string, cause error) {
	n.send(ctx, settlementFailedText(b, op, cause))
}

func disputeText(b *domain.Booking) string {
	reason := ""
	if b.DisputeReason != nil {
		reason = *b.DisputeReason
	}
	return fmt.Sprintf(
		"*Dispute opened* %s\n\n"+"Customer: %s\n"+"Partner: %s\n"+"Amount on hold: RM %s (%s)\n"+"Reason: %s",
		b.BookingNumber, b.CustomerID, b.BarberID, b.TotalPrice, b.PaymentMethod, reason,
	)
}

func settlementFailedText(b *domain.Booking, op string, cause error) string {
	return fmt.Sprintf(
		"*Payment %s failed* %s\n\n"+"Amount: RM %s (%s)\n"+"Payment status: %s\n"+"Error: %v",
		op, b.BookingNumber, b.TotalPrice, b.PaymentMethod, b.PaymentStatus, cause,
	)
}

func (n *TelegramAlerter) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("alert skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
