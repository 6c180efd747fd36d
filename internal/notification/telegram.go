package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier delivers notices to a coordination channel. Per-user
// routing lives in the profile subsystem outside this core; the channel gets
// the addressed copy.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) Send(ctx context.Context, notice domain.Notice) error {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("notice skipped (bot disabled)",
			logger.String("kind", string(notice.Kind)),
			logger.String("event_id", notice.EventID),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}

	var b strings.Builder
	if notice.Urgent() {
		b.WriteString("🚨 *URGENT*\n")
	}
	fmt.Fprintf(&b, "*%s*\n", notice.Subject)
	fmt.Fprintf(&b, "%s\n\n", notice.Body)
	fmt.Fprintf(&b, "Kind: %s\n", notice.Kind)
	fmt.Fprintf(&b, "To: %s (%s)\n", notice.ToUserID, notice.ToRole)
	fmt.Fprintf(&b, "Event: %s", notice.EventID)

	msg := tgbotapi.NewMessage(n.chatID, b.String())
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
