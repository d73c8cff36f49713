package notify

import (
	"context"
	"fmt"
	"strings"

	"kalakruti_api/internal/domain/entities"
	"kalakruti_api/internal/domain/pricing"
	"kalakruti_api/internal/usecase/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of tgbotapi.BotAPI used to deliver messages.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts every new lead to the sales chat.
type TelegramNotifier struct {
	bot    Sender
	chatID int64
	log    *zap.Logger
}

var _ interfaces.ILeadNotifier = (*TelegramNotifier)(nil)

// NewTelegramNotifier authorizes the bot token against the Telegram API.
func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	logger.Info("[notify][infra] telegram bot authorized",
		zap.String("username", botAPI.Self.UserName), zap.Int64("chat_id", chatID))
	return NewTelegramNotifierWithSender(botAPI, chatID, logger), nil
}

func NewTelegramNotifierWithSender(bot Sender, chatID int64, logger *zap.Logger) *TelegramNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, log: logger}
}

func (n *TelegramNotifier) NotifyEstimate(ctx context.Context, e entities.Estimate) error {
	return n.send(ctx, estimateText(e))
}

func (n *TelegramNotifier) NotifyContact(ctx context.Context, c entities.Contact) error {
	var b strings.Builder
	b.WriteString("New contact enquiry\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n", c.Name, c.Email, c.Phone)
	fmt.Fprintf(&b, "Message: %s", c.Message)
	return n.send(ctx, b.String())
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func estimateText(e entities.Estimate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New %s estimate lead\n", e.Kind)
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n", e.Name, e.Email, e.Phone)
	if e.PropertyName != "" {
		fmt.Fprintf(&b, "Property: %s\n", e.PropertyName)
	}
	if e.City != "" {
		fmt.Fprintf(&b, "City: %s\n", e.City)
	}

	switch {
	case e.Home != nil:
		fmt.Fprintf(&b, "Home: %s, %s package, range %s\n", strings.ToUpper(e.Home.BHK), e.Home.Package, e.Home.DisplayRange)
	case e.Kitchen != nil:
		fmt.Fprintf(&b, "Kitchen: %s, %s package, %.2f sq ft\n", e.Kitchen.Layout, e.Kitchen.Package, e.Kitchen.Area)
	case e.Wardrobe != nil:
		fmt.Fprintf(&b, "Wardrobe: %s, %s package, %.2f sq ft\n", e.Wardrobe.Type, e.Wardrobe.Package, e.Wardrobe.Area)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", e.Message)
	}
	if e.WhatsappUpdates {
		b.WriteString("Wants WhatsApp updates\n")
	}
	fmt.Fprintf(&b, "Estimated price: ₹%s", pricing.FormatINR(e.EstimatedPrice))
	return b.String()
}
