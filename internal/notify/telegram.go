package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/models"
)

// sender is the part of tgbotapi.BotAPI used here.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts events to a Telegram chat.
type TelegramNotifier struct {
	api    sender
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier authorizes the bot token against the Telegram API.
func NewTelegramNotifier(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}
	logger.Info("Telegram bot authorized", zap.String("username", botAPI.Self.UserName))
	return &TelegramNotifier{api: botAPI, chatID: chatID, logger: logger}, nil
}

func (t *TelegramNotifier) Name() string { return "telegram" }

func (t *TelegramNotifier) Notify(_ context.Context, ev models.Event) error {
	msg := tgbotapi.NewMessage(t.chatID, FormatEvent(ev))
	if ev.Location != nil && ev.Kind == models.EventEmergency {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("Open map", mapURL(*ev.Location)),
			),
		)
	}
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	t.logger.Debug("Event sent to Telegram", zap.String("event_id", ev.ID), zap.Int64("chat_id", t.chatID))
	return nil
}

func mapURL(loc models.Location) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=17/%.6f/%.6f",
		loc.Latitude, loc.Longitude, loc.Latitude, loc.Longitude)
}
