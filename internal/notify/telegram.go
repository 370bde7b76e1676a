package notify

import (
	"fmt"

	"critgo/backend/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender pushes the notification to one operator chat. It is an
// optional sink: left nil when no bot token is configured.
type TelegramSender struct {
	Bot    *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramSender authorizes the bot. Callers pass the result (possibly
// nil) straight into the notify service.
func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramSender{Bot: bot, ChatID: chatID}, nil
}

// SendEvento sends a short plain-text summary of the queja.
func (t *TelegramSender) SendEvento(evt models.EventoQueja) error {
	text := fmt.Sprintf("Nueva Queja %s\nCliente: %s\nCategoría: %s\nTítulo: %s",
		evt.Tipo, evt.NombreCliente, evt.Categoria, evt.Titulo)

	msg := tgbotapi.NewMessage(t.ChatID, text)
	_, err := t.Bot.Send(msg)
	return err
}
