// Package bot – Telegram transport
//
// Thin wrapper around the Telegram Bot API: long-polls for updates,
// feeds them to the command router, and implements the dispatcher's
// Sender interface for outbound deliveries.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/arestitans/smart-dispatcher/internal/notify"
)

// Telegram is the live channel transport. It is safe for concurrent use;
// the underlying client serializes its own HTTP calls.
type Telegram struct {
	api *tgbotapi.BotAPI
	log zerolog.Logger
}

// NewTelegram authorizes against the Bot API with the given token.
func NewTelegram(token string, log zerolog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = false
	log.Info().Str("account", api.Self.UserName).Msg("telegram bot authorized")
	return &Telegram{api: api, log: log}, nil
}

// Send delivers a plain text message to one chat.
func (t *Telegram) Send(chatID int64, text string) error {
	_, err := t.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendButtons delivers a message with an inline keyboard.
func (t *Telegram) SendButtons(chatID int64, text string, rows [][]notify.Button) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard(rows)
	_, err := t.api.Send(msg)
	return err
}

// keyboard converts dispatcher button rows into the wire representation.
func keyboard(rows [][]notify.Button) tgbotapi.InlineKeyboardMarkup {
	kb := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		wire := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			wire = append(wire, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		kb = append(kb, wire)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kb...)
}

// Run long-polls for updates and dispatches them to the router until ctx
// is cancelled. Each update is handled in its own goroutine so a slow
// handler never stalls the poll loop.
func (t *Telegram) Run(ctx context.Context, router *Router) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 60
	updates := t.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info().Msg("telegram bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			switch {
			case update.Message != nil:
				msg := update.Message
				in := Inbound{
					ChatID: msg.Chat.ID,
					Text:   msg.Text,
				}
				if msg.From != nil {
					in.Username = msg.From.UserName
					in.FirstName = msg.From.FirstName
					in.LastName = msg.From.LastName
				}
				go router.HandleMessage(in)
			case update.CallbackQuery != nil:
				cq := update.CallbackQuery
				go func() {
					if cq.Message != nil {
						router.HandleCallback(cq.Message.Chat.ID, cq.Data)
					}
					// Ack so the client stops the progress spinner.
					if _, err := t.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
						t.log.Warn().Err(err).Msg("callback ack failed")
					}
				}()
			}
		}
	}
}
