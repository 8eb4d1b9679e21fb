// Package notification delivers staff notifications through the Telegram
// Bot API. Delivery is best-effort; callers log failures and move on.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"darkstore/config"
	"darkstore/internal/domain/entity"
	"darkstore/internal/domain/service"

	"github.com/pkg/errors"
)

const telegramAPIBase = "https://api.telegram.org"

// telegramNotifier implements OrderNotifier by calling the Bot API
// sendMessage method with HTML-formatted text.
type telegramNotifier struct {
	botToken   string
	chatID     string
	httpClient *http.Client
	logger     *slog.Logger
}

// noopNotifier is used when no bot token is configured, e.g. in tests and
// local development without a staff channel.
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) NotifyNewOrder(_ context.Context, order *entity.Order) error {
	n.logger.Debug("[Notify] Telegram not configured, skipping order notification",
		slog.Int64("order_id", order.ID),
	)

	return nil
}

func (n *noopNotifier) NotifyContactMessage(_ context.Context, message *entity.ContactMessage) error {
	n.logger.Debug("[Notify] Telegram not configured, skipping message notification",
		slog.Int64("message_id", message.ID),
	)

	return nil
}

// NewTelegramNotifier creates an OrderNotifier based on configuration.
// A missing bot token or chat ID yields a no-op notifier.
func NewTelegramNotifier(cfg *config.Config, logger *slog.Logger) service.OrderNotifier {
	if cfg.Telegram == nil || cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == "" {
		logger.Info("Telegram not configured, using no-op notifier")

		return &noopNotifier{logger: logger}
	}

	return &telegramNotifier{
		botToken: cfg.Telegram.BotToken,
		chatID:   cfg.Telegram.ChatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// NotifyNewOrder announces a freshly placed order to the staff channel.
func (n *telegramNotifier) NotifyNewOrder(ctx context.Context, order *entity.Order) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🛍️ <b>Новый заказ #%d</b>\n\n", order.ID)
	fmt.Fprintf(&sb, "👤 <b>Клиент:</b> %s\n", html.EscapeString(order.Name))
	fmt.Fprintf(&sb, "📞 <b>Телефон:</b> %s\n", html.EscapeString(order.Phone))
	if order.Email != "" {
		fmt.Fprintf(&sb, "📧 <b>Email:</b> %s\n", html.EscapeString(order.Email))
	}
	if order.Telegram != "" {
		fmt.Fprintf(&sb, "💬 <b>Telegram:</b> @%s\n", html.EscapeString(order.Telegram))
	}
	fmt.Fprintf(&sb, "📍 <b>Адрес:</b> %s\n\n", html.EscapeString(order.Address))

	sb.WriteString("<b>Состав заказа:</b>\n")
	for _, item := range order.Items {
		if item.Size != "" {
			fmt.Fprintf(&sb, "• %s - %s (x%d) - %d₽\n",
				html.EscapeString(item.Name), html.EscapeString(item.Size), item.Quantity, item.Price*int64(item.Quantity))
		} else {
			fmt.Fprintf(&sb, "• %s (x%d) - %d₽\n",
				html.EscapeString(item.Name), item.Quantity, item.Price*int64(item.Quantity))
		}
	}
	fmt.Fprintf(&sb, "\n💰 <b>Итого: %d₽</b>", order.Total)

	return n.sendMessage(ctx, sb.String())
}

// NotifyContactMessage announces a new contact form message.
func (n *telegramNotifier) NotifyContactMessage(ctx context.Context, message *entity.ContactMessage) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "✉️ <b>Новое сообщение #%d</b>\n\n", message.ID)
	fmt.Fprintf(&sb, "👤 <b>Имя:</b> %s\n", html.EscapeString(message.Name))
	fmt.Fprintf(&sb, "📧 <b>Email:</b> %s\n\n", html.EscapeString(message.Email))
	sb.WriteString(html.EscapeString(message.Message))

	return n.sendMessage(ctx, sb.String())
}

// sendMessage calls the Bot API sendMessage method.
func (n *telegramNotifier) sendMessage(ctx context.Context, text string) error {
	payload := map[string]string{
		"chat_id":    n.chatID,
		"text":       text,
		"parse_mode": "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, n.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("telegram returned non-success status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
