package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the Telegram Bot API directly over HTTP. Every call is
// best-effort from the caller's point of view: errors are returned so the
// dispatcher can log and drop them, and nothing retries.
type Client struct {
	token  string
	apiURL string
	httpc  *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		token:  token,
		apiURL: "https://api.telegram.org/bot" + token,
		httpc:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) send(ctx context.Context, method string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/"+method, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("telegram %s: %s", method, resp.Status)
	}
	return nil
}

// SendMessage sends plain text. A missing token, zero chat id or empty text
// makes it a silent no-op.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if c.token == "" || chatID == 0 || text == "" {
		return nil
	}
	return c.send(ctx, "sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    text,
	})
}

// SendCountryKeyboard asks the user to pick a region via inline buttons. The
// callback data tokens are the canonical country codes.
func (c *Client) SendCountryKeyboard(ctx context.Context, chatID int64) error {
	if c.token == "" || chatID == 0 {
		return nil
	}
	return c.send(ctx, "sendMessage", map[string]any{
		"chat_id": chatID,
		"text":    "请选择地区",
		"reply_markup": map[string]any{
			"inline_keyboard": [][]map[string]any{{
				{"text": "🇵🇭 菲律宾", "callback_data": CountryPH},
				{"text": "🇺🇸 美国", "callback_data": CountryUS},
			}},
		},
	})
}

// AnswerCallback acknowledges a callback query so the client stops showing
// its progress spinner.
func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) error {
	if c.token == "" || callbackID == "" {
		return nil
	}
	payload := map[string]any{"callback_query_id": callbackID}
	if text != "" {
		payload["text"] = text
		payload["show_alert"] = false
	}
	return c.send(ctx, "answerCallbackQuery", payload)
}

// SetWebhook points Telegram at our public webhook URL. Called once at
// startup; a failure is logged by the caller, not fatal.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	if c.token == "" || url == "" {
		return nil
	}
	return c.send(ctx, "setWebhook", map[string]any{"url": url})
}
