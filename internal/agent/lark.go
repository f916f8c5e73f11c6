// Package agent forwards unclassified messages to the humans on duty.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/matchpicks/supportbot/internal/bot"
)

// LarkForwarder posts escalation alerts to a Lark group-bot webhook. An empty
// webhook URL disables forwarding silently.
type LarkForwarder struct {
	webhookURL string
	httpc      *http.Client
}

func NewLarkForwarder(webhookURL string) *LarkForwarder {
	return &LarkForwarder{
		webhookURL: webhookURL,
		httpc:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Forward sends a text alert carrying the sender, chat id and message
// content, tagged with a fresh event id so on-call can reference it.
func (f *LarkForwarder) Forward(ctx context.Context, u *bot.Update) error {
	if f.webhookURL == "" {
		return nil
	}

	name, _ := u.SenderName()
	if name == "" {
		name = "未知"
	}
	var chatID int64
	if id, ok := u.ChatID(); ok {
		chatID = id
	}
	content := u.Text()
	if r := []rune(content); len(r) > 300 {
		content = string(r[:300])
	}

	text := fmt.Sprintf("人工接入提醒\n事件ID: %s\n用户: %s\n聊天ID: %d\n请求内容: %s",
		uuid.NewString(), name, chatID, content)
	payload := map[string]any{
		"msg_type": "text",
		"content":  map[string]any{"text": text},
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.webhookURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("lark alert: %s", resp.Status)
	}
	return nil
}
