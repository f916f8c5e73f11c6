package bot

import (
	"regexp"
	"strconv"
	"strings"
)

// Best-effort field extraction over an update. The payload shape differs
// between the message and callback origins, so every lookup walks both and
// reports absence instead of failing.

// ExternalID returns the stable sender id, as a string, from either origin.
func (u *Update) ExternalID() (string, bool) {
	switch {
	case u == nil:
		return "", false
	case u.Message != nil && u.Message.From != nil:
		return strconv.FormatInt(u.Message.From.ID, 10), true
	case u.Callback != nil && u.Callback.From != nil:
		return strconv.FormatInt(u.Callback.From.ID, 10), true
	}
	return "", false
}

// SenderName returns the sender's username, falling back to the first name.
func (u *Update) SenderName() (string, bool) {
	var from *User
	switch {
	case u == nil:
	case u.Message != nil:
		from = u.Message.From
	case u.Callback != nil:
		from = u.Callback.From
	}
	if from == nil {
		return "", false
	}
	if from.Username != "" {
		return from.Username, true
	}
	if from.FirstName != "" {
		return from.FirstName, true
	}
	return "", false
}

// ChatID returns the originating chat id: the message's chat, or for a
// callback query the chat of the message the pressed keyboard hangs on.
func (u *Update) ChatID() (int64, bool) {
	switch {
	case u == nil:
	case u.Message != nil && u.Message.Chat != nil:
		return u.Message.Chat.ID, true
	case u.Callback != nil && u.Callback.Message != nil && u.Callback.Message.Chat != nil:
		return u.Callback.Message.Chat.ID, true
	}
	return 0, false
}

// Text returns the routable payload: message text or callback data.
func (u *Update) Text() string {
	switch {
	case u == nil:
		return ""
	case u.Message != nil:
		return u.Message.Text
	case u.Callback != nil:
		return u.Callback.Data
	}
	return ""
}

var reChatID = regexp.MustCompile(`-?\d+`)

// ParseChatID scrapes a chat id out of a stored chatroom string. Stored ids
// sometimes carry prefixes from other channels, so take the first integer run.
func ParseChatID(raw string) (int64, bool) {
	m := reChatID.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
