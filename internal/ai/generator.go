// Package ai holds the reply-generation seam. Reply production lives in a
// separate provider service; this package only pins down the contract the
// dispatcher consumes and a stub for deployments without a provider.
package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no reply provider is configured.
var ErrUnavailable = errors.New("ai: reply provider not configured")

// Unconfigured satisfies the dispatcher's Generator interface and always
// fails, which exercises the log-and-suppress path: the command is simply
// not replied to.
type Unconfigured struct{}

func (Unconfigured) PickReply(ctx context.Context, chatID int64) ([]string, error) {
	return nil, ErrUnavailable
}

func (Unconfigured) HistoryReply(ctx context.Context, chatID int64) (string, error) {
	return "", ErrUnavailable
}

func (Unconfigured) YesterdayReply(ctx context.Context, chatID int64) (string, error) {
	return "", ErrUnavailable
}
