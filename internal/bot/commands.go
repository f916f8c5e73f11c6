package bot

import "strings"

// Command predicates. Each one is a total function over raw message text:
// matching is case-insensitive and ignores surrounding whitespace, and empty
// or whitespace-only text matches nothing. The trigger tokens are disjoint,
// so at most one predicate is true for any input.

func IsStartCommand(text string) bool     { return matchesCommand(text, "/start") }
func IsHelpCommand(text string) bool      { return matchesCommand(text, "/help") }
func IsAIPickCommand(text string) bool    { return matchesCommand(text, "/ai_pick") }
func IsAIHistoryCommand(text string) bool { return matchesCommand(text, "/ai_history") }

func IsAIYesterdayCommand(text string) bool { return matchesCommand(text, "/ai_yesterday") }

func matchesCommand(text, token string) bool {
	return strings.EqualFold(strings.TrimSpace(text), token)
}
