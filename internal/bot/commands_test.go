package bot

import "testing"

// Every recognized command must be matched by exactly one predicate,
// tolerating case and surrounding whitespace.
func TestCommandPredicates(t *testing.T) {
	predicates := map[string]func(string) bool{
		"start":     IsStartCommand,
		"help":      IsHelpCommand,
		"pick":      IsAIPickCommand,
		"history":   IsAIHistoryCommand,
		"yesterday": IsAIYesterdayCommand,
	}

	cases := []struct {
		text string
		want string // predicate name, "" for none
	}{
		{"/start", "start"},
		{"  /START  ", "start"},
		{"/Start", "start"},
		{"/help", "help"},
		{"\t/HELP\n", "help"},
		{"/ai_pick", "pick"},
		{"/AI_PICK", "pick"},
		{"/ai_history", "history"},
		{"/ai_yesterday", "yesterday"},
		{" /ai_yesterday ", "yesterday"},
		{"", ""},
		{"   ", ""},
		{"/starting", ""},
		{"/ai_pickk", ""},
		{"start", ""},
		{"what time is the game", ""},
		{"PH", ""},
	}

	for _, tc := range cases {
		for name, pred := range predicates {
			got := pred(tc.text)
			want := name == tc.want
			if got != want {
				t.Errorf("%s(%q) = %v, want %v", name, tc.text, got, want)
			}
		}
	}
}
