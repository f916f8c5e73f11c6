package push

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/matchpicks/supportbot/internal/config"
	"github.com/matchpicks/supportbot/internal/models"
)

type fakeLister struct{ users []models.User }

func (f *fakeLister) ListWithCountry(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	sends []string
}

func (f *fakeNotifier) SendMessage(ctx context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, fmt.Sprintf("%d:%s", chatID, text))
	return nil
}
func (f *fakeNotifier) SendCountryKeyboard(ctx context.Context, chatID int64) error { return nil }
func (f *fakeNotifier) AnswerCallback(ctx context.Context, callbackID, text string) error {
	return nil
}

type fakeGen struct{ fail bool }

func (f *fakeGen) PickReply(ctx context.Context, chatID int64) ([]string, error) {
	if f.fail {
		return nil, fmt.Errorf("provider down")
	}
	return []string{"pick of the day"}, nil
}
func (f *fakeGen) HistoryReply(ctx context.Context, chatID int64) (string, error)   { return "", nil }
func (f *fakeGen) YesterdayReply(ctx context.Context, chatID int64) (string, error) { return "", nil }

func strp(s string) *string { return &s }

func TestRunOncePushesToEligibleUsers(t *testing.T) {
	lister := &fakeLister{users: []models.User{
		{ExternalID: "1", ChatroomID: strp("10"), Country: strp("PH")},
		{ExternalID: "2", ChatroomID: strp("not-a-chat"), Country: strp("US")}, // skipped
		{ExternalID: "3", Country: strp("US")},                                 // no chatroom, skipped
	}}
	n := &fakeNotifier{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewScheduler(lister, n, &fakeGen{}, config.LoadOffsets(""), log)

	s.runOnce()

	// Header plus one segment for the single eligible user.
	if len(n.sends) != 2 {
		t.Fatalf("sends = %v", n.sends)
	}
	if n.sends[1] != "10:pick of the day" {
		t.Errorf("segment = %q", n.sends[1])
	}
}

// A failing generator skips the user without aborting the batch.
func TestRunOnceGeneratorFailure(t *testing.T) {
	lister := &fakeLister{users: []models.User{
		{ExternalID: "1", ChatroomID: strp("10"), Country: strp("PH")},
	}}
	n := &fakeNotifier{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewScheduler(lister, n, &fakeGen{fail: true}, config.LoadOffsets(""), log)

	s.runOnce()

	if len(n.sends) != 0 {
		t.Errorf("sends = %v, want none", n.sends)
	}
}

func TestLocalHeader(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got := localHeader(now, 8)
	if got != "今日推荐（当地时间 03-01 20:00）" {
		t.Errorf("header = %q", got)
	}
}

func TestBuildDailySpec(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:30", "0 30 9 * * *", true},
		{"00:00", "0 0 0 * * *", true},
		{"23:59", "0 59 23 * * *", true},
		{"24:00", "", false},
		{"9", "", false},
		{"aa:bb", "", false},
	}
	for _, tc := range cases {
		got, err := buildDailySpec(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("buildDailySpec(%q) = (%q, %v), want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("buildDailySpec(%q) should fail", tc.in)
		}
	}
}
