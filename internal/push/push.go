// Package push sends the daily pick to every user who selected a country.
package push

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/matchpicks/supportbot/internal/bot"
	"github.com/matchpicks/supportbot/internal/config"
	"github.com/matchpicks/supportbot/internal/models"
)

// userLister is the slice of the user store the push job needs.
type userLister interface {
	ListWithCountry(ctx context.Context) ([]models.User, error)
}

// Scheduler runs the daily pick push on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	users    userLister
	notifier bot.Notifier
	gen      bot.Generator
	offsets  *config.Offsets
	log      *slog.Logger
}

func NewScheduler(users userLister, n bot.Notifier, g bot.Generator, offsets *config.Offsets, log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC), cron.WithSeconds()),
		users:    users,
		notifier: n,
		gen:      g,
		offsets:  offsets,
		log:      log,
	}
}

// Start registers the daily job at the given "HH:MM" (UTC) and starts the
// cron loop. An empty time string disables the push.
func (s *Scheduler) Start(pushTime string) error {
	if pushTime == "" {
		return nil
	}
	spec, err := buildDailySpec(pushTime)
	if err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// runOnce pushes today's pick to every eligible user. Per-user failures are
// logged and skipped; one bad row never stops the batch.
func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	users, err := s.users.ListWithCountry(ctx)
	if err != nil {
		s.log.Error("daily push: list users failed", "err", err)
		return
	}

	now := time.Now().UTC()
	for _, u := range users {
		if u.ChatroomID == nil || u.Country == nil {
			continue
		}
		chatID, ok := bot.ParseChatID(*u.ChatroomID)
		if !ok {
			continue
		}
		segments, err := s.gen.PickReply(ctx, chatID)
		if err != nil {
			s.log.Error("daily push: pick reply failed", "err", err, "chat_id", chatID)
			continue
		}
		header := localHeader(now, s.offsets.Get(*u.Country))
		if err := s.notifier.SendMessage(ctx, chatID, header); err != nil {
			s.log.Error("daily push: send header failed", "err", err, "chat_id", chatID)
			continue
		}
		for _, seg := range segments {
			if err := s.notifier.SendMessage(ctx, chatID, seg); err != nil {
				s.log.Error("daily push: send failed", "err", err, "chat_id", chatID)
			}
		}
	}
}

// localHeader states the user's local time so kickoff times below read
// unambiguously.
func localHeader(now time.Time, offsetHours int) string {
	local := now.Add(time.Duration(offsetHours) * time.Hour)
	return fmt.Sprintf("今日推荐（当地时间 %s）", local.Format("01-02 15:04"))
}

// buildDailySpec converts "HH:MM" to a six-field cron spec.
func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
