package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/matchpicks/supportbot/internal/config"
)

// Notifier sends outbound actions to the chat platform. Implementations are
// best-effort: errors come back to the dispatcher, which logs and drops them.
type Notifier interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendCountryKeyboard(ctx context.Context, chatID int64) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
}

// UserStore persists the sender's country selection, extracting identity
// fields from the update payload best-effort.
type UserStore interface {
	UpsertCountry(ctx context.Context, u *Update, rawText string) error
}

// Generator produces AI reply text for the pick/history/yesterday commands.
// PickReply may return several segments that must be sent in order.
type Generator interface {
	PickReply(ctx context.Context, chatID int64) ([]string, error)
	HistoryReply(ctx context.Context, chatID int64) (string, error)
	YesterdayReply(ctx context.Context, chatID int64) (string, error)
}

// AgentForwarder escalates an update nobody classified to a human-staffed
// channel.
type AgentForwarder interface {
	Forward(ctx context.Context, u *Update) error
}

const welcomeText = `Welcome to the support bot.
We provide AI match recommendations and fundamentals analysis.
Coverage highlights: Premier League, La Liga, Serie A, Bundesliga, Ligue 1, UCL, World Cup.
Please choose your country so we can show times in your local timezone.`

// WelcomeText returns the greeting used for /start and the landing endpoint.
func WelcomeText() string { return welcomeText }

// Dispatcher is the single decision point for one inbound update. Handle
// classifies synchronously and schedules the resulting actions on background
// goroutines, so the webhook can acknowledge before any of them complete.
type Dispatcher struct {
	notifier Notifier
	store    UserStore
	gen      Generator
	agent    AgentForwarder

	sendWelcome bool
	supportURL  string

	log *slog.Logger
	wg  sync.WaitGroup
}

func NewDispatcher(n Notifier, s UserStore, g Generator, a AgentForwarder, cfg *config.Config, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		notifier:    n,
		store:       s,
		gen:         g,
		agent:       a,
		sendWelcome: cfg.SendWelcome,
		supportURL:  cfg.SupportGroupURL,
		log:         log,
	}
}

// Handle routes one update. It never returns an error: every failure past
// classification is logged and swallowed.
func (d *Dispatcher) Handle(u *Update) {
	switch {
	case u == nil:
	case u.Message != nil:
		d.handleMessage(u)
	case u.Callback != nil:
		d.handleCallback(u)
	}
}

// Wait blocks until all scheduled background actions finish. Used on
// shutdown and by tests; the webhook path never calls it.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// schedule runs one ordered group of actions in the background. Groups from
// the same update have no ordering relative to each other; sequencing only
// holds inside a group.
func (d *Dispatcher) schedule(job func(ctx context.Context)) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		job(context.Background())
	}()
}

// discard makes the never-propagate policy explicit: a failed background
// action is logged and dropped, not retried and not surfaced.
func (d *Dispatcher) discard(op string, err error) {
	if err != nil {
		d.log.Error(op+" failed", "err", err)
	}
}

// Message routing, in fixed priority order: start, country selection,
// /ai_pick, /help, /ai_history, /ai_yesterday, then escalation fallback.
// The predicates are disjoint, so at most one branch fires.
func (d *Dispatcher) handleMessage(u *Update) {
	m := u.Message
	var chatID int64
	if m.Chat != nil {
		chatID = m.Chat.ID
	}
	text := m.Text
	_, isCountry := NormalizeCountry(text)

	switch {
	case IsStartCommand(text):
		d.schedule(func(ctx context.Context) {
			if d.sendWelcome {
				d.discard("send welcome", d.notifier.SendMessage(ctx, chatID, welcomeText))
			}
			d.discard("send country keyboard", d.notifier.SendCountryKeyboard(ctx, chatID))
		})

	case isCountry:
		d.schedule(func(ctx context.Context) {
			d.discard("upsert country", d.store.UpsertCountry(ctx, u, text))
		})

	case IsAIPickCommand(text) && chatID != 0:
		d.schedule(func(ctx context.Context) {
			segments, err := d.gen.PickReply(ctx, chatID)
			if err != nil {
				d.log.Error("ai pick reply failed", "err", err, "chat_id", chatID)
				return
			}
			for _, seg := range segments {
				d.discard("send pick segment", d.notifier.SendMessage(ctx, chatID, seg))
			}
		})

	case IsHelpCommand(text) && chatID != 0:
		d.schedule(func(ctx context.Context) {
			d.discard("send help", d.notifier.SendMessage(ctx, chatID, d.helpText()))
		})

	case IsAIHistoryCommand(text) && chatID != 0:
		d.scheduleReply(chatID, "ai history reply", d.gen.HistoryReply)

	case IsAIYesterdayCommand(text) && chatID != 0:
		d.scheduleReply(chatID, "ai yesterday reply", d.gen.YesterdayReply)

	default:
		// Escalation: anything with a chat id and non-empty text that is not
		// a command or a country selection goes to a human.
		if chatID != 0 && strings.TrimSpace(text) != "" {
			d.schedule(func(ctx context.Context) {
				d.discard("forward to agent", d.agent.Forward(ctx, u))
			})
		}
	}
}

func (d *Dispatcher) scheduleReply(chatID int64, op string, gen func(context.Context, int64) (string, error)) {
	d.schedule(func(ctx context.Context) {
		reply, err := gen(ctx, chatID)
		if err != nil {
			d.log.Error(op+" failed", "err", err, "chat_id", chatID)
			return
		}
		d.discard(op, d.notifier.SendMessage(ctx, chatID, reply))
	})
}

// Callback routing: only country selections are ours; any other payload is
// silently ignored. The acknowledgement must go out before the follow-up
// text, so the whole sequence is one group.
func (d *Dispatcher) handleCallback(u *Update) {
	cb := u.Callback
	code, ok := NormalizeCountry(cb.Data)
	if !ok {
		return
	}
	data := cb.Data
	d.schedule(func(ctx context.Context) {
		d.discard("upsert country", d.store.UpsertCountry(ctx, u, data))
		d.discard("answer callback", d.notifier.AnswerCallback(ctx, cb.ID, "Selection recorded"))
		if chatID, ok := u.ChatID(); ok {
			d.discard("send selection ack", d.notifier.SendMessage(ctx, chatID, selectionAck(code)))
		}
	})
}

func (d *Dispatcher) helpText() string {
	url := d.supportURL
	if url == "" {
		url = "url"
	}
	return fmt.Sprintf("Need a human? Join our support group: %s\nCommands: /ai_pick today's picks, /ai_history track record, /ai_yesterday yesterday's results.", url)
}

func selectionAck(code string) string {
	return fmt.Sprintf("已选择 %s。可用指令：\n/ai_pick 今日推荐\n/ai_history 历史战绩\n/ai_yesterday 昨日复盘", CountryName(code))
}
