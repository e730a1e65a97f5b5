// Package changefeed replays externally-sourced mutations into an
// lrmap.Writer. It is grounded on the teacher's internal/repo (Redis client
// construction) and internal/rules (Cache.ReloadAll / StartWatcher, Poller)
// packages, but — unlike those — never makes Redis the source of truth for
// the map's own state: Redis is purely an upstream feed of put/remove/clear
// commands that get replayed through a Writer and periodically Refreshed.
package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nanjiek/leftright-kv/internal/metrics"
	"github.com/nanjiek/leftright-kv/lrmap"
)

// Command is the wire shape of one mutation published to the change feed's
// Redis channel.
type Command struct {
	Op    string `json:"op"` // "put" | "remove" | "clear"
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

// Feed subscribes to a Redis pub/sub channel of JSON-encoded Commands and
// replays them into a Writer, calling Refresh after each applied command.
// It also calls Refresh on a fixed interval, the same ticker-fallback
// shape as the teacher's rules.Cache.StartWatcher; the ticker only
// publishes pending writes and does not recover notifications the
// subscription missed.
type Feed struct {
	client   *redis.Client
	channel  string
	writer   *lrmap.Writer[string, string]
	log      *slog.Logger
	interval time.Duration
	rec      *metrics.Recorder
}

// Option configures a Feed, matching the teacher's functional-option style
// in internal/repo/redis.go.
type Option func(*Feed)

// WithLogger overrides the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(f *Feed) { f.log = log }
}

// WithResyncInterval overrides the interval of the fallback Refresh ticker
// (default 60s).
func WithResyncInterval(d time.Duration) Option {
	return func(f *Feed) { f.interval = d }
}

// WithMetrics attaches a Recorder that observes every refresh this feed
// triggers, whether from an applied command or the fallback ticker.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(f *Feed) { f.rec = rec }
}

// New constructs a Feed. client must already be connected; New does not
// ping it.
func New(client *redis.Client, channel string, writer *lrmap.Writer[string, string], opts ...Option) *Feed {
	f := &Feed{
		client:   client,
		channel:  channel,
		writer:   writer,
		log:      slog.Default(),
		interval: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run subscribes and applies commands until ctx is done or the
// subscription channel closes. It reports no errors: malformed or
// unsupported commands are logged and dropped, and a closed subscription
// channel ends Run without a log line.
func (f *Feed) Run(ctx context.Context) {
	sub := f.client.Subscribe(ctx, f.channel)
	defer func() { _ = sub.Close() }()

	msgs := sub.Channel()
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			f.applyMessage(msg.Payload)
		case <-ticker.C:
			f.refresh()
		}
	}
}

func (f *Feed) refresh() {
	if f.rec != nil {
		f.rec.Refreshed(f.writer.Refresh)
		return
	}
	f.writer.Refresh()
}

func (f *Feed) applyMessage(payload string) {
	cmd, err := decode(payload)
	if err != nil {
		f.log.Warn("changefeed: dropping malformed command", "error", err)
		return
	}

	if err := f.apply(cmd); err != nil {
		f.log.Warn("changefeed: dropping command", "op", cmd.Op, "error", err)
		return
	}
	if f.rec != nil {
		f.rec.Write()
	}

	f.refresh()
}

func decode(payload string) (Command, error) {
	var cmd Command
	if err := json.Unmarshal([]byte(payload), &cmd); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	return cmd, nil
}

func (f *Feed) apply(cmd Command) error {
	switch cmd.Op {
	case "put":
		if cmd.Key == "" {
			return errors.New("put requires a key")
		}
		f.writer.Put(cmd.Key, cmd.Value)
	case "remove":
		if cmd.Key == "" {
			return errors.New("remove requires a key")
		}
		f.writer.Remove(cmd.Key)
	case "clear":
		f.writer.Clear()
	default:
		return fmt.Errorf("unsupported op %q", cmd.Op)
	}
	return nil
}
