// Package notify orchestrates the audio cue and the optional remote
// notification for a single hook invocation.
package notify

import (
	"context"
	"log/slog"
	"os"

	"github.com/anthoai97/hookchime/internal/audio"
	"github.com/anthoai97/hookchime/internal/event"
	"github.com/anthoai97/hookchime/internal/sound"
	"github.com/anthoai97/hookchime/internal/telegram"
)

// remoteSender delivers the completion message. Implemented by
// telegram.Client.
type remoteSender interface {
	SendDone(ctx context.Context) error
}

// Notifier handles a single hook invocation.
type Notifier struct {
	sounds sound.Mapping
	out    audio.Output
	logger *slog.Logger

	// newRemote builds the remote sender; replaced in tests.
	newRemote func(telegram.Config) remoteSender
}

// New creates a Notifier playing through out.
func New(sounds sound.Mapping, out audio.Output, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sounds: sounds,
		out:    out,
		logger: logger,
		newRemote: func(cfg telegram.Config) remoteSender {
			return telegram.New(cfg)
		},
	}
}

// Play plays the sound mapped to ev, blocking until playback completes.
// Failures are logged and reported through the return value; they never
// propagate to the caller.
func (n *Notifier) Play(ev event.Event) bool {
	path := n.sounds.Path(ev)

	if _, err := os.Stat(path); err != nil {
		n.logger.Warn("sound file not found", "path", path)
		return false
	}

	buf, err := audio.Decode(path)
	if err != nil {
		n.logger.Warn("failed to play sound", "path", path, "error", err)
		return false
	}

	if err := n.out.Play(buf); err != nil {
		n.logger.Warn("failed to play sound", "path", path, "error", err)
		return false
	}

	n.logger.Debug("played sound", "event", ev, "path", path)
	return true
}

// NotifyRemote sends the completion message when ev is TaskComplete and
// both Telegram credentials are present in the environment. Delivery is
// best-effort: any failure is discarded here and never affects the
// playback outcome or the exit code.
func (n *Notifier) NotifyRemote(ctx context.Context, ev event.Event) {
	if ev != event.TaskComplete {
		return
	}

	cfg, ok := telegram.ConfigFromEnv()
	if !ok {
		// Not configured, skip silently
		return
	}

	_ = n.newRemote(cfg).SendDone(ctx)
}
