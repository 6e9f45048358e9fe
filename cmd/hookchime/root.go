package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/anthoai97/hookchime/internal/audio"
	"github.com/anthoai97/hookchime/internal/event"
	"github.com/anthoai97/hookchime/internal/notify"
	"github.com/anthoai97/hookchime/internal/sound"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var globalOpts struct {
	verbose bool
	volume  float64
}

var logger *slog.Logger

// rootCmd represents the hookchime command.
var rootCmd = &cobra.Command{
	Use:   "hookchime {input|complete}",
	Short: "Play a notification sound for automation lifecycle events",
	Long: `hookchime is a notification hook for automation tooling.

It plays a sound cue for the named lifecycle event:

  input    - a cue when the tool needs user input
  complete - a cue when the tool completes a task

On the complete event it additionally sends a Telegram message when
both TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are set. Remote delivery
is best-effort and never affects the exit code.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:    eventArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: runNotify,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.Flags().Float64Var(&globalOpts.volume, "volume", 1.0,
		"Playback volume (0.0 to 1.0)")
}

// eventArgs validates the single positional event keyword.
func eventArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one event: {input|complete}")
	}
	if _, err := event.Parse(args[0]); err != nil {
		return err
	}
	return nil
}

// runNotify plays the cue for the event and attempts the remote
// notification. It always returns nil: a well-formed invocation exits 0
// even when playback or delivery fails.
func runNotify(cmd *cobra.Command, args []string) error {
	ev, _ := event.Parse(args[0])

	sounds, err := sound.DefaultMapping()
	if err != nil {
		logger.Warn("failed to resolve sounds directory", "error", err)
		return nil
	}

	n := notify.New(sounds, audio.NewSpeaker(globalOpts.volume), logger)
	n.Play(ev)
	n.NotifyRemote(cmd.Context(), ev)

	return nil
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout stays clean
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
