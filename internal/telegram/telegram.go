// Package telegram delivers the optional completion notification
// through the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Environment variables gating remote notification. Both must be
// non-empty for delivery to be attempted.
const (
	EnvBotToken = "TELEGRAM_BOT_TOKEN"
	EnvChatID   = "TELEGRAM_CHAT_ID"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	requestTimeout = 5 * time.Second
)

// Config holds the bot credentials. A Config only exists when both
// values are present; partial configuration is treated as absent.
type Config struct {
	Token  string
	ChatID string
}

// ConfigFromEnv derives the configuration from the environment.
// ok is false when either variable is unset or empty.
func ConfigFromEnv() (Config, bool) {
	token := os.Getenv(EnvBotToken)
	chatID := os.Getenv(EnvChatID)
	if token == "" || chatID == "" {
		return Config{}, false
	}
	return Config{Token: token, ChatID: chatID}, true
}

// Client sends messages through the Telegram Bot API with a bounded
// request timeout.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client

	// Overridable in tests
	now   func() time.Time
	getwd func() (string, error)
}

// New creates a client for the given credentials.
func New(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: requestTimeout},
		now:     time.Now,
		getwd:   os.Getwd,
	}
}

// sendMessageRequest is the JSON payload for the sendMessage method.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// SendDone submits the completion message: a checkmark, the working
// directory's base name, and the wall-clock time. One request, no retry.
func (c *Client) SendDone(ctx context.Context) error {
	dir, err := c.getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	msg := fmt.Sprintf("✓ Done in '%s' at %s", filepath.Base(dir), c.now().Format("15:04:05"))
	return c.send(ctx, msg)
}

func (c *Client) send(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: c.cfg.ChatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.cfg.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}
	return nil
}
