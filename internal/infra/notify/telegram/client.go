// Package telegram delivers operator notifications through the Telegram Bot
// API. Messages are sent with Markdown formatting; when Telegram rejects the
// markup the message is sent again as plain text.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabapcia/airdrop/internal/distribution"
	"github.com/gabapcia/airdrop/internal/pkg/logger"
	"github.com/gabapcia/airdrop/internal/pkg/resilience/retry"

	"go.uber.org/ratelimit"
)

const (
	// DefaultAPIURL is the public Bot API endpoint.
	DefaultAPIURL = "https://api.telegram.org"

	verificationMessage = "✅ Bot verification message - System starting"

	parseModeMarkdown = "Markdown"
)

var (
	// ErrNotification is returned when a message could not be delivered
	// after every attempt.
	ErrNotification = errors.New("notification failed")

	// ErrDisabled is returned by Verify when no bot token or chat is configured.
	ErrDisabled = errors.New("telegram notifications disabled")
)

// apiError is an unsuccessful Bot API response.
type apiError struct {
	Code        int
	Description string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("telegram api error %d: %s", e.Code, e.Description)
}

// isParseError reports whether Telegram rejected the message markup.
func isParseError(err error) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && strings.Contains(apiErr.Description, "can't parse entities")
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

type client struct {
	httpClient *http.Client
	apiURL     string
	botToken   string
	chatID     string

	retry   retry.Retry
	limiter ratelimit.Limiter
}

// Compile-time assertion that client implements distribution.Notifier.
var _ distribution.Notifier = (*client)(nil)

// Enabled reports whether both a bot token and a chat are configured.
func (c *client) Enabled() bool {
	return c.botToken != "" && c.chatID != ""
}

// Notify sends text to the configured chat, retrying with backoff. When the
// client is disabled the message is only logged.
//
// Errors wrap ErrNotification.
func (c *client) Notify(ctx context.Context, text string) error {
	if !c.Enabled() {
		logger.Debug(ctx, "telegram disabled, message not sent", "telegram.text", text)
		return nil
	}

	err := c.retry.Execute(ctx, func() error {
		return c.deliver(ctx, text)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotification, err)
	}

	return nil
}

// Verify sends a single startup message so a bad token or chat is reported
// right away instead of on the first cycle.
func (c *client) Verify(ctx context.Context) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	if err := c.deliver(ctx, verificationMessage); err != nil {
		return fmt.Errorf("%w: %w", ErrNotification, err)
	}

	logger.Info(ctx, "telegram configuration verified", "telegram.chat_id", c.chatID)
	return nil
}

// deliver sends text as Markdown and falls back to plain text once if the
// markup is rejected.
func (c *client) deliver(ctx context.Context, text string) error {
	err := c.sendMessage(ctx, text, parseModeMarkdown)
	if err == nil || !isParseError(err) {
		return err
	}

	logger.Debug(ctx, "telegram rejected markdown, retrying as plain text", "error", err)
	return c.sendMessage(ctx, StripMarkup(text), "")
}

func (c *client) sendMessage(ctx context.Context, text, parseMode string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if err := c.waitTurn(ctx); err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		// the request URL embeds the bot token
		return errors.New(strings.ReplaceAll(err.Error(), c.botToken, "<redacted>"))
	}
	defer res.Body.Close()

	var data sendMessageResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return fmt.Errorf("invalid response (status %d): %w", res.StatusCode, err)
	}

	if !data.OK {
		return &apiError{Code: data.ErrorCode, Description: data.Description}
	}

	return nil
}

// waitTurn blocks until the rate limiter admits one more request or ctx is
// done, whichever comes first.
func (c *client) waitTurn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	admitted := make(chan struct{})
	go func() {
		c.limiter.Take()
		close(admitted)
	}()

	select {
	case <-admitted:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// StripMarkup removes the Markdown characters Telegram may fail to parse.
// Brackets around links are dropped and parentheses become spaces so the
// URL stays readable.
func StripMarkup(text string) string {
	return strings.NewReplacer(
		"*", "",
		"_", "",
		"`", "",
		"[", "",
		"]", "",
		"(", " ",
		")", " ",
	).Replace(text)
}

type config struct {
	apiURL string
	retry  retry.Retry
	rate   int
}

type Option func(*config)

// WithAPIURL overrides the Bot API base URL.
func WithAPIURL(url string) Option {
	return func(c *config) {
		c.apiURL = strings.TrimSuffix(url, "/")
	}
}

// WithRetry sets the retry policy of Notify.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithRateLimit caps sends per second. Zero disables the limit.
func WithRateLimit(perSecond int) Option {
	return func(c *config) {
		c.rate = perSecond
	}
}

// NewClient returns a Telegram notifier. An empty botToken or chatID yields
// a disabled client that only logs.
func NewClient(httpClient *http.Client, botToken, chatID string, opts ...Option) *client {
	cfg := config{
		apiURL: DefaultAPIURL,
		retry:  retry.New(),
		rate:   1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.rate > 0 {
		limiter = ratelimit.New(cfg.rate)
	}

	return &client{
		httpClient: httpClient,
		apiURL:     cfg.apiURL,
		botToken:   botToken,
		chatID:     chatID,
		retry:      cfg.retry,
		limiter:    limiter,
	}
}
