// Package notify posts league announcements to a group chat webhook.
package notify

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"sunday-league/internal/domain/game"
	"sunday-league/internal/domain/match"
	"sunday-league/internal/platform/resilience"
)

var errWebhookTransient = crerr.New("webhook transient failure")

type ClientConfig struct {
	WebhookURL     string
	Channel        string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client implements the usecase notifier interfaces over an outgoing
// webhook. Delivery is best effort; the services log and continue when
// Post returns an error.
type Client struct {
	httpClient     *http.Client
	webhookURL     string
	channel        string
	logger         *slog.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		webhookURL:     strings.TrimSpace(cfg.WebhookURL),
		channel:        strings.TrimSpace(cfg.Channel),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) MatchRecorded(ctx context.Context, record match.Record) error {
	text := buildMatchMessage(record)
	return c.post(ctx, "match_recorded", text)
}

func (c *Client) GameScheduled(ctx context.Context, item game.ScheduledGame) error {
	text := buildGameMessage(item)
	return c.post(ctx, "game_scheduled", text)
}

type webhookMessage struct {
	Channel string `json:"channel,omitempty"`
	Event   string `json:"event"`
	Text    string `json:"text"`
}

func (c *Client) post(ctx context.Context, event, text string) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "webhook circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("webhook is temporarily unavailable: %w", err)
		}
	}

	webhookURL, err := validateHTTPBaseURL(c.webhookURL)
	if err != nil {
		return crerr.Wrap(err, "invalid NOTIFY_WEBHOOK_URL")
	}

	body, err := sonic.Marshal(webhookMessage{Channel: c.channel, Event: event, Text: text})
	if err != nil {
		return crerr.Wrap(err, "marshal webhook message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, strings.NewReader(string(body)))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: post webhook event=%s: %v", errWebhookTransient, event, err)
		c.recordCircuitResult(callErr)
		return callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if isRetryableStatus(resp.StatusCode) {
			callErr := fmt.Errorf("%w: post webhook event=%s status=%d body=%s", errWebhookTransient, event, resp.StatusCode, strings.TrimSpace(string(raw)))
			c.recordCircuitResult(callErr)
			return callErr
		}

		callErr := fmt.Errorf("post webhook event=%s status=%d body=%s", event, resp.StatusCode, strings.TrimSpace(string(raw)))
		c.recordCircuitResult(callErr)
		return callErr
	}

	c.logger.InfoContext(ctx, "webhook delivered", "event", event)
	c.recordCircuitResult(nil)
	return nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errWebhookTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func buildMatchMessage(record match.Record) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = fmt.Fprintf(buf, "Full time: %d-%d (%d vs %d players)", record.GoalsA, record.GoalsB, len(record.TeamA), len(record.TeamB))
	if record.MVPPlayer != "" {
		_, _ = buf.WriteString(" | MVP: ")
		_, _ = buf.WriteString(record.MVPPlayer)
	}
	return buf.String()
}

func buildGameMessage(item game.ScheduledGame) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("New game scheduled: ")
	_, _ = buf.WriteString(item.ScheduledAt.Format("Mon 2 Jan 15:04"))
	if item.Location != "" {
		_, _ = buf.WriteString(" at ")
		_, _ = buf.WriteString(item.Location)
	}
	_, _ = fmt.Fprintf(buf, " (%d spots)", item.Capacity())
	return buf.String()
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

func validateHTTPBaseURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return strings.TrimRight(candidate, "/"), nil
}
