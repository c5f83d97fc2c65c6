// Package avatar calls an image generation API to render cartoon
// avatars for league players.
package avatar

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"sunday-league/internal/platform/resilience"
	"sunday-league/internal/usecase"
)

const defaultStyle = "cartoon sticker, flat colors, white background"

var errAvatarTransient = crerr.New("avatar provider transient failure")

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Style          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	apiKey         string
	style          string
	timeout        time.Duration
	logger         *slog.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	style := strings.TrimSpace(cfg.Style)
	if style == "" {
		style = defaultStyle
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient: &fasthttp.Client{
			MaxConnsPerHost:     16,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		style:          style,
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Size   string `json:"size"`
}

type generateResponse struct {
	URL string `json:"url"`
}

// Generate renders one avatar and returns its hosted URL.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", crerr.New("prompt is required")
	}
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "avatar circuit breaker rejected request", "state", c.breaker.State())
			return "", fmt.Errorf("%w: avatar provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	body, err := sonic.Marshal(generateRequest{Prompt: prompt, Style: c.style, Size: "512x512"})
	if err != nil {
		return "", crerr.Wrap(err, "marshal avatar request")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/v1/images/generate")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.SetBody(body)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		callErr := fmt.Errorf("%w: send avatar request: %v", errAvatarTransient, err)
		c.recordCircuitResult(callErr)
		return "", callErr
	}

	status := resp.StatusCode()
	if status/100 != 2 {
		raw := strings.TrimSpace(string(resp.Body()))
		if len(raw) > 512 {
			raw = raw[:512] + "...(truncated)"
		}
		var callErr error
		if isRetryableStatus(status) {
			callErr = fmt.Errorf("%w: avatar provider status=%d body=%s", errAvatarTransient, status, raw)
		} else {
			callErr = fmt.Errorf("avatar provider status=%d body=%s", status, raw)
		}
		c.recordCircuitResult(callErr)
		return "", callErr
	}

	var parsed generateResponse
	if err := sonic.Unmarshal(resp.Body(), &parsed); err != nil {
		callErr := crerr.Wrap(err, "decode avatar response")
		c.recordCircuitResult(nil)
		return "", callErr
	}
	if strings.TrimSpace(parsed.URL) == "" {
		c.recordCircuitResult(nil)
		return "", crerr.New("avatar response has empty url")
	}

	c.recordCircuitResult(nil)
	return parsed.URL, nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errAvatarTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError
}
