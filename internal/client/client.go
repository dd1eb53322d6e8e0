package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/AgentOS/vfs/internal/types"
)

const requestIDHeader = "X-Request-ID"

// ErrRemote is wrapped by errors reported by the server in a non-2xx response.
var ErrRemote = errors.New("remote error")

// Config tunes the client.
type Config struct {
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// RequestsPerSecond caps outgoing calls. Zero means unlimited.
	RequestsPerSecond float64
	Breaker           resilience.Settings
}

// DefaultConfig returns settings suited to a local server.
func DefaultConfig() Config {
	return Config{
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
	}
}

// Client calls a running namespace server over HTTP.
type Client struct {
	resty   *resty.Client
	breaker *resilience.Breaker
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New creates a client for the server at baseURL.
func New(baseURL string, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = retryLogger{logger.Named("retry").Sugar()}

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = cfg.Timeout

	r := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", "AgentOS-VFS/1.0").
		SetHeader("Accept", "application/json")
	r.JSONMarshal = sonic.Marshal
	r.JSONUnmarshal = sonic.Unmarshal

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond)+1)
	}

	breakerSettings := cfg.Breaker
	if breakerSettings.OnStateChange == nil {
		breakerSettings.OnStateChange = func(name string, from, to resilience.State) {
			logger.Warn("Circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		}
	}

	return &Client{
		resty:   r,
		breaker: resilience.New("vfs-remote", breakerSettings),
		limiter: limiter,
		logger:  logger,
	}
}

// Breaker exposes the circuit breaker state.
func (c *Client) Breaker() *resilience.Breaker {
	return c.breaker
}

// Execute runs a tool on the server. A tool that fails still returns a
// result with Success false and a nil error.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}, requestID string) (*types.Result, error) {
	var result types.Result
	err := c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		if requestID != "" {
			req.SetHeader(requestIDHeader, requestID)
		}
		return req.
			SetBody(types.ExecuteRequest{ToolID: toolID, Params: params}).
			SetResult(&result).
			Post("/services/execute")
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Snapshot fetches the live namespace in format ("json", "yaml" or "toml").
func (c *Client) Snapshot(ctx context.Context, format string) ([]byte, error) {
	var body []byte
	err := c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		resp, err := req.SetQueryParam("format", format).Get("/namespace/snapshot")
		if err == nil {
			body = resp.Body()
		}
		return resp, err
	})
	return body, err
}

// Health returns the server's health report.
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var health map[string]interface{}
	err := c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetResult(&health).Get("/health")
	})
	return health, err
}

func (c *Client) do(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit error: %w", err)
	}

	return c.breaker.Do(func() error {
		resp, err := send(c.resty.R().SetContext(ctx))
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		if !resp.IsError() {
			return nil
		}

		err = fmt.Errorf("%w: %s %s: %d %s", ErrRemote, resp.Request.Method, resp.Request.URL, resp.StatusCode(), remoteMessage(resp))
		if resp.StatusCode() < http.StatusInternalServerError && resp.StatusCode() != http.StatusTooManyRequests {
			return resilience.Permanent(err)
		}
		return err
	})
}

func remoteMessage(resp *resty.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := sonic.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(resp.String())
}

// retryLogger adapts zap to retryablehttp's leveled logger.
type retryLogger struct {
	s *zap.SugaredLogger
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l retryLogger) Info(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l retryLogger) Warn(msg string, kv ...interface{}) { l.s.Warnw(msg, kv...) }
