// Package assist calls an optional external text-generation endpoint used to
// draft descriptions and summaries. The CMS works fully without it.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/ecatuogno1/glassvision/internal/logging"
	"github.com/ecatuogno1/glassvision/internal/util"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

var (
	// ErrNotConfigured indicates no endpoint was supplied.
	ErrNotConfigured = errors.New("assist: endpoint not configured")
	// ErrBusy indicates a generation request is already in flight.
	ErrBusy = errors.New("assist: generation already in progress")
)

const (
	codeEncodeFailed  = "ASSISTANT_ENCODE_FAILED"
	codeRequestFailed = "ASSISTANT_REQUEST_FAILED"
	codeUnreachable   = "ASSISTANT_UNREACHABLE"
	codeBadStatus     = "ASSISTANT_BAD_STATUS"
	codeBadResponse   = "ASSISTANT_BAD_RESPONSE"
)

// DefaultTimeout bounds a generation round trip.
const DefaultTimeout = 30 * time.Second

// Client talks to the assistant endpoint. At most one request runs at a
// time; concurrent calls fail fast with ErrBusy instead of queueing.
type Client struct {
	endpoint string
	http     *http.Client
	busy     atomic.Bool
	logger   interfaces.Logger
}

// Option customises client construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithTimeout overrides the request timeout. Ignored when WithHTTPClient is
// also supplied after it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithLoggerProvider wires the assistant logger.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Client) {
		c.logger = logging.AssistLogger(provider)
	}
}

// NewClient constructs a client for the given endpoint. An empty endpoint
// yields a client whose Generate always returns ErrNotConfigured.
func NewClient(endpoint string, opts ...Option) *Client {
	client := &Client{
		endpoint: strings.TrimSpace(endpoint),
		http:     &http.Client{Timeout: DefaultTimeout},
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Busy reports whether a generation request is currently in flight.
func (c *Client) Busy() bool {
	return c.busy.Load()
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text   string `json:"text"`
	Result string `json:"result"`
}

// Generate posts the prompt and returns the generated text. The endpoint may
// answer with either a "text" or "result" field.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	if !c.busy.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer c.busy.Store(false)

	payload, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryCommand, "failed to encode assistant request").
			WithTextCode(codeEncodeFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryCommand, "failed to build assistant request").
			WithTextCode(codeRequestFailed)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("assistant request", "endpoint", c.endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryCommand, "assistant request failed").
			WithTextCode(codeUnreachable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryCommand, "failed to read assistant response").
			WithTextCode(codeUnreachable)
	}
	if resp.StatusCode != http.StatusOK {
		return "", goerrors.Wrap(
			fmt.Errorf("assistant returned status %d", resp.StatusCode),
			goerrors.CategoryCommand, "assistant request rejected",
		).WithTextCode(codeBadStatus)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryCommand, "assistant response is not valid JSON").
			WithTextCode(codeBadResponse)
	}

	text := util.FirstNonEmpty(decoded.Text, decoded.Result)
	if text == "" {
		return "", goerrors.Wrap(
			errors.New("response carried no text"),
			goerrors.CategoryCommand, "assistant response was empty",
		).WithTextCode(codeBadResponse)
	}
	return text, nil
}
