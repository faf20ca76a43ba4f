package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/pkg/config"
	"github.com/johnquangdev/contact-qa/pkg/gencontext"
)

const (
	summaryPath    = "/chat-summary"
	assessmentPath = "/contact-assessment"

	maxResponseBytes = 4 << 20
)

// GatewayError is a failure reported by the gateway in the response body
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("ai gateway error: %s", e.Message)
}

// Client calls the chat-summary and contact-assessment endpoints
type Client struct {
	baseURL         string
	client          *http.Client
	retryMaxElapsed time.Duration
	logger          *zap.Logger
}

// NewClient creates a gateway client from config
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		client:          &http.Client{Timeout: cfg.Timeout},
		retryMaxElapsed: cfg.RetryMaxElapsed,
		logger:          logger,
	}
}

type conversationRequest struct {
	Conversation string `json:"conversation"`
}

// Summarize returns the short and detailed summary of a conversation
func (c *Client) Summarize(ctx context.Context, conversation string) (*Summary, error) {
	body, err := c.post(ctx, summaryPath, conversation)
	if err != nil {
		return nil, err
	}
	return DecodeSummary(body)
}

// Assess returns the vulnerability and complaint judgement of a conversation
func (c *Client) Assess(ctx context.Context, conversation string) (*ContactAssessment, error) {
	body, err := c.post(ctx, assessmentPath, conversation)
	if err != nil {
		return nil, err
	}
	return DecodeAssessment(body)
}

// post sends the conversation and returns the raw body. Transport failures,
// 429 and 5xx responses are retried until retryMaxElapsed; other statuses
// and error bodies are final.
func (c *Client) post(ctx context.Context, path, conversation string) ([]byte, error) {
	payload, err := json.Marshal(conversationRequest{Conversation: conversation})
	if err != nil {
		return nil, err
	}
	endpoint := c.baseURL + path

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return classify(err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return classify(err)
		}

		if resp.StatusCode >= 400 {
			if gwErr := errorField(raw); gwErr != nil {
				return backoff.Permanent(gwErr)
			}
			return classify(fmt.Errorf("ai gateway %s returned status %d", path, resp.StatusCode))
		}

		body = raw
		return nil
	}

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if c.retryMaxElapsed > 0 {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = 250 * time.Millisecond
		exp.MaxElapsedTime = c.retryMaxElapsed
		policy = exp
	}

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("AI gateway call failed, retrying",
			zap.String("path", path),
			zap.String("run_id", runID(ctx)),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, err
	}
	return body, nil
}

func classify(err error) error {
	if gencontext.IsRetryableError(err) {
		return err
	}
	return backoff.Permanent(err)
}

func runID(ctx context.Context) string {
	if id, ok := gencontext.GetRunID(ctx); ok {
		return id.String()
	}
	return ""
}

// errorField returns the gateway error carried in body, if any
func errorField(body []byte) error {
	obj, err := decodeObject(body)
	if err != nil {
		return nil
	}
	return gatewayError(obj)
}

func gatewayError(obj map[string]json.RawMessage) error {
	raw, ok := obj["error"]
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "null" || trimmed == `""` || trimmed == "false" {
		return nil
	}

	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		msg = trimmed
	}
	return &GatewayError{Message: msg}
}

// IsGatewayError reports whether err was reported by the gateway itself
func IsGatewayError(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr)
}
