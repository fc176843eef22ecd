// Package gateway issues requests against the remote ordering service.
// Pure I/O: no retries, no interpretation beyond parsing the server's
// error envelope.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lastbite-client/internal/pkg/config"
	"lastbite-client/internal/pkg/errs"
	"lastbite-client/internal/pkg/token"

	"github.com/google/uuid"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		// Timeout zero keeps the no-timeout baseline; cancellation comes
		// from the caller's context.
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// call performs one JSON round trip. An empty bearer token is a
// precondition failure and never reaches the network.
func (c *Client) call(ctx context.Context, bearer, method, path string, body any, out any) error {
	if bearer == "" {
		return &Error{Kind: KindAuthMissing, err: token.ErrMissing}
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, err: errs.Wrap(err, "encode request body")}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{Kind: KindTransport, err: errs.Wrap(err, "build request")}
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, err: errs.Wrap(err, "gateway call failed")}
	}
	defer resp.Body.Close() //nolint:errcheck

	c.logger.Debug("gateway call",
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(started)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return c.remoteError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindTransport, err: errs.Wrap(err, "decode response body")}
		}
	}
	return nil
}

func (c *Client) remoteError(resp *http.Response) error {
	gerr := &Error{
		Kind:   KindRemote,
		Status: resp.StatusCode,
		err:    errs.New(resp.Status),
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return gerr
	}
	var envelope ErrorEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		gerr.Envelope = &envelope
	}
	return gerr
}
