// Package publish delivers finished runs to the results collector.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-scopeguard/internal/domain"
	"github.com/jsamuelsen11/go-scopeguard/internal/domain/run"
	"github.com/jsamuelsen11/go-scopeguard/internal/guard"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-scopeguard/internal/platform/logging"
	"github.com/jsamuelsen11/go-scopeguard/internal/ports"
)

// RunsPath is appended to the client's base URL.
const RunsPath = "/runs"

var (
	_ ports.Publisher     = (*HTTPPublisher)(nil)
	_ ports.HealthChecker = (*HTTPPublisher)(nil)
)

// HTTPPublisher POSTs runs to the collector through an httpclient.Client,
// which supplies the breaker, rate limit, retries and tracing.
type HTTPPublisher struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewHTTPPublisher returns a publisher that sends through client.
func NewHTTPPublisher(client *httpclient.Client, logger *slog.Logger) *HTTPPublisher {
	return &HTTPPublisher{client: client, logger: logging.OrDiscard(logger)}
}

// Publish sends r to the collector. Any 2xx status is success. Transport
// failures and an open breaker are reported as domain.ErrUnavailable.
func (p *HTTPPublisher) Publish(ctx context.Context, r *run.Run) error {
	if r == nil {
		return domain.Invalid("run", "required")
	}

	body, err := json.Marshal(ToRunDTO(r))
	if err != nil {
		return fmt.Errorf("marshaling run %s: %w", r.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.client.BaseURL()+RunsPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating publish request for run %s: %w", r.ID, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return p.execute(req, r.ID)
}

// Name identifies the collector in readiness results.
func (p *HTTPPublisher) Name() string {
	return p.client.Name()
}

// HealthCheck reports the client's breaker state. No request is sent.
func (p *HTTPPublisher) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}

func (p *HTTPPublisher) execute(req *http.Request, runID string) error {
	ctx := req.Context()

	resp, err := p.client.Do(ctx, req)
	if resp != nil {
		closeBody := guard.OnExit(func() { p.closeBody(ctx, resp) },
			guard.WithName("publish.close_body"), guard.WithLogger(p.logger))
		defer closeBody.Close()
	}

	switch {
	case resp != nil && resp.StatusCode/100 == 2:
		return nil
	case resp != nil:
		// Retries ran out on a retryable status, or the status was final.
		p.logger.ErrorContext(ctx, "collector rejected run",
			slog.String("operation", "publish.Publish"),
			slog.String("run_id", runID),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("publishing run %s: %w", runID, translateHTTPError(resp))
	default:
		p.logger.ErrorContext(ctx, "publish request failed",
			slog.String("operation", "publish.Publish"),
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("publishing run %s: %w: %w", runID, domain.ErrUnavailable, err)
	}
}

func (p *HTTPPublisher) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
	if err := resp.Body.Close(); err != nil {
		p.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
