// ABOUTME: Shared upstream plumbing for the source adapters
// ABOUTME: Performs one GET, classifies failures and logs them in a single structured shape

package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	coreerrors "newsdesk-api/core/errors"
	"newsdesk-api/core/interfaces"
	"newsdesk-api/pkg/metrics"
)

// maxBodyBytes caps how much of an upstream response is read
const maxBodyBytes = 10 << 20

// upstream carries what every adapter needs to talk to its API
type upstream struct {
	name   string
	client interfaces.HTTPClient
	logger interfaces.Logger
}

func newUpstream(name string, deps interfaces.Dependencies) upstream {
	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return upstream{
		name:   name,
		client: deps.HTTPClient,
		logger: logger,
	}
}

// getJSON performs a single GET and decodes a 2xx JSON body into dest.
// Non-2xx responses and undecodable bodies become *ExternalAPIError.
func (u upstream) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	if u.client == nil {
		return errors.New("HTTP client not configured")
	}

	resp, err := u.client.Get(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "failed to read response: " + err.Error(),
			API:        u.name,
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    upstreamMessage(body, resp.StatusCode()),
			API:        u.name,
		}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "malformed payload: " + err.Error(),
			API:        u.name,
		}
	}

	return nil
}

// upstreamMessage prefers the API's own "message" field over the status text
func upstreamMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Fault   struct {
			FaultString string `json:"faultstring"`
		} `json:"fault"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			return payload.Message
		case payload.Error != "":
			return payload.Error
		case payload.Fault.FaultString != "":
			return payload.Fault.FaultString
		}
	}
	return http.StatusText(status)
}

// fail logs a fetch failure with source identity, status code and detail
func (u upstream) fail(err error, started time.Time, fields map[string]interface{}) {
	logFields := map[string]interface{}{
		"source": u.name,
		"error":  err.Error(),
	}
	for k, v := range fields {
		logFields[k] = v
	}

	var apiErr *coreerrors.ExternalAPIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		logFields["status_code"] = apiErr.StatusCode
	}

	u.logger.Error(u.name+" API error", logFields)
	metrics.RecordUpstream(u.name, metrics.OutcomeFailure, time.Since(started))
}

// skip logs a fetch that was not attempted because configuration is missing
func (u upstream) skip(missing ...string) {
	err := &coreerrors.ConfigurationError{Missing: missing}
	u.logger.Error(u.name+" API not configured", map[string]interface{}{
		"source": u.name,
		"error":  err.Error(),
	})
	metrics.RecordUpstream(u.name, metrics.OutcomeSkipped, 0)
}

// succeed records a completed fetch
func (u upstream) succeed(started time.Time, count int) {
	metrics.RecordUpstream(u.name, metrics.OutcomeSuccess, time.Since(started))
	metrics.RecordArticles(u.name, count)
}
