package breaker

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk-api/core/interfaces"
)

type stubResponse struct {
	status int
}

func (r stubResponse) StatusCode() int          { return r.status }
func (r stubResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader("{}")) }
func (r stubResponse) Header(key string) string { return "" }

type stubClient struct {
	status int
	err    error
	calls  int
}

func (c *stubClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return stubResponse{status: c.status}, nil
}

func testConfig() Config {
	cfg := DefaultConfig("test")
	cfg.MinRequests = 3
	cfg.FailureThreshold = 0.5
	cfg.Timeout = time.Hour
	return cfg
}

func TestClient_PassesThroughSuccess(t *testing.T) {
	next := &stubClient{status: 200}
	client := New(next, testConfig(), nil)

	resp, err := client.Get(context.Background(), "http://example.com")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "closed", client.State())
}

func TestClient_ServerErrorStillReturnsResponse(t *testing.T) {
	next := &stubClient{status: 503}
	client := New(next, testConfig(), nil)

	resp, err := client.Get(context.Background(), "http://example.com")
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode())
}

func TestClient_OpensAfterRepeatedFailures(t *testing.T) {
	next := &stubClient{err: errors.New("connection refused")}
	client := New(next, testConfig(), nil)

	for i := 0; i < 3; i++ {
		_, err := client.Get(context.Background(), "http://example.com")
		require.Error(t, err)
	}
	assert.Equal(t, "open", client.State())

	_, err := client.Get(context.Background(), "http://example.com")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, next.calls, "open breaker must not reach the upstream")
}

func TestClient_ClientErrorsDoNotTrip(t *testing.T) {
	next := &stubClient{status: 404}
	client := New(next, testConfig(), nil)

	for i := 0; i < 5; i++ {
		_, err := client.Get(context.Background(), "http://example.com")
		require.NoError(t, err)
	}
	assert.Equal(t, "closed", client.State())
}
