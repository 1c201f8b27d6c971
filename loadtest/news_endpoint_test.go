// ABOUTME: Load tests for the keyed /news endpoint
// ABOUTME: Drives the real router and news service with in-process sources under concurrent load

package loadtest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsdesk-api/api"
	"newsdesk-api/api/handlers"
	"newsdesk-api/core/cache"
	"newsdesk-api/core/domain"
	"newsdesk-api/core/news"
	"newsdesk-api/infrastructure/cache/memory"
)

// slowSource simulates an upstream with fixed latency
type slowSource struct {
	name  string
	delay time.Duration
	calls int64
}

func (s *slowSource) Name() string { return s.name }

func (s *slowSource) Fetch(ctx context.Context, category string, page, pageSize int) domain.FetchResult {
	atomic.AddInt64(&s.calls, 1)
	time.Sleep(s.delay)

	articles := make([]domain.Article, pageSize)
	for i := range articles {
		articles[i] = domain.Article{
			ID:     fmt.Sprintf("%s-%s-%d-%d", s.name, category, page, i),
			Title:  "Load test article",
			URL:    fmt.Sprintf("https://example.com/%s/%d", category, i),
			Source: domain.Source{Name: s.name},
		}
	}
	return domain.FetchResult{Articles: articles, TotalResults: pageSize * 3}
}

// LoadTestMetrics tracks performance metrics
type LoadTestMetrics struct {
	TotalRequests  int64
	SuccessfulReqs int64
	FailedReqs     int64
	TotalDuration  time.Duration
	MinLatency     time.Duration
	MaxLatency     time.Duration
	AvgLatency     time.Duration
	P95Latency     time.Duration
	P99Latency     time.Duration
	RequestsPerSec float64
}

func newServer(headlines, community *slowSource) *httptest.Server {
	svc := news.NewService(
		news.Sources{Headlines: headlines, Community: community},
		cache.NewPersistent(memory.NewMemoryCache(), nil),
		cache.NewSession(),
		nil,
	)

	humaAPI, router := api.NewAPI()
	handlers.NewNewsHandler(svc).RegisterRoutes(humaAPI)
	return httptest.NewServer(router)
}

func TestNewsEndpoint_100ConcurrentRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}

	headlines := &slowSource{name: "NewsAPI", delay: 10 * time.Millisecond}
	community := &slowSource{name: "Dev.to", delay: 10 * time.Millisecond}
	server := newServer(headlines, community)
	defer server.Close()

	concurrency := 100
	requestsPerWorker := 10
	keys := []string{"news:technology:1:6", "header:technology:1:50", "dev:latest:1:6", "dev:go:2:9"}

	var (
		successCount int64
		failCount    int64
		latencies    []time.Duration
		mu           sync.Mutex
		wg           sync.WaitGroup
	)

	startTime := time.Now()
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()

			client := &http.Client{Timeout: 30 * time.Second}

			for j := 0; j < requestsPerWorker; j++ {
				key := keys[(workerID+j)%len(keys)]

				reqStart := time.Now()
				resp, err := client.Get(server.URL + "/news?key=" + key)
				latency := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, latency)
				mu.Unlock()

				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}

				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()

				if resp.StatusCode == http.StatusOK {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
			}
		}(i)
	}

	wg.Wait()

	metrics := calculateMetrics(latencies, time.Since(startTime), concurrency*requestsPerWorker)
	metrics.SuccessfulReqs = successCount
	metrics.FailedReqs = failCount

	t.Logf("Load Test Results - 100 Concurrent Requests")
	t.Logf("Total Requests: %d", metrics.TotalRequests)
	t.Logf("Successful: %d", metrics.SuccessfulReqs)
	t.Logf("Failed: %d", metrics.FailedReqs)
	t.Logf("Requests/sec: %.2f", metrics.RequestsPerSec)
	t.Logf("Avg Latency: %v", metrics.AvgLatency)
	t.Logf("P95 Latency: %v", metrics.P95Latency)
	t.Logf("P99 Latency: %v", metrics.P99Latency)
	t.Logf("Upstream calls: headlines=%d community=%d",
		atomic.LoadInt64(&headlines.calls), atomic.LoadInt64(&community.calls))

	assert.Zero(t, metrics.FailedReqs)
	assert.Less(t, metrics.P95Latency, time.Second)

	// Hits inside the 60s window never reach the upstream
	totalCalls := atomic.LoadInt64(&headlines.calls) + atomic.LoadInt64(&community.calls)
	assert.Less(t, totalCalls, int64(concurrency*requestsPerWorker)/2)
}

// calculateMetrics computes performance metrics from latency data
func calculateMetrics(latencies []time.Duration, totalDuration time.Duration, totalRequests int) LoadTestMetrics {
	if len(latencies) == 0 {
		return LoadTestMetrics{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	return LoadTestMetrics{
		TotalRequests:  int64(totalRequests),
		TotalDuration:  totalDuration,
		MinLatency:     sorted[0],
		MaxLatency:     sorted[len(sorted)-1],
		AvgLatency:     sum / time.Duration(len(latencies)),
		P95Latency:     sorted[int(float64(len(sorted))*0.95)],
		P99Latency:     sorted[int(float64(len(sorted))*0.99)],
		RequestsPerSec: float64(totalRequests) / totalDuration.Seconds(),
	}
}
