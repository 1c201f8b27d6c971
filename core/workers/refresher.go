// ABOUTME: Refresher keeps the persistent cache warm by re-fetching popular queries on a timer
// ABOUTME: Queries are processed by a small worker pool so a slow upstream does not stall the rest

package workers

import (
	"context"
	"sync"
	"time"

	"newsdesk-api/core/domain"
	"newsdesk-api/core/interfaces"
)

// Fetcher rebuilds the cached entry for a query from its source
type Fetcher interface {
	Refresh(ctx context.Context, q domain.QueryKey) (domain.FetchResult, error)
}

// RefresherConfig holds configuration for the refresher
type RefresherConfig struct {
	// Interval between refresh rounds; zero means only explicit RefreshNow calls
	Interval time.Duration

	// MaxWorkers bounds concurrent upstream fetches
	MaxWorkers int

	// QueueSize bounds pending queries
	QueueSize int

	// Keys are refreshed every round
	Keys []domain.QueryKey
}

// DefaultRefresherConfig returns the default refresher configuration
func DefaultRefresherConfig() RefresherConfig {
	return RefresherConfig{
		MaxWorkers: 3,
		QueueSize:  32,
	}
}

// Refresher manages background cache refreshes
type Refresher struct {
	fetcher    Fetcher
	logger     interfaces.Logger
	interval   time.Duration
	keys       []domain.QueryKey
	jobQueue   chan domain.QueryKey
	maxWorkers int

	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool
}

// NewRefresher creates a refresher; call Start to run it
func NewRefresher(fetcher Fetcher, logger interfaces.Logger, config RefresherConfig) *Refresher {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultRefresherConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultRefresherConfig().QueueSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Refresher{
		fetcher:    fetcher,
		logger:     logger,
		interval:   config.Interval,
		keys:       append([]domain.QueryKey(nil), config.Keys...),
		jobQueue:   make(chan domain.QueryKey, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker pool and, when an interval is set, the timer
func (r *Refresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}
	if r.ctx.Err() != nil {
		return ErrRefresherStopped
	}

	for i := 0; i < r.maxWorkers; i++ {
		r.wg.Add(1)
		go r.work()
	}

	if r.interval > 0 {
		r.wg.Add(1)
		go r.tick()
	}

	r.running = true
	return nil
}

// Stop stops the refresher and waits for in-flight fetches. A stopped
// refresher cannot be restarted.
func (r *Refresher) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	r.mu.Unlock()

	r.cancel()
	r.wg.Wait()
	return nil
}

// RefreshNow queues every key and reports how many were queued. Keys that
// do not fit in the queue are skipped until the next round.
func (r *Refresher) RefreshNow() (int, error) {
	r.mu.Lock()
	running := r.running
	r.mu.Unlock()

	if !running {
		return 0, ErrRefresherNotRunning
	}

	queued := 0
	for _, q := range r.keys {
		select {
		case r.jobQueue <- q:
			queued++
		default:
			r.logger.Warn("Refresh queue full, skipping query", map[string]interface{}{
				"key": q.String(),
			})
		}
	}
	return queued, nil
}

func (r *Refresher) tick() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.logger.Info("Refreshing cache", map[string]interface{}{
				"keys": len(r.keys),
			})
			if _, err := r.RefreshNow(); err != nil {
				return
			}
		case <-r.ctx.Done():
			return
		}
	}
}

func (r *Refresher) work() {
	defer r.wg.Done()

	for {
		select {
		case q := <-r.jobQueue:
			r.refresh(q)
		case <-r.ctx.Done():
			return
		}
	}
}

func (r *Refresher) refresh(q domain.QueryKey) {
	result, err := r.fetcher.Refresh(r.ctx, q)
	if err != nil {
		r.logger.Error("Cache refresh failed", map[string]interface{}{
			"key":   q.String(),
			"error": err.Error(),
		})
		return
	}

	r.logger.Debug("Cache refreshed", map[string]interface{}{
		"key":      q.String(),
		"articles": len(result.Articles),
	})
}

// Error definitions
var (
	ErrRefresherNotRunning = &WorkerError{Message: "refresher is not running"}
	ErrRefresherStopped    = &WorkerError{Message: "refresher has been stopped"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
