package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const visitorIdleTimeout = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitManager owns the per-client limiters and evicts idle ones until its
// context is cancelled or Shutdown is called.
type RateLimitManager struct {
	visitors   map[string]*visitor
	visitorsMu sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	now        func() time.Time
}

func NewRateLimitManager(ctx context.Context) *RateLimitManager {
	managerCtx, cancel := context.WithCancel(ctx)

	m := &RateLimitManager{
		visitors: make(map[string]*visitor),
		ctx:      managerCtx,
		cancel:   cancel,
		now:      time.Now,
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// GetVisitor retrieves or creates the limiter for key. A non-positive request
// budget disables limiting and yields nil.
func (m *RateLimitManager) GetVisitor(key string, requestsPerWindow int, windowSeconds int, burst int) *rate.Limiter {
	if requestsPerWindow <= 0 {
		return nil
	}

	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()

	if v, exists := m.visitors[key]; exists {
		v.lastSeen = m.now()
		return v.limiter
	}

	if windowSeconds <= 0 {
		windowSeconds = 60
	}
	if burst < requestsPerWindow {
		burst = requestsPerWindow
	}

	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerWindow)/float64(windowSeconds)), burst)
	m.visitors[key] = &visitor{limiter: limiter, lastSeen: m.now()}
	return limiter
}

// Len reports the number of tracked clients.
func (m *RateLimitManager) Len() int {
	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()
	return len(m.visitors)
}

func (m *RateLimitManager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *RateLimitManager) cleanup() {
	m.visitorsMu.Lock()
	defer m.visitorsMu.Unlock()

	for key, v := range m.visitors {
		if m.now().Sub(v.lastSeen) > visitorIdleTimeout {
			delete(m.visitors, key)
		}
	}
}

// Shutdown stops the cleanup goroutine and waits for it to finish
func (m *RateLimitManager) Shutdown() error {
	m.cancel()
	m.wg.Wait()
	return nil
}
