package observability

import (
	"strconv"
	"sync"
	"time"
)

type routeStats struct {
	count   int64
	latency time.Duration
}

// Metrics keeps in-memory per-route counters: request counts and cumulative
// handler latency keyed by path/method/status, error counts keyed by
// path/method/domain-error code.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]*routeStats
	errors   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]*routeStats),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts a completed request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.requests[key]
	if stats == nil {
		stats = &routeStats{}
		m.requests[key] = stats
	}
	stats.count++
	stats.latency += duration
}

// RecordError counts a request that failed with the given domain-error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path+"|"+method+"|"+code]++
}

// RequestCount returns how many requests completed with the given status.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if stats := m.requests[requestKey(path, method, status)]; stats != nil {
		return stats.count
	}
	return 0
}

// TotalLatency returns the cumulative handler time observed for the route.
func (m *Metrics) TotalLatency(path, method string, status int) time.Duration {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if stats := m.requests[requestKey(path, method, status)]; stats != nil {
		return stats.latency
	}
	return 0
}

// ErrorCount returns how many requests failed with the given code.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[path+"|"+method+"|"+code]
}

func requestKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
