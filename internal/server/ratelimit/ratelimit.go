// Package ratelimit throttles API clients with per-route token buckets.
// Analysis submission and confidence toggles rewrite the whole stored
// collection, so write routes carry tighter budgets than reads.
package ratelimit

import (
	"sync"
	"time"
)

// staleAfter is how long an idle client bucket survives before the
// background sweeper drops it.
const staleAfter = time.Hour

// bucket refills continuously at rate tokens per second up to capacity.
type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64
	refilled time.Time
	lastSeen time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		tokens:   float64(capacity),
		capacity: float64(capacity),
		rate:     rate,
		refilled: now,
		lastSeen: now,
	}
}

// refillLocked credits tokens for the time elapsed since the last refill.
// Callers hold b.mu.
func (b *bucket) refillLocked(now time.Time) {
	b.tokens += now.Sub(b.refilled).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilled = now
}

// take consumes one token if available.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)
	b.lastSeen = now

	if b.tokens < 1.0 {
		return false
	}
	b.tokens--
	return true
}

// snapshot reports the whole tokens remaining and when the bucket will be
// full again, without consuming anything.
func (b *bucket) snapshot() (remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		deficit := b.capacity - b.tokens
		reset = now.Add(time.Duration(deficit / b.rate * float64(time.Second)))
	}
	return remaining, reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info describes the outcome of a rate limit check. A zero Limit means
// the request was exempt: disabled limiter, whitelisted client, or an
// unlimited route such as the health check.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter-wide settings plus the per-route budgets.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// routeKey identifies one client's bucket on one route. Keying on the
// full path means each analysis record's toggle route buckets separately,
// which is fine at this API's scale.
type routeKey struct {
	client string
	method string
	path   string
}

// Limiter hands out per-client, per-route buckets and sweeps idle ones
// in the background.
type Limiter struct {
	mu      sync.Mutex
	buckets map[routeKey]*bucket
	config  *Config

	sweeper *time.Ticker
	stop    chan struct{}
}

// NewLimiter creates a limiter; a nil config falls back to a permissive
// 1000 requests per minute default.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[routeKey]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.sweeper = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.sweep()
	}

	return l
}

// Allow checks whether a request from clientID may proceed on the given
// route, consuming a token when it does.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	route := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if route == nil {
		route = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if route.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(routeKey{client: clientID, method: method, path: path}, route)
	allowed := b.take()
	remaining, reset := b.snapshot()

	info := Info{
		Allowed:   allowed,
		Limit:     route.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return allowed, info
}

func (l *Limiter) bucketFor(key routeKey, route *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := route.Burst
	if capacity <= 0 {
		capacity = route.Limit
	}
	b := newBucket(capacity, float64(route.Limit)/route.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) sweep() {
	for {
		select {
		case <-l.sweeper.C:
			l.evictStale(time.Now().Add(-staleAfter))
		case <-l.stop:
			return
		}
	}
}

// evictStale drops buckets that have not been touched since cutoff.
func (l *Limiter) evictStale(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the background sweeper.
func (l *Limiter) Stop() {
	if l.sweeper != nil {
		l.sweeper.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}
