package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestBucket_BurstThenDeny(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		if !b.take() {
			t.Fatalf("request %d should fit in the burst", i+1)
		}
	}
	if b.take() {
		t.Error("request past the burst should be denied")
	}
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(5, 10.0)

	for i := 0; i < 5; i++ {
		b.take()
	}
	if b.take() {
		t.Fatal("bucket should be empty after the burst")
	}

	// At 10 tokens/s, 150ms credits at least one token.
	time.Sleep(150 * time.Millisecond)

	if !b.take() {
		t.Error("bucket should have refilled at least one token")
	}
}

func TestBucket_Snapshot(t *testing.T) {
	b := newBucket(10, 1.0)
	for i := 0; i < 4; i++ {
		b.take()
	}

	remaining, reset := b.snapshot()
	if remaining != 6 {
		t.Errorf("remaining = %d, want 6", remaining)
	}
	if !reset.After(time.Now()) {
		t.Error("reset time should be in the future while below capacity")
	}
}

func TestLimiter_DefaultBudget(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/analyses", "GET")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("request %d: limit = %d, want 10", i+1, info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("request %d: remaining = %d, want %d", i+1, info.Remaining, 9-i)
		}
	}

	allowed, info := limiter.Allow("10.0.0.1", "/analyses", "GET")
	if allowed {
		t.Error("request past the budget should be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("denied requests should carry a positive RetryAfter")
	}
}

func TestLimiter_RouteTiers(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	// Submissions burst at 10 against the 60/min budget.
	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/analyses", "POST")
		if !allowed {
			t.Fatalf("submission %d should fit in the burst", i+1)
		}
		if info.Limit != 60 {
			t.Errorf("submission limit = %d, want 60", info.Limit)
		}
	}
	if allowed, _ := limiter.Allow("10.0.0.1", "/analyses", "POST"); allowed {
		t.Error("submission past the burst should be denied")
	}

	// Toggles budget separately under the prefix route.
	allowed, info := limiter.Allow("10.0.0.1", "/analyses/abc/toggle", "POST")
	if !allowed {
		t.Error("toggle should not share the exhausted submission bucket")
	}
	if info.Limit != 120 {
		t.Errorf("toggle limit = %d, want 120", info.Limit)
	}

	// Reads fall through to the default budget.
	if _, info := limiter.Allow("10.0.0.1", "/analyses", "GET"); info.Limit != 1000 {
		t.Errorf("read limit = %d, want the 1000 default", info.Limit)
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.9": true},
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/analyses", "POST")
		if !allowed {
			t.Fatalf("whitelisted request %d should be allowed", i+1)
		}
		if info.Limit != 0 {
			t.Errorf("whitelisted requests are exempt, got limit %d", info.Limit)
		}
	}

	if allowed, _ := limiter.Allow("10.0.0.9", "/analyses", "GET"); allowed {
		t.Error("blacklisted client should always be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/analyses", "POST")
		if !allowed || info.Limit != 0 {
			t.Fatalf("request %d should bypass a disabled limiter", i+1)
		}
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("10.0.0.1", "/analyses", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("allowed %d concurrent requests, want exactly 100", allowedCount)
	}
}

func TestLimiter_EvictsIdleBuckets(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 4; i++ {
		limiter.Allow(fmt.Sprintf("10.0.0.%d", i+1), "/analyses", "GET")
	}

	limiter.evictStale(time.Now().Add(-time.Hour))
	if got := bucketCount(limiter); got != 4 {
		t.Fatalf("recently used buckets were evicted, %d left of 4", got)
	}

	limiter.evictStale(time.Now().Add(time.Hour))
	if got := bucketCount(limiter); got != 0 {
		t.Errorf("%d stale buckets left, want 0", got)
	}
}

func bucketCount(l *Limiter) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("10.0.0.1", "/analyses", "GET")
	if !allowed {
		t.Fatal("nil config should fall back to permissive defaults")
	}
	if info.Limit != 1000 {
		t.Errorf("default limit = %d, want 1000", info.Limit)
	}
}
