package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const maxTrackedClients = 10000

// IPRateLimiter holds one token bucket per client address
type IPRateLimiter struct {
	limiters map[string]*clientLimiter
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewIPRateLimiter creates a limiter allowing rps requests per second with the
// given burst for every client
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*clientLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  5 * time.Minute,
		now:      time.Now,
	}
}

// Allow reports whether the client may make a request now
func (i *IPRateLimiter) Allow(client string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	entry, exists := i.limiters[client]
	if !exists {
		if len(i.limiters) >= maxTrackedClients {
			i.evictIdle(now)
		}
		entry = &clientLimiter{limiter: rate.NewLimiter(i.rps, i.burst)}
		i.limiters[client] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// evictIdle drops clients not seen within idleTTL. Must be called while holding the mutex.
func (i *IPRateLimiter) evictIdle(now time.Time) {
	for client, entry := range i.limiters {
		if now.Sub(entry.lastSeen) > i.idleTTL {
			delete(i.limiters, client)
		}
	}
}

// Tracked returns the number of clients currently holding a bucket
func (i *IPRateLimiter) Tracked() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.limiters)
}
