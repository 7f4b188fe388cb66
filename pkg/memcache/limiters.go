package mem

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LimiterStore keeps one token bucket per caller key. Idle buckets expire after the store's TTL.
type LimiterStore interface {
	// Get returns the live limiter for key, creating it with newLimiter when missing or expired.
	Get(key string, newLimiter func() *rate.Limiter) *rate.Limiter

	// Sweep drops expired entries and reports how many were removed.
	Sweep() int
}

type entry struct {
	limiter   *rate.Limiter
	expiresAt time.Time
}

type Limiters struct {
	mu   sync.Mutex
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
}

func NewLimiters(ttl time.Duration) *Limiters {
	return &Limiters{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *Limiters) Get(key string, newLimiter func() *rate.Limiter) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.data[key]; ok && now.Before(e.expiresAt) {
		e.expiresAt = now.Add(s.ttl)
		s.data[key] = e
		return e.limiter
	}

	l := newLimiter()
	s.data[key] = entry{limiter: l, expiresAt: now.Add(s.ttl)}
	return l
}

func (s *Limiters) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, e := range s.data {
		if !now.Before(e.expiresAt) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

func (s *Limiters) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
