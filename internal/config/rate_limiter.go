package config

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// EventLimiter throttles per-subscriber event delivery on the websocket feed
// so a burst of vote traffic cannot flood slow clients.
type EventLimiter struct {
	subscribers map[string]*subscriber
	mu          sync.Mutex
	rate        rate.Limit
	burst       int
	ttl         time.Duration
	stopCh      chan struct{}
}

type subscriber struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewEventLimiter(cfg *AppConfig) *EventLimiter {
	perSecond := cfg.WSEventsPerSecond
	if perSecond <= 0 {
		perSecond = 50
	}

	el := &EventLimiter{
		subscribers: make(map[string]*subscriber),
		rate:        rate.Limit(perSecond),
		burst:       int(perSecond),
		ttl:         5 * time.Minute,
		stopCh:      make(chan struct{}),
	}

	go el.cleanup()

	return el
}

func (el *EventLimiter) Stop() {
	close(el.stopCh)
}

func (el *EventLimiter) Allow(key string) bool {
	el.mu.Lock()
	defer el.mu.Unlock()

	s, exists := el.subscribers[key]
	if !exists {
		s = &subscriber{limiter: rate.NewLimiter(el.rate, el.burst)}
		el.subscribers[key] = s
	}
	s.lastSeen = time.Now()

	return s.limiter.Allow()
}

func (el *EventLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-el.stopCh:
			return
		case <-ticker.C:
			el.mu.Lock()
			for key, s := range el.subscribers {
				if time.Since(s.lastSeen) > el.ttl {
					delete(el.subscribers, key)
				}
			}
			el.mu.Unlock()
		}
	}
}
