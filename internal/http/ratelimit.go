package http

import (
	"sync"
	"time"
)

// The write surface of this app is tiny: login, logout and the ESA
// category toggle. A legitimate user submits a handful of POSTs per
// minute, so the budget can be tight without ever bothering them.
const (
	postBudget   = 20
	postWindow   = time.Minute
	clientStale  = 10 * time.Minute
	limiterSweep = 5 * time.Minute
)

// postLimiter throttles POST requests per client IP using a fixed
// one-minute window.
type postLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientWindow
	stop     chan struct{}
	stopOnce sync.Once
}

type clientWindow struct {
	windowStart time.Time
	requests    int
}

func newPostLimiter() *postLimiter {
	pl := &postLimiter{
		clients: make(map[string]*clientWindow),
		stop:    make(chan struct{}),
	}
	go pl.sweepLoop()
	return pl
}

func (pl *postLimiter) sweepLoop() {
	ticker := time.NewTicker(limiterSweep)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pl.dropStale()
		case <-pl.stop:
			return
		}
	}
}

// dropStale removes clients whose window started longer ago than
// clientStale. Anyone still posting keeps their entry.
func (pl *postLimiter) dropStale() {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	cutoff := time.Now().Add(-clientStale)
	for ip, cw := range pl.clients {
		if cw.windowStart.Before(cutoff) {
			delete(pl.clients, ip)
		}
	}
}

func (pl *postLimiter) shutdown() {
	pl.stopOnce.Do(func() {
		close(pl.stop)
	})
}

func (pl *postLimiter) allow(clientIP string) bool {
	pl.mu.Lock()
	defer pl.mu.Unlock()

	now := time.Now()
	cw, ok := pl.clients[clientIP]
	if !ok || now.Sub(cw.windowStart) >= postWindow {
		pl.clients[clientIP] = &clientWindow{windowStart: now, requests: 1}
		return true
	}

	cw.requests++
	return cw.requests <= postBudget
}
