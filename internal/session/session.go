// Package session holds the login gate and active-view state. There is
// no real authentication behind it — just a boolean flag per browser
// session, the way the original viewer worked.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// View selects which dashboard is active.
type View string

const (
	ViewMain View = "main"
	ViewESA  View = "esa"
)

// State is one session's gate state. Transitions: Login, Logout,
// NavigateTo. Logout always lands back on the main view so the next
// login starts fresh.
type State struct {
	LoggedIn bool
	View     View
}

func (s *State) Login() {
	s.LoggedIn = true
	s.View = ViewMain
}

func (s *State) Logout() {
	s.LoggedIn = false
	s.View = ViewMain
}

// NavigateTo switches the active view. Ignored while logged out.
func (s *State) NavigateTo(v View) {
	if !s.LoggedIn {
		return
	}
	if v != ViewMain && v != ViewESA {
		return
	}
	s.View = v
}

type entry struct {
	state     State
	expiresAt time.Time
}

// Store keeps token-keyed session state with TTL-based expiry. Stale
// entries are swept periodically; Stop shuts the sweeper down.
type Store struct {
	mu           sync.Mutex
	sessions     map[string]*entry
	ttl          time.Duration
	stopCleanup  chan struct{}
	shutdownOnce sync.Once
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions:    make(map[string]*entry),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}
	go s.startCleanup()
	return s
}

// Create opens a logged-in session and returns its token.
func (s *Store) Create() string {
	token := newToken()
	st := State{}
	st.Login()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &entry{state: st, expiresAt: time.Now().Add(s.ttl)}
	return token
}

// Get returns a copy of the session state. Expired sessions read as
// absent and are removed.
func (s *Store) Get(token string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return State{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.sessions, token)
		return State{}, false
	}
	return e.state, true
}

// Navigate applies a view transition to the session, refreshing its TTL.
func (s *Store) Navigate(token string, v View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[token]
	if !ok || time.Now().After(e.expiresAt) {
		return false
	}
	e.state.NavigateTo(v)
	e.expiresAt = time.Now().Add(s.ttl)
	return true
}

// Destroy ends the session. Nothing survives a logout.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Stop shuts down the cleanup goroutine.
func (s *Store) Stop() {
	s.shutdownOnce.Do(func() {
		close(s.stopCleanup)
	})
}

func (s *Store) startCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanupStale()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) cleanupStale() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, token)
		}
	}
}

func newToken() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("sess_%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)
}
