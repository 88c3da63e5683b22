package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"contratos/internal/dashboard"
	"contratos/internal/dataset"
	"contratos/internal/export"
	applog "contratos/internal/log"
	"contratos/internal/session"
	appweb "contratos/web"
)

const sessionCookie = "contratos_session"

// Server serves both dashboards. Datasets are read through the Source
// once per session when its controllers are built; the controllers then
// own all view state until logout.
type Server struct {
	http.Server
	templates *template.Template
	source    dataset.Source
	sessions  *session.Store
	mirror    export.Mirror
	linkBase  string
	logger    *applog.Logger
	limiter   *postLimiter

	mu          sync.Mutex
	controllers map[string]*viewControllers

	shutdownOnce sync.Once
}

// viewControllers are the per-session view states. Built on login,
// discarded on logout, never shared across sessions.
type viewControllers struct {
	main *dashboard.Controller
	esa  *dashboard.ImageUsage
}

// NewServer configures routes and templates, returning a ready-to-run
// http.Server. mirror may be nil when no export mirror is configured.
func NewServer(addr string, source dataset.Source, sessions *session.Store, mirror export.Mirror, linkBase string, logger *applog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		source:      source,
		sessions:    sessions,
		mirror:      mirror,
		linkBase:    linkBase,
		logger:      logger.WithComponent(applog.ComponentHTTP),
		limiter:     newPostLimiter(),
		controllers: make(map[string]*viewControllers),
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		s.logger.Warn("Failed parsing templates", applog.FieldError, err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", applog.FieldError, err)
	}

	mux.HandleFunc("/", s.withSecurityHeaders(s.handleIndex))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	mux.HandleFunc("/login", s.withSecurityHeaders(s.handleLogin))
	mux.HandleFunc("/logout", s.withSecurityHeaders(s.handleLogout))

	mux.HandleFunc("/ui/contracts-table", s.withSecurityHeaders(s.handleContractsTable))
	mux.HandleFunc("/export/contratos.xlsx", s.withSecurityHeaders(s.handleExportContracts))
	mux.HandleFunc("/print/contratos", s.withSecurityHeaders(s.handlePrintContracts))

	mux.HandleFunc("/esa", s.withSecurityHeaders(s.handleESA))
	mux.HandleFunc("/esa/naturezas", s.withSecurityHeaders(s.handleToggleNatureza))
	mux.HandleFunc("/api/esa/chart", s.withSecurityHeaders(s.handleChart))
	mux.HandleFunc("/export/contratos-esa.xlsx", s.withSecurityHeaders(s.handleExportImageUsage))
	mux.HandleFunc("/print/esa", s.withSecurityHeaders(s.handlePrintImageUsage))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.shutdown()
		}
		if s.sessions != nil {
			s.sessions.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// currentSession resolves the cookie to live session state.
func (s *Server) currentSession(r *http.Request) (string, session.State, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return "", session.State{}, false
	}
	st, ok := s.sessions.Get(c.Value)
	if !ok || !st.LoggedIn {
		return "", session.State{}, false
	}
	return c.Value, st, true
}

// controllersFor returns the session's view controllers, building them
// from the dataset source on first use.
func (s *Server) controllersFor(ctx context.Context, token string) (*viewControllers, error) {
	s.mu.Lock()
	if vc, ok := s.controllers[token]; ok {
		s.mu.Unlock()
		return vc, nil
	}
	s.mu.Unlock()

	contracts, err := s.source.Contracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load contracts: %w", err)
	}
	imgContracts, err := s.source.ImageUsageContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load image-usage contracts: %w", err)
	}
	imgValues, err := s.source.ImageUsageValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("load image-usage values: %w", err)
	}

	vc := &viewControllers{
		main: dashboard.NewController(contracts),
		esa:  dashboard.NewImageUsage(imgContracts, imgValues),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.controllers[token]; ok {
		return existing, nil
	}
	s.controllers[token] = vc
	return vc, nil
}

func (s *Server) dropControllers(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.controllers, token)
}

// withSecurityHeaders adds security headers, rate limiting, and request
// logging to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		s.logger.InfoContext(ctx, "Request started",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldClientIP, clientIP)

		if r.Method == http.MethodPost && !s.limiter.allow(clientIP) {
			s.logger.WarnContext(ctx, "Rate limit exceeded",
				applog.FieldClientIP, clientIP,
				applog.FieldMethod, r.Method,
				applog.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		duration := time.Since(start)
		s.logger.InfoContext(ctx, "Request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rw.statusCode,
			applog.FieldDuration, duration.Milliseconds(),
			applog.FieldClientIP, clientIP)
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports ready once the dataset source answers.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if _, err := s.source.Contracts(ctx); err != nil {
		s.logger.ErrorContext(r.Context(), "Readiness check failed", applog.FieldError, err)
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
