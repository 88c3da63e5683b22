package http

import (
	"net/http"

	applog "contratos/internal/log"
)

// handleLogin opens a session and lands on the main dashboard. The
// original viewer had no credentials, just a gate.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	token := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.InfoContext(r.Context(), "Session opened", applog.FieldView, "main")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout tears the session down. Controllers go with it, so no
// filter or selection state survives.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		s.sessions.Destroy(c.Value)
		s.dropControllers(c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.logger.InfoContext(r.Context(), "Session closed")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
