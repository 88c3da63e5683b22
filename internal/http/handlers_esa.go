package http

import (
	"encoding/json"
	"net/http"

	"contratos/internal/core"
	"contratos/internal/dashboard"
	applog "contratos/internal/log"
	"contratos/internal/session"
)

func (s *Server) handleESA(w http.ResponseWriter, r *http.Request) {
	token, vc, ok := s.requireControllers(w, r)
	if !ok {
		return
	}
	s.sessions.Navigate(token, session.ViewESA)

	type categoryView struct {
		Name     string
		Color    string
		Selected bool
	}
	selected := make(map[string]bool)
	for _, cat := range vc.esa.Selected() {
		selected[cat] = true
	}
	var categories []categoryView
	for _, cat := range core.KnownCategories() {
		categories = append(categories, categoryView{
			Name:     cat,
			Color:    dashboard.CategoryColor(cat),
			Selected: selected[cat],
		})
	}

	active := vc.esa.ActiveContracts()
	data := struct {
		Rows       []imageUsageRow
		Count      int
		Categories []categoryView
	}{
		Rows:       s.buildImageUsageRows(active),
		Count:      len(active),
		Categories: categories,
	}

	if err := s.templates.ExecuteTemplate(w, "esa.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "ESA template execution failed",
			applog.FieldOperation, applog.OpRender,
			applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleToggleNatureza flips one category in the chart selection.
func (s *Server) handleToggleNatureza(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	_, vc, ok := s.requireControllers(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	natureza := r.Form.Get("natureza")
	vc.esa.Toggle(natureza)
	s.logger.InfoContext(r.Context(), "Category toggled", applog.FieldCategory, natureza)
	http.Redirect(w, r, "/esa", http.StatusSeeOther)
}

// handleChart serves the aggregated monthly series for the chart
// renderer. Amounts are integer cents; colors ride along so the client
// stays presentation-only.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	token, _, ok := s.currentSession(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	vc, err := s.controllersFor(r.Context(), token)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Dataset load failed",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldError, err)
		http.Error(w, "dataset unavailable", http.StatusInternalServerError)
		return
	}

	type seriesView struct {
		Category string `json:"category"`
		Color    string `json:"color"`
	}
	type pointView struct {
		MonthYear string           `json:"month_year"`
		Values    map[string]int64 `json:"values"`
		Total     int64            `json:"total"`
	}

	var series []seriesView
	for _, cat := range vc.esa.Selected() {
		series = append(series, seriesView{Category: cat, Color: dashboard.CategoryColor(cat)})
	}
	points := make([]pointView, 0)
	for _, p := range vc.esa.ChartSeries() {
		points = append(points, pointView{MonthYear: p.MonthYear, Values: p.Values, Total: p.Total})
	}
	s.logger.DebugContext(r.Context(), "Chart series aggregated",
		applog.FieldOperation, applog.OpAggregate,
		applog.FieldRowCount, len(points))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(struct {
		Series []seriesView `json:"series"`
		Points []pointView  `json:"points"`
	}{Series: series, Points: points}); err != nil {
		s.logger.ErrorContext(r.Context(), "Chart encoding failed", applog.FieldError, err)
	}
}

func (s *Server) handleExportImageUsage(w http.ResponseWriter, r *http.Request) {
	_, vc, ok := s.requireControllers(w, r)
	if !ok {
		return
	}
	s.serveExport(w, r, vc.esa.ExportDocument())
}

func (s *Server) handlePrintImageUsage(w http.ResponseWriter, r *http.Request) {
	_, vc, ok := s.requireControllers(w, r)
	if !ok {
		return
	}
	s.renderPrint(w, r, vc.esa.PrintModel())
}
