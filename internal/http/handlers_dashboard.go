package http

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"contratos/internal/core"
	"contratos/internal/dashboard"
	"contratos/internal/export"
	"contratos/internal/export/excel"
	applog "contratos/internal/log"
	"contratos/internal/session"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// requireControllers gates a handler on a live session and resolves its
// view controllers. On failure the browser is sent back to the login page.
func (s *Server) requireControllers(w http.ResponseWriter, r *http.Request) (string, *viewControllers, bool) {
	token, _, ok := s.currentSession(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return "", nil, false
	}
	vc, err := s.controllersFor(r.Context(), token)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Dataset load failed",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldError, err)
		http.Error(w, "dataset unavailable", http.StatusInternalServerError)
		return "", nil, false
	}
	return token, vc, true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	token, _, ok := s.currentSession(r)
	if !ok {
		if err := s.templates.ExecuteTemplate(w, "login.html", nil); err != nil {
			s.logger.ErrorContext(r.Context(), "Login template execution failed",
				applog.FieldOperation, applog.OpRender,
				applog.FieldError, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	// Visiting the root IS the back navigation from the ESA view.
	s.sessions.Navigate(token, session.ViewMain)

	vc, err := s.controllersFor(r.Context(), token)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Dataset load failed",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldError, err)
		http.Error(w, "dataset unavailable", http.StatusInternalServerError)
		return
	}

	rows := vc.main.Rows()
	data := struct {
		CostCenters []string
		Criteria    core.FilterCriteria
		Table       tableData
	}{
		CostCenters: vc.main.CostCenters(),
		Criteria:    vc.main.Criteria(),
		Table: tableData{
			Rows:   s.buildContractRows(rows),
			Count:  len(rows),
			Totals: buildTotals(vc.main.Totals()),
		},
	}

	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Dashboard template execution failed",
			applog.FieldOperation, applog.OpRender,
			applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// applyFilters maps the filter form onto the controller. The form always
// submits every field, so each criterion is applied unconditionally.
func applyFilters(ctrl *dashboard.Controller, q url.Values) {
	if q.Get("limpar") != "" {
		ctrl.ClearAll()
		return
	}
	ctrl.SetCostCenter(q.Get("centro_custo"))
	ctrl.SetStatus(core.StatusFilter(q.Get("status")))
	ctrl.SetSearch(core.SearchField(q.Get("campo")), q.Get("texto"))
	ctrl.SetIncludePunctual(q.Get("pontuais") != "")
}

// handleContractsTable renders the filtered table partial. Criteria come
// in as query parameters and update the session's controller.
func (s *Server) handleContractsTable(w http.ResponseWriter, r *http.Request) {
	_, vc, ok := s.requireControllers(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	applyFilters(vc.main, r.URL.Query())

	rows := vc.main.Rows()
	s.logger.DebugContext(r.Context(), "Filters applied",
		applog.FieldOperation, applog.OpFilter,
		applog.FieldRowCount, len(rows))
	data := tableData{
		Rows:   s.buildContractRows(rows),
		Count:  len(rows),
		Totals: buildTotals(vc.main.Totals()),
	}

	if err := s.templates.ExecuteTemplate(w, "contracts_table.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Table partial execution failed",
			applog.FieldOperation, applog.OpRender,
			applog.FieldError, err)
		_, _ = w.Write([]byte(`<div class="error">Erro ao carregar contratos</div>`))
	}
}

// serveExport streams an xlsx document and, when a mirror is configured,
// pushes a copy in the background. Mirror failures never reach the user.
func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, doc export.TableDocument) {
	var buf bytes.Buffer
	if err := excel.Write(&buf, doc); err != nil {
		s.logger.ErrorContext(r.Context(), "Export serialization failed",
			applog.FieldOperation, applog.OpExport,
			applog.FieldError, err,
			applog.FieldSheetName, doc.SheetName)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	if s.mirror != nil {
		go s.mirrorExport(doc)
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())

	s.logger.InfoContext(r.Context(), "Export served",
		applog.FieldOperation, applog.OpExport,
		applog.FieldSheetName, doc.SheetName,
		applog.FieldFilename, doc.Filename,
		applog.FieldRowCount, len(doc.Rows))
}

// mirrorExport runs detached from the request so a slow or failing
// spreadsheet never delays the download.
func (s *Server) mirrorExport(doc export.TableDocument) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.mirror.Export(ctx, doc); err != nil {
		s.logger.Error("Export mirror failed",
			applog.FieldOperation, applog.OpExport,
			applog.FieldError, err,
			applog.FieldSheetName, doc.SheetName)
	}
}

func (s *Server) handleExportContracts(w http.ResponseWriter, r *http.Request) {
	_, vc, ok := s.requireControllers(w, r)
	if !ok {
		return
	}
	s.serveExport(w, r, vc.main.ExportDocument())
}

// renderPrint writes a print-formatted document.
func (s *Server) renderPrint(w http.ResponseWriter, r *http.Request, pm dashboard.PrintModel) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "print.html", pm); err != nil {
		s.logger.ErrorContext(r.Context(), "Print template execution failed",
			applog.FieldOperation, applog.OpPrint,
			applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.logger.DebugContext(r.Context(), "Print document rendered",
		applog.FieldOperation, applog.OpPrint,
		applog.FieldRowCount, len(pm.Rows))
}

func (s *Server) handlePrintContracts(w http.ResponseWriter, r *http.Request) {
	_, vc, ok := s.requireControllers(w, r)
	if !ok {
		return
	}
	s.renderPrint(w, r, vc.main.PrintModel())
}
