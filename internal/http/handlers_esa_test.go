package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"contratos/internal/core"
	"contratos/internal/export"
	applog "contratos/internal/log"
	"contratos/internal/session"
)

type chartPayload struct {
	Series []struct {
		Category string `json:"category"`
		Color    string `json:"color"`
	} `json:"series"`
	Points []struct {
		MonthYear string           `json:"month_year"`
		Values    map[string]int64 `json:"values"`
		Total     int64            `json:"total"`
	} `json:"points"`
}

func fetchChart(t *testing.T, srv *Server, cookie *http.Cookie) chartPayload {
	t.Helper()
	rr := get(srv, "/api/esa/chart", cookie)
	if rr.Code != 200 {
		t.Fatalf("chart status=%d", rr.Code)
	}
	var payload chartPayload
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("chart decode: %v", err)
	}
	return payload
}

func TestChartJSON(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv)

	payload := fetchChart(t, srv, cookie)
	if len(payload.Series) != 3 {
		t.Fatalf("expected 3 series by default, got %d", len(payload.Series))
	}
	for _, s := range payload.Series {
		if s.Color == "" {
			t.Fatalf("series %q missing color", s.Category)
		}
	}
	if len(payload.Points) != 2 {
		t.Fatalf("expected 2 months, got %d", len(payload.Points))
	}
	if payload.Points[0].MonthYear != "12/2023" || payload.Points[1].MonthYear != "1/2024" {
		t.Fatalf("points not chronological: %+v", payload.Points)
	}
	if payload.Points[1].Values[core.CategoryAudioVideo] != 20_000 {
		t.Fatalf("unexpected 1/2024 value: %+v", payload.Points[1])
	}
}

func TestChartRequiresSession(t *testing.T) {
	srv := newTestServer(t)
	rr := get(srv, "/api/esa/chart", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestToggleNatureza(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/esa/naturezas",
		strings.NewReader("natureza="+core.CategoryTechnical))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("toggle status=%d", rr.Code)
	}

	payload := fetchChart(t, srv, cookie)
	if len(payload.Series) != 2 {
		t.Fatalf("expected 2 series after toggle, got %d", len(payload.Series))
	}
	for _, p := range payload.Points {
		if _, ok := p.Values[core.CategoryTechnical]; ok {
			t.Fatalf("deselected category still present: %+v", p)
		}
	}
}

func TestExportContractsXlsx(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv)

	rr := get(srv, "/export/contratos.xlsx", cookie)
	if rr.Code != 200 {
		t.Fatalf("export status=%d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != xlsxContentType {
		t.Fatalf("content type %q", got)
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, "contratos_cfoab.xlsx") {
		t.Fatalf("content disposition %q", got)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Contratos CFOAB")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Centro de Custo" {
		t.Fatalf("unexpected first header %q", rows[0][0])
	}
}

func TestExportImageUsageXlsx(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv)

	rr := get(srv, "/export/contratos-esa.xlsx", cookie)
	if rr.Code != 200 {
		t.Fatalf("export status=%d", rr.Code)
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, "contratos_esa_uso_imagem.xlsx") {
		t.Fatalf("content disposition %q", got)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Contratos ESA")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 active contract, got %d", len(rows))
	}
}

type captureMirror struct {
	docs chan export.TableDocument
}

func (m *captureMirror) Export(ctx context.Context, doc export.TableDocument) error {
	m.docs <- doc
	return nil
}

func TestExportMirrorInvoked(t *testing.T) {
	logger := applog.New(applog.DefaultConfig())
	sessions := session.NewStore(time.Hour)
	defer sessions.Stop()
	mirror := &captureMirror{docs: make(chan export.TableDocument, 1)}
	srv := NewServer(":0", testStore(), sessions, mirror, core.DefaultProtocolBase, logger)

	cookie := login(t, srv)
	rr := get(srv, "/export/contratos.xlsx", cookie)
	if rr.Code != 200 {
		t.Fatalf("export status=%d", rr.Code)
	}

	select {
	case doc := <-mirror.docs:
		if doc.SheetName != "Contratos CFOAB" {
			t.Fatalf("mirrored wrong sheet %q", doc.SheetName)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("mirror was never invoked")
	}
}

func TestPrintDocuments(t *testing.T) {
	srv := newTestServer(t)
	cookie := login(t, srv)

	rr := get(srv, "/print/contratos", cookie)
	if rr.Code != 200 {
		t.Fatalf("print status=%d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "CONTRATOS CFOAB - Resultados (2 contratos)") {
		t.Fatal("print header missing row count")
	}
	if !strings.Contains(body, "Data Último Pagamento") {
		t.Fatal("print table missing headers")
	}

	rr = get(srv, "/print/esa", cookie)
	body = rr.Body.String()
	if !strings.Contains(body, "ESCOLA SUPERIOR DE ADVOCACIA NACIONAL [ESA NACIONAL]") ||
		!strings.Contains(body, "Contratos Ativos (1 contratos)") {
		t.Fatal("esa print header wrong")
	}
}
