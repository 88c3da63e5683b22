package dashboard

import (
	"strings"
	"testing"

	"contratos/internal/core"
)

func TestControllerPrintModel(t *testing.T) {
	c := NewController(sampleContracts())
	c.SetStatus(core.StatusFilterActive)

	pm := c.PrintModel()
	if pm.Title != "Contratos CFOAB" {
		t.Fatalf("unexpected title %q", pm.Title)
	}
	if len(pm.HeaderLines) != 1 || !strings.Contains(pm.HeaderLines[0], "(2 contratos)") {
		t.Fatalf("header lines %v should carry the filtered count", pm.HeaderLines)
	}
	if len(pm.Rows) != 2 {
		t.Fatalf("expected 2 printed rows, got %d", len(pm.Rows))
	}
}

func TestImageUsagePrintModel(t *testing.T) {
	iu := NewImageUsage(sampleImageUsage())

	pm := iu.PrintModel()
	if pm.Title != "Contratos ESA - Uso de Imagem" {
		t.Fatalf("unexpected title %q", pm.Title)
	}
	if len(pm.HeaderLines) != 3 {
		t.Fatalf("expected the two-line institutional header plus count, got %v", pm.HeaderLines)
	}
	if !strings.Contains(pm.HeaderLines[2], "(2 contratos)") {
		t.Fatalf("count line %q wrong", pm.HeaderLines[2])
	}
}
