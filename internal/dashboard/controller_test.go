package dashboard

import (
	"testing"

	"contratos/internal/core"
)

func sampleContracts() []core.ContractRecord {
	return []core.ContractRecord{
		{
			CostCenter:       "DIRETORIA",
			Company:          "ALFA SERVICOS LTDA",
			ContractNumber:   "CT-001",
			Status:           core.StatusActive,
			Periodicity:      "MENSAL",
			ContractValue:    core.Money{Cents: 120_000, Valid: true},
			LastPaymentValue: core.Money{Cents: 10_000, Valid: true},
		},
		{
			CostCenter:    "COMUNICACAO",
			Company:       "BETA FOTO E VIDEO",
			Status:        core.StatusExpired,
			Periodicity:   core.PeriodicityPunctual,
			ContractValue: core.Money{Cents: 50_000, Valid: true},
		},
		{
			CostCenter: "DIRETORIA",
			Company:    "GAMA CONSULTORIA",
			Status:     core.StatusActive,
		},
	}
}

func TestControllerDefaultsShowEverything(t *testing.T) {
	c := NewController(sampleContracts())

	if got := len(c.Rows()); got != 3 {
		t.Fatalf("expected all 3 rows, got %d", got)
	}
	totals := c.Totals()
	if totals.ContractCents != 170_000 || totals.PaidCents != 10_000 {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestControllerFilterAndClear(t *testing.T) {
	c := NewController(sampleContracts())

	c.SetCostCenter("DIRETORIA")
	c.SetStatus(core.StatusFilterActive)
	if got := len(c.Rows()); got != 2 {
		t.Fatalf("expected 2 rows after filtering, got %d", got)
	}

	c.SetSearch(core.SearchFieldCompany, "gama")
	if got := len(c.Rows()); got != 1 {
		t.Fatalf("expected 1 row after search, got %d", got)
	}

	c.ClearAll()
	if c.Criteria() != core.DefaultCriteria() {
		t.Fatalf("criteria not reset: %+v", c.Criteria())
	}
	if got := len(c.Rows()); got != 3 {
		t.Fatalf("expected all rows back after clear, got %d", got)
	}
}

func TestControllerUnknownStatusFallsBackToAll(t *testing.T) {
	c := NewController(sampleContracts())

	c.SetStatus(core.StatusFilter("suspenso"))
	if got := c.Criteria().Status; got != core.StatusFilterAll {
		t.Fatalf("expected fallback to todos, got %q", got)
	}
}

func TestControllerExcludePunctual(t *testing.T) {
	c := NewController(sampleContracts())

	c.SetIncludePunctual(false)
	for _, r := range c.Rows() {
		if r.Periodicity == core.PeriodicityPunctual {
			t.Fatalf("punctual contract leaked through: %+v", r)
		}
	}
}

func TestControllerCostCentersIgnoreFilters(t *testing.T) {
	c := NewController(sampleContracts())
	c.SetCostCenter("DIRETORIA")

	centers := c.CostCenters()
	if len(centers) != 2 {
		t.Fatalf("expected 2 cost centers regardless of filter, got %v", centers)
	}
}

func TestControllerExportDocument(t *testing.T) {
	c := NewController(sampleContracts())
	c.SetStatus(core.StatusFilterActive)

	doc := c.ExportDocument()
	if doc.SheetName != ContractsSheetName || doc.Filename != ContractsFilename {
		t.Fatalf("unexpected document identity %q %q", doc.SheetName, doc.Filename)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("expected export to follow the filter, got %d rows", len(doc.Rows))
	}
	for i, row := range doc.Rows {
		if len(row) != len(doc.Headers) {
			t.Fatalf("row %d has %d cells, headers have %d", i, len(row), len(doc.Headers))
		}
	}
}
