// Package dashboard holds the per-session view controllers. A controller
// owns the user-selected state of one view (filter criteria, category
// selection) and derives everything the handlers render from it.
package dashboard

import (
	"sync"

	"contratos/internal/core"
	"contratos/internal/export"
)

// Spreadsheet identity of the main dashboard export.
const (
	ContractsSheetName = "Contratos CFOAB"
	ContractsFilename  = "contratos_cfoab.xlsx"
)

// Controller drives the main contracts dashboard. Every mutation is a
// full criteria update followed by re-derivation, so the rendered table,
// the totals and the export always agree.
type Controller struct {
	mu       sync.Mutex
	records  []core.ContractRecord
	criteria core.FilterCriteria
}

func NewController(records []core.ContractRecord) *Controller {
	return &Controller{
		records:  records,
		criteria: core.DefaultCriteria(),
	}
}

func (c *Controller) SetCostCenter(costCenter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.CostCenter = costCenter
}

// SetStatus applies a status filter. Unknown values reset to "todos".
func (c *Controller) SetStatus(s core.StatusFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch s {
	case core.StatusFilterActive, core.StatusFilterExpired:
		c.criteria.Status = s
	default:
		c.criteria.Status = core.StatusFilterAll
	}
}

// SetSearch sets the searched field and text together. An unknown field
// is kept as-is; the filter layer treats it as matching nothing.
func (c *Controller) SetSearch(field core.SearchField, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.SearchField = field
	c.criteria.SearchText = text
}

func (c *Controller) SetIncludePunctual(include bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria.IncludePunctual = include
}

// ClearAll resets every criterion to the initial everything-included state.
func (c *Controller) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = core.DefaultCriteria()
}

func (c *Controller) Criteria() core.FilterCriteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria
}

// Rows returns the filtered records in dataset order.
func (c *Controller) Rows() []core.ContractRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return core.FilterContracts(c.records, c.criteria)
}

// Totals sums the monetary columns over the filtered subset.
func (c *Controller) Totals() core.Totals {
	return core.Summarize(c.Rows())
}

// CostCenters lists the distinct cost centers of the full dataset, for
// the filter dropdown. The list does not shrink as filters narrow.
func (c *Controller) CostCenters() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return core.CostCenters(c.records)
}

// ExportDocument builds the spreadsheet for the current filtered subset.
func (c *Controller) ExportDocument() export.TableDocument {
	return export.TableDocument{
		SheetName: ContractsSheetName,
		Filename:  ContractsFilename,
		Headers:   core.ContractExportHeaders,
		Rows:      core.ContractExportRows(c.Rows()),
	}
}
