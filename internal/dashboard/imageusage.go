package dashboard

import (
	"strings"
	"sync"
	"time"

	"contratos/internal/cache"
	"contratos/internal/core"
	"contratos/internal/export"
)

// Spreadsheet identity of the image-usage export.
const (
	ImageUsageSheetName = "Contratos ESA"
	ImageUsageFilename  = "contratos_esa_uso_imagem.xlsx"
)

// Chart line colors per category, keyed by natureza.
var categoryColors = map[string]string{
	core.CategoryTechnical:  "#3B82F6",
	core.CategoryAudioVideo: "#EF4444",
	core.CategoryImageUsage: "#10B981",
}

// CategoryColor returns the chart color for a natureza, or "" when the
// category is unknown.
func CategoryColor(category string) string {
	return categoryColors[category]
}

// ImageUsage drives the ESA dashboard: the active-contracts table plus
// the monthly value chart with its category selection. Chart series are
// memoized on the selection key since the underlying values never change
// within a session.
type ImageUsage struct {
	mu        sync.Mutex
	contracts []core.ContractRecord
	values    []core.ValueRecord
	selected  map[string]bool
	series    *cache.LRUCache[[]core.MonthPoint]
}

func NewImageUsage(contracts []core.ContractRecord, values []core.ValueRecord) *ImageUsage {
	selected := make(map[string]bool, 3)
	for _, cat := range core.KnownCategories() {
		selected[cat] = true
	}
	return &ImageUsage{
		contracts: contracts,
		values:    values,
		selected:  selected,
		series:    cache.NewLRUCache[[]core.MonthPoint](8, 30*time.Minute),
	}
}

// Toggle flips a category's selection. Unknown categories are ignored.
func (iu *ImageUsage) Toggle(category string) {
	iu.mu.Lock()
	defer iu.mu.Unlock()
	if _, known := iu.selected[category]; known {
		iu.selected[category] = !iu.selected[category]
	}
}

// Selected returns the selected categories in display order.
func (iu *ImageUsage) Selected() []string {
	iu.mu.Lock()
	defer iu.mu.Unlock()
	return iu.selectedLocked()
}

func (iu *ImageUsage) selectedLocked() []string {
	var out []string
	for _, cat := range core.KnownCategories() {
		if iu.selected[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// ActiveContracts returns the VIGENTE subset shown in the ESA table.
func (iu *ImageUsage) ActiveContracts() []core.ContractRecord {
	iu.mu.Lock()
	defer iu.mu.Unlock()
	return core.SelectActive(iu.contracts)
}

// ChartSeries aggregates the value time series for the current category
// selection, chronologically ordered.
func (iu *ImageUsage) ChartSeries() []core.MonthPoint {
	iu.mu.Lock()
	selected := iu.selectedLocked()
	iu.mu.Unlock()

	key := strings.Join(selected, "|")
	if points, ok := iu.series.Get(key); ok {
		return points
	}
	points := core.AggregateByMonth(iu.values, selected)
	iu.series.Set(key, points)
	return points
}

// ExportDocument builds the spreadsheet for the active ESA contracts.
func (iu *ImageUsage) ExportDocument() export.TableDocument {
	return export.TableDocument{
		SheetName: ImageUsageSheetName,
		Filename:  ImageUsageFilename,
		Headers:   core.ImageUsageExportHeaders,
		Rows:      core.ImageUsageExportRows(iu.ActiveContracts()),
	}
}
