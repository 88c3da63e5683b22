package dashboard

import (
	"fmt"

	"contratos/internal/core"
)

// PrintModel is everything the print templates need: a document title,
// the centered header lines (last one carries the row count), and the
// formatted table.
type PrintModel struct {
	Title       string
	HeaderLines []string
	Headers     []string
	Rows        [][]string
}

// PrintModel builds the printable document for the filtered subset.
func (c *Controller) PrintModel() PrintModel {
	rows := c.Rows()
	return PrintModel{
		Title: "Contratos CFOAB",
		HeaderLines: []string{
			fmt.Sprintf("CONTRATOS CFOAB - Resultados (%d contratos)", len(rows)),
		},
		Headers: core.ContractExportHeaders,
		Rows:    core.ContractExportRows(rows),
	}
}

// PrintModel builds the printable document for the active ESA contracts.
func (iu *ImageUsage) PrintModel() PrintModel {
	active := iu.ActiveContracts()
	return PrintModel{
		Title: "Contratos ESA - Uso de Imagem",
		HeaderLines: []string{
			"ESCOLA SUPERIOR DE ADVOCACIA NACIONAL [ESA NACIONAL]",
			"CESSAO TEMPORARIA USO DE IMAGEM",
			fmt.Sprintf("Contratos Ativos (%d contratos)", len(active)),
		},
		Headers: core.ImageUsageExportHeaders,
		Rows:    core.ImageUsageExportRows(active),
	}
}
