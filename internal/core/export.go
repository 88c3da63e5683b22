package core

// Export column labels, in the order the spreadsheet expects them.
var (
	ContractExportHeaders = []string{
		"Centro de Custo", "Empresa", "Num. Contrato", "Protocolo Contrato",
		"Valor Contrato", "CNPJ", "Tipo de Contrato", "Pagamento",
		"Periodicidade", "Status", "Data Último Pagamento", "Valor",
		"Protocolo Pagamento",
	}

	ImageUsageExportHeaders = []string{
		"Empresa", "Num. Contrato", "Protocolo Contrato", "Tipo de Contrato",
		"Pagamento", "Periodicidade", "Status",
	}
)

// ContractExportRows projects filtered records into export cells using
// the same formatting rules as the on-screen table. Row width always
// equals len(ContractExportHeaders).
func ContractExportRows(records []ContractRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.CostCenter,
			r.Company,
			r.ContractNumber,
			r.ContractProtocol,
			r.ContractValue.BRL(),
			r.TaxID,
			r.ContractType,
			r.PaymentMethod,
			r.Periodicity,
			r.Status,
			FormatDate(r.LastPaymentDate),
			r.LastPaymentValue.BRL(),
			r.PaymentProtocol,
		})
	}
	return rows
}

// ImageUsageExportRows projects active image-usage contracts into the
// narrower export shape. Row width always equals
// len(ImageUsageExportHeaders).
func ImageUsageExportRows(records []ContractRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Company,
			r.ContractNumber,
			r.ContractProtocol,
			r.ContractType,
			r.PaymentMethod,
			r.Periodicity,
			r.Status,
		})
	}
	return rows
}
