package http

import (
	"contratos/internal/core"
)

// contractRow is a fully formatted table row for the main dashboard.
// Protocol URLs are empty when the record has no protocol.
type contractRow struct {
	CostCenter          string
	Company             string
	ContractNumber      string
	ContractProtocol    string
	ContractProtocolURL string
	ContractValue       string
	TaxID               string
	ContractType        string
	PaymentMethod       string
	Periodicity         string
	Status              string
	LastPaymentDate     string
	LastPaymentValue    string
	PaymentProtocol     string
	PaymentProtocolURL  string
}

func (s *Server) buildContractRows(records []core.ContractRecord) []contractRow {
	rows := make([]contractRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, contractRow{
			CostCenter:          r.CostCenter,
			Company:             r.Company,
			ContractNumber:      r.ContractNumber,
			ContractProtocol:    r.ContractProtocol,
			ContractProtocolURL: core.ProtocolLink(s.linkBase, r.ContractProtocol),
			ContractValue:       r.ContractValue.BRL(),
			TaxID:               r.TaxID,
			ContractType:        r.ContractType,
			PaymentMethod:       r.PaymentMethod,
			Periodicity:         r.Periodicity,
			Status:              r.Status,
			LastPaymentDate:     core.FormatDate(r.LastPaymentDate),
			LastPaymentValue:    r.LastPaymentValue.BRL(),
			PaymentProtocol:     r.PaymentProtocol,
			PaymentProtocolURL:  core.ProtocolLink(s.linkBase, r.PaymentProtocol),
		})
	}
	return rows
}

// imageUsageRow is a formatted row of the ESA contracts table.
type imageUsageRow struct {
	Company             string
	ContractNumber      string
	ContractProtocol    string
	ContractProtocolURL string
	ContractType        string
	PaymentMethod       string
	Periodicity         string
	Status              string
}

func (s *Server) buildImageUsageRows(records []core.ContractRecord) []imageUsageRow {
	rows := make([]imageUsageRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, imageUsageRow{
			Company:             r.Company,
			ContractNumber:      r.ContractNumber,
			ContractProtocol:    r.ContractProtocol,
			ContractProtocolURL: core.ProtocolLink(s.linkBase, r.ContractProtocol),
			ContractType:        r.ContractType,
			PaymentMethod:       r.PaymentMethod,
			Periodicity:         r.Periodicity,
			Status:              r.Status,
		})
	}
	return rows
}

// tableData feeds the contracts table partial.
type tableData struct {
	Rows   []contractRow
	Count  int
	Totals totalsView
}

// totalsView carries the two headline sums, formatted.
type totalsView struct {
	ContractTotal string
	PaidTotal     string
}

func buildTotals(t core.Totals) totalsView {
	return totalsView{
		ContractTotal: core.Money{Cents: t.ContractCents, Valid: true}.BRL(),
		PaidTotal:     core.Money{Cents: t.PaidCents, Valid: true}.BRL(),
	}
}
