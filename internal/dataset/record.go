// Package dataset maps the raw, label-keyed dataset rows into the typed
// records of internal/core. The absence sentinel is applied once here, at
// the load boundary, so consumers only ever see "" for a missing field.
package dataset

import (
	"encoding/json"
	"strconv"
	"strings"

	"contratos/internal/core"
)

// Source column labels, exactly as they appear in the exported datasets.
// "NUM. CONTRATO " really does carry a trailing space.
const (
	colCostCenter       = "CENTRO DE CUSTO"
	colCompany          = "EMPRESA"
	colContractNumber   = "NUM. CONTRATO "
	colContractProtocol = "PROTOCOLO CONTRATO"
	colContractValue    = "VALOR CONTRATO"
	colTaxID            = "CNPJ"
	colContractType     = "TIPO DE CONTRATO"
	colPaymentMethod    = "PAGAMENTO"
	colPeriodicity      = "PERIODICIDADE"
	colStatus           = "STATUS"
	colLastPaymentDate  = "DATA ULTIMO PAGAMENTO"
	colLastPaymentValue = "VALOR"
	colPaymentProtocol  = "PROTOCOLO PAGAMENTO"

	colMonthYear = "MM/AAAA"
	colCategory  = "NATUREZA"
)

// RawRow is one undecoded dataset row, keyed by the original column
// labels. Decode with json.Decoder.UseNumber so amounts survive intact.
type RawRow map[string]any

// ContractFromRaw builds a typed record from a raw row, normalizing the
// sentinel and parsing monetary fields.
func ContractFromRaw(row RawRow) core.ContractRecord {
	return core.ContractRecord{
		CostCenter:       stringField(row, colCostCenter),
		Company:          stringField(row, colCompany),
		ContractNumber:   stringField(row, colContractNumber),
		ContractProtocol: stringField(row, colContractProtocol),
		ContractValue:    moneyField(row, colContractValue),
		TaxID:            stringField(row, colTaxID),
		ContractType:     stringField(row, colContractType),
		PaymentMethod:    stringField(row, colPaymentMethod),
		Periodicity:      stringField(row, colPeriodicity),
		Status:           stringField(row, colStatus),
		LastPaymentDate:  stringField(row, colLastPaymentDate),
		LastPaymentValue: moneyField(row, colLastPaymentValue),
		PaymentProtocol:  stringField(row, colPaymentProtocol),
	}
}

// ValueFromRaw builds a typed time-series point from a raw row.
func ValueFromRaw(row RawRow) core.ValueRecord {
	return core.ValueRecord{
		MonthYear: stringField(row, colMonthYear),
		Category:  stringField(row, colCategory),
		Amount:    moneyField(row, colLastPaymentValue),
	}
}

// stringField coerces a raw cell to a display string, mapping the absence
// sentinel (and missing keys) to "".
func stringField(row RawRow, key string) string {
	v, ok := row[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == core.Sentinel {
			return ""
		}
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	}
	return ""
}

// moneyField coerces a raw cell to Money; anything non-numeric is absent.
func moneyField(row RawRow, key string) core.Money {
	v, ok := row[key]
	if !ok || v == nil {
		return core.Money{}
	}
	switch t := v.(type) {
	case string:
		return core.ParseAmount(t)
	case json.Number:
		return core.ParseAmount(t.String())
	case float64:
		return core.MoneyFromFloat(t)
	}
	return core.Money{}
}
