package dataset

import (
	"encoding/json"
	"testing"
)

func TestContractFromRaw(t *testing.T) {
	row := RawRow{
		"CENTRO DE CUSTO":       "DIRETORIA",
		"EMPRESA":               "Alfa Servicos LTDA",
		"NUM. CONTRATO ":        "2023/014",
		"PROTOCOLO CONTRATO":    "N/A",
		"VALOR CONTRATO":        json.Number("120000.5"),
		"CNPJ":                  "12.345.678/0001-90",
		"TIPO DE CONTRATO":      "PRESTACAO DE SERVICOS",
		"PAGAMENTO":             "BOLETO",
		"PERIODICIDADE":         "MENSAL",
		"STATUS":                "VIGENTE",
		"DATA ULTIMO PAGAMENTO": "05/01/2024",
		"VALOR":                 "N/A",
		"PROTOCOLO PAGAMENTO":   "PG-8812",
	}
	r := ContractFromRaw(row)

	if r.CostCenter != "DIRETORIA" || r.Company != "Alfa Servicos LTDA" {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.ContractNumber != "2023/014" {
		t.Fatalf("trailing-space column not mapped: %+v", r)
	}
	if r.ContractProtocol != "" {
		t.Fatalf("sentinel should normalize to empty, got %q", r.ContractProtocol)
	}
	if !r.ContractValue.Valid || r.ContractValue.Cents != 12000050 {
		t.Fatalf("unexpected contract value: %+v", r.ContractValue)
	}
	if r.LastPaymentValue.Valid {
		t.Fatalf("sentinel amount should be invalid, got %+v", r.LastPaymentValue)
	}
}

func TestContractFromRawMissingColumns(t *testing.T) {
	r := ContractFromRaw(RawRow{})
	if r.Company != "" || r.ContractValue.Valid {
		t.Fatalf("missing columns should map to empty record, got %+v", r)
	}
}

func TestValueFromRaw(t *testing.T) {
	row := RawRow{
		"MM/AAAA":  "1/2024",
		"NATUREZA": "CESSAO E USO DE IMAGEM",
		"VALOR":    json.Number("2500"),
	}
	v := ValueFromRaw(row)
	if v.MonthYear != "1/2024" || v.Category != "CESSAO E USO DE IMAGEM" {
		t.Fatalf("unexpected value record: %+v", v)
	}
	if !v.Amount.Valid || v.Amount.Cents != 250000 {
		t.Fatalf("unexpected amount: %+v", v.Amount)
	}
}
