package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeDatasets(t *testing.T, dir string) {
	t.Helper()
	mustWrite := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	mustWrite(ContractsFile, `[
		{"EMPRESA": "Alfa", "STATUS": "VIGENTE", "VALOR CONTRATO": 1000.5},
		{"EMPRESA": "Beta", "STATUS": "VENCIDO", "VALOR CONTRATO": "N/A"}
	]`)
	mustWrite(ImageUsageContractsFile, `[
		{"EMPRESA": "Gama", "STATUS": "VIGENTE"}
	]`)
	mustWrite(ImageUsageValuesFile, `[
		{"MM/AAAA": "12/2023", "NATUREZA": "CESSAO E USO DE IMAGEM", "VALOR": 100}
	]`)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDatasets(t, dir)

	s, err := Load(context.Background(), os.DirFS(dir), ".")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	contracts, err := s.Contracts(context.Background())
	if err != nil || len(contracts) != 2 {
		t.Fatalf("unexpected contracts: %v err=%v", contracts, err)
	}
	if !contracts[0].ContractValue.Valid || contracts[0].ContractValue.Cents != 100050 {
		t.Fatalf("unexpected value: %+v", contracts[0].ContractValue)
	}

	img, err := s.ImageUsageContracts(context.Background())
	if err != nil || len(img) != 1 || img[0].Company != "Gama" {
		t.Fatalf("unexpected image-usage contracts: %v err=%v", img, err)
	}

	vals, err := s.ImageUsageValues(context.Background())
	if err != nil || len(vals) != 1 || vals[0].MonthYear != "12/2023" {
		t.Fatalf("unexpected values: %v err=%v", vals, err)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	// Only one of the three files present.
	if err := os.WriteFile(filepath.Join(dir, ContractsFile), []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(context.Background(), os.DirFS(dir), "."); err == nil {
		t.Fatalf("expected error for missing dataset files")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	dir := t.TempDir()
	writeDatasets(t, dir)
	s, err := Load(context.Background(), os.DirFS(dir), ".")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	first, _ := s.Contracts(context.Background())
	first[0].Company = "mutated"
	second, _ := s.Contracts(context.Background())
	if second[0].Company == "mutated" {
		t.Fatalf("accessor leaked internal slice")
	}
}
