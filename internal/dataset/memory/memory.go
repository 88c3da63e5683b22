// Package memory is the bundled-data Source: three JSON collections read
// once at startup into immutable slices.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	"golang.org/x/sync/errgroup"

	"contratos/internal/core"
	"contratos/internal/dataset"
)

// Dataset file names inside the data directory.
const (
	ContractsFile           = "contratos.json"
	ImageUsageContractsFile = "contratos_esa.json"
	ImageUsageValuesFile    = "valores_esa.json"
)

type Store struct {
	contracts    []core.ContractRecord
	imgContracts []core.ContractRecord
	imgValues    []core.ValueRecord
}

var _ dataset.Source = (*Store)(nil)

// New builds a Store from already-typed collections. Used by tests and by
// callers that decode elsewhere.
func New(contracts, imgContracts []core.ContractRecord, imgValues []core.ValueRecord) *Store {
	return &Store{
		contracts:    append([]core.ContractRecord(nil), contracts...),
		imgContracts: append([]core.ContractRecord(nil), imgContracts...),
		imgValues:    append([]core.ValueRecord(nil), imgValues...),
	}
}

// Load reads the three dataset files from fsys under dir, concurrently,
// and maps the raw rows into typed records. All three files must decode;
// a missing or malformed file fails the whole load so the viewer never
// starts on partial data.
func Load(ctx context.Context, fsys fs.FS, dir string) (*Store, error) {
	s := &Store{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := readRows(ctx, fsys, dir, ContractsFile)
		if err != nil {
			return fmt.Errorf("load contracts: %w", err)
		}
		s.contracts = mapContracts(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := readRows(ctx, fsys, dir, ImageUsageContractsFile)
		if err != nil {
			return fmt.Errorf("load image-usage contracts: %w", err)
		}
		s.imgContracts = mapContracts(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := readRows(ctx, fsys, dir, ImageUsageValuesFile)
		if err != nil {
			return fmt.Errorf("load image-usage values: %w", err)
		}
		s.imgValues = make([]core.ValueRecord, 0, len(rows))
		for _, row := range rows {
			s.imgValues = append(s.imgValues, dataset.ValueFromRaw(row))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// Contracts implements dataset.Source.
func (s *Store) Contracts(_ context.Context) ([]core.ContractRecord, error) {
	return append([]core.ContractRecord(nil), s.contracts...), nil
}

// ImageUsageContracts implements dataset.Source.
func (s *Store) ImageUsageContracts(_ context.Context) ([]core.ContractRecord, error) {
	return append([]core.ContractRecord(nil), s.imgContracts...), nil
}

// ImageUsageValues implements dataset.Source.
func (s *Store) ImageUsageValues(_ context.Context) ([]core.ValueRecord, error) {
	return append([]core.ValueRecord(nil), s.imgValues...), nil
}

func readRows(ctx context.Context, fsys fs.FS, dir, name string) ([]dataset.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := fsys.Open(path.Join(dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var rows []dataset.RawRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return rows, nil
}

func mapContracts(rows []dataset.RawRow) []core.ContractRecord {
	out := make([]core.ContractRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, dataset.ContractFromRaw(row))
	}
	return out
}
