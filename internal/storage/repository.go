// Package storage is the SQLite dataset backend. The server only ever
// reads from it; cmd/contratos-seed populates the file offline from the
// JSON datasets.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"contratos/internal/core"
	"contratos/internal/dataset"

	_ "modernc.org/sqlite"
)

// Dataset discriminator values for the contracts table.
const (
	DatasetGeneral    = "general"
	DatasetImageUsage = "image_usage"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ dataset.Source = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrateSchema(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Contracts implements dataset.Source.
func (r *SQLiteRepository) Contracts(ctx context.Context) ([]core.ContractRecord, error) {
	return r.contractsByDataset(ctx, DatasetGeneral)
}

// ImageUsageContracts implements dataset.Source.
func (r *SQLiteRepository) ImageUsageContracts(ctx context.Context) ([]core.ContractRecord, error) {
	return r.contractsByDataset(ctx, DatasetImageUsage)
}

func (r *SQLiteRepository) contractsByDataset(ctx context.Context, ds string) ([]core.ContractRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT cost_center, company, contract_number, contract_protocol,
		       contract_value_cents, tax_id, contract_type, payment_method,
		       periodicity, status, last_payment_date,
		       last_payment_value_cents, payment_protocol
		FROM contracts
		WHERE dataset = ?
		ORDER BY position`, ds)
	if err != nil {
		return nil, fmt.Errorf("query contracts (%s): %w", ds, err)
	}
	defer rows.Close()

	var out []core.ContractRecord
	for rows.Next() {
		var rec core.ContractRecord
		var contractCents, paymentCents sql.NullInt64
		if err := rows.Scan(
			&rec.CostCenter, &rec.Company, &rec.ContractNumber,
			&rec.ContractProtocol, &contractCents, &rec.TaxID,
			&rec.ContractType, &rec.PaymentMethod, &rec.Periodicity,
			&rec.Status, &rec.LastPaymentDate, &paymentCents,
			&rec.PaymentProtocol,
		); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		rec.ContractValue = moneyFromNull(contractCents)
		rec.LastPaymentValue = moneyFromNull(paymentCents)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts (%s): %w", ds, err)
	}
	return out, nil
}

// ImageUsageValues implements dataset.Source.
func (r *SQLiteRepository) ImageUsageValues(ctx context.Context) ([]core.ValueRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT month_year, category, value_cents
		FROM image_usage_values
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query image-usage values: %w", err)
	}
	defer rows.Close()

	var out []core.ValueRecord
	for rows.Next() {
		var rec core.ValueRecord
		var cents sql.NullInt64
		if err := rows.Scan(&rec.MonthYear, &rec.Category, &cents); err != nil {
			return nil, fmt.Errorf("scan value record: %w", err)
		}
		rec.Amount = moneyFromNull(cents)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image-usage values: %w", err)
	}
	return out, nil
}

// Seed replaces both tables with the given collections inside one
// transaction. It is the only write path and runs offline, never from
// the server.
func (r *SQLiteRepository) Seed(ctx context.Context, contracts, imgContracts []core.ContractRecord, imgValues []core.ValueRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contracts`); err != nil {
		return fmt.Errorf("clear contracts: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM image_usage_values`); err != nil {
		return fmt.Errorf("clear image-usage values: %w", err)
	}

	insertContract, err := tx.PrepareContext(ctx, `
		INSERT INTO contracts (
			dataset, position, cost_center, company, contract_number,
			contract_protocol, contract_value_cents, tax_id, contract_type,
			payment_method, periodicity, status, last_payment_date,
			last_payment_value_cents, payment_protocol
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare contract insert: %w", err)
	}
	defer insertContract.Close()

	insertRows := func(ds string, records []core.ContractRecord) error {
		for i, rec := range records {
			if _, err := insertContract.ExecContext(ctx,
				ds, i, rec.CostCenter, rec.Company, rec.ContractNumber,
				rec.ContractProtocol, nullFromMoney(rec.ContractValue),
				rec.TaxID, rec.ContractType, rec.PaymentMethod,
				rec.Periodicity, rec.Status, rec.LastPaymentDate,
				nullFromMoney(rec.LastPaymentValue), rec.PaymentProtocol,
			); err != nil {
				return fmt.Errorf("insert contract %d (%s): %w", i, ds, err)
			}
		}
		return nil
	}
	if err := insertRows(DatasetGeneral, contracts); err != nil {
		return err
	}
	if err := insertRows(DatasetImageUsage, imgContracts); err != nil {
		return err
	}

	insertValue, err := tx.PrepareContext(ctx, `
		INSERT INTO image_usage_values (position, month_year, category, value_cents)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare value insert: %w", err)
	}
	defer insertValue.Close()

	for i, rec := range imgValues {
		if _, err := insertValue.ExecContext(ctx, i, rec.MonthYear, rec.Category, nullFromMoney(rec.Amount)); err != nil {
			return fmt.Errorf("insert value record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

func moneyFromNull(n sql.NullInt64) core.Money {
	if !n.Valid {
		return core.Money{}
	}
	return core.Money{Cents: n.Int64, Valid: true}
}

func nullFromMoney(m core.Money) sql.NullInt64 {
	if !m.Valid {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: m.Cents, Valid: true}
}
