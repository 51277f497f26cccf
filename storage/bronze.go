package storage

import (
	"context"

	"github.com/huandu/go-sqlbuilder"

	"ev-warehouse/models"
)

const bronzeTable = "bronze.ev_specs"

const bronzeDDL = `
	CREATE SCHEMA IF NOT EXISTS bronze;

	CREATE TABLE IF NOT EXISTS bronze.ev_specs (
		id             BIGINT PRIMARY KEY,
		company        TEXT,
		model          TEXT,
		drivetrain     TEXT,
		class          TEXT,
		seat           TEXT,
		price_raw      TEXT,
		range_raw      TEXT,
		efficiency     TEXT,
		weight         TEXT,
		zero_to_sixty  TEXT,
		one_stop_range TEXT,
		battery        TEXT,
		rapidcharge    TEXT,
		towing         TEXT,
		boot_space     TEXT,
		price_range    TEXT
	);
`

var bronzeCols = []string{
	"id", "company", "model", "drivetrain", "class", "seat",
	"price_raw", "range_raw", "efficiency", "weight",
	"zero_to_sixty", "one_stop_range", "battery",
	"rapidcharge", "towing", "boot_space", "price_range",
}

// ResetBronze ensures the bronze schema exists and empties the staged table,
// destroying the previous snapshot.
func (w *Warehouse) ResetBronze(ctx context.Context) error {
	if err := w.exec(ctx, "create bronze schema", bronzeDDL); err != nil {
		return err
	}
	return w.exec(ctx, "truncate bronze.ev_specs", "TRUNCATE TABLE "+bronzeTable)
}

// WriteStaged batch-inserts the full staged batch as the new bronze snapshot.
func (w *Warehouse) WriteStaged(ctx context.Context, rows []*models.StagedRow) (int64, error) {
	const batchSize = 50
	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := w.insertStagedBatch(ctx, rows[i:end]); err != nil {
			return 0, err
		}
	}
	return int64(len(rows)), nil
}

func (w *Warehouse) insertStagedBatch(ctx context.Context, batch []*models.StagedRow) error {
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto(bronzeTable)
	ib.Cols(bronzeCols...)
	for _, r := range batch {
		ib.Values(r.ID, r.Company, r.Model, r.Drivetrain, r.Class, r.Seat,
			r.PriceRaw, r.RangeRaw, r.Efficiency, r.Weight,
			r.ZeroToSixty, r.OneStopRange, r.Battery,
			r.Rapidcharge, r.Towing, r.BootSpace, r.PriceRange)
	}

	query, args := ib.Build()
	return w.exec(ctx, "insert staged rows", query, args...)
}

// FetchStaged returns the full bronze snapshot in staged order.
func (w *Warehouse) FetchStaged(ctx context.Context) ([]*models.StagedRow, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(bronzeCols...)
	sb.From(bronzeTable)
	sb.OrderBy("id")

	query, args := sb.Build()

	var rows []*models.StagedRow
	if err := w.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, &models.StatementError{Step: "fetch staged rows", Query: query, Err: err}
	}
	return rows, nil
}

// CountStaged returns the stored bronze row count.
func (w *Warehouse) CountStaged(ctx context.Context) (int64, error) {
	return w.count(ctx, bronzeTable)
}
