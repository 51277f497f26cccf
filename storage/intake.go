package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"ev-warehouse/models"
)

// requiredColumns are the sixteen intake fields the extraction front end
// must supply. Column order does not matter; names are case-sensitive.
var requiredColumns = []string{
	"company", "model", "drivetrain", "class", "seat",
	"price_raw", "range_raw", "efficiency", "weight",
	"zero_to_sixty", "one_stop_range", "battery",
	"rapidcharge", "towing", "boot_space", "price_range",
}

// ReadIntake reads one intake batch from the CSV at path. A header missing
// any required column is a fatal SchemaError raised before anything else
// happens. Cell values are returned untouched; trimming and NULL conversion
// belong to the loader.
func ReadIntake(path string) ([]*models.IntakeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("intake: open %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &models.SchemaError{Missing: requiredColumns}
		}
		return nil, fmt.Errorf("intake: read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &models.SchemaError{Missing: missing}
	}

	var rows []*models.IntakeRow
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("intake: read row %d: %w", len(rows)+2, err)
		}

		cell := func(col string) string {
			if i := index[col]; i < len(record) {
				return record[i]
			}
			return ""
		}

		rows = append(rows, &models.IntakeRow{
			Company:      cell("company"),
			Model:        cell("model"),
			Drivetrain:   cell("drivetrain"),
			Class:        cell("class"),
			Seat:         cell("seat"),
			PriceRaw:     cell("price_raw"),
			RangeRaw:     cell("range_raw"),
			Efficiency:   cell("efficiency"),
			Weight:       cell("weight"),
			ZeroToSixty:  cell("zero_to_sixty"),
			OneStopRange: cell("one_stop_range"),
			Battery:      cell("battery"),
			Rapidcharge:  cell("rapidcharge"),
			Towing:       cell("towing"),
			BootSpace:    cell("boot_space"),
			PriceRange:   cell("price_range"),
		})
	}

	return rows, nil
}
