package storage

import (
	"context"

	"github.com/huandu/go-sqlbuilder"

	"ev-warehouse/models"
)

// Silver tables are dropped child-first and recreated on every run; the
// store enforces manufacturer-name uniqueness and both foreign keys.
const silverDDL = `
	CREATE SCHEMA IF NOT EXISTS silver;

	DROP TABLE IF EXISTS silver.specs;
	DROP TABLE IF EXISTS silver.vehicle;
	DROP TABLE IF EXISTS silver.manufacturer;

	CREATE TABLE silver.manufacturer (
		manufacturer_id   BIGINT PRIMARY KEY,
		manufacturer_name VARCHAR(100) UNIQUE
	);

	CREATE TABLE silver.vehicle (
		vehicle_id      BIGINT PRIMARY KEY,
		manufacturer_id BIGINT REFERENCES silver.manufacturer(manufacturer_id),
		model_name      VARCHAR(200),
		drivetrain      VARCHAR(50),
		class           VARCHAR(50),
		seat            INT
	);

	CREATE TABLE silver.specs (
		spec_id              BIGINT PRIMARY KEY,
		vehicle_id           BIGINT REFERENCES silver.vehicle(vehicle_id),
		range_miles          INT,
		efficiency_whpm      INT,
		weight_kg            INT,
		zero_to_sixty_sec    NUMERIC(4,2),
		one_stop_range_miles INT,
		battery_kwh          NUMERIC(5,2),
		rapidcharge_kw       INT,
		towing_kg            INT,
		boot_space_liters    INT,
		price_per_mile       INT,
		price_gbp            INT
	);
`

// summaryInputSQL is the three-way inner join feeding the gold layer: a
// vehicle missing either its manufacturer or a specs match is excluded.
const summaryInputSQL = `
	SELECT
		m.manufacturer_name,
		v.model_name,
		v.drivetrain,
		v.class,
		v.seat,
		s.range_miles,
		s.battery_kwh,
		s.efficiency_whpm,
		s.zero_to_sixty_sec,
		s.weight_kg,
		s.rapidcharge_kw,
		s.towing_kg,
		s.boot_space_liters,
		s.one_stop_range_miles,
		s.price_gbp
	FROM silver.vehicle v
	JOIN silver.manufacturer m ON v.manufacturer_id = m.manufacturer_id
	JOIN silver.specs s        ON s.vehicle_id = v.vehicle_id
	ORDER BY s.spec_id
`

// ResetSilver drops and recreates the whole silver layer.
func (w *Warehouse) ResetSilver(ctx context.Context) error {
	return w.exec(ctx, "recreate silver schema", silverDDL)
}

// WriteSilver inserts one full silver derivation, parents before children.
func (w *Warehouse) WriteSilver(ctx context.Context, batch *models.SilverBatch) (int64, error) {
	if err := w.insertManufacturers(ctx, batch.Manufacturers); err != nil {
		return 0, err
	}
	if err := w.insertVehicles(ctx, batch.Vehicles); err != nil {
		return 0, err
	}
	if err := w.insertSpecs(ctx, batch.Specs); err != nil {
		return 0, err
	}
	return int64(len(batch.Manufacturers) + len(batch.Vehicles) + len(batch.Specs)), nil
}

func (w *Warehouse) insertManufacturers(ctx context.Context, manufacturers []*models.Manufacturer) error {
	if len(manufacturers) == 0 {
		return nil
	}
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("silver.manufacturer")
	ib.Cols("manufacturer_id", "manufacturer_name")
	for _, m := range manufacturers {
		ib.Values(m.ID, m.Name)
	}
	query, args := ib.Build()
	return w.exec(ctx, "insert manufacturers", query, args...)
}

func (w *Warehouse) insertVehicles(ctx context.Context, vehicles []*models.Vehicle) error {
	const batchSize = 50
	for i := 0; i < len(vehicles); i += batchSize {
		end := i + batchSize
		if end > len(vehicles) {
			end = len(vehicles)
		}
		batch := vehicles[i:end]

		ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
		ib.InsertInto("silver.vehicle")
		ib.Cols("vehicle_id", "manufacturer_id", "model_name", "drivetrain", "class", "seat")
		for _, v := range batch {
			ib.Values(v.ID, v.ManufacturerID, v.ModelName, v.Drivetrain, v.Class, v.Seat)
		}
		query, args := ib.Build()
		if err := w.exec(ctx, "insert vehicles", query, args...); err != nil {
			return err
		}
	}
	return nil
}

func (w *Warehouse) insertSpecs(ctx context.Context, specs []*models.SpecFact) error {
	const batchSize = 50
	for i := 0; i < len(specs); i += batchSize {
		end := i + batchSize
		if end > len(specs) {
			end = len(specs)
		}
		batch := specs[i:end]

		ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
		ib.InsertInto("silver.specs")
		ib.Cols("spec_id", "vehicle_id", "range_miles", "efficiency_whpm", "weight_kg",
			"zero_to_sixty_sec", "one_stop_range_miles", "battery_kwh",
			"rapidcharge_kw", "towing_kg", "boot_space_liters",
			"price_per_mile", "price_gbp")
		for _, s := range batch {
			ib.Values(s.ID, s.VehicleID, s.RangeMiles, s.EfficiencyWhpm, s.WeightKg,
				s.ZeroToSixtySec, s.OneStopRangeMiles, s.BatteryKwh,
				s.RapidchargeKw, s.TowingKg, s.BootSpaceLiters,
				s.PricePerMile, s.PriceGbp)
		}
		query, args := ib.Build()
		if err := w.exec(ctx, "insert specs", query, args...); err != nil {
			return err
		}
	}
	return nil
}

// FetchSummaryInputs returns the joined silver model for metric derivation.
func (w *Warehouse) FetchSummaryInputs(ctx context.Context) ([]*models.SummaryInput, error) {
	var rows []*models.SummaryInput
	if err := w.db.SelectContext(ctx, &rows, summaryInputSQL); err != nil {
		return nil, &models.StatementError{Step: "fetch summary inputs", Query: summaryInputSQL, Err: err}
	}
	return rows, nil
}

// CountSilver returns the total stored silver row count across all three
// tables, for the stage's post-load verification.
func (w *Warehouse) CountSilver(ctx context.Context) (int64, error) {
	var total int64
	for _, table := range []string{"silver.manufacturer", "silver.vehicle", "silver.specs"} {
		n, err := w.count(ctx, table)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
