package storage

import (
	"context"

	"github.com/huandu/go-sqlbuilder"

	"ev-warehouse/models"
)

const goldDDL = `
	CREATE SCHEMA IF NOT EXISTS gold;

	DROP TABLE IF EXISTS gold.brand_summary;
	DROP TABLE IF EXISTS gold.ev_summary;

	CREATE TABLE gold.ev_summary (
		ev_id                BIGINT PRIMARY KEY,
		manufacturer_name    VARCHAR(100),
		model_name           VARCHAR(200),
		drivetrain           VARCHAR(50),
		class                VARCHAR(50),
		seat                 INT,
		range_miles          INT,
		battery_kwh          NUMERIC(5,2),
		efficiency_whpm      INT,
		zero_to_sixty_sec    NUMERIC(4,2),
		weight_kg            INT,
		rapidcharge_kw       INT,
		towing_kg            INT,
		boot_space_liters    INT,
		one_stop_range_miles INT,
		price_gbp            INT,

		price_per_kwh        NUMERIC(10,2),
		price_per_mile       NUMERIC(10,2),
		value_score          NUMERIC(10,4),
		performance_score    NUMERIC(10,4),
		efficiency_score     NUMERIC(10,4),
		charging_score       NUMERIC(10,4),
		price_per_weight     NUMERIC(10,4)
	);

	CREATE TABLE gold.brand_summary (
		brand_id              BIGINT PRIMARY KEY,
		manufacturer_name     VARCHAR(100),
		model_count           INT,
		avg_price_gbp         NUMERIC(10,2),
		avg_range_miles       NUMERIC(10,2),
		avg_battery_kwh       NUMERIC(10,2),
		avg_efficiency_whpm   NUMERIC(10,2),
		avg_zero_to_sixty_sec NUMERIC(10,2),
		min_price_gbp         INT,
		max_price_gbp         INT
	);
`

// ResetGold drops and recreates both gold tables.
func (w *Warehouse) ResetGold(ctx context.Context) error {
	return w.exec(ctx, "recreate gold schema", goldDDL)
}

// WriteGold inserts the vehicle summaries and brand rollups.
func (w *Warehouse) WriteGold(ctx context.Context, summaries []*models.VehicleSummary, brands []*models.BrandSummary) (int64, error) {
	if err := w.insertSummaries(ctx, summaries); err != nil {
		return 0, err
	}
	if err := w.insertBrands(ctx, brands); err != nil {
		return 0, err
	}
	return int64(len(summaries) + len(brands)), nil
}

func (w *Warehouse) insertSummaries(ctx context.Context, summaries []*models.VehicleSummary) error {
	const batchSize = 50
	for i := 0; i < len(summaries); i += batchSize {
		end := i + batchSize
		if end > len(summaries) {
			end = len(summaries)
		}
		batch := summaries[i:end]

		ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
		ib.InsertInto("gold.ev_summary")
		ib.Cols("ev_id", "manufacturer_name", "model_name", "drivetrain", "class", "seat",
			"range_miles", "battery_kwh", "efficiency_whpm", "zero_to_sixty_sec",
			"weight_kg", "rapidcharge_kw", "towing_kg", "boot_space_liters",
			"one_stop_range_miles", "price_gbp",
			"price_per_kwh", "price_per_mile", "value_score", "performance_score",
			"efficiency_score", "charging_score", "price_per_weight")
		for _, s := range batch {
			ib.Values(s.ID, s.ManufacturerName, s.ModelName, s.Drivetrain, s.Class, s.Seat,
				s.RangeMiles, s.BatteryKwh, s.EfficiencyWhpm, s.ZeroToSixtySec,
				s.WeightKg, s.RapidchargeKw, s.TowingKg, s.BootSpaceLiters,
				s.OneStopRange, s.PriceGbp,
				s.PricePerKwh, s.PricePerMile, s.ValueScore, s.PerformanceScore,
				s.EfficiencyScore, s.ChargingScore, s.PricePerWeight)
		}
		query, args := ib.Build()
		if err := w.exec(ctx, "insert vehicle summaries", query, args...); err != nil {
			return err
		}
	}
	return nil
}

func (w *Warehouse) insertBrands(ctx context.Context, brands []*models.BrandSummary) error {
	if len(brands) == 0 {
		return nil
	}
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("gold.brand_summary")
	ib.Cols("brand_id", "manufacturer_name", "model_count",
		"avg_price_gbp", "avg_range_miles", "avg_battery_kwh",
		"avg_efficiency_whpm", "avg_zero_to_sixty_sec",
		"min_price_gbp", "max_price_gbp")
	for _, b := range brands {
		ib.Values(b.ID, b.ManufacturerName, b.ModelCount,
			b.AvgPriceGbp, b.AvgRangeMiles, b.AvgBatteryKwh,
			b.AvgEfficiencyWhpm, b.AvgZeroToSixtySec,
			b.MinPriceGbp, b.MaxPriceGbp)
	}
	query, args := ib.Build()
	return w.exec(ctx, "insert brand summaries", query, args...)
}

// CountGold returns the total stored gold row count across both tables.
func (w *Warehouse) CountGold(ctx context.Context) (int64, error) {
	var total int64
	for _, table := range []string{"gold.ev_summary", "gold.brand_summary"} {
		n, err := w.count(ctx, table)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
