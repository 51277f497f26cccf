package models

// IntakeRow holds one unprocessed vehicle record exactly as it arrives from
// the extraction front end. All sixteen fields are free text.
type IntakeRow struct {
	Company      string
	Model        string
	Drivetrain   string
	Class        string
	Seat         string
	PriceRaw     string
	RangeRaw     string
	Efficiency   string
	Weight       string
	ZeroToSixty  string
	OneStopRange string
	Battery      string
	Rapidcharge  string
	Towing       string
	BootSpace    string
	PriceRange   string
}

// StagedRow is the bronze-layer record: every field trimmed at write time,
// empty-after-trim stored as NULL. The stored company and model values are
// the canonical join keys for all later matching.
type StagedRow struct {
	ID           int64   `db:"id"`
	Company      *string `db:"company"`
	Model        *string `db:"model"`
	Drivetrain   *string `db:"drivetrain"`
	Class        *string `db:"class"`
	Seat         *string `db:"seat"`
	PriceRaw     *string `db:"price_raw"`
	RangeRaw     *string `db:"range_raw"`
	Efficiency   *string `db:"efficiency"`
	Weight       *string `db:"weight"`
	ZeroToSixty  *string `db:"zero_to_sixty"`
	OneStopRange *string `db:"one_stop_range"`
	Battery      *string `db:"battery"`
	Rapidcharge  *string `db:"rapidcharge"`
	Towing       *string `db:"towing"`
	BootSpace    *string `db:"boot_space"`
	PriceRange   *string `db:"price_range"`
}

// Manufacturer is the silver-layer brand dimension. Names are unique.
type Manufacturer struct {
	ID   int64  `db:"manufacturer_id"`
	Name string `db:"manufacturer_name"`
}

// Vehicle is the silver-layer vehicle dimension with canonicalized
// drivetrain and class values.
type Vehicle struct {
	ID             int64   `db:"vehicle_id"`
	ManufacturerID int64   `db:"manufacturer_id"`
	ModelName      *string `db:"model_name"`
	Drivetrain     *string `db:"drivetrain"`
	Class          *string `db:"class"`
	Seat           *int64  `db:"seat"`
}

// SpecFact is the silver-layer measurement fact. Every numeric field is
// nullable: source text with no parseable digits stores NULL.
type SpecFact struct {
	ID                int64    `db:"spec_id"`
	VehicleID         int64    `db:"vehicle_id"`
	RangeMiles        *int64   `db:"range_miles"`
	EfficiencyWhpm    *int64   `db:"efficiency_whpm"`
	WeightKg          *int64   `db:"weight_kg"`
	ZeroToSixtySec    *float64 `db:"zero_to_sixty_sec"`
	OneStopRangeMiles *int64   `db:"one_stop_range_miles"`
	BatteryKwh        *float64 `db:"battery_kwh"`
	RapidchargeKw     *int64   `db:"rapidcharge_kw"`
	TowingKg          *int64   `db:"towing_kg"`
	BootSpaceLiters   *int64   `db:"boot_space_liters"`
	PricePerMile      *int64   `db:"price_per_mile"`
	PriceGbp          *int64   `db:"price_gbp"`
}

// SilverBatch holds one full silver-layer derivation plus the join-loss
// counters for the run.
type SilverBatch struct {
	Manufacturers []*Manufacturer
	Vehicles      []*Vehicle
	Specs         []*SpecFact
	Stats         NormalizeStats
}

// NormalizeStats surfaces how many staged rows failed each textual match so
// data loss is observable rather than silent.
type NormalizeStats struct {
	StagedRows       int
	UnmatchedCompany int
	UnmatchedModel   int
}

// SummaryInput is one Manufacturer ⨝ Vehicle ⨝ SpecFact row fetched from the
// silver layer for metric derivation.
type SummaryInput struct {
	ManufacturerName string   `db:"manufacturer_name"`
	ModelName        *string  `db:"model_name"`
	Drivetrain       *string  `db:"drivetrain"`
	Class            *string  `db:"class"`
	Seat             *int64   `db:"seat"`
	RangeMiles       *int64   `db:"range_miles"`
	BatteryKwh       *float64 `db:"battery_kwh"`
	EfficiencyWhpm   *int64   `db:"efficiency_whpm"`
	ZeroToSixtySec   *float64 `db:"zero_to_sixty_sec"`
	WeightKg         *int64   `db:"weight_kg"`
	RapidchargeKw    *int64   `db:"rapidcharge_kw"`
	TowingKg         *int64   `db:"towing_kg"`
	BootSpaceLiters  *int64   `db:"boot_space_liters"`
	OneStopRange     *int64   `db:"one_stop_range_miles"`
	PriceGbp         *int64   `db:"price_gbp"`
}

// VehicleSummary is the gold-layer per-vehicle record: all joined attributes
// plus the seven derived metrics. A metric is NULL whenever its denominator
// is NULL, zero, or negative.
type VehicleSummary struct {
	ID               int64    `db:"ev_id"`
	ManufacturerName string   `db:"manufacturer_name"`
	ModelName        *string  `db:"model_name"`
	Drivetrain       *string  `db:"drivetrain"`
	Class            *string  `db:"class"`
	Seat             *int64   `db:"seat"`
	RangeMiles       *int64   `db:"range_miles"`
	BatteryKwh       *float64 `db:"battery_kwh"`
	EfficiencyWhpm   *int64   `db:"efficiency_whpm"`
	ZeroToSixtySec   *float64 `db:"zero_to_sixty_sec"`
	WeightKg         *int64   `db:"weight_kg"`
	RapidchargeKw    *int64   `db:"rapidcharge_kw"`
	TowingKg         *int64   `db:"towing_kg"`
	BootSpaceLiters  *int64   `db:"boot_space_liters"`
	OneStopRange     *int64   `db:"one_stop_range_miles"`
	PriceGbp         *int64   `db:"price_gbp"`

	PricePerKwh      *float64 `db:"price_per_kwh"`
	PricePerMile     *float64 `db:"price_per_mile"`
	ValueScore       *float64 `db:"value_score"`
	PerformanceScore *float64 `db:"performance_score"`
	EfficiencyScore  *float64 `db:"efficiency_score"`
	ChargingScore    *float64 `db:"charging_score"`
	PricePerWeight   *float64 `db:"price_per_weight"`
}

// BrandSummary is the gold-layer per-manufacturer rollup, computed only over
// VehicleSummary rows with a non-NULL price.
type BrandSummary struct {
	ID                int64    `db:"brand_id"`
	ManufacturerName  string   `db:"manufacturer_name"`
	ModelCount        int64    `db:"model_count"`
	AvgPriceGbp       *float64 `db:"avg_price_gbp"`
	AvgRangeMiles     *float64 `db:"avg_range_miles"`
	AvgBatteryKwh     *float64 `db:"avg_battery_kwh"`
	AvgEfficiencyWhpm *float64 `db:"avg_efficiency_whpm"`
	AvgZeroToSixtySec *float64 `db:"avg_zero_to_sixty_sec"`
	MinPriceGbp       *int64   `db:"min_price_gbp"`
	MaxPriceGbp       *int64   `db:"max_price_gbp"`
}
