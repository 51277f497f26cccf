package services

import (
	"sort"

	"ev-warehouse/models"
	"ev-warehouse/utils"
)

// Aggregator computes the gold layer: per-vehicle derived metrics and
// per-brand rollups over the joined silver model.
type Aggregator struct {
	logger *utils.Logger
}

// NewAggregator creates an Aggregator with the given logger.
func NewAggregator(logger *utils.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Summarize produces one VehicleSummary per joined silver row. Each derived
// metric is NULL unless every operand is present and positive; a zero or
// negative denominator never divides.
func (a *Aggregator) Summarize(inputs []*models.SummaryInput) []*models.VehicleSummary {
	summaries := make([]*models.VehicleSummary, 0, len(inputs))

	for _, in := range inputs {
		s := &models.VehicleSummary{
			ID:               int64(len(summaries) + 1),
			ManufacturerName: in.ManufacturerName,
			ModelName:        in.ModelName,
			Drivetrain:       in.Drivetrain,
			Class:            in.Class,
			Seat:             in.Seat,
			RangeMiles:       in.RangeMiles,
			BatteryKwh:       in.BatteryKwh,
			EfficiencyWhpm:   in.EfficiencyWhpm,
			ZeroToSixtySec:   in.ZeroToSixtySec,
			WeightKg:         in.WeightKg,
			RapidchargeKw:    in.RapidchargeKw,
			TowingKg:         in.TowingKg,
			BootSpaceLiters:  in.BootSpaceLiters,
			OneStopRange:     in.OneStopRange,
			PriceGbp:         in.PriceGbp,
		}

		price := floatOfInt(in.PriceGbp)
		rangeMiles := floatOfInt(in.RangeMiles)
		efficiency := floatOfInt(in.EfficiencyWhpm)
		weight := floatOfInt(in.WeightKg)
		rapidcharge := floatOfInt(in.RapidchargeKw)

		s.PricePerKwh = ratio(price, in.BatteryKwh, 2)
		s.PricePerMile = ratio(price, rangeMiles, 2)
		s.ValueScore = ratio(rangeMiles, price, 4)
		s.PerformanceScore = inverse(in.ZeroToSixtySec, 4)
		s.EfficiencyScore = inverse(efficiency, 4)
		s.ChargingScore = ratio(rapidcharge, in.BatteryKwh, 4)
		s.PricePerWeight = ratio(price, weight, 4)

		summaries = append(summaries, s)
	}

	a.logger.Info("[aggregator] derived metrics for %d vehicles", len(summaries))
	return summaries
}

// Rollup groups priced vehicle summaries by manufacturer name. Vehicles
// without a price are excluded from every brand aggregate; within the priced
// set, NULL inputs drop out of each average independently. Brands come back
// sorted by name so repeated runs produce identical output.
func (a *Aggregator) Rollup(summaries []*models.VehicleSummary) []*models.BrandSummary {
	grouped := make(map[string][]*models.VehicleSummary)
	for _, s := range summaries {
		if s.PriceGbp == nil {
			continue
		}
		grouped[s.ManufacturerName] = append(grouped[s.ManufacturerName], s)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	brands := make([]*models.BrandSummary, 0, len(names))
	for _, name := range names {
		rows := grouped[name]

		b := &models.BrandSummary{
			ID:               int64(len(brands) + 1),
			ManufacturerName: name,
			ModelCount:       int64(len(rows)),
		}

		var prices, ranges, batteries, efficiencies, zeroToSixties avgAccumulator
		for _, s := range rows {
			prices.addInt(s.PriceGbp)
			ranges.addInt(s.RangeMiles)
			batteries.add(s.BatteryKwh)
			efficiencies.addInt(s.EfficiencyWhpm)
			zeroToSixties.add(s.ZeroToSixtySec)

			if b.MinPriceGbp == nil || *s.PriceGbp < *b.MinPriceGbp {
				b.MinPriceGbp = s.PriceGbp
			}
			if b.MaxPriceGbp == nil || *s.PriceGbp > *b.MaxPriceGbp {
				b.MaxPriceGbp = s.PriceGbp
			}
		}

		b.AvgPriceGbp = prices.mean()
		b.AvgRangeMiles = ranges.mean()
		b.AvgBatteryKwh = batteries.mean()
		b.AvgEfficiencyWhpm = efficiencies.mean()
		b.AvgZeroToSixtySec = zeroToSixties.mean()

		brands = append(brands, b)
	}

	a.logger.Info("[aggregator] rolled up %d vehicle summaries into %d brands",
		len(summaries), len(brands))
	return brands
}

// ratio returns num/den rounded to places, or nil unless both operands are
// present and positive.
func ratio(num, den *float64, places int) *float64 {
	if num == nil || den == nil || *num <= 0 || *den <= 0 {
		return nil
	}
	val := roundTo(*num / *den, places)
	return &val
}

// inverse returns 1/val rounded to places, or nil unless val is positive.
func inverse(val *float64, places int) *float64 {
	if val == nil || *val <= 0 {
		return nil
	}
	result := roundTo(1 / *val, places)
	return &result
}

func floatOfInt(val *int64) *float64 {
	if val == nil {
		return nil
	}
	f := float64(*val)
	return &f
}

// avgAccumulator computes a NULL-skipping mean rounded to two places.
type avgAccumulator struct {
	sum   float64
	count int
}

func (a *avgAccumulator) add(val *float64) {
	if val == nil {
		return
	}
	a.sum += *val
	a.count++
}

func (a *avgAccumulator) addInt(val *int64) {
	if val == nil {
		return
	}
	a.sum += float64(*val)
	a.count++
}

func (a *avgAccumulator) mean() *float64 {
	if a.count == 0 {
		return nil
	}
	m := roundTo(a.sum/float64(a.count), 2)
	return &m
}
