package services

import (
	"ev-warehouse/models"
	"ev-warehouse/utils"
)

// Normalizer derives the silver-layer dimensional model from one staged
// bronze batch: manufacturers, vehicles, and spec facts.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Build runs the full bronze→silver derivation over one staged batch.
//
// Surrogate ids are assigned in first-appearance order, so identical intake
// always produces an identical silver layer. Staged values were trimmed at
// write time, so company and model are matched exactly as stored.
func (n *Normalizer) Build(staged []*models.StagedRow) *models.SilverBatch {
	batch := &models.SilverBatch{}
	batch.Stats.StagedRows = len(staged)

	// Manufacturers: distinct non-null company values.
	byName := make(map[string]*models.Manufacturer)
	for _, row := range staged {
		if row.Company == nil {
			continue
		}
		if _, ok := byName[*row.Company]; ok {
			continue
		}
		m := &models.Manufacturer{
			ID:   int64(len(batch.Manufacturers) + 1),
			Name: *row.Company,
		}
		byName[m.Name] = m
		batch.Manufacturers = append(batch.Manufacturers, m)
	}

	// Vehicles: one per staged row that resolves its manufacturer. Rows that
	// fail the match are counted, not silently lost.
	byModel := make(map[string][]*models.Vehicle)
	for _, row := range staged {
		var m *models.Manufacturer
		if row.Company != nil {
			m = byName[*row.Company]
		}
		if m == nil {
			batch.Stats.UnmatchedCompany++
			n.logger.Debug("[normalizer] no manufacturer match, dropping row %d", row.ID)
			continue
		}

		v := &models.Vehicle{
			ID:             int64(len(batch.Vehicles) + 1),
			ManufacturerID: m.ID,
			ModelName:      row.Model,
			Drivetrain:     remapDrivetrain(row.Drivetrain),
			Class:          remapClass(row.Class),
			Seat:           parseInt(row.Seat),
		}
		batch.Vehicles = append(batch.Vehicles, v)
		if v.ModelName != nil {
			byModel[*v.ModelName] = append(byModel[*v.ModelName], v)
		}
	}

	// Spec facts: every staged row joined against every vehicle sharing its
	// model name. Shared model names fan out to one fact per match.
	for _, row := range staged {
		var matches []*models.Vehicle
		if row.Model != nil {
			matches = byModel[*row.Model]
		}
		if len(matches) == 0 {
			batch.Stats.UnmatchedModel++
			n.logger.Debug("[normalizer] no model match for staged row %d", row.ID)
			continue
		}

		for _, v := range matches {
			s := &models.SpecFact{
				ID:                int64(len(batch.Specs) + 1),
				VehicleID:         v.ID,
				RangeMiles:        parseInt(row.RangeRaw),
				EfficiencyWhpm:    parseInt(row.Efficiency),
				WeightKg:          parseInt(row.Weight),
				ZeroToSixtySec:    parseDecimal(row.ZeroToSixty),
				OneStopRangeMiles: parseInt(row.OneStopRange),
				BatteryKwh:        parseDecimal(row.Battery),
				RapidchargeKw:     parseInt(row.Rapidcharge),
				TowingKg:          parseInt(row.Towing),
				BootSpaceLiters:   parseInt(row.BootSpace),
				PricePerMile:      parseInt(row.PriceRange),
				PriceGbp:          parsePrice(row.PriceRaw),
			}
			batch.Specs = append(batch.Specs, s)
		}
	}

	n.logger.Info("[normalizer] %d staged rows → %d manufacturers, %d vehicles, %d specs (unmatched: %d company, %d model)",
		batch.Stats.StagedRows, len(batch.Manufacturers), len(batch.Vehicles),
		len(batch.Specs), batch.Stats.UnmatchedCompany, batch.Stats.UnmatchedModel)

	return batch
}
