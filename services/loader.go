package services

import (
	"strings"

	"ev-warehouse/models"
	"ev-warehouse/utils"
)

// Loader normalizes one intake batch into staged bronze rows.
type Loader struct {
	logger *utils.Logger
}

// NewLoader creates a Loader with the given logger.
func NewLoader(logger *utils.Logger) *Loader {
	return &Loader{logger: logger}
}

// Stage trims every field of every intake row and converts empty-after-trim
// values to NULL. No row is ever dropped here; staging preserves the batch
// exactly, one staged row per intake row.
func (l *Loader) Stage(rows []*models.IntakeRow) []*models.StagedRow {
	staged := make([]*models.StagedRow, 0, len(rows))

	for i, r := range rows {
		staged = append(staged, &models.StagedRow{
			ID:           int64(i + 1),
			Company:      nullable(r.Company),
			Model:        nullable(r.Model),
			Drivetrain:   nullable(r.Drivetrain),
			Class:        nullable(r.Class),
			Seat:         nullable(r.Seat),
			PriceRaw:     nullable(r.PriceRaw),
			RangeRaw:     nullable(r.RangeRaw),
			Efficiency:   nullable(r.Efficiency),
			Weight:       nullable(r.Weight),
			ZeroToSixty:  nullable(r.ZeroToSixty),
			OneStopRange: nullable(r.OneStopRange),
			Battery:      nullable(r.Battery),
			Rapidcharge:  nullable(r.Rapidcharge),
			Towing:       nullable(r.Towing),
			BootSpace:    nullable(r.BootSpace),
			PriceRange:   nullable(r.PriceRange),
		})
	}

	l.logger.Info("[loader] staged %d intake rows", len(staged))
	return staged
}

// nullable trims a raw value; empty-after-trim becomes NULL.
func nullable(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
