package storage

import (
	"context"

	"ev-warehouse/models"
)

// BronzeStore is the staging contract the intake loader writes through.
type BronzeStore interface {
	ResetBronze(ctx context.Context) error
	WriteStaged(ctx context.Context, rows []*models.StagedRow) (int64, error)
	CountStaged(ctx context.Context) (int64, error)
}

// SilverStore is the contract the normalizer reads and writes through.
type SilverStore interface {
	FetchStaged(ctx context.Context) ([]*models.StagedRow, error)
	ResetSilver(ctx context.Context) error
	WriteSilver(ctx context.Context, batch *models.SilverBatch) (int64, error)
	CountSilver(ctx context.Context) (int64, error)
}

// GoldStore is the contract the aggregator reads and writes through.
type GoldStore interface {
	FetchSummaryInputs(ctx context.Context) ([]*models.SummaryInput, error)
	ResetGold(ctx context.Context) error
	WriteGold(ctx context.Context, summaries []*models.VehicleSummary, brands []*models.BrandSummary) (int64, error)
	CountGold(ctx context.Context) (int64, error)
}

var (
	_ BronzeStore = (*Warehouse)(nil)
	_ SilverStore = (*Warehouse)(nil)
	_ GoldStore   = (*Warehouse)(nil)
)
