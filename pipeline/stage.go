package pipeline

import (
	"context"
	"fmt"

	"ev-warehouse/utils"
)

// Stage is one batch transform run as reset → load → verify. Reset destroys
// the stage's previous output, Load writes the new output and reports how
// many rows it wrote, and Verify reads back the stored count. Every stage is
// a full refresh, so re-running one is always safe.
type Stage struct {
	Name   string
	Reset  func(ctx context.Context) error
	Load   func(ctx context.Context) (int64, error)
	Verify func(ctx context.Context) (int64, error)
}

// Run executes the stages strictly in order. The first failure aborts the
// run; earlier stages keep their committed output.
func Run(ctx context.Context, logger *utils.Logger, stages ...Stage) error {
	for _, stage := range stages {
		logger.Info("[pipeline] ── stage %s ──", stage.Name)

		if err := stage.Reset(ctx); err != nil {
			return fmt.Errorf("stage %s: reset: %w", stage.Name, err)
		}

		written, err := stage.Load(ctx)
		if err != nil {
			return fmt.Errorf("stage %s: load: %w", stage.Name, err)
		}

		stored, err := stage.Verify(ctx)
		if err != nil {
			return fmt.Errorf("stage %s: verify: %w", stage.Name, err)
		}
		if stored != written {
			return fmt.Errorf("stage %s: wrote %d rows but store holds %d", stage.Name, written, stored)
		}

		logger.Info("[pipeline] stage %s complete: %d rows", stage.Name, stored)
	}
	return nil
}
