package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ev-warehouse/config"
	"ev-warehouse/models"
	"ev-warehouse/pipeline"
	"ev-warehouse/services"
	"ev-warehouse/storage"
	"ev-warehouse/utils"
)

func main() {
	logger := utils.NewLogger()

	stageName := "all"
	if len(os.Args) > 1 {
		stageName = os.Args[1]
	}
	switch stageName {
	case "bronze", "silver", "gold", "all":
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [bronze|silver|gold|all]\n", os.Args[0])
		os.Exit(2)
	}

	if err := run(stageName, logger); err != nil {
		logger.Error("Pipeline failed: %v", err)
		os.Exit(1)
	}
}

// run executes the requested stages. The store handle is scoped here so the
// deferred Close runs on every exit path, success or failure.
func run(stageName string, logger *utils.Logger) error {
	cfg := config.Load()
	ctx := context.Background()

	logger.Info("=== EV Warehouse pipeline starting (%s) ===", stageName)

	wh, err := storage.Open(cfg.DSN(), cfg.MaxRetries, logger)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer wh.Close()

	var stages []pipeline.Stage

	if stageName == "bronze" || stageName == "all" {
		// Read and validate the intake batch up front: a missing column must
		// abort before the previous bronze snapshot is touched.
		intake, err := storage.ReadIntake(cfg.IntakeCSVPath)
		if err != nil {
			return fmt.Errorf("intake validation: %w", err)
		}
		logger.Info("Intake batch: %d rows from %s", len(intake), cfg.IntakeCSVPath)

		staged := services.NewLoader(logger).Stage(intake)
		stages = append(stages, pipeline.Stage{
			Name:  "bronze",
			Reset: wh.ResetBronze,
			Load: func(ctx context.Context) (int64, error) {
				return wh.WriteStaged(ctx, staged)
			},
			Verify: wh.CountStaged,
		})
	}

	if stageName == "silver" || stageName == "all" {
		stages = append(stages, pipeline.Stage{
			Name:  "silver",
			Reset: wh.ResetSilver,
			Load: func(ctx context.Context) (int64, error) {
				stagedRows, err := wh.FetchStaged(ctx)
				if err != nil {
					return 0, err
				}
				batch := services.NewNormalizer(logger).Build(stagedRows)
				return wh.WriteSilver(ctx, batch)
			},
			Verify: wh.CountSilver,
		})
	}

	if stageName == "gold" || stageName == "all" {
		stages = append(stages, pipeline.Stage{
			Name:  "gold",
			Reset: wh.ResetGold,
			Load: func(ctx context.Context) (int64, error) {
				inputs, err := wh.FetchSummaryInputs(ctx)
				if err != nil {
					return 0, err
				}
				agg := services.NewAggregator(logger)
				summaries := agg.Summarize(inputs)
				brands := agg.Rollup(summaries)
				return wh.WriteGold(ctx, summaries, brands)
			},
			Verify: wh.CountGold,
		})
	}

	if err := pipeline.Run(ctx, logger, stages...); err != nil {
		var stmtErr *models.StatementError
		if errors.As(err, &stmtErr) {
			logger.Error("Failing step: %s", stmtErr.Step)
		}
		return err
	}

	fmt.Printf("  Done. Warehouse refreshed through the %s stage(s).\n\n", stageName)
	return nil
}
