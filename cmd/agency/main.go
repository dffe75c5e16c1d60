package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"agency/config"
	"agency/internal/domain/entity"
	logs "agency/internal/infra/log"
	"agency/internal/infra/seed"
	"agency/internal/usecase"
	"agency/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		injectInfra(),
		injectDomain(),
		injectUsecase(),
		fx.Invoke(
			printReport,
		),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to generate inventory report", slog.Any("error", err))
		os.Exit(1)
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		seed.NewLoader,
		func() io.Writer { return os.Stdout },
	)
}

func injectDomain() fx.Option {
	return fx.Provide(
		newAgency,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReportService,
		),
	)
}

// newAgency loads the configured inventory into a fresh agency
func newAgency(ctx context.Context, loader *seed.Loader) (*entity.Agency, error) {
	return loader.Load(ctx)
}

// newReportQuery maps the report configuration onto the usecase query
func newReportQuery(cfg *config.Config) *usecase.ReportQuery {
	return &usecase.ReportQuery{
		MinPrice:     cfg.Report.MinPrice,
		MaxPrice:     cfg.Report.MaxPrice,
		StreetName:   cfg.Report.StreetName,
		MinBedrooms:  cfg.Report.MinBedrooms,
		MaxBedrooms:  cfg.Report.MaxBedrooms,
		PropertyType: cfg.Report.PropertyType,
	}
}

func printReport(ctx context.Context, cfg *config.Config, logger *slog.Logger, reporter usecase.InventoryReportUsecase, out io.Writer) error {
	runID := logs.NewRunID()
	ctx = logs.WithRunID(ctx, runID)
	ctx = logs.WithLogger(ctx, logger.With(slog.String("run_id", runID)))

	report, err := reporter.Generate(ctx, newReportQuery(cfg))
	if err != nil {
		return err
	}

	return report.Render(out)
}
