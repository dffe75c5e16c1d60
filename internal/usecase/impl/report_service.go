package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"agency/internal/domain/entity"
	logs "agency/internal/infra/log"
	"agency/internal/usecase"
)

// ErrInvalidReportQuery is returned when the report bounds are missing or inverted
var ErrInvalidReportQuery = errors.New("invalid report query")

type reportService struct {
	agency *entity.Agency
	logger *slog.Logger
	now    func() time.Time
}

// NewReportService creates a new inventory report service instance
func NewReportService(agency *entity.Agency, logger *slog.Logger) usecase.InventoryReportUsecase {
	return &reportService{
		agency: agency,
		logger: logger,
		now:    time.Now,
	}
}

// Generate runs every agency query with the given bounds
func (s *reportService) Generate(ctx context.Context, query *usecase.ReportQuery) (*usecase.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("report canceled: %w", err)
	}

	if err := validateReportQuery(query); err != nil {
		return nil, err
	}

	runID := logs.RunIDFromContext(ctx)
	if runID == "" {
		runID = logs.NewRunID()
	}
	// a run-scoped logger from the caller already carries run_id
	logger := logs.LoggerFromContext(ctx)
	if logger == nil {
		logger = s.logger.With(slog.String("run_id", runID))
	}

	report := &usecase.Report{
		RunID:        runID,
		GeneratedAt:  s.now(),
		AgencyName:   s.agency.Name(),
		Query:        *query,
		TotalValue:   s.agency.TotalPropertyValues(),
		WithPools:    s.agency.PropertiesWithPools(),
		InPriceRange: s.agency.PropertiesBetween(query.MinPrice, query.MaxPrice),
		OnStreet:     s.agency.PropertiesOn(query.StreetName),
		WithBedrooms: s.agency.PropertiesWithBedrooms(query.MinBedrooms, query.MaxBedrooms),
		OfType:       s.agency.PropertiesOfType(query.PropertyType),
	}

	logger.Info("Inventory report generated",
		slog.String("agency", report.AgencyName),
		slog.Int("properties", s.agency.Len()),
		slog.Int("with_pools", len(report.WithPools)),
		slog.Int("in_price_range", len(report.InPriceRange)),
		slog.Int("on_street", len(report.OnStreet)),
		slog.Int("with_bedrooms", len(report.WithBedrooms)),
		slog.Int("of_type", len(report.OfType)),
	)

	return report, nil
}

// validateReportQuery rejects a nil query and inverted ranges
func validateReportQuery(query *usecase.ReportQuery) error {
	if query == nil {
		return fmt.Errorf("%w: query is required", ErrInvalidReportQuery)
	}
	if query.MinPrice > query.MaxPrice {
		return fmt.Errorf("%w: min price %v exceeds max price %v", ErrInvalidReportQuery, query.MinPrice, query.MaxPrice)
	}
	if query.MinBedrooms > query.MaxBedrooms {
		return fmt.Errorf("%w: min bedrooms %d exceeds max bedrooms %d", ErrInvalidReportQuery, query.MinBedrooms, query.MaxBedrooms)
	}

	return nil
}
