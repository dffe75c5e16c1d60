package usecase

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/errors"
	"agency/internal/util"
)

// ReportQuery holds the bounds applied by each inventory report query
type ReportQuery struct {
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	StreetName   string  `json:"street_name"`
	MinBedrooms  int     `json:"min_bedrooms"`
	MaxBedrooms  int     `json:"max_bedrooms"`
	PropertyType string  `json:"property_type"`
}

// Report is a snapshot of every agency query taken in one run
type Report struct {
	RunID        string
	GeneratedAt  time.Time
	AgencyName   string
	Query        ReportQuery
	TotalValue   float64
	WithPools    []*entity.Property
	InPriceRange []*entity.Property
	OnStreet     []entity.Address
	WithBedrooms map[string]*entity.Property
	OfType       []string
}

// InventoryReportUsecase defines the interface for reporting on an agency inventory
type InventoryReportUsecase interface {
	Generate(ctx context.Context, query *ReportQuery) (*Report, error)
}

// Render writes the report in a plain-text layout, one query per block.
func (r *Report) Render(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Agency: %s (run %s)\n", r.AgencyName, r.RunID)
	fmt.Fprintf(&sb, "Total property values: %s\n", util.FormatPrice(r.TotalValue))
	fmt.Fprintf(&sb, "Properties with swimming pools: %s\n", joinIDs(r.WithPools))
	fmt.Fprintf(&sb, "Properties between $%s and $%s: %s\n",
		util.FormatPrice(r.Query.MinPrice), util.FormatPrice(r.Query.MaxPrice), joinIDs(r.InPriceRange))

	fmt.Fprintf(&sb, "Properties on %s:", r.Query.StreetName)
	if len(r.OnStreet) == 0 {
		sb.WriteString(" none")
	}
	sb.WriteString("\n")
	for _, address := range r.OnStreet {
		fmt.Fprintf(&sb, "  %s\n", address)
	}

	bedroomIDs := slices.Sorted(maps.Keys(r.WithBedrooms))
	fmt.Fprintf(&sb, "Properties with %d to %d bedrooms: %s\n",
		r.Query.MinBedrooms, r.Query.MaxBedrooms, joinOrNone(bedroomIDs))

	fmt.Fprintf(&sb, "Properties of type '%s':", r.Query.PropertyType)
	if len(r.OfType) == 0 {
		sb.WriteString(" none")
	}
	sb.WriteString("\n")
	for _, summary := range r.OfType {
		fmt.Fprintf(&sb, "%s\n", summary)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write report")
	}

	return nil
}

func joinIDs(properties []*entity.Property) string {
	ids := make([]string, 0, len(properties))
	for _, property := range properties {
		ids = append(ids, property.ID())
	}

	return joinOrNone(ids)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}

	return strings.Join(values, ", ")
}
