// Package seed loads an agency inventory from a YAML document.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"os"

	"agency/config"
	"agency/internal/domain/entity"
	"agency/internal/errors"
	logs "agency/internal/infra/log"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

const embeddedSource = "embedded:default.yaml"

//go:embed default.yaml
var defaultInventory []byte

// LoaderParams defines the parameters required for the seed loader
type LoaderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Loader reads the configured seed file, or the embedded sample inventory when
// none is configured.
type Loader struct {
	seedFile   string
	agencyName string
	logger     *slog.Logger
}

// NewLoader creates a seed loader from configuration.
func NewLoader(params LoaderParams) *Loader {
	return &Loader{
		seedFile:   params.Config.Inventory.SeedFile,
		agencyName: params.Config.Agency.Name,
		logger:     params.Logger,
	}
}

// Load decodes the inventory and returns the populated agency.
func (l *Loader) Load(ctx context.Context) (*entity.Agency, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	data, source, err := l.read()
	if err != nil {
		return nil, err
	}

	inv, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", source)
	}

	agency, err := MapInventory(inv, l.agencyName)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", source)
	}

	logger := logs.LoggerOrDefault(ctx, l.logger)
	if replaced := len(inv.Properties) - agency.Len(); replaced > 0 {
		logger.Warn("Duplicate property IDs replaced earlier listings",
			slog.String("source", source),
			slog.Int("replaced", replaced),
		)
	}

	logger.Info("Inventory loaded",
		slog.String("source", source),
		slog.String("agency", agency.Name()),
		slog.Int("properties", agency.Len()),
	)

	return agency, nil
}

func (l *Loader) read() ([]byte, string, error) {
	if l.seedFile == "" {
		return defaultInventory, embeddedSource, nil
	}

	data, err := os.ReadFile(l.seedFile)
	if err != nil {
		return nil, l.seedFile, errors.Wrap(err, "read seed file")
	}

	return data, l.seedFile, nil
}

// Decode parses an inventory document. Unknown keys are rejected so typos in
// field names surface as errors instead of silently zeroed fields.
func Decode(data []byte) (Inventory, error) {
	var inv Inventory

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&inv); err != nil {
		return Inventory{}, errors.Wrap(err, "yaml decode")
	}

	return inv, nil
}
