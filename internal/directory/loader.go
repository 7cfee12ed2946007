package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading business fixtures from the
// local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based fixture loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "directory-loader").Logger(),
	}
}

// Load reads a JSON fixture file containing an array of businesses.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.Business, error) {
	l.logger.Info().Str("file", path).Msg("loading business fixtures")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open fixture file")
		return nil, fmt.Errorf("failed to open fixture file %s: %w", path, err)
	}
	defer file.Close()

	var businesses []model.Business
	if err := json.NewDecoder(file).Decode(&businesses); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode fixture file")
		return nil, fmt.Errorf("failed to decode fixture file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("businesses_loaded", len(businesses)).
		Msg("business fixtures loaded")

	return businesses, nil
}
