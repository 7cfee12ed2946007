package directory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// Index holds the loaded business listings for lookup. It is populated
// once at startup and read-only afterwards, so lookups need no lock.
type Index struct {
	businesses []model.Business
	byID       map[string]model.Business
	logger     zerolog.Logger
}

// NewIndex loads the fixture at path through the given loader and
// builds the listing index. Listings are sorted by name; duplicate IDs
// keep the first occurrence.
func NewIndex(ctx context.Context, path string, loader Loader, logger zerolog.Logger) (*Index, error) {
	logger = logger.With().Str("component", "directory-index").Logger()

	businesses, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory index: %w", err)
	}

	idx := &Index{
		businesses: make([]model.Business, 0, len(businesses)),
		byID:       make(map[string]model.Business, len(businesses)),
		logger:     logger,
	}

	for _, b := range businesses {
		if b.ID == "" {
			logger.Warn().Str("name", b.Name).Msg("skipping business with empty id")
			continue
		}
		if _, exists := idx.byID[b.ID]; exists {
			logger.Warn().Str("business_id", b.ID).Msg("skipping duplicate business id")
			continue
		}
		idx.byID[b.ID] = b
		idx.businesses = append(idx.businesses, b)
	}

	sort.Slice(idx.businesses, func(i, j int) bool {
		return idx.businesses[i].Name < idx.businesses[j].Name
	})

	logger.Info().Int("businesses", len(idx.businesses)).Msg("directory index built")

	return idx, nil
}

// List returns all listings, optionally filtered by category
// (case-insensitive). The returned slice is a copy.
func (i *Index) List(category string) []model.Business {
	result := make([]model.Business, 0, len(i.businesses))
	for _, b := range i.businesses {
		if category != "" && !strings.EqualFold(b.Category, category) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// Get returns the listing with the given id.
func (i *Index) Get(id string) (model.Business, bool) {
	b, ok := i.byID[id]
	return b, ok
}

// Size returns the number of indexed listings.
func (i *Index) Size() int {
	return len(i.businesses)
}
