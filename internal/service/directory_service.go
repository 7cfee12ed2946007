package service

import (
	"context"
	"time"

	"shopfront/internal/directory"
	"shopfront/internal/hours"
	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// directoryService implements DirectoryService. Open status is derived
// from the listing's schedule at the current instant in the listing's
// own timezone.
type directoryService struct {
	index  *directory.Index
	logger zerolog.Logger
	now    func() time.Time
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(index *directory.Index, logger zerolog.Logger) DirectoryService {
	return &directoryService{
		index:  index,
		logger: logger.With().Str("service", "directory").Logger(),
		now:    time.Now,
	}
}

// List returns listings, optionally filtered by category, each
// decorated with its current open status.
func (s *directoryService) List(ctx context.Context, category string) []model.BusinessWithStatus {
	businesses := s.index.List(category)

	result := make([]model.BusinessWithStatus, len(businesses))
	for i, b := range businesses {
		result[i] = s.withStatus(b)
	}

	s.logger.Debug().
		Str("category", category).
		Int("count", len(result)).
		Msg("listed businesses")

	return result
}

// Get returns one listing with its current open status.
func (s *directoryService) Get(ctx context.Context, id string) (*model.BusinessWithStatus, error) {
	b, ok := s.index.Get(id)
	if !ok {
		s.logger.Debug().Str("business_id", id).Msg("business not found")
		return nil, model.ErrBusinessNotFound
	}

	decorated := s.withStatus(b)
	return &decorated, nil
}

func (s *directoryService) withStatus(b model.Business) model.BusinessWithStatus {
	ref := s.now()
	if b.Timezone != "" {
		if loc, err := time.LoadLocation(b.Timezone); err == nil {
			ref = ref.In(loc)
		} else {
			s.logger.Warn().
				Str("business_id", b.ID).
				Str("timezone", b.Timezone).
				Msg("unknown timezone, using server local time")
		}
	}

	return model.BusinessWithStatus{
		Business: b,
		Status:   hours.Evaluate(b.Hours, ref),
	}
}
