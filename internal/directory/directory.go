// Package directory serves the business-listing fixtures: loading them
// from a local file or S3 at startup and indexing them for lookup.
package directory

import (
	"context"

	"shopfront/internal/model"
)

// Loader reads a business-listing fixture file and returns its
// listings. The path is a file-system path for the local loader and an
// object key for the S3 loader.
type Loader interface {
	Load(ctx context.Context, path string) ([]model.Business, error)
}
