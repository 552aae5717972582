// Package store provides read access to recipe documents.
package store

import (
	"context"

	"recipebox/models"
)

// Store is a read-only source of recipes. Get returns an error wrapping
// models.ErrNotFound for unknown slugs. List is ordered by slug.
type Store interface {
	Get(ctx context.Context, slug string) (*models.Recipe, error)
	List(ctx context.Context) ([]models.Summary, error)
}
