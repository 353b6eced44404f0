// Package store abstracts template library persistence. The engine only
// ever reads a library once at startup; Save exists for the seed tool.
package store

import (
	"context"

	"github.com/cognicore/syllo/pkg/syllo/template"
)

// Store persists and loads quiz templates.
type Store interface {
	Close() error

	// SaveTemplates replaces the stored library with the given templates.
	SaveTemplates(ctx context.Context, templates []template.Template) error

	// LoadTemplates returns every stored template.
	LoadTemplates(ctx context.Context) ([]template.Template, error)
}
