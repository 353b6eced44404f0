package memstore

import (
	"context"
	"sync"

	"github.com/cognicore/syllo/pkg/syllo/logic"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu        sync.RWMutex
	templates []template.Template
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveTemplates replaces the stored library.
func (s *Store) SaveTemplates(ctx context.Context, templates []template.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates = make([]template.Template, len(templates))
	for i, t := range templates {
		s.templates[i] = copyTemplate(t)
	}
	return nil
}

// LoadTemplates returns every stored template.
func (s *Store) LoadTemplates(ctx context.Context) ([]template.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]template.Template, len(s.templates))
	for i, t := range s.templates {
		out[i] = copyTemplate(t)
	}
	return out, nil
}

func copyTemplate(t template.Template) template.Template {
	return template.Template{
		Premises: t.Premises,
		Correct:  append([]logic.Statement(nil), t.Correct...),
	}
}
