package config

import (
	"fmt"

	"github.com/cognicore/syllo/pkg/syllo/i18n"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

// Loader loads all configuration files and constructs components.
// Empty paths fall back to the built-in library and bundle.
type Loader struct {
	TemplatesPath    string
	TranslationsPath string
}

// Components holds the loaded engine components.
type Components struct {
	Library *template.Library
	Bundle  *i18n.Bundle
}

// Load reads the configuration files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.TemplatesPath != "" {
		lib, err := LoadTemplates(l.TemplatesPath)
		if err != nil {
			return nil, fmt.Errorf("load templates: %w", err)
		}
		comp.Library = lib
	} else {
		comp.Library = template.Builtin()
	}

	if l.TranslationsPath != "" {
		bundle, err := LoadTranslations(l.TranslationsPath)
		if err != nil {
			return nil, fmt.Errorf("load translations: %w", err)
		}
		comp.Bundle = bundle
	} else {
		comp.Bundle = i18n.Default()
	}

	return comp, nil
}
