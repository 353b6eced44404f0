package config

import (
	"path/filepath"
	"testing"
)

func TestLoaderDefaults(t *testing.T) {
	loader := &Loader{}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Library == nil || comp.Library.Len() == 0 {
		t.Error("Empty templates path should yield the built-in library")
	}
	if comp.Bundle == nil || comp.Bundle.DefaultLanguage() == "" {
		t.Error("Empty translations path should yield the built-in bundle")
	}
}

func TestLoaderReadsFiles(t *testing.T) {
	templates := writeFile(t, "templates.yaml", `
templates:
  - premises: ["all(x, y)", "all(y, z)"]
    correct: ["all(x, z)"]
`)
	translations := writeFile(t, "translations.yaml", `
default: en
languages:
  en:
    patterns:
      all: "All {subject} are {object}."
    vocabulary: [painters, musicians, gardeners]
`)

	loader := &Loader{TemplatesPath: templates, TranslationsPath: translations}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Library.Len() != 1 {
		t.Errorf("Library holds %d templates, want 1", comp.Library.Len())
	}
	if got := comp.Bundle.Languages(); len(got) != 1 || got[0] != "en" {
		t.Errorf("Languages = %v, want [en]", got)
	}
}

func TestLoaderPropagatesErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	if _, err := (&Loader{TemplatesPath: missing}).Load(); err == nil {
		t.Error("Load succeeded with a missing templates file")
	}
	if _, err := (&Loader{TranslationsPath: missing}).Load(); err == nil {
		t.Error("Load succeeded with a missing translations file")
	}
}
