package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/syllo/pkg/syllo/i18n"
	"github.com/cognicore/syllo/pkg/syllo/logic"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

// TemplatesFile is the YAML shape of a template library file. Premises
// and conclusions use the compact textual statement form, e.g.
//
//	templates:
//	  - premises: ["all(x, y)", "all(y, z)"]
//	    correct: ["all(x, z)"]
type TemplatesFile struct {
	Templates []TemplateEntry `yaml:"templates"`
}

// TemplateEntry is one template row in a templates file.
type TemplateEntry struct {
	Premises [2]string `yaml:"premises"`
	Correct  []string  `yaml:"correct"`
}

// LoadTemplates loads and validates a template library from a YAML file.
func LoadTemplates(path string) (*template.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file TemplatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	templates := make([]template.Template, len(file.Templates))
	for i, entry := range file.Templates {
		t, err := decodeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		templates[i] = t
	}

	return template.NewLibrary(templates)
}

// SaveTemplates writes templates to a YAML file in the same shape
// LoadTemplates reads.
func SaveTemplates(path string, templates []template.Template) error {
	file := TemplatesFile{Templates: make([]TemplateEntry, len(templates))}
	for i, t := range templates {
		entry := TemplateEntry{
			Premises: [2]string{t.Premises[0].String(), t.Premises[1].String()},
			Correct:  make([]string, len(t.Correct)),
		}
		for j, c := range t.Correct {
			entry.Correct[j] = c.String()
		}
		file.Templates[i] = entry
	}

	buf, err := yaml.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

func decodeEntry(entry TemplateEntry) (template.Template, error) {
	var t template.Template
	for i, line := range entry.Premises {
		p, err := logic.Parse(line)
		if err != nil {
			return template.Template{}, err
		}
		t.Premises[i] = p
	}
	t.Correct = make([]logic.Statement, len(entry.Correct))
	for i, line := range entry.Correct {
		c, err := logic.Parse(line)
		if err != nil {
			return template.Template{}, err
		}
		t.Correct[i] = c
	}
	return t, nil
}

// TranslationsFile is the YAML shape of a translation bundle file:
//
//	default: en
//	languages:
//	  en:
//	    patterns:
//	      all: "All {subject} are {object}."
//	    vocabulary: [painters, musicians, gardeners]
type TranslationsFile struct {
	Default   string                     `yaml:"default"`
	Languages map[string]TranslationLang `yaml:"languages"`
}

// TranslationLang is one language block in a translations file.
type TranslationLang struct {
	Patterns   map[string]string `yaml:"patterns"`
	Vocabulary []string          `yaml:"vocabulary"`
}

// LoadTranslations loads and validates a translation bundle from a
// YAML file.
func LoadTranslations(path string) (*i18n.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file TranslationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	tables := make(map[string]i18n.Table, len(file.Languages))
	for code, lang := range file.Languages {
		patterns := make(map[logic.Kind]string, len(lang.Patterns))
		for name, pattern := range lang.Patterns {
			kind, err := logic.ParseKind(name)
			if err != nil {
				return nil, fmt.Errorf("language %q: %w", code, err)
			}
			patterns[kind] = pattern
		}
		tables[code] = i18n.Table{Patterns: patterns, Vocabulary: lang.Vocabulary}
	}

	return i18n.NewBundle(file.Default, tables)
}
