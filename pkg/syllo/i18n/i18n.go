// Package i18n holds the localized sentence patterns and vocabulary used
// to turn abstract statements into quiz text. Lookup degrades through
// the default language down to a visible raw key; generation never
// fails on incomplete translation data.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/cognicore/syllo/pkg/syllo/internalerr"
	"github.com/cognicore/syllo/pkg/syllo/logic"
)

// Placeholders substituted by Render. Only the first occurrence of each
// is replaced.
const (
	SubjectPlaceholder = "{subject}"
	ObjectPlaceholder  = "{object}"
)

// MinVocabulary is the smallest vocabulary a table may carry: one term
// per variable.
const MinVocabulary = 3

// Table is the translation data for one language.
type Table struct {
	Patterns   map[logic.Kind]string
	Vocabulary []string
}

// Bundle is an immutable set of translation tables keyed by language
// code, with BCP 47 matching against the configured codes.
type Bundle struct {
	defaultCode string
	tables      map[string]Table
	codes       []string
	matcher     language.Matcher
}

// NewBundle validates the tables and builds the language matcher. The
// default language must be present; every table needs at least
// MinVocabulary distinct, non-empty terms.
func NewBundle(defaultCode string, tables map[string]Table) (*Bundle, error) {
	if _, ok := tables[defaultCode]; !ok {
		return nil, fmt.Errorf("default language %q has no table: %w",
			defaultCode, internalerr.ErrInvalidLanguage)
	}

	for code, table := range tables {
		if err := checkVocabulary(table.Vocabulary); err != nil {
			return nil, fmt.Errorf("language %q: %w", code, err)
		}
	}

	// The default language leads so the matcher falls back to it.
	codes := make([]string, 0, len(tables))
	codes = append(codes, defaultCode)
	for code := range tables {
		if code != defaultCode {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes[1:])

	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", code, err)
		}
		tags[i] = tag
	}

	copied := make(map[string]Table, len(tables))
	for code, table := range tables {
		copied[code] = copyTable(table)
	}

	return &Bundle{
		defaultCode: defaultCode,
		tables:      copied,
		codes:       codes,
		matcher:     language.NewMatcher(tags),
	}, nil
}

func checkVocabulary(vocab []string) error {
	if len(vocab) < MinVocabulary {
		return fmt.Errorf("%d terms, need %d: %w",
			len(vocab), MinVocabulary, internalerr.ErrMissingVocabulary)
	}
	seen := make(map[string]bool, len(vocab))
	for _, term := range vocab {
		if strings.TrimSpace(term) == "" {
			return fmt.Errorf("empty vocabulary term: %w", internalerr.ErrMissingVocabulary)
		}
		if seen[term] {
			return fmt.Errorf("duplicate vocabulary term %q: %w", term, internalerr.ErrMissingVocabulary)
		}
		seen[term] = true
	}
	return nil
}

func copyTable(t Table) Table {
	patterns := make(map[logic.Kind]string, len(t.Patterns))
	for k, p := range t.Patterns {
		patterns[k] = p
	}
	return Table{
		Patterns:   patterns,
		Vocabulary: append([]string(nil), t.Vocabulary...),
	}
}

// DefaultLanguage returns the configured fallback language code.
func (b *Bundle) DefaultLanguage() string { return b.defaultCode }

// Languages returns the configured language codes, default first.
func (b *Bundle) Languages() []string {
	return append([]string(nil), b.codes...)
}

// Resolve maps a requested language to a configured code, accepting
// regional variants of configured languages ("en-US" resolves to "en").
// An unrecognized code is a validation error.
func (b *Bundle) Resolve(lang string) (string, error) {
	if _, ok := b.tables[lang]; ok {
		return lang, nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("language %q: %w", lang, internalerr.ErrInvalidLanguage)
	}
	_, index, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("language %q: %w", lang, internalerr.ErrInvalidLanguage)
	}
	return b.codes[index], nil
}

// FallbackKey is the visible stand-in rendered when no pattern exists
// for a kind in either the requested or the default language.
func FallbackKey(k logic.Kind) string {
	return "syllo.pattern." + k.String()
}

// Pattern returns the sentence pattern for the kind in the given
// resolved language, degrading to the default language and finally to
// the raw lookup key. It never fails.
func (b *Bundle) Pattern(code string, k logic.Kind) string {
	if p, ok := b.tables[code].Patterns[k]; ok && p != "" {
		return p
	}
	if p, ok := b.tables[b.defaultCode].Patterns[k]; ok && p != "" {
		return p
	}
	return FallbackKey(k)
}

// Vocabulary returns the term pool for the resolved language, falling
// back to the default language.
func (b *Bundle) Vocabulary(code string) []string {
	if t, ok := b.tables[code]; ok {
		return append([]string(nil), t.Vocabulary...)
	}
	return append([]string(nil), b.tables[b.defaultCode].Vocabulary...)
}

// AssignTerms shuffles the vocabulary with the caller's shuffle function
// and binds the first three terms to X, Y and Z. Distinct terms are
// guaranteed by bundle validation.
func AssignTerms(shuffle func(n int, swap func(i, j int)), vocab []string) (map[logic.Variable]string, error) {
	if len(vocab) < MinVocabulary {
		return nil, fmt.Errorf("%d terms, need %d: %w",
			len(vocab), MinVocabulary, internalerr.ErrMissingVocabulary)
	}
	pool := append([]string(nil), vocab...)
	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	vars := logic.Variables()
	terms := make(map[logic.Variable]string, len(vars))
	for i, v := range vars {
		terms[v] = pool[i]
	}
	return terms, nil
}

// Render fills the first subject and first object placeholder of the
// pattern. A pattern lacking a placeholder is returned as-is beyond the
// substitutions that do apply.
func Render(pattern, subject, object string) string {
	out := strings.Replace(pattern, SubjectPlaceholder, subject, 1)
	return strings.Replace(out, ObjectPlaceholder, object, 1)
}
