package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/syllo/pkg/syllo/internalerr"
	"github.com/cognicore/syllo/pkg/syllo/logic"
)

// MaxCorrect caps the canonical conclusion list of a template.
const MaxCorrect = 2

// Figure is the structural relation between the two premises of a
// template. Exactly one figure applies to a valid template.
type Figure int

const (
	// Chain: premise 1's object is premise 2's subject.
	Chain Figure = iota
	// CommonSubject: both premises share their subject.
	CommonSubject
	// CommonObject: both premises share their object.
	CommonObject
)

// String returns the figure name used in store rows and logs.
func (f Figure) String() string {
	switch f {
	case Chain:
		return "chain"
	case CommonSubject:
		return "common-subject"
	case CommonObject:
		return "common-object"
	}
	return fmt.Sprintf("figure(%d)", int(f))
}

// Template fixes two premises over the three variables and the canonical
// list of conclusions that follow from the premise pair. Conclusions
// derivable from a single premise by conversion are not listed here;
// the inference package adds those.
type Template struct {
	Premises [2]logic.Statement
	Correct  []logic.Statement
}

// Figure classifies the premise pair, or errors if the premises do not
// relate by exactly one of the three figures.
func (t Template) Figure() (Figure, error) {
	p1, p2 := t.Premises[0], t.Premises[1]

	var matches []Figure
	if p1.Object == p2.Subject {
		matches = append(matches, Chain)
	}
	if p1.Subject == p2.Subject {
		matches = append(matches, CommonSubject)
	}
	if p1.Object == p2.Object {
		matches = append(matches, CommonObject)
	}

	if len(matches) != 1 {
		return 0, fmt.Errorf("template %s: %d figure matches, want 1: %w",
			t, len(matches), internalerr.ErrInvalidTemplate)
	}
	return matches[0], nil
}

// Validate checks every structural invariant on the template.
func (t Template) Validate() error {
	for i, p := range t.Premises {
		if err := p.Check(true); err != nil {
			return fmt.Errorf("premise %d: %w", i+1, err)
		}
	}
	if len(t.Correct) == 0 {
		return fmt.Errorf("template %s: no conclusions: %w", t, internalerr.ErrInvalidTemplate)
	}
	if len(t.Correct) > MaxCorrect {
		return fmt.Errorf("template %s: %d conclusions, max %d: %w",
			t, len(t.Correct), MaxCorrect, internalerr.ErrInvalidTemplate)
	}

	if _, err := t.Figure(); err != nil {
		return err
	}

	vars := make(map[logic.Variable]bool, 3)
	for _, p := range t.Premises {
		vars[p.Subject] = true
		vars[p.Object] = true
	}

	for _, c := range t.Correct {
		if err := c.Check(false); err != nil {
			return fmt.Errorf("conclusion: %w", err)
		}
		if c.Equal(t.Premises[0]) || c.Equal(t.Premises[1]) {
			return fmt.Errorf("template %s: conclusion %s restates a premise: %w",
				t, c, internalerr.ErrInvalidTemplate)
		}
		if !vars[c.Subject] || !vars[c.Object] {
			return fmt.Errorf("template %s: conclusion %s uses a variable absent from the premises: %w",
				t, c, internalerr.ErrInvalidTemplate)
		}
	}
	return nil
}

// Key returns a normalized identity for duplicate detection: premises in
// given order plus the sorted conclusion set.
func (t Template) Key() string {
	conclusions := make([]string, len(t.Correct))
	for i, c := range t.Correct {
		conclusions[i] = c.String()
	}
	sort.Strings(conclusions)
	return t.Premises[0].String() + "|" + t.Premises[1].String() + "|" + strings.Join(conclusions, ";")
}

// String renders a compact one-line form for errors and logs.
func (t Template) String() string {
	parts := make([]string, len(t.Correct))
	for i, c := range t.Correct {
		parts[i] = c.String()
	}
	return fmt.Sprintf("[%s; %s => %s]", t.Premises[0], t.Premises[1], strings.Join(parts, ", "))
}

// Library is an immutable, validated collection of templates.
type Library struct {
	templates []Template
}

// NewLibrary validates each template, rejects duplicates by normalized
// key, and returns a read-only library. An empty input is an error: the
// engine cannot generate quizzes without templates.
func NewLibrary(templates []Template) (*Library, error) {
	if len(templates) == 0 {
		return nil, internalerr.ErrEmptyLibrary
	}

	seen := make(map[string]bool, len(templates))
	copied := make([]Template, len(templates))
	for i, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		key := t.Key()
		if seen[key] {
			return nil, fmt.Errorf("template %d duplicates %s: %w", i, t, internalerr.ErrInvalidTemplate)
		}
		seen[key] = true

		copied[i] = Template{
			Premises: t.Premises,
			Correct:  append([]logic.Statement(nil), t.Correct...),
		}
	}

	return &Library{templates: copied}, nil
}

// Len returns the number of templates.
func (l *Library) Len() int { return len(l.templates) }

// At returns the template at index i.
func (l *Library) At(i int) Template {
	t := l.templates[i]
	return Template{
		Premises: t.Premises,
		Correct:  append([]logic.Statement(nil), t.Correct...),
	}
}

// All returns a copy of every template.
func (l *Library) All() []Template {
	out := make([]Template, l.Len())
	for i := range l.templates {
		out[i] = l.At(i)
	}
	return out
}
