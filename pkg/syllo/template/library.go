package template

import (
	"fmt"

	"github.com/cognicore/syllo/pkg/syllo/logic"
)

type builtinRow struct {
	premise1 string
	premise2 string
	correct  []string
}

// builtinRows is the full built-in library in compact textual form: two
// premises and the canonical conclusions for each premise pair. Three
// figures, 16 premise-kind combinations each. Conclusions assume
// non-empty terms, which every vocabulary assignment satisfies.
// Premise pairs from which nothing follows conclude unknown, both ways.
var builtinRows = []builtinRow{
	// Chain figure: q1(x, y), q2(y, z).
	{"all(x, y)", "all(y, z)", []string{"all(x, z)"}},
	{"all(x, y)", "none(y, z)", []string{"none(x, z)", "none(z, x)"}},
	{"all(x, y)", "some(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"all(x, y)", "some_not(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"none(x, y)", "all(y, z)", []string{"some_not(z, x)"}},
	{"none(x, y)", "none(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"none(x, y)", "some(y, z)", []string{"some_not(z, x)"}},
	{"none(x, y)", "some_not(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some(x, y)", "all(y, z)", []string{"some(x, z)", "some(z, x)"}},
	{"some(x, y)", "none(y, z)", []string{"some_not(x, z)"}},
	{"some(x, y)", "some(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some(x, y)", "some_not(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(x, y)", "all(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(x, y)", "none(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(x, y)", "some(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(x, y)", "some_not(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},

	// Common-subject figure: q1(y, x), q2(y, z).
	{"all(y, x)", "all(y, z)", []string{"some(x, z)", "some(z, x)"}},
	{"all(y, x)", "none(y, z)", []string{"some_not(x, z)"}},
	{"all(y, x)", "some(y, z)", []string{"some(x, z)", "some(z, x)"}},
	{"all(y, x)", "some_not(y, z)", []string{"some_not(x, z)"}},
	{"none(y, x)", "all(y, z)", []string{"some_not(z, x)"}},
	{"none(y, x)", "none(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"none(y, x)", "some(y, z)", []string{"some_not(z, x)"}},
	{"none(y, x)", "some_not(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some(y, x)", "all(y, z)", []string{"some(x, z)", "some(z, x)"}},
	{"some(y, x)", "none(y, z)", []string{"some_not(x, z)"}},
	{"some(y, x)", "some(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some(y, x)", "some_not(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(y, x)", "all(y, z)", []string{"some_not(z, x)"}},
	{"some_not(y, x)", "none(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(y, x)", "some(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(y, x)", "some_not(y, z)", []string{"unknown(x, z)", "unknown(z, x)"}},

	// Common-object figure: q1(x, y), q2(z, y).
	{"all(x, y)", "all(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"all(x, y)", "none(z, y)", []string{"none(x, z)", "none(z, x)"}},
	{"all(x, y)", "some(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"all(x, y)", "some_not(z, y)", []string{"some_not(z, x)"}},
	{"none(x, y)", "all(z, y)", []string{"none(x, z)", "none(z, x)"}},
	{"none(x, y)", "none(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"none(x, y)", "some(z, y)", []string{"some_not(z, x)"}},
	{"none(x, y)", "some_not(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some(x, y)", "all(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some(x, y)", "none(z, y)", []string{"some_not(x, z)"}},
	{"some(x, y)", "some(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some(x, y)", "some_not(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(x, y)", "all(z, y)", []string{"some_not(x, z)"}},
	{"some_not(x, y)", "none(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(x, y)", "some(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
	{"some_not(x, y)", "some_not(z, y)", []string{"unknown(x, z)", "unknown(z, x)"}},
}

// Builtin returns the built-in 48-template library. It panics on a
// malformed row, which can only happen through an edit to builtinRows.
func Builtin() *Library {
	templates := make([]Template, 0, len(builtinRows))
	for _, row := range builtinRows {
		t, err := parseRow(row)
		if err != nil {
			panic(fmt.Sprintf("template: builtin row %s; %s: %v", row.premise1, row.premise2, err))
		}
		templates = append(templates, t)
	}

	lib, err := NewLibrary(templates)
	if err != nil {
		panic(fmt.Sprintf("template: builtin library: %v", err))
	}
	return lib
}

func parseRow(row builtinRow) (Template, error) {
	p1, err := logic.Parse(row.premise1)
	if err != nil {
		return Template{}, err
	}
	p2, err := logic.Parse(row.premise2)
	if err != nil {
		return Template{}, err
	}

	lines := row.correct
	correct := make([]logic.Statement, len(lines))
	for i, line := range lines {
		c, err := logic.Parse(line)
		if err != nil {
			return Template{}, err
		}
		correct[i] = c
	}

	return Template{Premises: [2]logic.Statement{p1, p2}, Correct: correct}, nil
}
