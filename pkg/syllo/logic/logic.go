package logic

import (
	"fmt"
	"strings"
)

// Variable is one of the three symbolic slots a template quantifies over.
// Variables have identity only; a statement never relates a variable to itself.
type Variable int

const (
	X Variable = iota
	Y
	Z
)

var variableNames = [...]string{"x", "y", "z"}

// Variables lists all three slots in canonical order.
func Variables() [3]Variable { return [3]Variable{X, Y, Z} }

// String returns the lowercase slot name used in the textual statement form.
func (v Variable) String() string {
	if v < X || v > Z {
		return fmt.Sprintf("var(%d)", int(v))
	}
	return variableNames[v]
}

// ParseVariable parses a slot name ("x", "y", "z", case-insensitive).
func ParseVariable(s string) (Variable, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return 0, fmt.Errorf("unknown variable %q", s)
}

// Kind is a categorical quantifier. Unknown marks an indeterminate
// conclusion and never appears in a premise.
type Kind int

const (
	All Kind = iota
	None
	Some
	SomeNot
	Unknown
)

var kindNames = [...]string{"all", "none", "some", "some_not", "unknown"}

// PremiseKinds lists the kinds a premise may carry.
func PremiseKinds() [4]Kind { return [4]Kind{All, None, Some, SomeNot} }

// Kinds lists every quantifier kind, Unknown last.
func Kinds() [5]Kind { return [5]Kind{All, None, Some, SomeNot, Unknown} }

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if k < All || k > Unknown {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a canonical kind name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return All, nil
	case "none":
		return None, nil
	case "some":
		return Some, nil
	case "some_not":
		return SomeNot, nil
	case "unknown":
		return Unknown, nil
	}
	return 0, fmt.Errorf("unknown quantifier kind %q", s)
}

// Symmetric reports whether the kind keeps its truth value when subject
// and object are interchanged.
func (k Kind) Symmetric() bool {
	return k == Some || k == None
}

// Statement is a quantified relation between two distinct variables.
// The same triple shape serves premises and conclusions; premises
// additionally exclude the Unknown kind.
type Statement struct {
	Kind    Kind
	Subject Variable
	Object  Variable
}

// New builds a statement. It does not validate Subject != Object; use
// Check for that.
func New(k Kind, subj, obj Variable) Statement {
	return Statement{Kind: k, Subject: subj, Object: obj}
}

// Check validates the structural constraints on a statement.
func (s Statement) Check(premise bool) error {
	if s.Kind < All || s.Kind > Unknown {
		return fmt.Errorf("statement %s: invalid kind", s)
	}
	if premise && s.Kind == Unknown {
		return fmt.Errorf("statement %s: unknown is conclusion-only", s)
	}
	if s.Subject == s.Object {
		return fmt.Errorf("statement %s: reflexive", s)
	}
	if s.Subject < X || s.Subject > Z || s.Object < X || s.Object > Z {
		return fmt.Errorf("statement %s: variable out of range", s)
	}
	return nil
}

// Equal reports syntactic equality: kind, subject and object all match.
func (s Statement) Equal(o Statement) bool {
	return s == o
}

// Reversed returns the statement with subject and object interchanged.
// It says nothing about validity; see Converse.
func (s Statement) Reversed() Statement {
	return Statement{Kind: s.Kind, Subject: s.Object, Object: s.Subject}
}

// Converse returns the truth-preserving subject/object interchange, if
// the kind permits one. Only Some and None are symmetric; All and
// SomeNot have no valid converse.
func (s Statement) Converse() (Statement, bool) {
	if !s.Kind.Symmetric() {
		return Statement{}, false
	}
	return s.Reversed(), true
}

// Derivations returns the statements a single premise entails via the
// conversion rules:
//
//	all(a, b)      ⇒ some(a, b), some(b, a)
//	some(a, b)     ⇒ some(b, a)
//	none(a, b)     ⇒ none(b, a)
//	some_not(a, b) ⇒ nothing
//
// The all-rule assumes non-empty terms, which holds for every quiz
// vocabulary assignment.
func (s Statement) Derivations() []Statement {
	switch s.Kind {
	case All:
		return []Statement{
			{Kind: Some, Subject: s.Subject, Object: s.Object},
			{Kind: Some, Subject: s.Object, Object: s.Subject},
		}
	case Some, None:
		return []Statement{s.Reversed()}
	default:
		return nil
	}
}

// String renders the compact textual form, e.g. "all(x, y)".
func (s Statement) String() string {
	return fmt.Sprintf("%s(%s, %s)", s.Kind, s.Subject, s.Object)
}

// Parse parses the compact textual form produced by String.
func Parse(line string) (Statement, error) {
	openParen := strings.Index(line, "(")
	if openParen == -1 {
		return Statement{}, fmt.Errorf("missing '(': %s", line)
	}
	closeParen := strings.Index(line, ")")
	if closeParen == -1 || closeParen < openParen {
		return Statement{}, fmt.Errorf("missing ')': %s", line)
	}

	kind, err := ParseKind(line[:openParen])
	if err != nil {
		return Statement{}, err
	}

	parts := strings.Split(line[openParen+1:closeParen], ",")
	if len(parts) != 2 {
		return Statement{}, fmt.Errorf("expected 2 arguments, got %d: %s", len(parts), line)
	}
	subj, err := ParseVariable(parts[0])
	if err != nil {
		return Statement{}, err
	}
	obj, err := ParseVariable(parts[1])
	if err != nil {
		return Statement{}, err
	}

	return Statement{Kind: kind, Subject: subj, Object: obj}, nil
}
