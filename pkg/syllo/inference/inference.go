// Package inference computes the entailment closure of a template: the
// canonical conclusions plus everything a single premise licenses via
// the conversion rules. Premise-pair inference is not performed here;
// the template library carries those conclusions as data.
package inference

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/cognicore/syllo/pkg/syllo/logic"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

// Expand returns the set of conclusions entailed by the template: the
// canonical correct list plus the per-premise derivations, deduplicated
// by (kind, subject, object).
func Expand(t template.Template) mapset.Set[logic.Statement] {
	closure := mapset.NewThreadUnsafeSet[logic.Statement]()

	for _, c := range t.Correct {
		closure.Add(c)
	}
	for _, p := range t.Premises {
		for _, d := range p.Derivations() {
			closure.Add(d)
		}
	}
	return closure
}

// PremiseKeys returns the premise triples as a set. Answer candidates
// matching a premise key are never offered.
func PremiseKeys(t template.Template) mapset.Set[logic.Statement] {
	keys := mapset.NewThreadUnsafeSet[logic.Statement]()
	for _, p := range t.Premises {
		keys.Add(p)
	}
	return keys
}

// Determinate reports whether the template's canonical conclusion list
// carries at least one non-Unknown conclusion. Multi-answer generation
// rejects indeterminate templates: their premise conversions still
// entail statements, but the quiz would have no premise-pair conclusion
// to ask about.
func Determinate(t template.Template) bool {
	return NonTrivial(mapset.NewThreadUnsafeSet[logic.Statement](t.Correct...))
}

// NonTrivial reports whether the expansion carries at least one
// determinate conclusion. Templates failing this are rejected by the
// multi-answer mode and resampled.
func NonTrivial(expansion mapset.Set[logic.Statement]) bool {
	if expansion.IsEmpty() {
		return false
	}
	nonTrivial := false
	expansion.Each(func(s logic.Statement) bool {
		if s.Kind != logic.Unknown {
			nonTrivial = true
			return true // stop iteration
		}
		return false
	})
	return nonTrivial
}
