// Package answers builds the multiple-choice answer sets for both quiz
// modes from a template and its entailment closure.
package answers

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/cognicore/syllo/pkg/syllo/logic"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

// MultiLimit caps the answer count of the multi-answer mode.
const MultiLimit = 6

// Rand is the randomness the builder consumes. *math/rand.Rand
// satisfies it; tests inject a deterministic implementation.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Renderer turns a statement into the localized sentence shown to the
// player. It must not fail; missing translation data renders a visible
// fallback string.
type Renderer func(logic.Statement) string

// Answer is one choice offered to the player.
type Answer struct {
	Statement logic.Statement
	Sentence  string
	Correct   bool
}

// Builder assembles answer sets. One builder serves both quiz modes.
type Builder struct {
	rng Rand
}

// NewBuilder returns a builder drawing from the given random source.
func NewBuilder(rng Rand) *Builder {
	return &Builder{rng: rng}
}

// Single builds the single-answer set: one candidate per quantifier
// kind, all on the subject/object pair of a randomly chosen canonical
// conclusion. The four determinate candidates are shuffled; the Unknown
// candidate always sits last so the "nothing follows" choice is where
// the player expects it. Exactly one answer is correct.
func (b *Builder) Single(t template.Template, render Renderer) []Answer {
	chosen := t.Correct[b.rng.Intn(len(t.Correct))]

	out := make([]Answer, 0, len(logic.Kinds()))
	for _, k := range logic.PremiseKinds() {
		st := logic.New(k, chosen.Subject, chosen.Object)
		out = append(out, Answer{
			Statement: st,
			Sentence:  render(st),
			Correct:   k == chosen.Kind,
		})
	}
	b.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	unknown := logic.New(logic.Unknown, chosen.Subject, chosen.Object)
	out = append(out, Answer{
		Statement: unknown,
		Sentence:  render(unknown),
		Correct:   chosen.Kind == logic.Unknown,
	})
	return out
}

// Multi builds the multi-answer set from the full candidate space:
// every determinate kind on every ordered variable pair, minus premise
// restatements. A candidate is correct when the expansion contains its
// triple, or — for Some only — its reversed triple; the symmetric
// reading is not extended to None. Candidates deduplicate by rendered
// sentence, are shuffled and truncated to MultiLimit; if truncation
// dropped every correct candidate, the last slot is replaced with a
// randomly chosen correct one and the set reshuffled.
func (b *Builder) Multi(t template.Template, expansion mapset.Set[logic.Statement], render Renderer) []Answer {
	premiseText := make(map[string]bool, len(t.Premises))
	for _, p := range t.Premises {
		premiseText[render(p)] = true
	}

	var candidates []Answer
	var correctPool []Answer
	seenText := make(map[string]bool)

	for _, k := range logic.PremiseKinds() {
		for _, subj := range logic.Variables() {
			for _, obj := range logic.Variables() {
				if subj == obj {
					continue
				}
				st := logic.New(k, subj, obj)
				if st.Equal(t.Premises[0]) || st.Equal(t.Premises[1]) {
					continue
				}

				sentence := render(st)
				if seenText[sentence] || premiseText[sentence] {
					continue
				}
				seenText[sentence] = true

				correct := expansion.Contains(st) ||
					(k == logic.Some && expansion.Contains(st.Reversed()))

				a := Answer{Statement: st, Sentence: sentence, Correct: correct}
				candidates = append(candidates, a)
				if correct {
					correctPool = append(correctPool, a)
				}
			}
		}
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > MultiLimit {
		candidates = candidates[:MultiLimit]
	}

	if len(correctPool) > 0 && !containsCorrect(candidates) {
		candidates[len(candidates)-1] = correctPool[b.rng.Intn(len(correctPool))]
		b.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}
	return candidates
}

func containsCorrect(answers []Answer) bool {
	for _, a := range answers {
		if a.Correct {
			return true
		}
	}
	return false
}
