// Package syllo generates syllogism quiz questions: two localized
// premise sentences over three randomly named terms, plus a
// multiple-choice answer set with correctness labels.
package syllo

import (
	"crypto/rand"
	"fmt"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/syllo/pkg/syllo/answers"
	"github.com/cognicore/syllo/pkg/syllo/i18n"
	"github.com/cognicore/syllo/pkg/syllo/inference"
	"github.com/cognicore/syllo/pkg/syllo/internalerr"
	"github.com/cognicore/syllo/pkg/syllo/logic"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

// DefaultMaxResample bounds the multi-answer rejection-sampling loop.
// Exhausting it means the library holds (almost) no template with a
// determinate conclusion, which is a configuration fault, not bad luck.
const DefaultMaxResample = 32

// Options configures an Engine. Zero values select the built-in
// library, the built-in bundle, a time-seeded random source and
// DefaultMaxResample.
type Options struct {
	Library     *template.Library
	Bundle      *i18n.Bundle
	Rand        answers.Rand
	MaxResample int
}

// Engine is the quiz generator facade. Its template library and
// translation bundle are immutable; every call draws a fresh term
// assignment and answer set.
type Engine struct {
	mu          sync.Mutex
	lib         *template.Library
	bundle      *i18n.Bundle
	rng         answers.Rand
	builder     *answers.Builder
	entropy     *ulid.MonotonicEntropy
	maxResample int
}

// New creates an Engine with the given dependencies.
func New(opts Options) (*Engine, error) {
	lib := opts.Library
	if lib == nil {
		lib = template.Builtin()
	}
	if lib.Len() == 0 {
		return nil, internalerr.ErrEmptyLibrary
	}

	bundle := opts.Bundle
	if bundle == nil {
		bundle = i18n.Default()
	}

	rng := opts.Rand
	if rng == nil {
		rng = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}

	maxResample := opts.MaxResample
	if maxResample <= 0 {
		maxResample = DefaultMaxResample
	}

	return &Engine{
		lib:         lib,
		bundle:      bundle,
		rng:         rng,
		builder:     answers.NewBuilder(rng),
		entropy:     ulid.Monotonic(rand.Reader, 0),
		maxResample: maxResample,
	}, nil
}

// Answer is one choice in a generated quiz.
type Answer struct {
	Sentence string `json:"sentence"`
	Correct  bool   `json:"correct"`
}

// Quiz is a generated quiz instance: the two premise sentences and the
// answer choices, in presentation order.
type Quiz struct {
	ID       string    `json:"id"`
	Lang     string    `json:"lang"`
	Premises [2]string `json:"premises"`
	Answers  []Answer  `json:"answers"`
}

// GenerateQuiz produces a single-answer quiz: five choices, one per
// quantifier kind on the chosen conclusion's variable pair, the
// indeterminate choice always last, exactly one correct.
func (e *Engine) GenerateQuiz(lang string) (Quiz, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	code, err := e.bundle.Resolve(lang)
	if err != nil {
		return Quiz{}, err
	}

	t := e.lib.At(e.rng.Intn(e.lib.Len()))
	render, err := e.renderer(code)
	if err != nil {
		return Quiz{}, err
	}

	return e.assemble(code, t, e.builder.Single(t, render), render), nil
}

// GenerateMultiQuiz produces a multi-answer quiz: up to six choices
// from the full candidate space, each labeled, at least one correct.
// Templates without a determinate canonical conclusion are rejected and
// resampled, up to the configured bound.
func (e *Engine) GenerateMultiQuiz(lang string) (Quiz, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	code, err := e.bundle.Resolve(lang)
	if err != nil {
		return Quiz{}, err
	}

	for try := 0; try < e.maxResample; try++ {
		t := e.lib.At(e.rng.Intn(e.lib.Len()))
		if !inference.Determinate(t) {
			continue
		}
		expansion := inference.Expand(t)

		render, err := e.renderer(code)
		if err != nil {
			return Quiz{}, err
		}
		return e.assemble(code, t, e.builder.Multi(t, expansion, render), render), nil
	}

	return Quiz{}, fmt.Errorf("no non-trivial template after %d draws: %w",
		e.maxResample, internalerr.ErrNoUsableTemplate)
}

// renderer binds a fresh variable→term assignment for one quiz and
// returns the sentence renderer over it.
func (e *Engine) renderer(code string) (answers.Renderer, error) {
	terms, err := i18n.AssignTerms(e.rng.Shuffle, e.bundle.Vocabulary(code))
	if err != nil {
		return nil, err
	}
	return func(st logic.Statement) string {
		pattern := e.bundle.Pattern(code, st.Kind)
		return i18n.Render(pattern, terms[st.Subject], terms[st.Object])
	}, nil
}

func (e *Engine) assemble(code string, t template.Template, set []answers.Answer, render answers.Renderer) Quiz {
	quiz := Quiz{
		ID:      ulid.MustNew(ulid.Now(), e.entropy).String(),
		Lang:    code,
		Answers: make([]Answer, len(set)),
	}
	for i, p := range t.Premises {
		quiz.Premises[i] = render(p)
	}
	for i, a := range set {
		quiz.Answers[i] = Answer{Sentence: a.Sentence, Correct: a.Correct}
	}
	return quiz
}
