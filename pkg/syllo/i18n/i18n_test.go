package i18n

import (
	"errors"
	"testing"

	"github.com/cognicore/syllo/pkg/syllo/internalerr"
	"github.com/cognicore/syllo/pkg/syllo/logic"
)

func testTables() map[string]Table {
	return map[string]Table{
		"en": {
			Patterns: map[logic.Kind]string{
				logic.All:     "All {subject} are {object}.",
				logic.None:    "No {subject} are {object}.",
				logic.Some:    "Some {subject} are {object}.",
				logic.SomeNot: "Some {subject} are not {object}.",
				logic.Unknown: "Nothing follows about {subject} and {object}.",
			},
			Vocabulary: []string{"painters", "sailors", "bakers", "weavers"},
		},
		"de": {
			Patterns: map[logic.Kind]string{
				logic.All: "Alle {subject} sind {object}.",
			},
			Vocabulary: []string{"Maler", "Seeleute", "Weber"},
		},
	}
}

func mustBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := NewBundle("en", testTables())
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	return b
}

func TestNewBundleRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		def     string
		mutate  func(map[string]Table)
		wantErr error
	}{
		{
			name:    "missing default table",
			def:     "fr",
			mutate:  func(map[string]Table) {},
			wantErr: internalerr.ErrInvalidLanguage,
		},
		{
			name: "vocabulary too small",
			def:  "en",
			mutate: func(tables map[string]Table) {
				tbl := tables["de"]
				tbl.Vocabulary = []string{"Maler", "Weber"}
				tables["de"] = tbl
			},
			wantErr: internalerr.ErrMissingVocabulary,
		},
		{
			name: "blank vocabulary term",
			def:  "en",
			mutate: func(tables map[string]Table) {
				tbl := tables["en"]
				tbl.Vocabulary = []string{"painters", "  ", "bakers"}
				tables["en"] = tbl
			},
			wantErr: internalerr.ErrMissingVocabulary,
		},
		{
			name: "duplicate vocabulary term",
			def:  "en",
			mutate: func(tables map[string]Table) {
				tbl := tables["en"]
				tbl.Vocabulary = []string{"painters", "painters", "bakers"}
				tables["en"] = tbl
			},
			wantErr: internalerr.ErrMissingVocabulary,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tables := testTables()
			tc.mutate(tables)
			if _, err := NewBundle(tc.def, tables); !errors.Is(err, tc.wantErr) {
				t.Errorf("NewBundle error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	b := mustBundle(t)

	cases := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"de", "de"},
		{"en-US", "en"},
		{"de-AT", "de"},
	}
	for _, tc := range cases {
		got, err := b.Resolve(tc.in)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveRejectsUnknownLanguage(t *testing.T) {
	b := mustBundle(t)

	for _, lang := range []string{"zz", "not a tag", ""} {
		if _, err := b.Resolve(lang); !errors.Is(err, internalerr.ErrInvalidLanguage) {
			t.Errorf("Resolve(%q) error = %v, want ErrInvalidLanguage", lang, err)
		}
	}
}

func TestPatternFallbackChain(t *testing.T) {
	b := mustBundle(t)

	// Requested language has the pattern.
	if got := b.Pattern("de", logic.All); got != "Alle {subject} sind {object}." {
		t.Errorf("Pattern(de, all) = %q", got)
	}

	// Requested language lacks it; the default language fills in.
	if got := b.Pattern("de", logic.Some); got != "Some {subject} are {object}." {
		t.Errorf("Pattern(de, some) = %q", got)
	}

	// Neither language has it; the raw key is rendered.
	tables := testTables()
	delete(tables["en"].Patterns, logic.Unknown)
	stripped, err := NewBundle("en", tables)
	if err != nil {
		t.Fatalf("NewBundle: %v", err)
	}
	if got := stripped.Pattern("en", logic.Unknown); got != "syllo.pattern.unknown" {
		t.Errorf("Pattern(en, unknown) = %q, want the fallback key", got)
	}
}

func TestVocabularyFallsBackToDefault(t *testing.T) {
	b := mustBundle(t)

	if got := b.Vocabulary("de"); len(got) != 3 {
		t.Errorf("Vocabulary(de) has %d terms, want 3", len(got))
	}
	if got := b.Vocabulary("fr"); len(got) != 4 {
		t.Errorf("Vocabulary(fr) has %d terms, want the 4 default terms", len(got))
	}
}

func TestVocabularyIsACopy(t *testing.T) {
	b := mustBundle(t)

	vocab := b.Vocabulary("en")
	vocab[0] = "clobbered"
	if b.Vocabulary("en")[0] != "painters" {
		t.Error("Mutating the returned vocabulary leaked into the bundle")
	}
}

func TestLanguagesDefaultFirst(t *testing.T) {
	b := mustBundle(t)

	codes := b.Languages()
	if len(codes) != 2 || codes[0] != "en" || codes[1] != "de" {
		t.Errorf("Languages() = %v, want [en de]", codes)
	}
}

func TestAssignTerms(t *testing.T) {
	noShuffle := func(n int, swap func(i, j int)) {}

	terms, err := AssignTerms(noShuffle, []string{"painters", "sailors", "bakers", "weavers"})
	if err != nil {
		t.Fatalf("AssignTerms: %v", err)
	}
	want := map[logic.Variable]string{
		logic.X: "painters",
		logic.Y: "sailors",
		logic.Z: "bakers",
	}
	for v, term := range want {
		if terms[v] != term {
			t.Errorf("terms[%s] = %q, want %q", v, terms[v], term)
		}
	}
}

func TestAssignTermsRejectsShortVocabulary(t *testing.T) {
	noShuffle := func(n int, swap func(i, j int)) {}

	_, err := AssignTerms(noShuffle, []string{"painters", "sailors"})
	if !errors.Is(err, internalerr.ErrMissingVocabulary) {
		t.Errorf("AssignTerms error = %v, want ErrMissingVocabulary", err)
	}
}

func TestAssignTermsUsesShuffledOrder(t *testing.T) {
	reverse := func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	}

	terms, err := AssignTerms(reverse, []string{"painters", "sailors", "bakers", "weavers"})
	if err != nil {
		t.Fatalf("AssignTerms: %v", err)
	}
	if terms[logic.X] != "weavers" {
		t.Errorf("terms[x] = %q, want the shuffle applied", terms[logic.X])
	}
}

func TestRender(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"All {subject} are {object}.", "All painters are sailors."},
		{"{subject}/{object}/{subject}", "painters/sailors/{subject}"},
		{"no placeholders here", "no placeholders here"},
	}
	for _, tc := range cases {
		if got := Render(tc.pattern, "painters", "sailors"); got != tc.want {
			t.Errorf("Render(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestDefaultBundle(t *testing.T) {
	b := Default()

	if b.DefaultLanguage() != "en" {
		t.Fatalf("DefaultLanguage = %q, want en", b.DefaultLanguage())
	}
	for _, code := range b.Languages() {
		for _, k := range logic.Kinds() {
			p := b.Pattern(code, k)
			if p == FallbackKey(k) {
				t.Errorf("Language %q has no usable pattern for %s", code, k)
			}
		}
		if len(b.Vocabulary(code)) < MinVocabulary {
			t.Errorf("Language %q vocabulary below minimum", code)
		}
	}
}
