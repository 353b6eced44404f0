package memstore

import (
	"context"
	"testing"

	"github.com/cognicore/syllo/pkg/syllo/logic"
	"github.com/cognicore/syllo/pkg/syllo/template"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := New()
	defer s.Close()

	ctx := context.Background()
	want := template.Builtin().All()

	if err := s.SaveTemplates(ctx, want); err != nil {
		t.Fatalf("SaveTemplates: %v", err)
	}
	got, err := s.LoadTemplates(ctx)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("Loaded %d templates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Key() != want[i].Key() {
			t.Errorf("Template %d: got %q, want %q", i, got[i].Key(), want[i].Key())
		}
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.SaveTemplates(ctx, template.Builtin().All()); err != nil {
		t.Fatalf("SaveTemplates: %v", err)
	}
	if err := s.SaveTemplates(ctx, nil); err != nil {
		t.Fatalf("SaveTemplates: %v", err)
	}

	got, err := s.LoadTemplates(ctx)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Loaded %d templates after clearing save, want 0", len(got))
	}
}

func TestLoadReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.SaveTemplates(ctx, template.Builtin().All()); err != nil {
		t.Fatalf("SaveTemplates: %v", err)
	}

	first, err := s.LoadTemplates(ctx)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	first[0].Correct[0] = logic.New(logic.Unknown, logic.X, logic.Y)

	second, err := s.LoadTemplates(ctx)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if second[0].Correct[0].Kind == logic.Unknown && second[0].Correct[0].Object == logic.Y {
		t.Error("Mutating a loaded template leaked into the store")
	}
}
