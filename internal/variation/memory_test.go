package variation

import (
	"strings"
	"testing"

	"forgottenflavors/internal/logger"
)

func newTestStore() *Store {
	return NewStore(logger.New(logger.LevelOff, nil))
}

func TestSave(t *testing.T) {
	tests := []struct {
		testName  string
		name      string
		notes     string
		wantOK    bool
		wantName  string
		wantNotes string
	}{
		{"both fields", "Extra rosemary", "Doubled the herbs.", true, "Extra rosemary", "Doubled the herbs."},
		{"name only", "Extra rosemary", "   ", true, "Extra rosemary", "No notes provided."},
		{"notes only", "", "Doubled the herbs.", true, "Untitled variation", "Doubled the herbs."},
		{"whitespace is trimmed", "  Extra rosemary  ", " less salt ", true, "Extra rosemary", "less salt"},
		{"both blank is a no-op", "   ", "", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			s := newTestStore()
			v, ok := s.Save("bread", tt.name, tt.notes)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if len(s.ListFor("bread")) != 0 {
					t.Fatal("no-op save must not store anything")
				}
				return
			}
			if v.Name != tt.wantName || v.Notes != tt.wantNotes {
				t.Fatalf("saved %q/%q, want %q/%q", v.Name, v.Notes, tt.wantName, tt.wantNotes)
			}
			if !strings.HasPrefix(v.ID, "bread-") {
				t.Fatalf("id = %q, want recipe-prefixed", v.ID)
			}
		})
	}
}

func TestListFor(t *testing.T) {
	s := newTestStore()

	if got := s.ListFor("bread"); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}

	s.Save("bread", "First", "")
	s.Save("bread", "Second", "")
	s.Save("stew", "Other recipe", "")

	got := s.ListFor("bread")
	if len(got) != 2 {
		t.Fatalf("expected 2 variations, got %d", len(got))
	}
	if got[0].Name != "First" || got[1].Name != "Second" {
		t.Fatalf("insertion order lost: %+v", got)
	}

	if len(s.ListFor("stew")) != 1 {
		t.Fatal("variations leaked across recipes")
	}
}
