package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"forgottenflavors/internal/logger"
)

func TestDecodeRecipes(t *testing.T) {
	t.Run("array payload", func(t *testing.T) {
		recipes, err := decodeRecipes([]byte(`[
			{"id": "bread", "name": "Hearth Bread", "culture": "Italian"},
			{"id": 7, "name": "Garum Lentils"}
		]`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(recipes) != 2 {
			t.Fatalf("expected 2 recipes, got %d", len(recipes))
		}
		if recipes[0].ID != "bread" {
			t.Fatalf("id = %q", recipes[0].ID)
		}
		// Numeric IDs decode to their digit string.
		if recipes[1].ID != "7" {
			t.Fatalf("numeric id = %q", recipes[1].ID)
		}
	})

	t.Run("steps are reordered by order field", func(t *testing.T) {
		recipes, err := decodeRecipes([]byte(`[{
			"id": "r", "name": "R",
			"steps": [
				{"order": 3, "instruction": "third"},
				{"order": 1, "instruction": "first"},
				{"order": 2, "instruction": "second"}
			]
		}]`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		steps := recipes[0].Steps
		if steps[0].Instruction != "first" || steps[2].Instruction != "third" {
			t.Fatalf("steps out of order: %+v", steps)
		}
	})

	t.Run("duration variants", func(t *testing.T) {
		recipes, err := decodeRecipes([]byte(`[{
			"id": "r", "name": "R",
			"steps": [
				{"order": 1, "durationMinutes": 5},
				{"order": 2, "durationMinutes": "10"},
				{"order": 3, "durationMinutes": "soon"},
				{"order": 4, "durationMinutes": null}
			]
		}]`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		steps := recipes[0].Steps
		if steps[0].DurationMinutes != 5 || steps[1].DurationMinutes != 10 {
			t.Fatalf("durations = %+v", steps)
		}
		if steps[2].DurationMinutes != 0 || steps[3].DurationMinutes != 0 {
			t.Fatalf("junk durations should decode to 0: %+v", steps)
		}
	})

	t.Run("non-array payload is an empty catalog", func(t *testing.T) {
		for _, payload := range []string{``, `null`, `{"recipes": []}`, `"nope"`} {
			recipes, err := decodeRecipes([]byte(payload))
			if err != nil {
				t.Fatalf("payload %q: %v", payload, err)
			}
			if len(recipes) != 0 {
				t.Fatalf("payload %q: expected empty catalog, got %d", payload, len(recipes))
			}
		}
	})

	t.Run("malformed payload is an error", func(t *testing.T) {
		for _, payload := range []string{`[{]`, `{broken`, `[1, 2`} {
			if _, err := decodeRecipes([]byte(payload)); err == nil {
				t.Fatalf("payload %q: expected error", payload)
			}
		}
	})

	t.Run("missing optional fields degrade", func(t *testing.T) {
		recipes, err := decodeRecipes([]byte(`[{"id": "bare", "name": "Bare"}]`))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		r := recipes[0]
		if r.Summary != "" || len(r.Ingredients) != 0 || len(r.Steps) != 0 {
			t.Fatalf("expected zero values, got %+v", r)
		}
		if r.History.Context != "" || len(r.Commerce.IngredientLinks) != 0 {
			t.Fatalf("expected empty history/commerce, got %+v", r)
		}
	})
}

func TestHTTPLoad(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": "a", "name": "A"}]`))
		}))
		defer srv.Close()

		recipes, err := NewHTTP(srv.URL, log).Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(recipes) != 1 || recipes[0].Name != "A" {
			t.Fatalf("recipes = %+v", recipes)
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		if _, err := NewHTTP(srv.URL, log).Load(ctx); err == nil {
			t.Fatal("expected error on 404")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":`))
		}))
		defer srv.Close()

		if _, err := NewHTTP(srv.URL, log).Load(ctx); err == nil {
			t.Fatal("expected error on malformed body")
		}
	})
}

func TestFileLoad(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "recipes.json")
		if err := os.WriteFile(path, []byte(`[{"id": "a", "name": "A"}]`), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		recipes, err := NewFile(path, log).Load(ctx)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(recipes) != 1 {
			t.Fatalf("expected 1 recipe, got %d", len(recipes))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := NewFile(filepath.Join(t.TempDir(), "nope.json"), log).Load(ctx); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
