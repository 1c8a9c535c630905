package catalog

import (
	"testing"

	"forgottenflavors/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func TestEstimateMinutes(t *testing.T) {
	tests := []struct {
		name   string
		steps  []domain.Step
		want   float64
		wantOK bool
	}{
		{
			name: "sums positive durations",
			steps: []domain.Step{
				{Order: 1, DurationMinutes: 5},
				{Order: 2, DurationMinutes: 10},
				{Order: 3, DurationMinutes: 85},
			},
			want:   100,
			wantOK: true,
		},
		{
			name: "ignores zero and negative durations",
			steps: []domain.Step{
				{Order: 1, DurationMinutes: 0},
				{Order: 2, DurationMinutes: -3},
				{Order: 3, DurationMinutes: 12},
			},
			want:   12,
			wantOK: true,
		},
		{
			name: "no usable durations",
			steps: []domain.Step{
				{Order: 1, DurationMinutes: 0},
				{Order: 2},
			},
			wantOK: false,
		},
		{
			name:   "no steps at all",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EstimateMinutes(domain.Recipe{Steps: tt.steps})
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("minutes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIngredientLine(t *testing.T) {
	tests := []struct {
		name string
		item domain.Ingredient
		want string
	}{
		{
			name: "full line",
			item: domain.Ingredient{Name: "Flour", Quantity: fptr(500), Unit: "g"},
			want: "Flour - 500 g",
		},
		{
			name: "optional without quantity or unit",
			item: domain.Ingredient{Name: "Salt", Optional: true},
			want: "Salt -  (optional)",
		},
		{
			name: "missing quantity keeps unit",
			item: domain.Ingredient{Name: "Pepper", Unit: "pinch"},
			want: "Pepper -  pinch",
		},
		{
			name: "missing unit omits segment",
			item: domain.Ingredient{Name: "Eggs", Quantity: fptr(2)},
			want: "Eggs - 2",
		},
		{
			name: "bare name",
			item: domain.Ingredient{Name: "Honey"},
			want: "Honey -",
		},
		{
			name: "fractional quantity",
			item: domain.Ingredient{Name: "Wine", Quantity: fptr(0.5), Unit: "cup"},
			want: "Wine - 0.5 cup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IngredientLine(tt.item); got != tt.want {
				t.Fatalf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKitItems(t *testing.T) {
	ingredients := []domain.Ingredient{
		{Name: "Lentils"}, {Name: "Garum"}, {Name: "Olive oil"}, {Name: "Coriander"}, {Name: "Vinegar"},
	}

	t.Run("commerce links take precedence", func(t *testing.T) {
		r := domain.Recipe{
			Ingredients: ingredients,
			Commerce:    domain.Commerce{IngredientLinks: []string{"Starter kit", "Spice pouch"}},
		}
		got := KitItems(r)
		if len(got) != 2 || got[0] != "Starter kit" || got[1] != "Spice pouch" {
			t.Fatalf("kit items = %v", got)
		}
	})

	t.Run("falls back to first four ingredients", func(t *testing.T) {
		got := KitItems(domain.Recipe{Ingredients: ingredients})
		want := []string{"Lentils", "Garum", "Olive oil", "Coriander"}
		if len(got) != len(want) {
			t.Fatalf("kit items = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("kit items = %v, want %v", got, want)
			}
		}
	})

	t.Run("empty recipe is not kit-ready", func(t *testing.T) {
		r := domain.Recipe{}
		if len(KitItems(r)) != 0 {
			t.Fatalf("expected no kit items")
		}
		if KitReady(r) {
			t.Fatal("expected not kit-ready")
		}
	})
}

func TestSubstitutions(t *testing.T) {
	r := domain.Recipe{
		Ingredients: []domain.Ingredient{
			{Name: "Garum", Substitutions: []string{"Fish sauce", "Soy sauce"}},
			{Name: "Honey", Substitutions: []string{"Date syrup", "Fish sauce", ""}},
		},
	}

	got := Substitutions(r)
	want := []string{"Fish sauce", "Soy sauce", "Date syrup"}
	if len(got) != len(want) {
		t.Fatalf("substitutions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("substitutions = %v, want %v", got, want)
		}
	}
}
