// Package source provides recipe catalog loaders. The payload is a
// JSON array of recipe objects; both loaders share one decoder with
// the same tolerance rules.
package source

import (
	"bytes"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"

	"forgottenflavors/internal/domain"
)

// decodeRecipes parses a catalog payload. An empty or non-array (but
// well-formed) payload decodes to an empty catalog; malformed JSON is
// an error.
func decodeRecipes(data []byte) ([]domain.Recipe, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] != '[' {
		var probe any
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, fmt.Errorf("parsing catalog payload: %w", err)
		}
		return nil, nil
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("parsing catalog payload: %w", err)
	}

	for i := range recipes {
		sortSteps(recipes[i].Steps)
	}
	return recipes, nil
}

// sortSteps restores the significant step ordering. Stable, so equal
// orders keep their payload position.
func sortSteps(steps []domain.Step) {
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Order < steps[j].Order
	})
}
