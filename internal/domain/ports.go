package domain

import "context"

// RecipeSource loads the recipe catalog. Implementations can fetch over
// HTTP, read a local file, or serve fixtures in tests. The catalog is
// loaded exactly once at startup; there is no retry.
type RecipeSource interface {
	Load(ctx context.Context) ([]Recipe, error)
}
