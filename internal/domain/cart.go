package domain

// CartItem is one line in the shopping cart. Lines are keyed by the
// (recipe, item name) pair; adding the same pair again increments
// Quantity instead of creating a second line.
type CartItem struct {
	ID         string // "<recipeID>:<itemName>"
	RecipeID   ID
	RecipeName string // display only
	ItemName   string
	Quantity   int // always >= 1; a line that would drop to 0 is removed
	UnitPrice  float64
}

// Variation is a user-saved twist on a recipe. Variations live only for
// the current session and are never deleted.
type Variation struct {
	ID    string
	Name  string
	Notes string
}
