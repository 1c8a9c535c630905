// Package domain defines the core types for the recipe catalog.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"bytes"
	"math"
	"strconv"
)

// ID identifies a recipe. Catalog payloads carry it as either a string
// or a number, so it decodes tolerantly from both.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "null" {
		s = ""
	}
	*id = ID(s)
	return nil
}

// Minutes is a step duration in minutes. Payloads in the wild carry it
// as a number, a numeric string, or garbage; anything that is not a
// finite number decodes to zero and is ignored by time estimates.
type Minutes float64

// UnmarshalJSON accepts a JSON number or a quoted numeric string.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*m = 0
		return nil
	}
	*m = Minutes(v)
	return nil
}

// Recipe is a single catalog entry. Everything beyond ID and Name is
// optional in the payload and degrades to its zero value.
type Recipe struct {
	ID          ID           `json:"id"`
	Name        string       `json:"name"`
	Summary     string       `json:"summary"`
	Region      string       `json:"region"`
	Era         string       `json:"era"`
	Culture     string       `json:"culture"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	History     History      `json:"history"`
	Commerce    Commerce     `json:"commerce"`
}

// Ingredient is a single recipe ingredient. Quantity is a pointer so a
// missing quantity renders as absent rather than as zero.
type Ingredient struct {
	Name          string   `json:"name"`
	Quantity      *float64 `json:"quantity"`
	Unit          string   `json:"unit"`
	Optional      bool     `json:"optional"`
	Substitutions []string `json:"substitutions"`
}

// Step is a single cooking step. Order is significant and ascending.
type Step struct {
	Order           int      `json:"order"`
	Instruction     string   `json:"instruction"`
	DurationMinutes Minutes  `json:"durationMinutes"`
	TutorialTips    []string `json:"tutorialTips"`
}

// History holds the recipe's background notes.
type History struct {
	Context string   `json:"context"`
	Sources []string `json:"sources"`
}

// Commerce holds the recipe's shopping metadata. When IngredientLinks
// is non-empty it is the authoritative kit item list.
type Commerce struct {
	IngredientLinks []string `json:"ingredientLinks"`
}
