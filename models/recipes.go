package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNotFound is returned when no recipe exists for a slug.
	ErrNotFound = errors.New("recipe not found")
	// ErrInvalidRecipe is returned when a recipe document is missing required fields.
	ErrInvalidRecipe = errors.New("invalid recipe")
)

type Recipe struct {
	Slug        string       `json:"slug" firestore:"slug"`
	Title       string       `json:"title" firestore:"title"`
	Source      string       `json:"source,omitempty" firestore:"source"`
	Description string       `json:"description,omitempty" firestore:"description"`
	Yield       string       `json:"yield,omitempty" firestore:"yield"`
	Notes       string       `json:"notes,omitempty" firestore:"notes"`
	Ingredients []Ingredient `json:"ingredients" firestore:"ingredients"`
	Steps       []string     `json:"steps" firestore:"steps"`
}

// Ingredient is a single line of a recipe's ingredient list. A nil Amount
// means the quantity was left out ("salt, to taste").
type Ingredient struct {
	Amount *float64 `json:"amount,omitempty" firestore:"amount"`
	Unit   string   `json:"unit,omitempty" firestore:"unit"`
	Name   string   `json:"name" firestore:"name"`
	Notes  string   `json:"notes,omitempty" firestore:"notes"`
}

// Summary is the listing entry for a recipe on the index view.
type Summary struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (r *Recipe) Summary() Summary {
	return Summary{Slug: r.Slug, Title: r.Title, Description: r.Description}
}

// Validate checks the fields the renderer depends on and normalizes nil
// slices to empty ones.
func (r *Recipe) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidRecipe)
	}
	for i, ing := range r.Ingredients {
		if ing.Name == "" {
			return fmt.Errorf("%w: ingredient %d has no name", ErrInvalidRecipe, i+1)
		}
	}

	// Ensure slices are not nil
	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
	return nil
}

// Decode parses a recipe JSON document and validates it.
func Decode(r io.Reader) (*Recipe, error) {
	var recipe Recipe
	if err := json.NewDecoder(r).Decode(&recipe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	return &recipe, nil
}
