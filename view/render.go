package view

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"recipebox/fraction"
	"recipebox/models"
)

// Render writes recipe into the detail containers. Lists are cleared and
// rebuilt, so rendering the same recipe twice leaves the same document.
func (p *Page) Render(recipe *models.Recipe) error {
	if p.Title == nil || p.Title.Length() == 0 {
		return &MissingElementError{ID: "title"}
	}
	p.Title.SetText(recipe.Title)

	setOptional(p.Source, "source: ", recipe.Source)
	setOptional(p.Description, "", recipe.Description)
	setOptional(p.Yield, "yield: ", recipe.Yield)
	setOptional(p.Notes, "", recipe.Notes)

	p.Ingredients.Empty()
	for _, ing := range recipe.Ingredients {
		p.Ingredients.AppendNodes(listItem(IngredientLine(ing)))
	}

	p.Steps.Empty()
	for _, step := range recipe.Steps {
		p.Steps.AppendNodes(listItem(step))
	}
	return nil
}

// IngredientLine formats an ingredient as "<amount> <unit> <name>[, <notes>]",
// leaving out empty tokens.
func IngredientLine(ing models.Ingredient) string {
	var amount string
	if ing.Amount != nil {
		amount = fraction.Format(*ing.Amount)
	}

	parts := make([]string, 0, 3)
	for _, s := range []string{amount, ing.Unit, ing.Name} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	line := strings.Join(parts, " ")
	if ing.Notes != "" {
		line += ", " + ing.Notes
	}
	return line
}

// setOptional fills an optional element, clearing it when value is empty so
// nothing from a previous render survives.
func setOptional(sel *goquery.Selection, prefix, value string) {
	if sel == nil || sel.Length() == 0 {
		return
	}
	if value == "" {
		sel.Empty()
		return
	}
	sel.SetText(prefix + value)
}

func listItem(text string) *html.Node {
	li := &html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li}
	li.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return li
}
