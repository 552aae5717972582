// Package view binds the recipe page template and mutates it: rendering a
// recipe into the detail containers and toggling between the index and
// detail views.
package view

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// IDs names the template elements the page is bound to.
type IDs struct {
	Index       string
	Detail      string
	List        string
	Title       string
	Source      string
	Description string
	Yield       string
	Ingredients string
	Steps       string
	Notes       string
}

func DefaultIDs() IDs {
	return IDs{
		Index:       "recipe-links",
		Detail:      "recipe",
		List:        "recipe-list",
		Title:       "title",
		Source:      "source",
		Description: "description",
		Yield:       "yield",
		Ingredients: "ingredients",
		Steps:       "steps",
		Notes:       "notes",
	}
}

// MissingElementError reports a required template element that could not be
// found. It means the page itself is broken.
type MissingElementError struct {
	ID string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("view: missing template element #%s", e.ID)
}

// Page holds the resolved element handles of one template document.
// Optional handles may be empty selections.
type Page struct {
	Doc *goquery.Document

	Index       *goquery.Selection
	Detail      *goquery.Selection
	List        *goquery.Selection
	Title       *goquery.Selection
	Source      *goquery.Selection
	Description *goquery.Selection
	Yield       *goquery.Selection
	Ingredients *goquery.Selection
	Steps       *goquery.Selection
	Notes       *goquery.Selection
}

// Bind resolves every handle in doc. Index, detail, title, ingredients and
// steps are required.
func Bind(doc *goquery.Document, ids IDs) (*Page, error) {
	p := &Page{
		Doc:         doc,
		Index:       byID(doc, ids.Index),
		Detail:      byID(doc, ids.Detail),
		List:        byID(doc, ids.List),
		Title:       byID(doc, ids.Title),
		Source:      byID(doc, ids.Source),
		Description: byID(doc, ids.Description),
		Yield:       byID(doc, ids.Yield),
		Ingredients: byID(doc, ids.Ingredients),
		Steps:       byID(doc, ids.Steps),
		Notes:       byID(doc, ids.Notes),
	}

	required := []struct {
		id  string
		sel *goquery.Selection
	}{
		{ids.Index, p.Index},
		{ids.Detail, p.Detail},
		{ids.Title, p.Title},
		{ids.Ingredients, p.Ingredients},
		{ids.Steps, p.Steps},
	}
	for _, r := range required {
		if r.sel.Length() == 0 {
			return nil, &MissingElementError{ID: r.id}
		}
	}
	return p, nil
}

// HTML serializes the whole document.
func (p *Page) HTML() (string, error) {
	return p.Doc.Html()
}

func byID(doc *goquery.Document, id string) *goquery.Selection {
	if id == "" {
		return doc.FindNodes()
	}
	return doc.Find(fmt.Sprintf("[id=%q]", id)).First()
}
