package view

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"recipebox/models"
)

// ListRecipes fills the optional recipe list with one link per summary, in
// the order given. href maps a slug to the link target.
func (p *Page) ListRecipes(summaries []models.Summary, href func(slug string) string) {
	if p.List == nil || p.List.Length() == 0 {
		return
	}
	p.List.Empty()
	for _, s := range summaries {
		title := s.Title
		if title == "" {
			title = s.Slug
		}
		a := &html.Node{
			Type:     html.ElementNode,
			Data:     "a",
			DataAtom: atom.A,
			Attr:     []html.Attribute{{Key: "href", Val: href(s.Slug)}},
		}
		a.AppendChild(&html.Node{Type: html.TextNode, Data: title})

		li := &html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li}
		li.AppendChild(a)
		p.List.AppendNodes(li)
	}
}
