// Package navbar builds the site navigation bar: a home link with a profile
// picture and a two-part wordmark.
package navbar

import (
	"errors"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	ErrNoNav     = errors.New("navbar: no #nav found on this page")
	ErrNavNotDiv = errors.New("navbar: #nav found, but it's not a div")
)

type Options struct {
	HomeURL        string
	Image          string
	ImageAlt       string
	WordmarkAccent string
	Wordmark       string
}

func DefaultOptions() Options {
	return Options{
		HomeURL:        "https://tripnaught.github.io/",
		Image:          "/images/profile-pic.png",
		ImageAlt:       "tripnaught profile picture",
		WordmarkAccent: "trip",
		Wordmark:       "naught",
	}
}

// Build appends the navigation link to #nav. Calling it again adds a second
// link; callers build once per document.
func Build(doc *goquery.Document, opts Options) error {
	nav := doc.Find("#nav").First()
	if nav.Length() == 0 {
		return ErrNoNav
	}
	if nav.Nodes[0].DataAtom != atom.Div {
		return ErrNavNotDiv
	}

	a := element(atom.A, "href", opts.HomeURL)

	a.AppendChild(element(atom.Img, "src", opts.Image, "alt", opts.ImageAlt, "id", "pfp"))

	mark := element(atom.Mark, "class", "outline-accent")
	mark.AppendChild(text(opts.WordmarkAccent))
	accent := element(atom.Span)
	accent.AppendChild(mark)
	a.AppendChild(accent)

	rest := element(atom.Span, "class", "outline-white")
	rest.AppendChild(text(opts.Wordmark))
	a.AppendChild(rest)

	nav.AppendNodes(a)
	return nil
}

func element(tag atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag.String(), DataAtom: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
