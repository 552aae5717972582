// Package pages assembles a complete HTML page for a URL: template, navbar,
// index listing, and the router's index or detail view.
package pages

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"recipebox/navbar"
	"recipebox/router"
	"recipebox/store"
	"recipebox/view"
)

type Builder struct {
	Template   []byte
	IDs        view.IDs
	Store      store.Store
	Addressing router.Addressing
	// Nav is nil when the template has no navigation bar.
	Nav    *navbar.Options
	Logger *zap.Logger
}

type Result struct {
	HTML  string
	State router.State
	// Slug is the identifier the URL asked for, empty for the index.
	Slug string
}

// NotFound reports whether a recipe was asked for but the index was shown.
func (r *Result) NotFound() bool {
	return r.Slug != "" && r.State == router.Index
}

// Render builds the page for u from a fresh copy of the template.
func (b *Builder) Render(ctx context.Context, u *url.URL) (*Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b.Template))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	page, err := view.Bind(doc, b.IDs)
	if err != nil {
		return nil, err
	}

	if b.Nav != nil {
		if err := navbar.Build(doc, *b.Nav); err != nil {
			return nil, err
		}
	}

	summaries, err := b.Store.List(ctx)
	if err != nil {
		logger.Warn("recipe listing unavailable", zap.Error(err))
	}
	page.ListRecipes(summaries, b.Addressing.Href)

	rt := router.New(page, router.LoaderFunc(b.Store.Get),
		router.WithAddressing(b.Addressing),
		router.WithLogger(logger),
	)
	state, err := rt.Route(ctx, u)
	if err != nil {
		return nil, err
	}

	out, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("serialize page: %w", err)
	}
	return &Result{HTML: out, State: state, Slug: b.Addressing.Slug(u)}, nil
}
