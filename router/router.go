// Package router decides between the index and detail views for a URL,
// loads the addressed recipe and drives the page renderer.
package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"recipebox/models"
	"recipebox/view"
)

// State is the view the page is showing.
type State int

const (
	Index State = iota
	Detail
)

func (s State) String() string {
	if s == Detail {
		return "detail"
	}
	return "index"
}

// Router owns one page. Route may be called from several goroutines; page
// mutations are serialized and a load that finishes after a newer
// navigation started is dropped.
type Router struct {
	page       *view.Page
	loader     Loader
	addressing Addressing
	logger     *zap.Logger

	seq   atomic.Uint64
	mu    sync.Mutex
	state State
}

type Option func(*Router)

func WithAddressing(a Addressing) Option {
	return func(r *Router) { r.addressing = a }
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func New(page *view.Page, loader Loader, opts ...Option) *Router {
	r := &Router{
		page:       page,
		loader:     loader,
		addressing: Path,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Addressing returns the scheme the router reads slugs with.
func (r *Router) Addressing() Addressing { return r.addressing }

// State returns the view currently shown.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Route shows the view addressed by u. Recipes that cannot be loaded fall
// back to the index and are only logged; the returned error is reserved for
// a broken page template.
func (r *Router) Route(ctx context.Context, u *url.URL) (State, error) {
	seq := r.seq.Add(1)
	slug := r.addressing.Slug(u)

	if slug == "" {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.showIndex()
		return r.state, nil
	}

	recipe, err := r.loader.Load(ctx, slug)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq.Load() {
		r.logger.Debug("discarding superseded navigation",
			zap.String("slug", slug), zap.Uint64("seq", seq))
		return r.state, nil
	}

	if err != nil {
		r.logFailure(slug, err)
		r.showIndex()
		return r.state, nil
	}

	if err := r.page.Render(recipe); err != nil {
		return r.state, fmt.Errorf("render %q: %w", slug, err)
	}
	r.page.ShowDetail()
	r.state = Detail
	r.logger.Debug("rendered recipe", zap.String("slug", slug))
	return r.state, nil
}

// Navigate routes to a location string such as "/recipes/pancakes" or
// "#pancakes".
func (r *Router) Navigate(ctx context.Context, location string) (State, error) {
	u, err := url.Parse(location)
	if err != nil {
		r.logger.Warn("unparseable location", zap.String("location", location), zap.Error(err))
		u = &url.URL{}
	}
	return r.Route(ctx, u)
}

// Back clears the identifier and returns to the index.
func (r *Router) Back(ctx context.Context) (State, error) {
	return r.Route(ctx, &url.URL{})
}

func (r *Router) showIndex() {
	r.page.ShowIndex()
	r.state = Index
}

func (r *Router) logFailure(slug string, err error) {
	reason := "load failed"
	switch {
	case errors.Is(err, models.ErrNotFound):
		reason = "not found"
	case errors.Is(err, models.ErrInvalidRecipe):
		reason = "invalid recipe"
	}
	r.logger.Warn("falling back to index",
		zap.String("slug", slug), zap.String("reason", reason), zap.Error(err))
}
