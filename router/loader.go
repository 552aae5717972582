package router

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recipebox/models"
)

// Loader fetches the recipe for a slug. Implementations return an error
// wrapping models.ErrNotFound when the slug is unknown.
type Loader interface {
	Load(ctx context.Context, slug string) (*models.Recipe, error)
}

// LoaderFunc adapts a function, such as a store's Get, to Loader.
type LoaderFunc func(ctx context.Context, slug string) (*models.Recipe, error)

func (f LoaderFunc) Load(ctx context.Context, slug string) (*models.Recipe, error) {
	return f(ctx, slug)
}

// HTTPLoader fetches /recipes/<slug>.json from a static file server.
type HTTPLoader struct {
	client *http.Client
	base   *url.URL
}

// NewHTTPLoader returns a loader rooted at baseURL. A nil client gets a
// default with a 10 second timeout.
func NewHTTPLoader(baseURL string, client *http.Client) (*HTTPLoader, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPLoader{client: client, base: base}, nil
}

// Endpoint returns the URL the recipe for slug is fetched from.
func (l *HTTPLoader) Endpoint(slug string) (*url.URL, error) {
	ref, err := url.Parse("recipes/" + url.PathEscape(slug) + ".json")
	if err != nil {
		return nil, err
	}
	return l.base.ResolveReference(ref), nil
}

func (l *HTTPLoader) Load(ctx context.Context, slug string) (*models.Recipe, error) {
	endpoint, err := l.Endpoint(slug)
	if err != nil {
		return nil, fmt.Errorf("%w: bad slug %q: %v", models.ErrNotFound, slug, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s returned %d", models.ErrNotFound, endpoint, resp.StatusCode)
	}

	recipe, err := models.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	if recipe.Slug == "" {
		recipe.Slug = slug
	}
	return recipe, nil
}
