// Package site exports the whole site as static files: the index page, one
// page per recipe, the recipe JSON documents and the image assets.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"recipebox/pages"
	"recipebox/router"
)

type Options struct {
	OutDir      string
	AssetsDir   string
	Concurrency int
	Logger      *zap.Logger
}

// Build renders every page into opts.OutDir using the path layout the
// server answers to, so any static file server can host the result.
func Build(ctx context.Context, b *pages.Builder, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}

	summaries, err := b.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("list recipes: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(opts.OutDir, "recipes"), 0o755); err != nil {
		return err
	}

	if err := writePage(ctx, b, &url.URL{Path: "/"}, filepath.Join(opts.OutDir, "index.html")); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for _, s := range summaries {
		slug := s.Slug
		g.Go(func() error {
			recipe, err := b.Store.Get(ctx, slug)
			if err != nil {
				return fmt.Errorf("load %q: %w", slug, err)
			}
			data, err := json.MarshalIndent(recipe, "", "  ")
			if err != nil {
				return err
			}
			if err := writeFile(filepath.Join(opts.OutDir, "recipes", slug+".json"), data); err != nil {
				return err
			}

			u := &url.URL{Path: router.PathPrefix + slug}
			out := filepath.Join(opts.OutDir, "recipes", slug, "index.html")
			if err := writePage(ctx, b, u, out); err != nil {
				return err
			}
			logger.Debug("built recipe", zap.String("slug", slug))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.AssetsDir != "" {
		if err := copyAssets(opts.AssetsDir, filepath.Join(opts.OutDir, "images")); err != nil {
			return err
		}
	}

	logger.Info("site built", zap.String("out", opts.OutDir), zap.Int("recipes", len(summaries)))
	return nil
}

func writePage(ctx context.Context, b *pages.Builder, u *url.URL, path string) error {
	res, err := b.Render(ctx, u)
	if err != nil {
		return fmt.Errorf("render %s: %w", u.Path, err)
	}
	if res.NotFound() {
		return fmt.Errorf("render %s: recipe disappeared during build", u.Path)
	}
	return writeFile(path, []byte(res.HTML))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func copyAssets(src, dst string) error {
	entries, err := os.ReadDir(src)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read assets: %w", err)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := copyFile(filepath.Join(src, e.Name()), filepath.Join(dst, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
