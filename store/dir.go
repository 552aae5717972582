package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"recipebox/models"
)

// DirStore reads <slug>.json files from a directory.
type DirStore struct {
	dir    string
	logger *zap.Logger
}

func NewDirStore(dir string, logger *zap.Logger) *DirStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirStore{dir: dir, logger: logger}
}

func (s *DirStore) Dir() string { return s.dir }

func (s *DirStore) Get(ctx context.Context, slug string) (*models.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validSlug(slug) {
		return nil, fmt.Errorf("%w: %q", models.ErrNotFound, slug)
	}
	return s.read(filepath.Join(s.dir, slug+".json"), slug)
}

func (s *DirStore) List(ctx context.Context) ([]models.Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read recipes dir: %w", err)
	}

	summaries := make([]models.Summary, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, ".") {
			continue
		}
		slug := strings.TrimSuffix(name, ".json")
		recipe, err := s.read(filepath.Join(s.dir, name), slug)
		if err != nil {
			s.logger.Warn("skipping recipe", zap.String("file", name), zap.Error(err))
			continue
		}
		summaries = append(summaries, recipe.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Slug < summaries[j].Slug })
	return summaries, nil
}

// read decodes one file. The file name is the slug of record, whatever the
// document itself says.
func (s *DirStore) read(path, slug string) (*models.Recipe, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", models.ErrNotFound, slug)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recipe, err := models.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	recipe.Slug = slug
	return recipe, nil
}

func validSlug(slug string) bool {
	return slug != "" &&
		!strings.ContainsAny(slug, `/\`) &&
		!strings.HasPrefix(slug, ".") &&
		!strings.ContainsRune(slug, 0)
}
