package handlers

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebox/models"
	"recipebox/pages"
	"recipebox/router"
	"recipebox/store"
	"recipebox/view"
	"recipebox/web"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	recipes := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(recipes, "pancakes.json"),
		[]byte(`{"title":"Pancakes","source":"grandma","ingredients":[{"amount":1.5,"unit":"cup","name":"flour"}],"steps":["Mix.","Fry."]}`), 0o644))

	assets := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, 10, color.RGBA{R: 255, A: 255})
	}
	f, err := os.Create(filepath.Join(assets, "profile-pic.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	st := store.NewDirStore(recipes, nil)
	return NewRouter(Deps{
		Store: st,
		Pages: &pages.Builder{
			Template:   web.Template,
			IDs:        view.DefaultIDs(),
			Store:      st,
			Addressing: router.Path,
		},
		AssetsDir:   assets,
		ImageHeight: 10,
	})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetRecipe(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/recipes/pancakes.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var recipe models.Recipe
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&recipe))
	assert.Equal(t, "pancakes", recipe.Slug)
	assert.Equal(t, "Pancakes", recipe.Title)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/recipes/nope.json").Code)
}

func TestGetRecipes(t *testing.T) {
	rec := get(t, newTestHandler(t), "/recipes/index.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []models.Summary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summaries))
	assert.Equal(t, []models.Summary{{Slug: "pancakes", Title: "Pancakes"}}, summaries)
}

func TestRecipePage(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/recipes/pancakes")
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", doc.Find("#title").Text())
	assert.Equal(t, "source: grandma", doc.Find("#source").Text())
	assert.Equal(t, "1½ cup flour", doc.Find("#ingredients li").First().Text())

	rec = get(t, h, "/recipes/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/recipes/pancakes"`)

	for _, p := range []string{"/", "/recipes", "/recipes/"} {
		rec = get(t, h, p)
		assert.Equal(t, http.StatusOK, rec.Code, p)
		assert.True(t, strings.Contains(rec.Body.String(), "recipe-list"), p)
	}
}

func TestFetchImageHandler(t *testing.T) {
	h := newTestHandler(t)

	rec := get(t, h, "/images/profile-pic.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, _, err := image.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dy())
	assert.Equal(t, 20, img.Bounds().Dx())

	rec = get(t, h, "/images/profile-pic.png?h=4")
	require.Equal(t, http.StatusOK, rec.Code)
	img, _, err = image.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dy())

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/images/profile-pic.png?h=0").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/images/.secret").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/images/missing.png").Code)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/recipes/pancakes.json", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
