package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebox/models"
	"recipebox/web"
)

func newPage(t *testing.T) *Page {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(web.Template))
	require.NoError(t, err)
	p, err := Bind(doc, DefaultIDs())
	require.NoError(t, err)
	return p
}

func amount(v float64) *float64 { return &v }

func pancakes() *models.Recipe {
	return &models.Recipe{
		Slug:   "pancakes",
		Title:  "Pancakes",
		Source: "grandma",
		Yield:  "8 pancakes",
		Ingredients: []models.Ingredient{
			{Amount: amount(1.3333333), Unit: "cup", Name: "flour", Notes: "sifted"},
			{Amount: amount(2), Name: "eggs"},
			{Name: "salt"},
			{Amount: amount(0.5), Unit: "tsp", Name: "baking soda"},
		},
		Steps: []string{"Whisk the dry ingredients.", "Add the eggs.", "Fry <gently>."},
	}
}

func texts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Text())
	})
	return out
}

func TestBind_MissingRequired(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div id="recipe-links"></div><div id="recipe"><ul id="ingredients"></ul><ol id="steps"></ol></div>`))
	require.NoError(t, err)

	_, err = Bind(doc, DefaultIDs())
	var missing *MissingElementError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "title", missing.ID)
}

func TestRender(t *testing.T) {
	p := newPage(t)
	require.NoError(t, p.Render(pancakes()))

	assert.Equal(t, "Pancakes", p.Title.Text())
	assert.Equal(t, "source: grandma", p.Source.Text())
	assert.Equal(t, "yield: 8 pancakes", p.Yield.Text())

	items := p.Ingredients.Children()
	assert.Equal(t, 4, items.Length())
	assert.Equal(t, []string{
		"1⅓ cup flour, sifted",
		"2 eggs",
		"salt",
		"½ tsp baking soda",
	}, texts(items))

	assert.Equal(t, []string{"Whisk the dry ingredients.", "Add the eggs.", "Fry <gently>."},
		texts(p.Steps.Children()))
}

func TestRender_Idempotent(t *testing.T) {
	once := newPage(t)
	require.NoError(t, once.Render(pancakes()))
	want, err := once.HTML()
	require.NoError(t, err)

	twice := newPage(t)
	require.NoError(t, twice.Render(pancakes()))
	require.NoError(t, twice.Render(pancakes()))
	got, err := twice.HTML()
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestRender_ClearsStaleOptionalFields(t *testing.T) {
	p := newPage(t)
	require.NoError(t, p.Render(pancakes()))

	require.NoError(t, p.Render(&models.Recipe{Title: "Toast", Steps: []string{"Toast it."}}))
	assert.Equal(t, "", p.Source.Text())
	assert.Equal(t, "", p.Yield.Text())
	assert.Equal(t, 0, p.Ingredients.Children().Length())
	assert.Equal(t, 1, p.Steps.Children().Length())
}

func TestRender_NoTitleHandle(t *testing.T) {
	p := &Page{}
	var missing *MissingElementError
	assert.True(t, errors.As(p.Render(pancakes()), &missing))
}

func TestToggle(t *testing.T) {
	p := newPage(t)
	assert.True(t, p.IndexVisible())
	assert.False(t, p.DetailVisible())

	p.ShowDetail()
	assert.False(t, p.IndexVisible())
	assert.True(t, p.DetailVisible())

	p.ShowIndex()
	assert.True(t, p.IndexVisible())
	assert.False(t, p.DetailVisible())
}

func TestListRecipes(t *testing.T) {
	p := newPage(t)
	p.ListRecipes([]models.Summary{
		{Slug: "pancakes", Title: "Pancakes"},
		{Slug: "toast"},
	}, func(slug string) string { return "/recipes/" + slug })

	links := p.List.Find("li > a")
	require.Equal(t, 2, links.Length())
	assert.Equal(t, []string{"Pancakes", "toast"}, texts(links))
	href, _ := links.Eq(1).Attr("href")
	assert.Equal(t, "/recipes/toast", href)
}

func TestIngredientLine(t *testing.T) {
	assert.Equal(t, "3 cloves garlic, minced",
		IngredientLine(models.Ingredient{Amount: amount(3), Unit: "cloves", Name: "garlic", Notes: "minced"}))
	assert.Equal(t, "¾ cup milk", IngredientLine(models.Ingredient{Amount: amount(0.75), Unit: "cup", Name: "milk"}))
	assert.Equal(t, "pepper", IngredientLine(models.Ingredient{Name: "pepper"}))
}
