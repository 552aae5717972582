package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"recipebox/models"
	"recipebox/pages"
	"recipebox/store"
)

// GetRecipes returns the summaries of every recipe.
func GetRecipes(st store.Store, logger *zap.Logger, w http.ResponseWriter, r *http.Request) {
	summaries, err := st.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to list recipes", http.StatusInternalServerError)
		logger.Error("failed to list recipes", zap.Error(err))
		return
	}

	// Ensure an empty listing encodes as [] rather than null
	if summaries == nil {
		summaries = []models.Summary{}
	}
	writeJSON(w, logger, http.StatusOK, summaries)
}

// GetRecipe serves the recipe document the page router fetches,
// /recipes/{slug}.json.
func GetRecipe(st store.Store, logger *zap.Logger, w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		http.Error(w, "Missing recipe slug", http.StatusBadRequest)
		return
	}

	recipe, err := st.Get(r.Context(), slug)
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "No matching recipe found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to retrieve recipe", http.StatusInternalServerError)
		logger.Error("failed to retrieve recipe", zap.String("slug", slug), zap.Error(err))
		return
	}

	writeJSON(w, logger, http.StatusOK, recipe)
}

// RecipePage renders the site page for the request path. An unknown slug
// gets the index view with a 404 status.
func RecipePage(b *pages.Builder, logger *zap.Logger, w http.ResponseWriter, r *http.Request) {
	res, err := b.Render(r.Context(), r.URL)
	if err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		logger.Error("failed to render page", zap.String("path", r.URL.Path), zap.Error(err))
		return
	}

	status := http.StatusOK
	if res.NotFound() {
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(res.HTML)); err != nil {
		logger.Debug("error writing response", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
