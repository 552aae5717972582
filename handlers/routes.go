package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"recipebox/pages"
	"recipebox/store"
)

type Deps struct {
	Store          store.Store
	Pages          *pages.Builder
	AssetsDir      string
	ImageHeight    uint
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter wires every route and wraps the result in CORS and request
// logging.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()
	r.StrictSlash(false)

	r.HandleFunc("/recipes/index.json", func(w http.ResponseWriter, r *http.Request) {
		GetRecipes(d.Store, logger, w, r)
	}).Methods(http.MethodGet)

	r.HandleFunc("/recipes/{slug}.json", func(w http.ResponseWriter, r *http.Request) {
		GetRecipe(d.Store, logger, w, r)
	}).Methods(http.MethodGet)

	page := func(w http.ResponseWriter, r *http.Request) {
		RecipePage(d.Pages, logger, w, r)
	}
	r.HandleFunc("/", page).Methods(http.MethodGet)
	r.HandleFunc("/recipes", page).Methods(http.MethodGet)
	r.HandleFunc("/recipes/", page).Methods(http.MethodGet)
	r.HandleFunc("/recipes/{slug}", page).Methods(http.MethodGet)

	r.HandleFunc("/images/{name}", func(w http.ResponseWriter, r *http.Request) {
		FetchImageHandler(d.AssetsDir, d.ImageHeight, logger, w, r)
	}).Methods(http.MethodGet)

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return withRequestLogging(logger, c.Handler(r))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withRequestLogging tags each request with an X-Request-ID and logs it when
// it completes.
func withRequestLogging(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
