package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ishan.sh/internal/config"
	"ishan.sh/internal/content"
	"ishan.sh/internal/middleware"
	"ishan.sh/internal/services"
	"ishan.sh/internal/views"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, store *content.Store, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)
	r.Use(chimw.RedirectSlashes)

	// Initialize services
	projectService := services.NewProjectService(store)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, logger)
	pageHandler := NewPageHandler(projectService, SiteFromConfig(cfg.Site), logger)

	// Pages
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/projects", http.StatusFound)
	})
	r.Get("/projects", pageHandler.Projects)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Embedded assets under /static, everything else from the static directory
	r.Handle("/static/*", staticHandler(cfg.Server.StaticDir))
	r.NotFound(publicFiles(cfg.Server.StaticDir).ServeHTTP)

	return r
}

// SiteFromConfig maps site settings onto the page chrome
func SiteFromConfig(s config.SiteConfig) views.Site {
	return views.Site{
		Name:        s.Name,
		URL:         s.URL,
		Description: s.Description,
		Author:      s.Author,
	}
}

// staticHandler serves embedded assets, falling back to the static directory
func staticHandler(dir string) http.Handler {
	embedded := http.StripPrefix("/static", http.FileServer(http.FS(views.StaticFS)))
	disk := publicFiles(dir)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/static/")
		if info, err := fs.Stat(views.StaticFS, name); err == nil && !info.IsDir() {
			embedded.ServeHTTP(w, r)
			return
		}
		disk.ServeHTTP(w, r)
	})
}

// publicFiles serves regular files under dir at their site path, so
// dir/projects/banner.png is /projects/banner.png. Directories are not listed
func publicFiles(dir string) http.Handler {
	root := os.DirFS(dir)
	files := http.FileServer(http.FS(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		info, err := fs.Stat(root, name)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string, logger *zap.Logger) {
	respondJSON(w, status, map[string]string{"error": message}, logger)
}
