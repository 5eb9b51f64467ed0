package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"ishan.sh/internal/metrics"
	"ishan.sh/internal/services"
	"ishan.sh/internal/views"
)

// PageHandler serves HTML pages
type PageHandler struct {
	projectService *services.ProjectService
	site           views.Site
	logger         *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, site views.Site, logger *zap.Logger) *PageHandler {
	return &PageHandler{projectService: ps, site: site, logger: logger}
}

// Projects handles GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	doc := views.NewDocument(h.site, r.URL.Path)
	page := views.ProjectsPage(h.projectService.GetAll(), doc.Layout, doc.SetMeta)
	h.render(w, r, "projects", page)
}

// render serves page and counts it once it rendered without error
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, page templ.Component) {
	counted := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := page.Render(ctx, w); err != nil {
			return err
		}
		metrics.IncrementPageRender(name)
		return nil
	})
	templ.Handler(counted, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.logger.Error("Failed to render page", zap.String("page", name), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}
