package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ishan.sh/internal/config"
	"ishan.sh/internal/content"
	"ishan.sh/internal/metrics"
	"ishan.sh/internal/models"
	"ishan.sh/internal/services"
	"ishan.sh/internal/views"
)

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	staticDir := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{Addr: ":0", StaticDir: staticDir},
		Site:   config.SiteConfig{Name: "ishan.sh", URL: "https://ishan.sh"},
	}
	return SetupRoutes(cfg, content.NewStore(content.Defaults()), zap.NewNop()), staticDir
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRootRedirectsToProjects(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/projects", rec.Header().Get("Location"))
}

func TestProjectsPage(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, "<h1"))
	assert.Contains(t, body, `<h1 class="page_heading">Projects</h1>`)
	assert.Contains(t, body, "<title>Projects | ishan.sh</title>")
	assert.Equal(t, 2, strings.Count(body, `<div class="card" `))
	assert.Less(t, strings.Index(body, "Toy Image Search Engine"), strings.Index(body, "Minimax Visualizer"))
}

func TestTrailingSlashRedirects(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/projects/")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.True(t, strings.HasSuffix(rec.Header().Get("Location"), "/projects"), rec.Header().Get("Location"))
}

func TestProjectsPageCountsOnlySuccessfulRenders(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := NewPageHandler(
		services.NewProjectService(content.NewStore(content.Defaults())),
		views.Site{Name: "ishan.sh"},
		zap.New(core),
	)
	counter := metrics.PageRenderCount.WithLabelValues("projects")

	before := testutil.ToFloat64(counter)
	rec := httptest.NewRecorder()
	h.Projects(rec, httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec = httptest.NewRecorder()
	h.Projects(rec, httptest.NewRequest(http.MethodGet, "/projects", nil).WithContext(ctx))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Failed to render page", logs.All()[0].Message)
}

func TestListProjects(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var projects []models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "toy-image-search-engine", projects[0].ID)
	assert.Len(t, projects[0].Links, 3)
	assert.Len(t, projects[1].Links, 2)
}

func TestGetProject(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := get(h, "/api/projects/minimax-visualizer")
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Minimax Visualizer", p.Title)

	rec = get(h, "/api/projects/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	h, _ := newTestRouter(t)
	rec := get(h, "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStaticAssets(t *testing.T) {
	h, staticDir := newTestRouter(t)
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "projects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "projects", "project1_banner.gif"), []byte("GIF89a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "robots.txt"), []byte("User-agent: *"), 0o644))

	rec := get(h, "/static/css/site.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".card_link")

	rec = get(h, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User-agent: *", rec.Body.String())

	rec = get(h, "/projects/project1_banner.gif")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GIF89a", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get(h, "/projects/missing.png").Code)
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "assets"), 0o755))
	assert.Equal(t, http.StatusNotFound, get(h, "/assets").Code, "no directory listing")
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)
	get(h, "/projects")
	rec := get(h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "page_renders_total")
}
