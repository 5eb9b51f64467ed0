// Package build exports the site as static files that any web server can host
package build

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ishan.sh/internal/metrics"
	"ishan.sh/internal/models"
	"ishan.sh/internal/views"
)

const redirectPage = `<!DOCTYPE html><html><head><meta charset="utf-8">` +
	`<meta http-equiv="refresh" content="0; url=/projects/">` +
	`<link rel="canonical" href="/projects/"></head><body></body></html>`

// Options controls an export
type Options struct {
	OutDir    string
	StaticDir string // copied into OutDir as is; skipped when missing
	Site      views.Site
}

// Result lists the files written, relative to OutDir
type Result struct {
	Files []string
}

// Site writes the projects page, the projects JSON, the embedded assets and
// the static directory into opts.OutDir
func Site(ctx context.Context, opts Options, projects []models.Project, logger *zap.Logger) (*Result, error) {
	if opts.OutDir == "" {
		return nil, errors.New("output directory is empty")
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.OutDir, err)
	}

	// The static directory goes first so generated files win on conflicts
	var files []string
	if opts.StaticDir != "" {
		copied, err := copyTree(ctx, os.DirFS(opts.StaticDir), opts.OutDir, "")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to copy static dir: %w", err)
		}
		files = append(files, copied...)
	}

	var embedded []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc := views.NewDocument(opts.Site, "/projects")
		page := views.ProjectsPage(projects, doc.Layout, doc.SetMeta)
		if err := writeFile(opts.OutDir, "projects/index.html", func(w io.Writer) error {
			return page.Render(gctx, w)
		}); err != nil {
			return err
		}
		metrics.IncrementPageRender("projects")
		return nil
	})
	g.Go(func() error {
		return writeFile(opts.OutDir, "index.html", func(w io.Writer) error {
			_, err := io.WriteString(w, redirectPage)
			return err
		})
	})
	g.Go(func() error {
		return writeFile(opts.OutDir, "api/projects.json", func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(projects)
		})
	})
	g.Go(func() error {
		var err error
		embedded, err = copyTree(gctx, views.StaticFS, opts.OutDir, "static")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files = append(files, "projects/index.html", "index.html", "api/projects.json")
	files = append(files, embedded...)
	logger.Info("Site exported", zap.String("out", opts.OutDir), zap.Int("files", len(files)))
	return &Result{Files: files}, nil
}

// writeFile creates outDir/name and fills it with fill
func writeFile(outDir, name string, fill func(io.Writer) error) (err error) {
	dst := filepath.Join(outDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()
	if err := fill(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// copyTree copies every regular file of src into outDir/prefix and returns
// the written names relative to outDir
func copyTree(ctx context.Context, src fs.FS, outDir, prefix string) ([]string, error) {
	var written []string
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := p
		if prefix != "" {
			name = prefix + "/" + p
		}
		if err := writeFile(outDir, name, func(w io.Writer) error {
			in, err := src.Open(p)
			if err != nil {
				return err
			}
			defer in.Close()
			_, err = io.Copy(w, in)
			return err
		}); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	})
	return written, err
}
