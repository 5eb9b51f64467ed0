package content

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ishan.sh/internal/models"
)

const sampleYAML = `
projects:
  - title: Minimax Visualizer
    description: A playable tic-tac-toe game.
    image:
      path: /projects/project2_banner.png
      alt: Project 2
    links:
      - label: Github
        url: https://github.com/ishandotsh/minimax-visualizer
        external: true
`

func TestDefaultsOrderAndLinks(t *testing.T) {
	pl := Defaults()
	require.Len(t, pl.Projects, 2)
	require.NoError(t, pl.Normalize())

	first, second := pl.Projects[0], pl.Projects[1]
	assert.Equal(t, "Toy Image Search Engine", first.Title)
	assert.Equal(t, "Minimax Visualizer", second.Title)

	labels := func(p models.Project) []string {
		var out []string
		for _, l := range p.Links {
			out = append(out, l.Label)
		}
		return out
	}
	assert.Equal(t, []string{"View Article", "Github", "Live Demo"}, labels(first))
	assert.Equal(t, []string{"Github", "Live Demo"}, labels(second))
	assert.False(t, first.Links[0].External)
	assert.True(t, first.Links[1].External)
}

func TestDefaultsReturnsFreshCopy(t *testing.T) {
	a := Defaults()
	a.Projects[0].Title = "changed"
	assert.Equal(t, "Toy Image Search Engine", Defaults().Projects[0].Title)
}

func TestParseYAML(t *testing.T) {
	pl, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, pl.Projects, 1)
	assert.Equal(t, "minimax-visualizer", pl.Projects[0].ID)
	assert.True(t, pl.Projects[0].Links[0].External)
}

func TestParseJSON(t *testing.T) {
	doc := `{"projects":[{"id":"p","title":"P","links":[{"label":"Demo","url":"https://x.dev"}]}]}`
	pl, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "p", pl.Projects[0].ID)
	assert.False(t, pl.Projects[0].Links[0].External)
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("projects: []"))
	assert.ErrorContains(t, err, "no projects")

	_, err = Parse([]byte("projects:\n  - title: No links\n"))
	assert.ErrorContains(t, err, "no links")

	_, err = Parse([]byte("projects: ["))
	assert.ErrorContains(t, err, "failed to parse projects")
}

func TestLoad(t *testing.T) {
	pl, err := Load("")
	require.NoError(t, err)
	assert.Len(t, pl.Projects, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestStoreConcurrentReplace(t *testing.T) {
	s := NewStore(Defaults())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Replace(Defaults())
		}()
		go func() {
			defer wg.Done()
			assert.Len(t, s.Projects().Projects, 2)
		}()
	}
	wg.Wait()

	s.Replace(nil)
	assert.Empty(t, s.Projects().Projects)
}

func TestWatcherReloadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projects: ["), 0o644))

	store := NewStore(Defaults())
	w := NewWatcher(path, store, zap.NewNop())
	require.Error(t, w.Reload())
	assert.Len(t, store.Projects().Projects, 2)

	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	require.NoError(t, w.Reload())
	assert.Len(t, store.Projects().Projects, 1)
}

func TestWatcherPicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	store := NewStore(Defaults())
	w := NewWatcher(path, store, zap.NewNop())
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
			return false
		}
		return len(store.Projects().Projects) == 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestSampleDataFileMatchesDefaults(t *testing.T) {
	pl, err := LoadFile(filepath.Join("..", "..", "data", "projects.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), pl)
}
