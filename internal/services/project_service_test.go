package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ishan.sh/internal/content"
	"ishan.sh/internal/models"
)

func TestProjectService(t *testing.T) {
	store := content.NewStore(content.Defaults())
	svc := NewProjectService(store)

	all := svc.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "toy-image-search-engine", all[0].ID)

	p, err := svc.GetByID("minimax-visualizer")
	require.NoError(t, err)
	assert.Equal(t, "Minimax Visualizer", p.Title)

	_, err = svc.GetByID("nope")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectServiceSeesReplacedContent(t *testing.T) {
	store := content.NewStore(content.Defaults())
	svc := NewProjectService(store)

	store.Replace(&models.ProjectList{Projects: []models.Project{{ID: "only", Title: "Only"}}})
	require.Len(t, svc.GetAll(), 1)
	_, err := svc.GetByID("minimax-visualizer")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
