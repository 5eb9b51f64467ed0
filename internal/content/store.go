package content

import (
	"sync/atomic"

	"ishan.sh/internal/models"
)

// Store holds the current project list. Readers never block; Replace swaps
// the whole list at once
type Store struct {
	current atomic.Pointer[models.ProjectList]
}

// NewStore creates a Store serving projects
func NewStore(projects *models.ProjectList) *Store {
	s := &Store{}
	s.Replace(projects)
	return s
}

// Projects returns the current list. The result must not be modified
func (s *Store) Projects() *models.ProjectList {
	return s.current.Load()
}

// Replace swaps in a new list
func (s *Store) Replace(projects *models.ProjectList) {
	if projects == nil {
		projects = &models.ProjectList{}
	}
	s.current.Store(projects)
}
