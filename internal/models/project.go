package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Project represents a portfolio project card
type Project struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       Image  `json:"image" yaml:"image"`
	Links       []Link `json:"links" yaml:"links"`
}

// Image is the banner shown at the top of a card
type Image struct {
	Path string `json:"path" yaml:"path"`
	Alt  string `json:"alt" yaml:"alt"`
}

// Link is one outbound link on a card. External links open in a new
// browsing context
type Link struct {
	Label    string `json:"label" yaml:"label"`
	URL      string `json:"url" yaml:"url"`
	External bool   `json:"external" yaml:"external"`
}

// ProjectList wraps the ordered array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// Validate checks that the project can be rendered as a card
func (p Project) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, errors.New("title is empty"))
	}
	if len(p.Links) == 0 {
		errs = append(errs, errors.New("no links"))
	}
	for i, l := range p.Links {
		if strings.TrimSpace(l.Label) == "" {
			errs = append(errs, fmt.Errorf("link %d: label is empty", i))
		}
		if strings.TrimSpace(l.URL) == "" {
			errs = append(errs, fmt.Errorf("link %d: url is empty", i))
		}
	}
	return errors.Join(errs...)
}

// Normalize fills derived IDs and validates every project. All problems are
// reported together
func (pl *ProjectList) Normalize() error {
	var errs []error
	seen := make(map[string]int, len(pl.Projects))
	for i := range pl.Projects {
		p := &pl.Projects[i]
		if p.ID == "" {
			p.ID = Slug(p.Title)
		}
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("project %d (%q): %w", i, p.Title, err))
			continue
		}
		if prev, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("project %d: id %q already used by project %d", i, p.ID, prev))
			continue
		}
		seen[p.ID] = i
	}
	return errors.Join(errs...)
}

// Slug turns a title into a lowercase dash separated identifier
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
