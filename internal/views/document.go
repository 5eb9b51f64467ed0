package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// StylesheetPath is where site.css is served
const StylesheetPath = "/static/css/site.css"

// Site holds site-wide values used by the page chrome
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// NavItem is one entry of the header navigation
type NavItem struct {
	Label string
	Path  string
}

// DefaultNav is the header navigation
var DefaultNav = []NavItem{
	{Label: "Projects", Path: "/projects"},
}

// Document is the default page shell: head metadata, header, main and
// footer. Create one per render; SetMeta and Layout are meant to be passed
// to a page composer as method values
type Document struct {
	site Site
	path string
	nav  []NavItem
	meta PageMeta
}

// NewDocument creates a Document for the page served at path
func NewDocument(site Site, path string) *Document {
	return &Document{site: site, path: path, nav: DefaultNav}
}

// SetMeta records the page metadata
func (d *Document) SetMeta(meta PageMeta) {
	d.meta = meta
}

// Meta returns the metadata recorded so far
func (d *Document) Meta() PageMeta {
	return d.meta
}

// Layout wraps body in the full HTML document
func (d *Document) Layout(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return d.shell().Render(templ.WithChildren(ctx, body), w)
	})
}

// ComposeTitle builds the document title from a page title and the site name
func ComposeTitle(title, siteName string) string {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return siteName
	case siteName == "" || title == siteName:
		return title
	default:
		return title + " | " + siteName
	}
}

func (d *Document) title() string {
	return ComposeTitle(d.meta.Title, d.site.Name)
}

func (d *Document) description() string {
	if d.meta.Description != "" {
		return d.meta.Description
	}
	return d.site.Description
}

func (d *Document) canonicalURL() string {
	return strings.TrimRight(d.site.URL, "/") + d.path
}

func (d *Document) current(item NavItem) bool {
	return item.Path == d.path
}
