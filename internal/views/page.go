package views

import (
	"github.com/a-h/templ"

	"ishan.sh/internal/models"
)

// ProjectsTitle is the heading and document title of the projects page
const ProjectsTitle = "Projects"

// CSS class names shared with static/css/site.css
const (
	classCards       = "cards"
	classCard        = "card"
	classCardImage   = "card_image"
	classCardContent = "card_content"
	classCardInfo    = "card_info"
	classCardLink    = "card_link"
)

// PageMeta carries per-page metadata into the document head
type PageMeta struct {
	Title       string
	Description string
}

// LayoutFunc wraps page content in the site chrome
type LayoutFunc func(body templ.Component) templ.Component

// MetaFunc records the metadata for the page being composed
type MetaFunc func(PageMeta)

// ProjectsPage composes the projects heading and card list inside layout.
// setMeta is called once, before the layout is built
func ProjectsPage(projects []models.Project, layout LayoutFunc, setMeta MetaFunc) templ.Component {
	setMeta(PageMeta{Title: ProjectsTitle})
	return layout(projectsBody(projects))
}
