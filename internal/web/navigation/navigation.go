// Package navigation builds the page header data shared by all templates.
package navigation

// Crumb is one step of the breadcrumb trail.
type Crumb struct {
	Title  string
	URL    string
	Active bool
}

// Page is passed to every template as "Navigation".
type Page struct {
	AppTitle  string
	PageTitle string
	// ActivePage names the menu entry to highlight.
	ActivePage string
	// Admin is true when the admin menu entries are shown.
	Admin       bool
	Breadcrumbs []Crumb
}

// NewPage creates the navigation data of a page.
func NewPage(appTitle, pageTitle, activePage string) *Page {
	return &Page{
		AppTitle:    appTitle,
		PageTitle:   pageTitle,
		ActivePage:  activePage,
		Breadcrumbs: make([]Crumb, 0),
	}
}

// AddCrumb appends a breadcrumb. The last crumb added is the active one.
func (p *Page) AddCrumb(title, url string) *Page {
	for i := range p.Breadcrumbs {
		p.Breadcrumbs[i].Active = false
	}

	p.Breadcrumbs = append(p.Breadcrumbs, Crumb{
		Title:  title,
		URL:    url,
		Active: true,
	})

	return p
}

// AsAdmin shows the admin menu entries.
func (p *Page) AsAdmin() *Page {
	p.Admin = true
	return p
}

// IsActive reports whether page is the highlighted menu entry.
func (p *Page) IsActive(page string) bool {
	return p.ActivePage == page
}

// Title is the browser title, "<page> - <app>" or just the app title.
func (p *Page) Title() string {
	switch {
	case p.PageTitle == "":
		return p.AppTitle
	case p.AppTitle == "":
		return p.PageTitle
	default:
		return p.PageTitle + " - " + p.AppTitle
	}
}
