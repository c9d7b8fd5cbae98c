package tui

// View is one of the top-level screens of the application.
type View int

const (
	// ViewLanding is the welcome screen.
	ViewLanding View = iota
	// ViewDiscover is the search screen with chat and enrichment overlays.
	ViewDiscover
	// ViewLearnMore describes what the service offers.
	ViewLearnMore
)

var viewTitles = map[View]string{
	ViewLanding:   "Home",
	ViewDiscover:  "Discover Books",
	ViewLearnMore: "Learn More",
}

// Views returns all top-level views in navigation order.
func Views() []View {
	return []View{ViewLanding, ViewDiscover, ViewLearnMore}
}

func (v View) String() string {
	if title, ok := viewTitles[v]; ok {
		return title
	}
	return "Unknown"
}

// Valid reports whether v names a known view.
func (v View) Valid() bool {
	_, ok := viewTitles[v]
	return ok
}

// Router owns the active view. Views receive the router and call Navigate
// instead of keeping their own notion of the current page.
type Router struct {
	active   View
	previous View
}

// NewRouter creates a router showing start.
func NewRouter(start View) *Router {
	if !start.Valid() {
		start = ViewLanding
	}
	return &Router{active: start, previous: start}
}

// Active returns the view currently shown.
func (r *Router) Active() View {
	return r.active
}

// Is reports whether v is the active view.
func (r *Router) Is(v View) bool {
	return r.active == v
}

// Navigate switches to v and reports whether the active view changed.
func (r *Router) Navigate(v View) bool {
	if !v.Valid() || v == r.active {
		return false
	}
	r.previous = r.active
	r.active = v
	return true
}

// Previous returns the view that was active before the last navigation.
func (r *Router) Previous() View {
	return r.previous
}
