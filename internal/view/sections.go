package view

import "context"

// Section identifiers for the dashboard's content sections.
const (
	SectionHome         = "home"
	SectionProfile      = "profile"
	SectionCreateModule = "create-module"
	SectionLectures     = "lectures"
)

// Loader populates a section's data when the section becomes active.
// Loaders may be invoked redundantly (switching to the already-active
// section re-runs its loader) and must tolerate that.
type Loader func(ctx context.Context) error

// NavLink is one entry of the navigation menu. Exactly one link is
// active at any time once a section has been selected.
type NavLink struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// Router switches the visible content section. States are the declared
// sections plus "none" (nothing selected yet, the initial state); a
// transition activates exactly one section and its navigation link.
type Router struct {
	sections []string
	known    map[string]bool
	loaders  map[string]Loader
	active   string
}

// NewRouter declares the section set in menu order. Initial state is none.
func NewRouter(sections ...string) *Router {
	known := make(map[string]bool, len(sections))
	for _, id := range sections {
		known[id] = true
	}
	return &Router{
		sections: sections,
		known:    known,
		loaders:  make(map[string]Loader),
	}
}

// Register attaches a load callback to a section id.
func (r *Router) Register(id string, load Loader) {
	r.loaders[id] = load
}

// Active returns the currently visible section id, or "" when none is.
func (r *Router) Active() string { return r.active }

// SwitchTo makes the target section the single visible one and invokes
// its loader if one is registered. Switching to an unknown id is a
// no-op that keeps the current section active and returns false.
// Switching to the already-active section is harmless but still runs
// the loader. The returned error is the loader's — the transition
// itself has already happened and is never rolled back.
func (r *Router) SwitchTo(ctx context.Context, id string) (bool, error) {
	if !r.known[id] {
		return false, nil
	}
	r.active = id

	load, ok := r.loaders[id]
	if !ok {
		return true, nil
	}
	return true, load(ctx)
}

// Links returns the navigation menu with the active flag set on at
// most one entry.
func (r *Router) Links() []NavLink {
	links := make([]NavLink, 0, len(r.sections))
	for _, id := range r.sections {
		links = append(links, NavLink{ID: id, Active: id == r.active})
	}
	return links
}
