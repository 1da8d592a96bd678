package cli

import "sync"

// Section identifies one navigable view of the client.
type Section string

const (
	SectionFeed       Section = "feed"
	SectionWatchlist  Section = "watchlist"
	SectionSearch     Section = "search"
	SectionMyListings Section = "mylistings"
	SectionItemListed Section = "itemlisted"
	SectionSettings   Section = "settings"
)

// CategorySection returns the section for one fixed category, e.g.
// "category:furniture".
func CategorySection(name string) Section {
	return Section("category:" + name)
}

// Router tracks the active section and a monotonically increasing request
// generation. Every navigation bumps the generation; a view load that
// started under an older generation must not render its response.
//
// Usage: gen := r.Begin(section); fetch; if r.Keep(gen) { render }.
// Last navigation wins.
type Router struct {
	mu      sync.Mutex
	current Section
	gen     uint64
}

// NewRouter returns a router positioned on the feed.
func NewRouter() *Router {
	return &Router{current: SectionFeed}
}

// Begin makes section current and returns the new generation.
func (r *Router) Begin(section Section) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = section
	r.gen++
	return r.gen
}

// Keep reports whether gen is still the current generation. A false result
// means a newer navigation superseded the caller and its response must be
// discarded.
func (r *Router) Keep(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen == gen
}

// Current returns the active section.
func (r *Router) Current() Section {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
