package autoprompt

import (
	"strings"
)

// Suggester produces completion candidates for a query.
//
// Two implementations ship with the package: StaticSource filters a fixed
// candidate list and SuggestFunc delegates to a callback. Implementations
// must be idempotent: the prompt may ask for the same query many times while
// cycling and rendering.
type Suggester interface {
	// Suggestions returns the ordered candidates for query.
	Suggestions(query string) ([]string, error)
	// Completion decides the text to accept given the highlighted candidate.
	// A nil result means nothing should be accepted.
	Completion(query string, highlighted *string) *string
}

// StaticSource filters a fixed, ordered candidate list.
type StaticSource struct {
	candidates []string
}

// NewStaticSource creates a suggestion source over candidates.
//
// Matching is a case-insensitive substring test and keeps the candidates'
// relative order. An empty query matches nothing so that an empty field does
// not list every candidate.
//
// Example:
//
//	source := autoprompt.NewStaticSource("rust", "ruby", "go")
//	matches, _ := source.Suggestions("R")
//	// matches: ["rust", "ruby"]
func NewStaticSource(candidates ...string) *StaticSource {
	return &StaticSource{candidates: append([]string{}, candidates...)}
}

// Suggestions returns the candidates containing query, ignoring case.
func (s *StaticSource) Suggestions(query string) ([]string, error) {
	return filterCandidates(query, s.candidates), nil
}

// Completion returns the highlighted candidate unchanged.
func (s *StaticSource) Completion(_ string, highlighted *string) *string {
	return highlighted
}

// SuggestFunc is a Suggester backed by a callback. The callback receives the
// current query; a returned error is treated as "no suggestions".
type SuggestFunc func(query string) ([]string, error)

// Suggestions calls f with query.
func (f SuggestFunc) Suggestions(query string) ([]string, error) {
	return f(query)
}

// Completion returns the highlighted candidate unchanged.
func (f SuggestFunc) Completion(_ string, highlighted *string) *string {
	return highlighted
}

func filterCandidates(query string, candidates []string) []string {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	var matches []string
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), needle) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// direction selects how a navigation key moves the highlight.
type direction int

const (
	// dirTab advances and wraps to "no selection" after the last candidate.
	dirTab direction = iota
	// dirDown advances and wraps to the first candidate.
	dirDown
	// dirUp goes back and wraps to the last candidate.
	dirUp
)

// noSelection marks that no candidate is highlighted.
const noSelection = -1

// cycler holds the suggestion navigation state of a prompt.
type cycler struct {
	query    string // query pinned when navigation started
	pinned   bool
	selected int
}

func newCycler() cycler {
	return cycler{selected: noSelection}
}

// reset forgets the pinned query and the highlight.
func (c *cycler) reset() {
	c.query = ""
	c.pinned = false
	c.selected = noSelection
}

// filterQuery returns the pinned query, or live when nothing is pinned.
func (c *cycler) filterQuery(live string) string {
	if c.pinned {
		return c.query
	}
	return live
}

// highlighted returns the selected index, or noSelection.
func (c *cycler) highlighted() int {
	return c.selected
}

// step moves the highlight over a list of n candidates.
func (c *cycler) step(dir direction, n int) {
	if c.selected >= n {
		c.selected = noSelection
	}
	switch dir {
	case dirTab:
		switch {
		case c.selected == noSelection:
			c.selected = 0
		case c.selected+1 < n:
			c.selected++
		default:
			c.selected = noSelection
		}
	case dirDown:
		if c.selected == noSelection || c.selected+1 >= n {
			c.selected = 0
		} else {
			c.selected++
		}
	case dirUp:
		if c.selected == noSelection || c.selected == 0 {
			c.selected = n - 1
		} else {
			c.selected--
		}
	}
}
