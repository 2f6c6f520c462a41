package query

import (
	"errors"
	"strings"
)

// PageSize is the number of customers shown per page
const PageSize = 20

// SortKey selects which part of the creation timestamp drives ordering
type SortKey string

const (
	SortNone   SortKey = ""
	SortByDate SortKey = "date"
	SortByTime SortKey = "time"
)

// SortDirection represents sort order
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

var (
	ErrInvalidSortKey       = errors.New("invalid sort key")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

// Allowed sort keys for customer listing
var allowedSortKeys = map[string]SortKey{
	"":     SortNone,
	"none": SortNone,
	"date": SortByDate,
	"time": SortByTime,
}

// Allowed sort directions
var allowedSortDirs = map[string]SortDirection{
	"asc":        SortAsc,
	"ascending":  SortAsc,
	"desc":       SortDesc,
	"descending": SortDesc,
}

// ParseSortKey parses a user supplied sort key. Empty and "none" mean unsorted.
func ParseSortKey(s string) (SortKey, error) {
	key, ok := allowedSortKeys[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return SortNone, ErrInvalidSortKey
	}
	return key, nil
}

// ParseSortDirection parses a user supplied sort direction
func ParseSortDirection(s string) (SortDirection, error) {
	dir, ok := allowedSortDirs[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return SortAsc, ErrInvalidSortDirection
	}
	return dir, nil
}

// Toggle returns the opposite direction
func (d SortDirection) Toggle() SortDirection {
	if d == SortDesc {
		return SortAsc
	}
	return SortDesc
}

// Params is the client-held search, sort and page state.
// It is a value type: every transition returns a new Params.
type Params struct {
	// Search
	Search string

	// Sorting
	SortKey       SortKey
	SortDirection SortDirection

	// Pagination, 1-based
	Page int
}

// DefaultParams returns the initial state: no filter, unsorted, ascending, first page
func DefaultParams() Params {
	return Params{
		SortKey:       SortNone,
		SortDirection: SortAsc,
		Page:          1,
	}
}

// WithSearch changes the search term and goes back to the first page
func (p Params) WithSearch(search string) Params {
	p.Search = search
	p.Page = 1
	return p
}

// WithSortKey selects a sort key. Selecting the current key again flips the
// direction, selecting a different key starts ascending.
func (p Params) WithSortKey(key SortKey) Params {
	if p.SortKey == key {
		p.SortDirection = p.SortDirection.Toggle()
		return p
	}
	p.SortKey = key
	p.SortDirection = SortAsc
	return p
}

// WithSortDirection sets the direction without touching the key
func (p Params) WithSortDirection(dir SortDirection) Params {
	p.SortDirection = dir
	return p
}

// WithPage moves to the given page. No clamping is applied.
func (p Params) WithPage(page int) Params {
	p.Page = page
	return p
}
