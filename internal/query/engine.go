package query

import (
	"slices"
	"strings"

	"github.com/Sapuran-Berperan/customer-viewer/internal/model"
)

// isoLayout mirrors the millisecond ISO-8601 encoding used for time-of-day ordering
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Page is one window of the filtered and sorted customer set
type Page struct {
	Items []model.Customer
	Meta  model.PaginationMeta
}

// Apply derives the visible page from the full record set.
// The input slice is never modified.
func Apply(records []model.Customer, params Params) Page {
	filtered := Filter(records, params.Search)
	sorted := Sort(filtered, params.SortKey, params.SortDirection)

	return Page{
		Items: Paginate(sorted, params.Page, PageSize),
		Meta: model.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     PageSize,
			TotalItems:  len(sorted),
			TotalPages:  TotalPages(len(sorted), PageSize),
		},
	}
}

// Filter keeps customers whose name or location contains search, ignoring case.
// An empty search keeps everything.
func Filter(records []model.Customer, search string) []model.Customer {
	if search == "" {
		return slices.Clone(records)
	}

	needle := strings.ToLower(search)
	filtered := make([]model.Customer, 0, len(records))
	for _, c := range records {
		if strings.Contains(strings.ToLower(c.CustomerName), needle) ||
			strings.Contains(strings.ToLower(c.Location), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Sort returns a stably sorted copy. Equal keys keep their input order in both directions.
func Sort(records []model.Customer, key SortKey, dir SortDirection) []model.Customer {
	sorted := slices.Clone(records)

	var compare func(a, b model.Customer) int
	switch key {
	case SortByDate:
		compare = func(a, b model.Customer) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case SortByTime:
		// Lexicographic on the ISO time substring, not chronological across offsets
		compare = func(a, b model.Customer) int {
			return strings.Compare(timeOfDay(a), timeOfDay(b))
		}
	default:
		return sorted
	}

	if dir == SortDesc {
		slices.SortStableFunc(sorted, func(a, b model.Customer) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(sorted, compare)
	}
	return sorted
}

// timeOfDay returns the part after "T" of the customer's ISO creation timestamp
func timeOfDay(c model.Customer) string {
	iso := c.CreatedAt.Format(isoLayout)
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		return iso[i+1:]
	}
	return iso
}

// Paginate returns the 1-based page of size perPage.
// Pages outside the available range are empty, never an error.
func Paginate(records []model.Customer, page, perPage int) []model.Customer {
	if page < 1 || perPage < 1 {
		return []model.Customer{}
	}

	start := Offset(page, perPage)
	if start >= len(records) {
		return []model.Customer{}
	}
	end := min(start+perPage, len(records))

	return slices.Clone(records[start:end])
}

// TotalPages calculates total pages from total items and per page
func TotalPages(totalItems, perPage int) int {
	if totalItems == 0 || perPage < 1 {
		return 0
	}
	pages := totalItems / perPage
	if totalItems%perPage > 0 {
		pages++
	}
	return pages
}

// Offset calculates the slice offset from page and per page
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
