// Package viewer holds the client-side state of one customer viewing session:
// the record set loaded once and the current query parameters.
package viewer

import (
	"context"

	"github.com/Sapuran-Berperan/customer-viewer/internal/model"
	"github.com/Sapuran-Berperan/customer-viewer/internal/query"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RecordSource provides the full customer table on demand
type RecordSource interface {
	FetchAll(ctx context.Context) ([]model.Customer, error)
}

// Session is owned by a single UI loop and is not safe for concurrent use
type Session struct {
	id      uuid.UUID
	source  RecordSource
	logger  zerolog.Logger
	loaded  bool
	records []model.Customer
	params  query.Params
}

// NewSession creates an empty session with default query parameters
func NewSession(source RecordSource, logger zerolog.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:      id,
		source:  source,
		logger:  logger.With().Str("session_id", id.String()).Logger(),
		records: []model.Customer{},
		params:  query.DefaultParams(),
	}
}

// ID identifies the session in logs
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Load fetches the record set once and completes the session with the result.
// Later calls do nothing.
func (s *Session) Load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.Complete(s.Fetch(ctx))
}

// Fetch calls the record source without touching session state, so it can
// run off the UI loop. Pass its result to Complete.
func (s *Session) Fetch(ctx context.Context) ([]model.Customer, error) {
	return s.source.FetchAll(ctx)
}

// Complete stores the result of the one-time load. A failed fetch is logged
// and leaves the session empty; the error is returned so the caller can show
// a status line.
func (s *Session) Complete(records []model.Customer, err error) error {
	s.loaded = true
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching data")
		return err
	}

	if records == nil {
		records = []model.Customer{}
	}
	s.records = records
	// a page requested before the load is only checked now
	s.GoToPage(s.params.Page)
	s.logger.Debug().Int("count", len(records)).Msg("customers loaded")
	return nil
}

// Loaded reports whether the one-time load has completed
func (s *Session) Loaded() bool {
	return s.loaded
}

// Records returns the loaded record set
func (s *Session) Records() []model.Customer {
	return s.records
}

// Params returns the current query parameters
func (s *Session) Params() query.Params {
	return s.params
}

// Search changes the search term and returns to page 1
func (s *Session) Search(term string) {
	s.params = s.params.WithSearch(term)
}

// SortBy selects a sort key, toggling the direction if it is already selected
func (s *Session) SortBy(key query.SortKey) {
	s.params = s.params.WithSortKey(key)
}

// SetDirection sets the sort direction
func (s *Session) SetDirection(dir query.SortDirection) {
	s.params = s.params.WithSortDirection(dir)
}

// SetInitialPage requests a page before the records are loaded. It is
// clamped once the load completes.
func (s *Session) SetInitialPage(n int) {
	s.params = s.params.WithPage(n)
}

// GoToPage moves to page n, clamped to the pages currently available
func (s *Session) GoToPage(n int) {
	total := s.Page().Meta.TotalPages
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	s.params = s.params.WithPage(n)
}

// NextPage moves forward one page if there is one
func (s *Session) NextPage() {
	s.GoToPage(s.params.Page + 1)
}

// PrevPage moves back one page if there is one
func (s *Session) PrevPage() {
	s.GoToPage(s.params.Page - 1)
}

// Page computes the visible page for the current parameters
func (s *Session) Page() query.Page {
	return query.Apply(s.records, s.params)
}
