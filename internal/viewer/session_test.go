package viewer

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sapuran-Berperan/customer-viewer/internal/model"
	"github.com/Sapuran-Berperan/customer-viewer/internal/query"
)

type stubSource struct {
	customers []model.Customer
	err       error
	calls     int
}

func (s *stubSource) FetchAll(ctx context.Context) ([]model.Customer, error) {
	s.calls++
	return s.customers, s.err
}

func makeCustomers(n int) []model.Customer {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]model.Customer, n)
	for i := range records {
		records[i] = model.Customer{
			Sno:          int64(i + 1),
			CustomerName: fmt.Sprintf("Customer %02d", i+1),
			Location:     "Town",
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
	}
	return records
}

func TestSession_LoadOnce(t *testing.T) {
	source := &stubSource{customers: makeCustomers(3)}
	s := NewSession(source, zerolog.Nop())

	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, 1, source.calls)
	assert.True(t, s.Loaded())
	assert.Len(t, s.Records(), 3)
	assert.NotEqual(t, s.ID().String(), "00000000-0000-0000-0000-000000000000")
}

func TestSession_LoadFailureLeavesEmptySet(t *testing.T) {
	var logs bytes.Buffer
	source := &stubSource{err: fmt.Errorf("%w: connection refused", model.ErrTransport)}
	s := NewSession(source, zerolog.New(&logs))

	err := s.Load(context.Background())

	assert.ErrorIs(t, err, model.ErrTransport)
	assert.NotNil(t, s.Records())
	assert.Empty(t, s.Records())
	assert.Empty(t, s.Page().Items)
	assert.Equal(t, 0, s.Page().Meta.TotalPages)
	assert.Contains(t, logs.String(), "Error fetching data")
	assert.Contains(t, logs.String(), s.ID().String())

	// no retry
	assert.NoError(t, s.Load(context.Background()))
	assert.Equal(t, 1, source.calls)
}

func TestSession_SearchResetsPage(t *testing.T) {
	s := NewSession(&stubSource{}, zerolog.Nop())
	require.NoError(t, s.Complete(makeCustomers(45), nil))

	s.GoToPage(3)
	assert.Equal(t, 3, s.Params().Page)

	s.Search("customer")
	assert.Equal(t, 1, s.Params().Page)
	assert.Equal(t, 3, s.Page().Meta.TotalPages)
}

func TestSession_SortTransitions(t *testing.T) {
	s := NewSession(&stubSource{}, zerolog.Nop())
	require.NoError(t, s.Complete(makeCustomers(3), nil))

	s.SortBy(query.SortByDate)
	assert.Equal(t, int64(1), s.Page().Items[0].Sno)

	s.SortBy(query.SortByDate)
	assert.Equal(t, query.SortDesc, s.Params().SortDirection)
	assert.Equal(t, int64(3), s.Page().Items[0].Sno)

	s.SortBy(query.SortByTime)
	assert.Equal(t, query.SortAsc, s.Params().SortDirection)

	s.SetDirection(query.SortDesc)
	assert.Equal(t, query.SortByTime, s.Params().SortKey)
	assert.Equal(t, query.SortDesc, s.Params().SortDirection)
}

func TestSession_PageNavigationIsClamped(t *testing.T) {
	s := NewSession(&stubSource{}, zerolog.Nop())
	require.NoError(t, s.Complete(makeCustomers(45), nil))

	s.PrevPage()
	assert.Equal(t, 1, s.Params().Page)

	s.NextPage()
	s.NextPage()
	s.NextPage()
	assert.Equal(t, 3, s.Params().Page)
	assert.Len(t, s.Page().Items, 5)

	s.GoToPage(99)
	assert.Equal(t, 3, s.Params().Page)
}

func TestSession_CompleteWithNilRecords(t *testing.T) {
	s := NewSession(&stubSource{}, zerolog.Nop())

	require.NoError(t, s.Complete(nil, nil))

	assert.True(t, s.Loaded())
	assert.NotNil(t, s.Records())
	assert.Empty(t, s.Page().Items)
}

func TestSession_InitialPageSurvivesLoad(t *testing.T) {
	s := NewSession(&stubSource{customers: makeCustomers(45)}, zerolog.Nop())

	s.SetInitialPage(3)
	require.NoError(t, s.Complete(s.Fetch(context.Background())))

	assert.Equal(t, 3, s.Params().Page)
	page := s.Page()
	require.Len(t, page.Items, 5)
	assert.Equal(t, int64(41), page.Items[0].Sno)
}

func TestSession_InitialPageClampedAfterLoad(t *testing.T) {
	tests := []struct {
		name      string
		records   int
		requested int
		expected  int
	}{
		{"beyond last page", 45, 9, 3},
		{"empty table", 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(&stubSource{customers: makeCustomers(tt.records)}, zerolog.Nop())

			s.SetInitialPage(tt.requested)
			require.NoError(t, s.Load(context.Background()))

			assert.Equal(t, tt.expected, s.Params().Page)
		})
	}
}
