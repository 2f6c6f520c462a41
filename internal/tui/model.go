// Package tui renders a viewer session as an interactive terminal table.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sapuran-Berperan/customer-viewer/internal/model"
	"github.com/Sapuran-Berperan/customer-viewer/internal/query"
	"github.com/Sapuran-Berperan/customer-viewer/internal/viewer"
)

const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keySlash = "/"
	keyEnter = "enter"
	keyEsc   = "esc"
	keyDate  = "d"
	keyTime  = "t"
	keyAsc   = "a"
	keyDesc  = "z"
	keyLeft  = "left"
	keyRight = "right"
	keyPrev  = "h"
	keyNext  = "l"

	searchCharLimit = 100
	searchWidth     = 40
)

// CustomersLoadedMsg carries the result of the one-time fetch
type CustomersLoadedMsg struct {
	Customers []model.Customer
	Err       error
}

// Model is the Bubble Tea model for the customer table.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	ctx     context.Context
	session *viewer.Session

	table     table.Model
	textInput textinput.Model
	searching bool

	loading bool
	err     error
	width   int
}

// New creates a model for session. Loading starts on Init.
func New(ctx context.Context, session *viewer.Session) Model {
	m := Model{
		ctx:       ctx,
		session:   session,
		textInput: newTextInput(),
		loading:   !session.Loaded(),
	}
	m.table = table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		// room for the header and its border
		table.WithHeight(query.PageSize+3),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	m.table.SetStyles(s)

	m.refresh()
	return m
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Customer Name or Location"
	ti.CharLimit = searchCharLimit
	ti.Width = searchWidth
	return ti
}

// Init starts the one-time load (Bubble Tea interface).
func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return loadCustomers(m.ctx, m.session)
}

// loadCustomers fetches off the UI loop; the session is only updated from Update
func loadCustomers(ctx context.Context, session *viewer.Session) tea.Cmd {
	return func() tea.Msg {
		customers, err := session.Fetch(ctx)
		return CustomersLoadedMsg{Customers: customers, Err: err}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case CustomersLoadedMsg:
		m.loading = false
		m.err = m.session.Complete(msg.Customers, msg.Err)
		m.refresh()
		return m, nil
	}

	if m.searching {
		return m.handleSearchInput(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeypress(keyMsg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleSearchInput recomputes the page on every keystroke
func (m Model) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.searching = false
			m.textInput.Blur()
			return m, nil
		case keyCtrlC:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != m.session.Params().Search {
		m.session.Search(m.textInput.Value())
		m.refresh()
	}
	return m, cmd
}

func (m Model) handleKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		return m, tea.Quit
	case keySlash:
		m.searching = true
		return m, m.textInput.Focus()
	case keyDate:
		m.session.SortBy(query.SortByDate)
	case keyTime:
		m.session.SortBy(query.SortByTime)
	case keyAsc:
		m.session.SetDirection(query.SortAsc)
	case keyDesc:
		m.session.SetDirection(query.SortDesc)
	case keyLeft, keyPrev:
		m.session.PrevPage()
	case keyRight, keyNext:
		m.session.NextPage()
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

// refresh rebuilds the table rows from the current page
func (m *Model) refresh() {
	m.table.SetRows(tableRows(m.session.Page().Items))
	m.table.SetCursor(0)
}

// View renders the model (Bubble Tea interface).
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Customer Data"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Search By: "))
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(LabelStyle.Render("Loading customers..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Could not load customers: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("/ search • d date • t time • a/z asc/desc • ←/→ page • q quit"))
	b.WriteString("\n")

	return lipgloss.NewStyle().MaxWidth(m.maxWidth()).Render(b.String())
}

func (m Model) statusLine() string {
	page := m.session.Page()
	params := m.session.Params()

	sortBy := "none"
	if params.SortKey != query.SortNone {
		sortBy = string(params.SortKey)
	}

	return strings.Join([]string{
		ValueStyle.Render(pageSummary(page)),
		LabelStyle.Render("Sort By: ") + ValueStyle.Render(sortBy),
		LabelStyle.Render("Sort Order: ") + ValueStyle.Render(string(params.SortDirection)),
	}, "  ")
}

func (m Model) maxWidth() int {
	if m.width <= 0 {
		return 0
	}
	return m.width
}
