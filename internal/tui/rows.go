package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/Sapuran-Berperan/customer-viewer/internal/model"
	"github.com/Sapuran-Berperan/customer-viewer/internal/query"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "3:04 PM"
)

var columnTitles = []string{"Sno", "Customer Name", "Age", "Phone", "Location", "Date", "Time"}

// columns returns the table columns for the customer grid
func columns() []table.Column {
	widths := []int{6, 24, 5, 16, 20, 12, 10}
	cols := make([]table.Column, len(columnTitles))
	for i, title := range columnTitles {
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

// customerRow formats one customer. Date and time are shown in the offset
// the timestamp was sent with.
func customerRow(c model.Customer) []string {
	return []string{
		strconv.FormatInt(c.Sno, 10),
		c.CustomerName,
		strconv.Itoa(int(c.Age)),
		c.Phone,
		c.Location,
		c.CreatedAt.Format(dateLayout),
		c.CreatedAt.Format(timeLayout),
	}
}

func tableRows(customers []model.Customer) []table.Row {
	rows := make([]table.Row, len(customers))
	for i, c := range customers {
		rows[i] = customerRow(c)
	}
	return rows
}

// RenderPlain renders a page as a bordered text table, for non-interactive output
func RenderPlain(page query.Page) string {
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(columnTitles...)
	for _, c := range page.Items {
		t.Row(customerRow(c)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, t.String(), pageSummary(page))
}

func pageSummary(page query.Page) string {
	return "Page " + strconv.Itoa(page.Meta.CurrentPage) +
		" of " + strconv.Itoa(page.Meta.TotalPages) +
		" (" + strconv.Itoa(page.Meta.TotalItems) + " customers)"
}
