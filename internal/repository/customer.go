package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Sapuran-Berperan/customer-viewer/internal/model"
)

const customerTable = "customertable"

// customerColumns lists the selected columns in scan order
var customerColumns = []string{
	"sno", "customername", "age", "phone", "location", "createdat",
}

// ListCustomers retrieves the whole customer table ordered by sno.
// Errors are wrapped with model.ErrQuery and no partial result is returned.
func (q *Queries) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	// Use PostgreSQL placeholder format ($1, $2, etc.)
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	selectSQL, selectArgs, err := psql.Select(customerColumns...).
		From(customerTable).
		OrderBy("sno ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build select query: %w", model.ErrQuery, err)
	}

	rows, err := q.db.QueryContext(ctx, selectSQL, selectArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute select query: %w", model.ErrQuery, err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var (
			c        model.Customer
			name     sql.NullString
			age      sql.NullInt32
			phone    sql.NullString
			location sql.NullString
			created  sql.NullTime
		)
		err := rows.Scan(
			&c.Sno,
			&name,
			&age,
			&phone,
			&location,
			&created,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", model.ErrQuery, err)
		}
		c.CustomerName = NullStringValue(name)
		c.Age = NullInt32Value(age)
		c.Phone = NullStringValue(phone)
		c.Location = NullStringValue(location)
		if created.Valid {
			c.CreatedAt = created.Time
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", model.ErrQuery, err)
	}

	return customers, nil
}

// NullStringValue converts sql.NullString to string, empty when NULL
func NullStringValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullInt32Value converts sql.NullInt32 to int32, zero when NULL
func NullInt32Value(ni sql.NullInt32) int32 {
	if ni.Valid {
		return ni.Int32
	}
	return 0
}
