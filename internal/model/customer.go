package model

import (
	"errors"
	"time"
)

var (
	// ErrQuery is returned when the backing store fails to produce the customer table
	ErrQuery = errors.New("customer query failed")
	// ErrTransport is returned when the customer table cannot be fetched over the network
	ErrTransport = errors.New("customer fetch failed")
)

// Customer represents one row of the customer table.
// JSON names match the table columns exactly, they are the wire format.
type Customer struct {
	Sno          int64     `json:"sno"`
	CustomerName string    `json:"customername"`
	Age          int32     `json:"age"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"createdat"`
}
