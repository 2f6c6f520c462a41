package model

// PaginationMeta describes one page of customers. It is computed by the
// viewer and never sent over the wire.
type PaginationMeta struct {
	CurrentPage int
	PerPage     int
	TotalItems  int
	TotalPages  int
}
