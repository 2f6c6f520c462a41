package handler

import (
	"context"
	"net/http"

	"github.com/Sapuran-Berperan/customer-viewer/internal/model"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// CustomerLister reads the full customer table
type CustomerLister interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

// CustomerHandler handles customer-related requests
type CustomerHandler struct {
	customers CustomerLister
	logger    zerolog.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customers CustomerLister, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		logger:    logger,
	}
}

// List returns every customer as a bare JSON array
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("Error executing query")
		respondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if customers == nil {
		customers = []model.Customer{}
	}

	respondJSON(w, http.StatusOK, customers)
}
