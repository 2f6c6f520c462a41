// Package client fetches the customer table from the customer API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Sapuran-Berperan/customer-viewer/internal/model"
)

const customersPath = "/api/customers"

// Client calls GET /api/customers on a customer API server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for baseURL. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// FetchAll returns the whole customer table in server order.
// Network and decoding failures wrap model.ErrTransport, a non-200 answer
// wraps model.ErrQuery. No data is returned on error.
func (c *Client) FetchAll(ctx context.Context) ([]model.Customer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+customersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", model.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch customers: %w", model.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: customer api returned status %d: %s", model.ErrQuery, resp.StatusCode, body.Error)
	}

	var customers []model.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customers); err != nil {
		return nil, fmt.Errorf("%w: failed to decode customers: %w", model.ErrTransport, err)
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}
