package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// VendorByID fetches a single vendor record.
func (c *Client) VendorByID(ctx context.Context, id string) (*domain.User, error) {
	var vendor domain.User
	if err := c.do(ctx, http.MethodGet, "/vendor/"+url.PathEscape(id), nil, nil, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// SearchVendors runs the free-text vendor search.
func (c *Client) SearchVendors(ctx context.Context, query string) ([]domain.User, error) {
	q := url.Values{}
	q.Set("q", query)

	var vendors []domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/search", q, nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// SearchVendorsWithFilters runs the filtered vendor search. Zero-valued
// filters are omitted from the query string.
func (c *Client) SearchVendorsWithFilters(ctx context.Context, f ports.VendorFilters) ([]domain.User, error) {
	q := url.Values{}
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.MinRating > 0 {
		q.Set("minRating", strconv.Itoa(f.MinRating))
	}
	if f.Staff != "" {
		q.Set("staff", f.Staff)
	}
	if f.CancellationPolicy != "" {
		q.Set("cancellationPolicy", f.CancellationPolicy)
	}

	var vendors []domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/vendor-search", q, nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}
