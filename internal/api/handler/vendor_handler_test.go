package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/planora/planora-app/internal/core/domain"
)

func TestVendorHandler_ByID(t *testing.T) {
	h := NewVendorHandler(DefaultFixtures())
	c, rec := newTestContext(http.MethodGet, "/vendor/ven-1", "")
	c.SetParamNames("id")
	c.SetParamValues("ven-1")

	if err := h.ByID(c); err != nil {
		t.Fatalf("ByID: %v", err)
	}

	var vendor domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &vendor); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if vendor.ID != "ven-1" || vendor.PhotographyDetails == nil {
		t.Errorf("unexpected vendor: %+v", vendor)
	}
}

func TestVendorHandler_ByID_OrganizerIsNotAVendor(t *testing.T) {
	h := NewVendorHandler(DefaultFixtures())
	c, _ := newTestContext(http.MethodGet, "/vendor/org-1", "")
	c.SetParamNames("id")
	c.SetParamValues("org-1")

	if err := h.ByID(c); !errors.Is(err, domain.ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got: %v", err)
	}
}

func TestVendorHandler_Search_CaseInsensitive(t *testing.T) {
	h := NewVendorHandler(DefaultFixtures())
	c, rec := newTestContext(http.MethodGet, "/auth/search?q=STUDIO", "")

	if err := h.Search(c); err != nil {
		t.Fatalf("Search: %v", err)
	}

	var vendors []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &vendors); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(vendors) != 1 || vendors[0].ID != "ven-1" {
		t.Errorf("unexpected result: %+v", vendors)
	}
}

func TestVendorHandler_SearchWithFilters(t *testing.T) {
	h := NewVendorHandler(DefaultFixtures())

	cases := map[string]struct {
		query string
		want  []string
	}{
		"by category": {"categoryId=cat-2", []string{"ven-2"}},
		"by city":     {"city=Lahore", []string{"ven-1"}},
		"by policy":   {"cancellationPolicy=NON-REFUNDABLE", []string{"ven-2"}},
		"no match":    {"categoryId=cat-1&city=Karachi", nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodGet, "/auth/vendor-search?"+tc.query, "")
			if err := h.SearchWithFilters(c); err != nil {
				t.Fatalf("SearchWithFilters: %v", err)
			}

			var vendors []domain.User
			if err := json.Unmarshal(rec.Body.Bytes(), &vendors); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(vendors) != len(tc.want) {
				t.Fatalf("expected %d vendors, got: %+v", len(tc.want), vendors)
			}
			for i, id := range tc.want {
				if vendors[i].ID != id {
					t.Errorf("vendor %d: expected %s, got %s", i, id, vendors[i].ID)
				}
			}
		})
	}
}
