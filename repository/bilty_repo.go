package repository

import (
	"context"

	"transportbilty/models"
)

// ListParams describes one page of the bilty listing.
// Page is 1-based; Search matches as a case-insensitive substring across the
// searchable text columns, OR-combined. An empty Search disables filtering.
type ListParams struct {
	Page          int
	PageSize      int
	SortField     string
	SortAscending bool
	Search        string
}

type BiltyRepository interface {
	CreateBilty(ctx context.Context, bilty *models.Bilty) error
	GetBiltyByID(ctx context.Context, id int64) (*models.Bilty, error)

	// LatestByField returns the newest record (by created_at, id breaking
	// ties) whose field equals value exactly, or nil when none matches.
	LatestByField(ctx context.Context, field, value string) (*models.Bilty, error)

	// MostRecentBilty returns the newest record overall, or nil on an empty
	// table. Used to seed the standing charge defaults on a fresh form.
	MostRecentBilty(ctx context.Context) (*models.Bilty, error)

	// Suggest returns distinct historical values of field starting with
	// prefix, case-insensitive, ascending, at most limit of them.
	Suggest(ctx context.Context, field, prefix string, limit int) ([]string, error)

	// ListBilty returns one page plus the exact count of all records matching
	// the search (not just the page).
	ListBilty(ctx context.Context, p ListParams) ([]*models.Bilty, int64, error)

	DeleteBilty(ctx context.Context, id int64) error
}

// Field names arrive from the network and get spliced into queries, so both
// backends check them against these whitelists first.

var suggestFields = map[string]bool{
	"gr_no":                true,
	"city_code":            true,
	"city":                 true,
	"transport_name":       true,
	"transport_gst":        true,
	"transport_mobile":     true,
	"consignor_name":       true,
	"consignor_gst":        true,
	"consignor_mobile":     true,
	"consignee_name":       true,
	"consignee_gst":        true,
	"consignee_mobile":     true,
	"invoice_no":           true,
	"eway_bill_aadhar_pan": true,
}

var sortFields = map[string]bool{
	"gr_no":          true,
	"bilty_date":     true,
	"city":           true,
	"transport_name": true,
	"consignor_name": true,
	"consignee_name": true,
	"content":        true,
	"total_amount":   true,
	"created_at":     true,
}

// Columns the list search runs over.
var searchFields = []string{
	"gr_no", "city", "transport_name", "consignor_name", "consignee_name", "content",
}

// IsSuggestField reports whether field may be used for suggestions and
// latest-by-field lookups.
func IsSuggestField(field string) bool { return suggestFields[field] }

// IsSortField reports whether field may be used to sort the listing.
func IsSortField(field string) bool { return sortFields[field] }
