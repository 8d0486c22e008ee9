package storefront

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Storefront Errors
// ---------------------------------------------------------------------------

var (
	// ErrSourceNotConfigured indicates the storefront credentials are missing
	ErrSourceNotConfigured = errors.New("storefront: source not configured")
	// ErrSourceUnavailable indicates the storefront could not be reached
	ErrSourceUnavailable = errors.New("storefront: source temporarily unavailable")
	// ErrSourceRequestFailed indicates the storefront rejected the request
	ErrSourceRequestFailed = errors.New("storefront: source request failed")
	// ErrSourceInvalidResponse indicates the storefront returned a malformed payload
	ErrSourceInvalidResponse = errors.New("storefront: invalid source response")

	// ErrInvalidDateRange indicates the requested date range is malformed
	ErrInvalidDateRange = errors.New("storefront: invalid date range")
	// ErrMissingShippingAddress indicates an order arrived without a shipping address
	ErrMissingShippingAddress = errors.New("storefront: order has no shipping address")
)

// ---------------------------------------------------------------------------
// Value Objects
// ---------------------------------------------------------------------------

// Address is the shipping address attached to a storefront order.
type Address struct {
	Name     string
	Address1 string
	City     string
	Zip      string
	Country  string
	Phone    string
}

// CustomAttribute is a free-form key/value pair attached to a line item,
// e.g. a personalization text entered by the buyer at checkout.
type CustomAttribute struct {
	Key   string
	Value string
}

// LineItem is a single line of a storefront order.
type LineItem struct {
	// Name is the product display name, commonly "<Product> - <Variant>"
	Name string
	// Quantity is the ordered quantity (always >= 1 on the platform)
	Quantity int
	// VariantTitle is the slash-delimited option string, e.g. "Material/Size"
	VariantTitle string
	// CustomAttributes holds buyer-supplied attributes in platform order
	CustomAttributes []CustomAttribute
}

// Order is one raw order as returned by the storefront platform.
type Order struct {
	// PlatformOrderID is the opaque order ID on the platform
	PlatformOrderID string
	// Name is the human-facing order number, e.g. "#1001"
	Name string
	// Email is the buyer's contact email
	Email string
	// TotalPrice is the total amount the buyer paid
	TotalPrice decimal.Decimal
	// Currency is the payment currency
	Currency string
	// ShippingMethod is the title of the chosen shipping line
	ShippingMethod string
	// ShippingAddress is nil when the platform returned no address
	ShippingAddress *Address
	// LineItems holds the order lines in platform order
	LineItems []LineItem
	// CreatedAt is when the order was placed on the platform
	CreatedAt time.Time
}

// ---------------------------------------------------------------------------
// Order Source Port
// ---------------------------------------------------------------------------

// MaxPageSize is the largest page the storefront API serves per request.
const MaxPageSize = 100

// OrderPullRequest describes one page of an order pull from the storefront.
type OrderPullRequest struct {
	// StartDate is the inclusive start of the range, "2006-01-02"
	StartDate string
	// EndDate is the inclusive end of the range, "2006-01-02"
	EndDate string
	// Cursor is the opaque pagination cursor, empty for the first page
	Cursor string
	// PageSize is the number of orders per page
	PageSize int
}

// Validate checks the request's date range. Paging defaults are the
// source implementation's concern.
func (r *OrderPullRequest) Validate() error {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return ErrInvalidDateRange
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}

// OrderPage is one page of orders pulled from the storefront.
type OrderPage struct {
	// Orders holds the page's orders in platform order
	Orders []Order
	// HasMore is true when further pages exist
	HasMore bool
	// NextCursor is the cursor for the next page, valid when HasMore is true
	NextCursor string
}

// OrderSource is the port to the remote storefront platform. Implementations
// return a single page per call; callers drive the cursor until HasMore is
// false and must not assume a page count in advance.
type OrderSource interface {
	// PullOrders pulls one page of orders created within the request's
	// date range ([start 00:00:00Z, end 23:59:59Z], inclusive).
	PullOrders(ctx context.Context, req *OrderPullRequest) (*OrderPage, error)
}
