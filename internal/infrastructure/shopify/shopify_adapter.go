// Package shopify implements the storefront.OrderSource port against the
// Shopify Admin GraphQL API.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderman/backend/internal/domain/storefront"
)

// maxResponseSize is the maximum allowed response size from Shopify (10MB)
const maxResponseSize = 10 * 1024 * 1024

// ordersQueryTemplate pulls one page of orders created within a date range.
// The date range is baked into the query string; the cursor travels as a
// GraphQL variable.
const ordersQueryTemplate = `
query ($cursor: String) {
  orders(first: %d, after: $cursor, query: "created_at:>=%sT00:00:00Z created_at:<=%sT23:59:59Z") {
    pageInfo { hasNextPage }
    edges {
      cursor
      node {
        id name createdAt email
        totalPriceSet { shopMoney { amount currencyCode } }
        shippingLine { title code }
        lineItems(first: 20) {
          edges {
            node {
              name
              quantity
              variant { title }
              customAttributes { key value }
            }
          }
        }
        shippingAddress { name address1 city zip country phone }
      }
    }
  }
}
`

// ShopifyAdapter implements storefront.OrderSource against the Shopify
// Admin GraphQL API.
type ShopifyAdapter struct {
	config     *ShopifyConfig
	httpClient *http.Client
}

// NewShopifyAdapter creates a new Shopify adapter with the given
// configuration.
func NewShopifyAdapter(config *ShopifyConfig) (*ShopifyAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &ShopifyAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// PullOrders pulls one page of orders created within the request's date
// range. The caller drives the cursor until HasMore is false.
func (a *ShopifyAdapter) PullOrders(ctx context.Context, req *storefront.OrderPullRequest) (*storefront.OrderPage, error) {
	if req.PageSize < 1 || req.PageSize > storefront.MaxPageSize {
		req.PageSize = a.config.PageSize
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(ordersQueryTemplate, req.PageSize, req.StartDate, req.EndDate)

	variables := map[string]any{"cursor": nil}
	if req.Cursor != "" {
		variables["cursor"] = req.Cursor
	}

	respBody, err := a.doRequest(ctx, &graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}

	var resp OrdersQueryResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", storefront.ErrSourceInvalidResponse, err)
	}

	if resp.HasErrors() {
		return nil, fmt.Errorf("%w: %s", storefront.ErrSourceRequestFailed, resp.Errors[0].Message)
	}

	if resp.Data == nil {
		return nil, storefront.ErrSourceInvalidResponse
	}

	connection := resp.Data.Orders
	// A page claiming further results must carry at least one edge, or the
	// caller has no cursor to advance with.
	if connection.PageInfo.HasNextPage && len(connection.Edges) == 0 {
		return nil, fmt.Errorf("%w: page reports more orders but carries no edges", storefront.ErrSourceInvalidResponse)
	}

	page := &storefront.OrderPage{
		Orders:  make([]storefront.Order, 0, len(connection.Edges)),
		HasMore: connection.PageInfo.HasNextPage,
	}

	for _, edge := range connection.Edges {
		page.Orders = append(page.Orders, convertOrderNode(&edge.Node))
		page.NextCursor = edge.Cursor
	}

	return page, nil
}

// doRequest posts a GraphQL document to the shop's endpoint and returns the
// raw response body.
func (a *ShopifyAdapter) doRequest(ctx context.Context, body *graphqlRequest) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("shopify: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("shopify: failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", a.config.AccessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storefront.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("shopify: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", storefront.ErrSourceRequestFailed, resp.StatusCode)
	}

	return respBody, nil
}

// convertOrderNode converts a raw GraphQL order node to the domain model.
// Orders without a shipping address keep a nil address; normalization
// rejects them later.
func convertOrderNode(node *OrderNode) storefront.Order {
	order := storefront.Order{
		PlatformOrderID: node.ID,
		Name:            node.Name,
		Email:           node.Email,
	}

	if createdAt, err := time.Parse(time.RFC3339, node.CreatedAt); err == nil {
		order.CreatedAt = createdAt
	}

	if node.TotalPriceSet != nil {
		if amount, err := decimal.NewFromString(node.TotalPriceSet.ShopMoney.Amount); err == nil {
			order.TotalPrice = amount
		}
		order.Currency = node.TotalPriceSet.ShopMoney.CurrencyCode
	}

	if node.ShippingLine != nil {
		order.ShippingMethod = node.ShippingLine.Title
	}

	if node.ShippingAddress != nil {
		order.ShippingAddress = &storefront.Address{
			Name:     node.ShippingAddress.Name,
			Address1: node.ShippingAddress.Address1,
			City:     node.ShippingAddress.City,
			Zip:      node.ShippingAddress.Zip,
			Country:  node.ShippingAddress.Country,
			Phone:    node.ShippingAddress.Phone,
		}
	}

	for _, itemEdge := range node.LineItems.Edges {
		item := storefront.LineItem{
			Name:     itemEdge.Node.Name,
			Quantity: itemEdge.Node.Quantity,
		}
		if itemEdge.Node.Variant != nil {
			item.VariantTitle = itemEdge.Node.Variant.Title
		}
		for _, attr := range itemEdge.Node.CustomAttributes {
			item.CustomAttributes = append(item.CustomAttributes, storefront.CustomAttribute{
				Key:   attr.Key,
				Value: attr.Value,
			})
		}
		order.LineItems = append(order.LineItems, item)
	}

	return order
}
