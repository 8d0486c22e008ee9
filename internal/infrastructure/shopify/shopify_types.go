package shopify

// GraphQL wire types for the Shopify Admin API orders query. Only fields
// that the sync pipeline consumes are mapped.

// graphqlRequest is the JSON body posted to the GraphQL endpoint.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// OrdersQueryResponse is the top-level GraphQL response envelope.
type OrdersQueryResponse struct {
	Data   *OrdersQueryData `json:"data"`
	Errors []GraphQLError   `json:"errors,omitempty"`
}

// HasErrors returns true when the response carries GraphQL errors.
func (r *OrdersQueryResponse) HasErrors() bool {
	return len(r.Errors) > 0
}

// GraphQLError is one entry of the GraphQL errors array.
type GraphQLError struct {
	Message string `json:"message"`
}

// OrdersQueryData holds the orders connection.
type OrdersQueryData struct {
	Orders OrderConnection `json:"orders"`
}

// OrderConnection is the paginated orders result.
type OrderConnection struct {
	PageInfo PageInfo    `json:"pageInfo"`
	Edges    []OrderEdge `json:"edges"`
}

// PageInfo carries the pagination termination flag.
type PageInfo struct {
	HasNextPage bool `json:"hasNextPage"`
}

// OrderEdge pairs an order node with its pagination cursor.
type OrderEdge struct {
	Cursor string    `json:"cursor"`
	Node   OrderNode `json:"node"`
}

// OrderNode is one raw order as returned by Shopify.
type OrderNode struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	CreatedAt       string              `json:"createdAt"`
	Email           string              `json:"email"`
	TotalPriceSet   *MoneySet           `json:"totalPriceSet"`
	ShippingLine    *ShippingLine       `json:"shippingLine"`
	LineItems       LineItemConnection  `json:"lineItems"`
	ShippingAddress *ShippingAddressRaw `json:"shippingAddress"`
}

// MoneySet wraps an amount in the shop's currency.
type MoneySet struct {
	ShopMoney Money `json:"shopMoney"`
}

// Money is a decimal amount with its currency code.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// ShippingLine describes the chosen shipping method.
type ShippingLine struct {
	Title string `json:"title"`
	Code  string `json:"code"`
}

// LineItemConnection wraps the order's line item edges.
type LineItemConnection struct {
	Edges []LineItemEdge `json:"edges"`
}

// LineItemEdge wraps one line item node.
type LineItemEdge struct {
	Node LineItemNode `json:"node"`
}

// LineItemNode is one raw line item.
type LineItemNode struct {
	Name             string               `json:"name"`
	Quantity         int                  `json:"quantity"`
	Variant          *Variant             `json:"variant"`
	CustomAttributes []CustomAttributeRaw `json:"customAttributes"`
}

// Variant carries the slash-delimited option title.
type Variant struct {
	Title string `json:"title"`
}

// CustomAttributeRaw is a buyer-supplied key/value pair.
type CustomAttributeRaw struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ShippingAddressRaw is the raw shipping address node.
type ShippingAddressRaw struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Phone    string `json:"phone"`
}
