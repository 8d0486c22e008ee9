package shopify

import (
	"fmt"
	"strings"

	"github.com/orderman/backend/internal/domain/storefront"
)

// ShopifyDefaultAPIVersion is the Shopify Admin API version used when the
// configuration does not pin one.
const ShopifyDefaultAPIVersion = "2024-04"

// Errors for Shopify configuration. Both wrap storefront.ErrSourceNotConfigured
// so callers can match on the domain sentinel without importing this package.
var (
	ErrShopifyConfigMissingShopURL = fmt.Errorf("%w: shop URL is required", storefront.ErrSourceNotConfigured)
	ErrShopifyConfigMissingToken   = fmt.Errorf("%w: access token is required", storefront.ErrSourceNotConfigured)
)

// ShopifyConfig holds configuration for the Shopify Admin GraphQL API.
type ShopifyConfig struct {
	// ShopURL is the shop's base URL, e.g. "https://myshop.myshopify.com"
	ShopURL string
	// AccessToken is the Admin API access token
	AccessToken string
	// APIVersion is the Admin API version, e.g. "2024-04"
	APIVersion string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// PageSize is the number of orders requested per page
	PageSize int
}

// NewShopifyConfig creates a new Shopify configuration with defaults.
func NewShopifyConfig(shopURL, accessToken string) *ShopifyConfig {
	return &ShopifyConfig{
		ShopURL:        shopURL,
		AccessToken:    accessToken,
		APIVersion:     ShopifyDefaultAPIVersion,
		TimeoutSeconds: 30,
		PageSize:       100,
	}
}

// Validate validates the configuration and applies defaults.
func (c *ShopifyConfig) Validate() error {
	if c.ShopURL == "" {
		return ErrShopifyConfigMissingShopURL
	}
	if c.AccessToken == "" {
		return ErrShopifyConfigMissingToken
	}
	if c.APIVersion == "" {
		c.APIVersion = ShopifyDefaultAPIVersion
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.PageSize < 1 || c.PageSize > storefront.MaxPageSize {
		c.PageSize = storefront.MaxPageSize
	}
	return nil
}

// Endpoint returns the GraphQL endpoint URL for the configured shop.
func (c *ShopifyConfig) Endpoint() string {
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", strings.TrimRight(c.ShopURL, "/"), c.APIVersion)
}
