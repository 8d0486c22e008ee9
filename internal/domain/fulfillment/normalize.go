package fulfillment

import (
	"fmt"
	"strings"

	"github.com/orderman/backend/internal/domain/storefront"
)

// FreeShipping is the shipping line title that carries no surcharge and is
// never printed on folders or address files.
const FreeShipping = "Free Shipping"

// PersonalizationKey is the custom-attribute key the storefront uses for
// buyer-entered personalization text. The leading space is part of the key
// as configured on the platform.
const PersonalizationKey = " Personalisation-Text"

// defaultSize is assumed when a variant title has no size segment.
const defaultSize = "150x50cm"

// NormalizedItem is one line item reduced to the fields the folder planner
// needs. Every raw line item maps to exactly one NormalizedItem.
type NormalizedItem struct {
	// DisplayName is the sanitized product name without the variant suffix
	DisplayName string
	// Size is the sanitized size segment, suffixed with the shipping
	// method unless the order ships free
	Size string
	// VariantCode is the internal material variant code
	VariantCode string
	// Category is the workshop that fabricates this item
	Category ProductionCategory
	// Quantity is the ordered quantity
	Quantity int
}

// NormalizeLineItem reduces a raw line item to a NormalizedItem. The variant
// title is split on "/" into material and size segments; the material runs
// through the rename table and the category lookup.
func NormalizeLineItem(item storefront.LineItem, shippingMethod string) NormalizedItem {
	parts := strings.Split(item.VariantTitle, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	material := parts[0]
	if material == "" {
		material = "Unknown"
	}

	size := defaultSize
	if len(parts) > 1 {
		size = Sanitize(parts[1])
	}
	if shippingMethod != "" && shippingMethod != FreeShipping {
		size += " " + shippingMethod
	}

	displayName := Sanitize(strings.TrimSpace(strings.SplitN(item.Name, " - ", 2)[0]))

	code := RenameVariant(material)

	return NormalizedItem{
		DisplayName: displayName,
		Size:        size,
		VariantCode: code,
		Category:    CategoryOf(code),
		Quantity:    item.Quantity,
	}
}

// OrderContext is the normalized view of one order, alive only for the
// duration of planning and emitting that order's folders.
type OrderContext struct {
	// CustomerName is the sanitized customer name, prefixed with
	// "{n}X " when the order's maximum line quantity n exceeds one
	CustomerName string
	// ShippingMethod is the title of the chosen shipping line
	ShippingMethod string
	// Email is the buyer's contact email
	Email string
	// Address is the order's shipping address
	Address storefront.Address
	// Personalization is the first personalization text found across the
	// order's line items, empty when none is present
	Personalization string
	// MaxQuantity is the largest quantity across the order's line items
	MaxQuantity int
	// Items maps each used category to its items in platform order.
	// Categories without items are absent from the map.
	Items map[ProductionCategory][]NormalizedItem
}

// UsedCategories returns the categories that have at least one item, in the
// fixed processing order.
func (c *OrderContext) UsedCategories() []ProductionCategory {
	used := make([]ProductionCategory, 0, len(c.Items))
	for _, category := range Categories() {
		if len(c.Items[category]) > 0 {
			used = append(used, category)
		}
	}
	return used
}

// BuildOrderContext normalizes one raw order. The quantity prefix uses the
// maximum quantity across the order's items; the personalization scan stops
// at the first line item that carries the personalization key.
func BuildOrderContext(order storefront.Order) (*OrderContext, error) {
	if order.ShippingAddress == nil {
		return nil, fmt.Errorf("%w: order %s", storefront.ErrMissingShippingAddress, order.Name)
	}

	octx := &OrderContext{
		ShippingMethod: order.ShippingMethod,
		Email:          order.Email,
		Address:        *order.ShippingAddress,
		MaxQuantity:    1,
		Items:          make(map[ProductionCategory][]NormalizedItem),
	}

	personalized := false
	for _, item := range order.LineItems {
		normalized := NormalizeLineItem(item, order.ShippingMethod)
		octx.Items[normalized.Category] = append(octx.Items[normalized.Category], normalized)

		if item.Quantity > octx.MaxQuantity {
			octx.MaxQuantity = item.Quantity
		}

		if !personalized {
			for _, attr := range item.CustomAttributes {
				if attr.Key == PersonalizationKey {
					octx.Personalization = attr.Value
					personalized = true
					break
				}
			}
		}
	}

	octx.CustomerName = Sanitize(order.ShippingAddress.Name)
	if octx.MaxQuantity > 1 {
		octx.CustomerName = fmt.Sprintf("%dX %s", octx.MaxQuantity, octx.CustomerName)
	}

	return octx, nil
}
