package fulfillment

import "strings"

// ---------------------------------------------------------------------------
// ProductionCategory
// ---------------------------------------------------------------------------

// ProductionCategory routes a line item to the workshop that fabricates it.
type ProductionCategory string

const (
	// CategoryTan handles plush (NV) items
	CategoryTan ProductionCategory = "Tan"
	// CategoryJayden handles tricot (niubi) items
	CategoryJayden ProductionCategory = "Jayden"
	// CategoryOther is the fallback for everything else (blankets, stickers, ...)
	CategoryOther ProductionCategory = "Other"
)

// IsValid returns true if the category is one of the known workshops
func (c ProductionCategory) IsValid() bool {
	switch c {
	case CategoryTan, CategoryJayden, CategoryOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of ProductionCategory
func (c ProductionCategory) String() string {
	return string(c)
}

// Categories lists all production categories in a fixed processing order.
func Categories() []ProductionCategory {
	return []ProductionCategory{CategoryTan, CategoryJayden, CategoryOther}
}

// ---------------------------------------------------------------------------
// Variant Lookup Tables
// ---------------------------------------------------------------------------

// variantRenames maps platform material names to internal variant codes.
// Keys are lowercase; lookups are case-insensitive.
var variantRenames = map[string]string{
	"2-way tricot":         "niubi",
	"2 way tricot":         "niubi",
	"premium 2 way tricot": "niubi plus",
	"plush":                "nv",
}

// materialCategories maps internal variant codes to production categories.
// Keys are lowercase; lookups are case-insensitive so that codes like "nv"
// and "NV" resolve to the same workshop.
var materialCategories = map[string]ProductionCategory{
	"niubi":      CategoryJayden,
	"niubi plus": CategoryJayden,
	"nv":         CategoryTan,
	"blanket":    CategoryOther,
	"sticker":    CategoryOther,
}

// RenameVariant converts a platform material name to its internal variant
// code. Unknown materials pass through unchanged, case preserved.
func RenameVariant(material string) string {
	if code, ok := variantRenames[strings.ToLower(material)]; ok {
		return code
	}
	return material
}

// CategoryOf resolves a variant code to its production category. Unknown
// codes fall back to CategoryOther.
func CategoryOf(code string) ProductionCategory {
	if category, ok := materialCategories[strings.ToLower(code)]; ok {
		return category
	}
	return CategoryOther
}
