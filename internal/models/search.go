package models

import (
	"fmt"
	"strings"
)

// Recognized sort orders for listing search. Anything else falls back to newest.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// Pagination defaults applied when page or limit are absent or malformed.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListingFilter holds the optional, independently composable search filters
// over published listings. A nil field means the predicate is omitted;
// malformed numeric input is dropped at parse time, never rejected.
type ListingFilter struct {
	Keywords     *string  // case-insensitive substring over title OR description
	PriceMin     *float64 // inclusive lower price bound
	PriceMax     *float64 // inclusive upper price bound
	Bedrooms     *int     // exact match
	Bathrooms    *int     // exact match
	PropertyType *string  // exact match
	City         *string  // case-insensitive substring
	Sort         string   // price_asc, price_desc or newest
	Page         int      // 1-based
	Limit        int      // page size
}

// CacheKey returns a stable, normalized key for this filter combination,
// used to cache search results. Two equal filters always produce equal keys.
func (f ListingFilter) CacheKey() string {
	var b strings.Builder
	b.WriteString("listing_search")

	appendPart := func(name, value string) {
		b.WriteString(":")
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(value)
	}

	if f.Keywords != nil {
		appendPart("kw", *f.Keywords)
	}
	if f.PriceMin != nil {
		appendPart("pmin", fmt.Sprintf("%g", *f.PriceMin))
	}
	if f.PriceMax != nil {
		appendPart("pmax", fmt.Sprintf("%g", *f.PriceMax))
	}
	if f.Bedrooms != nil {
		appendPart("bed", fmt.Sprintf("%d", *f.Bedrooms))
	}
	if f.Bathrooms != nil {
		appendPart("bath", fmt.Sprintf("%d", *f.Bathrooms))
	}
	if f.PropertyType != nil {
		appendPart("type", *f.PropertyType)
	}
	if f.City != nil {
		appendPart("city", *f.City)
	}
	appendPart("sort", f.Sort)
	appendPart("page", fmt.Sprintf("%d", f.Page))
	appendPart("limit", fmt.Sprintf("%d", f.Limit))

	return b.String()
}
