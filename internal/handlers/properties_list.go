package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
)

// ListingSearcher defines the interface that the search service must implement.
type ListingSearcher interface {
	Search(ctx context.Context, filter models.ListingFilter) ([]models.ListingSummary, error)
}

// parseListingFilter builds a search filter from untrusted query parameters.
// Numeric parameters are parsed permissively: a malformed value drops the
// predicate instead of rejecting the request, matching client expectations.
func parseListingFilter(q url.Values) models.ListingFilter {
	filter := models.ListingFilter{
		Sort:  q.Get("sort"),
		Page:  models.DefaultPage,
		Limit: models.DefaultLimit,
	}

	if v := q.Get("keywords"); v != "" {
		filter.Keywords = &v
	}
	if v := q.Get("price_min"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMin = &n
		}
	}
	if v := q.Get("price_max"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMax = &n
		}
	}
	if v := q.Get("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Bedrooms = &n
		}
	}
	if v := q.Get("bathrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Bathrooms = &n
		}
	}
	if v := q.Get("property_type"); v != "" {
		filter.PropertyType = &v
	}
	if v := q.Get("city"); v != "" {
		filter.City = &v
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Page = n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}

	return filter
}

// NewListPropertiesHandler returns an HTTP handler for the listing search.
// @Summary Search published listings
// @Description Filtered, sorted, paginated published listings. Each row carries the primary image URL. No total count is returned.
// @Tags properties
// @Produce json
// @Param keywords query string false "Substring match on title or description"
// @Param price_min query number false "Inclusive lower price bound"
// @Param price_max query number false "Inclusive upper price bound"
// @Param bedrooms query int false "Exact bedroom count"
// @Param bathrooms query int false "Exact bathroom count"
// @Param property_type query string false "Exact property type"
// @Param city query string false "Substring match on city"
// @Param sort query string false "price_asc, price_desc or newest"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {array} models.ListingSummary "One page of results"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/properties [get]
func NewListPropertiesHandler(svc ListingSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := parseListingFilter(r.URL.Query())

		rows, err := svc.Search(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, rows)
	}
}
