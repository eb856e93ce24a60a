package shared

import (
	"net/http"
	"strconv"

	"empreg/internal/domain/query"
)

// ParseListSpec reads the list query parameters into a query.Spec. Absent or
// malformed values fall back to defaults rather than failing the request.
func ParseListSpec(r *http.Request, defaultPageSize int) query.Spec {
	values := r.URL.Query()

	spec := query.Spec{
		SearchTerm:    values.Get("search"),
		Nationality:   values.Get("nationality"),
		Degree:        values.Get("degree"),
		ExpiryStatus:  values.Get("expiry"),
		SortKey:       values.Get("sortKey"),
		SortDirection: values.Get("sortDir"),
		PageNumber:    1,
		PageSize:      defaultPageSize,
	}

	if raw := values.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			spec.PageNumber = v
		}
	}
	if raw := values.Get("pageSize"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 500 {
			spec.PageSize = v
		}
	}
	return spec
}
