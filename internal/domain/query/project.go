// Package query turns a collection snapshot and a filter/sort/page spec into
// a deterministic projection. It keeps no state of its own.
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"empreg/internal/domain/registry"
)

// DefaultPageSize matches the list views' fixed page length.
const DefaultPageSize = 50

const (
	ExpiryValid   = "valid"
	ExpiryExpired = "expired"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// Spec describes one projection request. Zero values mean "no filter",
// unsorted, first page, default page size.
type Spec struct {
	SearchTerm    string
	Nationality   string
	Degree        string
	ExpiryStatus  string
	SortKey       string
	SortDirection string
	PageNumber    int
	PageSize      int
}

// Projection is one page of the filtered, sorted collection plus the total
// match count before pagination.
type Projection struct {
	Page       []registry.Record `json:"page"`
	TotalCount int               `json:"totalCount"`
}

// Project filters, sorts and pages a collection snapshot. Filters are ANDed
// in the order search, nationality, degree, expiry status. The sort is
// stable; ties keep their prior relative order. today must already have the
// time-of-day zeroed (registry.Today).
func Project(records []registry.Record, spec Spec, today time.Time) Projection {
	filtered := make([]registry.Record, 0, len(records))
	term := strings.ToLower(spec.SearchTerm)
	for _, rec := range records {
		if term != "" && !matchesSearch(rec, term) {
			continue
		}
		if spec.Nationality != "" && rec.Nationality != spec.Nationality {
			continue
		}
		if spec.Degree != "" && rec.Degree != spec.Degree {
			continue
		}
		if spec.ExpiryStatus != "" {
			expired := rec.HasExpiredDocument(today)
			if spec.ExpiryStatus == ExpiryValid && expired {
				continue
			}
			if spec.ExpiryStatus == ExpiryExpired && !expired {
				continue
			}
		}
		filtered = append(filtered, rec)
	}

	if spec.SortKey != "" {
		desc := spec.SortDirection == DirectionDesc
		sort.SliceStable(filtered, func(i, j int) bool {
			cmp := compareRecords(filtered[i], filtered[j], spec.SortKey)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	total := len(filtered)
	size := spec.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := spec.PageNumber
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Projection{Page: filtered[start:end], TotalCount: total}
}

func matchesSearch(rec registry.Record, term string) bool {
	return strings.Contains(strings.ToLower(rec.NameAr), term) ||
		strings.Contains(strings.ToLower(rec.NameEn), term) ||
		strings.Contains(strings.ToLower(rec.EmployeeID), term)
}

// compareRecords resolves the comparison key per sort key and returns a
// standard three-way result. Nationality and degree compare by display label
// rather than raw code; date keys compare as epoch milliseconds with missing
// values sorting before all real dates.
func compareRecords(a, b registry.Record, key string) int {
	switch key {
	case "nationality":
		return strings.Compare(registry.LabelAr(a.Nationality, registry.Nationalities), registry.LabelAr(b.Nationality, registry.Nationalities))
	case "degree":
		return strings.Compare(registry.LabelAr(a.Degree, registry.Degrees), registry.LabelAr(b.Degree, registry.Degrees))
	case "submissionDate":
		return compareInt64(epochMillis(a.SubmissionDate), epochMillis(b.SubmissionDate))
	case "deletedAt":
		return compareInt64(epochMillis(a.DeletedAt), epochMillis(b.DeletedAt))
	}
	return strings.Compare(fieldString(a, key), fieldString(b, key))
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// epochMillis treats a missing timestamp as 0 so records without one sort
// before all real dates.
func epochMillis(ts *time.Time) int64 {
	if ts == nil {
		return 0
	}
	return ts.UnixMilli()
}

func fieldString(rec registry.Record, key string) string {
	switch key {
	case "employeeId":
		return rec.EmployeeID
	case "nameAr":
		return rec.NameAr
	case "nameEn":
		return rec.NameEn
	case "maritalStatus":
		return rec.MaritalStatus
	case "dateOfBirth":
		return rec.DateOfBirth
	case "specialization":
		return rec.Specialization
	case "phone":
		return rec.Phone
	case "email":
		return rec.Email
	case "passportNumber":
		return rec.PassportNumber
	case "passportExpiry":
		return rec.PassportExpiry
	case "emiratesId":
		return rec.EmiratesID
	case "emiratesExpiry":
		return rec.EmiratesExpiry
	case "gccId":
		return rec.GCCID
	case "gccIdExpiry":
		return rec.GCCIDExpiry
	case "licenseType":
		return rec.LicenseType
	case "licenseExpiry":
		return rec.LicenseExpiry
	case "emergencyName":
		return rec.EmergencyName
	case "declarationAccepted":
		return strconv.FormatBool(rec.DeclarationAccepted)
	}
	return ""
}
