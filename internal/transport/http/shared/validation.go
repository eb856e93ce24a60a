package shared

import (
	"net/http"
	"strings"

	"empreg/internal/domain/registry"
	"empreg/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}

// FailRecordValidation writes every missing field from a record validation
// failure so the caller sees the complete list in one response.
func FailRecordValidation(w http.ResponseWriter, requestID string, verr *registry.ValidationError) {
	issues := make([]ValidationIssue, 0, len(verr.Missing))
	for _, label := range verr.Missing {
		issues = append(issues, ValidationIssue{
			Field:  label,
			Reason: "required",
		})
	}
	FailValidation(w, requestID, issues)
}

// FieldTrim normalizes a posted form value.
func FieldTrim(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}
