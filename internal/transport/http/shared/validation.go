package shared

import (
	"net/http"
	"strings"
	"time"

	"github.com/KevinGeorge100/koco-payroll/internal/transport/http/api"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{Field: field, Reason: reason})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

func (v *Validator) Enum(field, value string, allowed []string, reason string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	for _, candidate := range allowed {
		if trimmed == candidate {
			return
		}
	}
	v.Add(field, reason)
}

func (v *Validator) Date(field, raw string) (time.Time, bool) {
	parsed, err := ParseDate(strings.TrimSpace(raw))
	if err != nil || parsed.IsZero() {
		v.Add(field, "invalid date")
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) Ok() bool {
	return v == nil || len(v.issues) == 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil {
		return nil
	}
	return v.issues
}

func (v *Validator) Fail(w http.ResponseWriter, requestID string) {
	api.FailWithDetails(w, http.StatusBadRequest, "validation_failed", "request validation failed", v.Issues(), requestID)
}
