package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/timesheet-api/internal/calendar"
	"github.com/timesheet-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Required checks that a value is present and non-blank after trimming
func Required(value, field string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

// Email checks email shape. Empty values are allowed; pair with
// Required when the field is mandatory.
func Email(value, field string) *ValidationError {
	if value == "" {
		return nil
	}
	if !emailRegex.MatchString(value) {
		return &ValidationError{Field: field, Message: "invalid email format", Value: value}
	}
	return nil
}

// URL checks that a value parses as an absolute URL. Empty values are
// allowed.
func URL(value, field string) *ValidationError {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ValidationError{Field: field, Message: "invalid URL (e.g. https://example.com)", Value: value}
	}
	return nil
}

// NumericRange checks that a string value is numeric and within the
// given bounds. Empty values are allowed. Nil bounds are unchecked.
func NumericRange(value string, min, max *float64, field string) *ValidationError {
	if value == "" {
		return nil
	}
	num, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must be a number", field), Value: value}
	}
	if min != nil && num < *min {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must be at least %g", field, *min), Value: value}
	}
	if max != nil && num > *max {
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %g", field, *max), Value: value}
	}
	return nil
}

// Rule describes the checks applied to one form field
type Rule struct {
	Required bool
	Email    bool
	URL      bool
	Min      *float64
	Max      *float64
}

// ValidateForm applies the given rules to a flat map of field values
// and collects every failure. Non-required fields that are empty pass
// all other checks.
func ValidateForm(values map[string]string, rules map[string]Rule) []ValidationError {
	var errors []ValidationError

	for field, rule := range rules {
		value := values[field]

		if rule.Required {
			if err := Required(value, field); err != nil {
				errors = append(errors, *err)
				continue
			}
		}
		if rule.Email {
			if err := Email(value, field); err != nil {
				errors = append(errors, *err)
			}
		}
		if rule.URL {
			if err := URL(value, field); err != nil {
				errors = append(errors, *err)
			}
		}
		if rule.Min != nil || rule.Max != nil {
			if err := NumericRange(value, rule.Min, rule.Max, field); err != nil {
				errors = append(errors, *err)
			}
		}
	}

	return errors
}

// ProjectResolver reports whether a project composite key resolves
// against the current catalog
type ProjectResolver func(ref models.ProjectRef) bool

// ValidateSubmission validates a week submission: a Monday week start,
// at least one entry, and per entry a resolvable project reference,
// positive integer hours, and no duplicate project within the week.
func ValidateSubmission(sub *models.WeekSubmission, resolves ProjectResolver) []ValidationError {
	var errors []ValidationError

	if sub.WeekStart == "" {
		errors = append(errors, ValidationError{Field: "week_start", Message: "week_start is required"})
	} else if !calendar.IsWeekStart(sub.WeekStart) {
		errors = append(errors, ValidationError{Field: "week_start", Message: "week_start must be an ISO date falling on a Monday", Value: sub.WeekStart})
	}

	if len(sub.Entries) == 0 {
		errors = append(errors, ValidationError{Field: "entries", Message: "at least one entry is required"})
	}

	seen := make(map[string]bool, len(sub.Entries))
	for i, entry := range sub.Entries {
		errors = append(errors, validateEntry(entry, i, resolves)...)

		key := entry.Ref().Key()
		if entry.ProjectID != "" && seen[key] {
			errors = append(errors, ValidationError{
				Field:   entryField(i, "project_id"),
				Message: "project already has an entry in this week",
				Value:   key,
			})
		}
		seen[key] = true
	}

	return errors
}

func validateEntry(entry models.EntryInput, index int, resolves ProjectResolver) []ValidationError {
	var errors []ValidationError

	if entry.ProjectType == "" {
		errors = append(errors, ValidationError{Field: entryField(index, "project_type"), Message: "project_type is required"})
	} else if !models.ValidProjectTypes[entry.ProjectType] {
		errors = append(errors, ValidationError{
			Field:   entryField(index, "project_type"),
			Message: "project_type must be one of: deal, pitch, idea, internal",
			Value:   entry.ProjectType,
		})
	}

	if entry.ProjectID == "" {
		errors = append(errors, ValidationError{Field: entryField(index, "project_id"), Message: "project_id is required"})
	} else if entry.ProjectType != "" && resolves != nil && !resolves(entry.Ref()) {
		errors = append(errors, ValidationError{
			Field:   entryField(index, "project_id"),
			Message: "referenced project does not exist",
			Value:   entry.Ref().Key(),
		})
	}

	if entry.Hours <= 0 {
		errors = append(errors, ValidationError{
			Field:   entryField(index, "hours"),
			Message: "hours must be a positive integer",
			Value:   entry.Hours,
		})
	}

	return errors
}

func entryField(index int, field string) string {
	return fmt.Sprintf("entries[%d].%s", index, field)
}
