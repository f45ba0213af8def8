package validation

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/lkwun/formbuilder-go/models"
)

// Error messages match the renderer's inline errors so the client can show
// server-reported failures verbatim.
const (
	MsgRequired = "This field is required."
	MsgEmail    = "Please enter a valid email address."
	MsgNumber   = "Please enter a valid number."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateResponses checks submitted answers against a form's field
// definitions. Answers are keyed by field label, which is the submission
// wire format; checkbox answers arrive as a comma-joined string, so an
// empty string means nothing was checked. The result maps field labels to
// error messages; an empty map means the submission is acceptable.
func ValidateResponses(fields []models.Field, responses []models.FieldResponse) map[string]string {
	answers := make(map[string]string, len(responses))
	for _, r := range responses {
		answers[r.FieldLabel] = r.Answer
	}

	errs := make(map[string]string)
	for _, field := range fields {
		value := answers[field.Label]

		if field.Required && value == "" {
			errs[field.Label] = MsgRequired
			continue
		}
		if value == "" {
			continue
		}

		switch field.Type {
		case models.FieldEmail:
			if !emailPattern.MatchString(value) {
				errs[field.Label] = MsgEmail
			}
		case models.FieldNumber:
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				errs[field.Label] = MsgNumber
				continue
			}
			if field.Min != nil && n < *field.Min {
				errs[field.Label] = fmt.Sprintf("Minimum value is %s.", formatBound(*field.Min))
			}
			if field.Max != nil && n > *field.Max {
				errs[field.Label] = fmt.Sprintf("Maximum value is %s.", formatBound(*field.Max))
			}
		}
	}
	return errs
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
