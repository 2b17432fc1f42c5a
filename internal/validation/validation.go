// Package validation enforces the structural rules applied to user
// mutation payloads before they reach storage. Checks run in a fixed
// order (presence, type, trim, non-empty, length bounds) and stop at
// the first violation so error messages stay deterministic.
package validation

import (
	"fmt"
	"strings"
)

// userFields lists the validated fields in declaration order. The
// order decides which violation is reported when several fields fail.
var userFields = []string{"username", "email", "password"}

// bounds describes the length limits of a field. Max == 0 means no
// upper bound.
type bounds struct {
	Min int
	Max int
}

// sizedFields is the per-field length table. Extending validation to a
// new field is a one-line change here.
var sizedFields = map[string]bounds{
	"username": {Min: 1},
	"email":    {Min: 6},
	"password": {Min: 8, Max: 72},
}

// Rule identifies which validation check a payload violated.
type Rule string

const (
	RuleMissing   Rule = "missing_field"
	RuleType      Rule = "invalid_field_type"
	RuleUntrimmed Rule = "untrimmed_field"
	RuleTooShort  Rule = "field_too_short"
	RuleTooLong   Rule = "field_too_long"
)

// Error is a structured validation failure. The HTTP layer derives a
// 422 response from it; Field and Rule keep it testable without string
// matching.
type Error struct {
	Field string
	Rule  Rule
	Limit int // min or max for the length rules, otherwise 0
}

func (e *Error) Error() string {
	switch e.Rule {
	case RuleMissing:
		return fmt.Sprintf("Missing '%s' in request body", e.Field)
	case RuleType:
		return fmt.Sprintf("Field: '%s' must be type String", e.Field)
	case RuleUntrimmed:
		return fmt.Sprintf("Field: '%s' cannot start or end with a whitespace!", e.Field)
	case RuleTooShort:
		return fmt.Sprintf("Field: '%s' must be at least %d characters long", e.Field, e.Limit)
	case RuleTooLong:
		return fmt.Sprintf("Field: '%s' must be at most %d characters long", e.Field, e.Limit)
	default:
		return fmt.Sprintf("Field: '%s' is invalid", e.Field)
	}
}

// CreateInput is a validated user-creation payload. All fields are
// guaranteed non-empty, trimmed and within bounds.
type CreateInput struct {
	Username string
	Email    string
	Password string
}

// UpdateInput is a validated partial update. Nil means the field was
// absent from the payload.
type UpdateInput struct {
	Username *string
	Email    *string
	Password *string
}

// ValidateCreate checks a raw JSON payload against the create rules:
// username, email and password are all mandatory.
func ValidateCreate(payload map[string]any) (CreateInput, error) {
	for _, f := range userFields {
		if _, ok := payload[f]; !ok {
			return CreateInput{}, &Error{Field: f, Rule: RuleMissing}
		}
	}

	values, err := checkPresentFields(payload, true)
	if err != nil {
		return CreateInput{}, err
	}

	return CreateInput{
		Username: values["username"],
		Email:    values["email"],
		Password: values["password"],
	}, nil
}

// ValidateUpdate checks a raw JSON payload against the update rules:
// every field is optional, but a present field must satisfy the same
// rules as on create.
func ValidateUpdate(payload map[string]any) (UpdateInput, error) {
	values, err := checkPresentFields(payload, false)
	if err != nil {
		return UpdateInput{}, err
	}

	var in UpdateInput
	if v, ok := values["username"]; ok {
		in.Username = &v
	}
	if v, ok := values["email"]; ok {
		in.Email = &v
	}
	if v, ok := values["password"]; ok {
		in.Password = &v
	}
	return in, nil
}

// checkPresentFields runs the type, trim, non-empty and length checks
// over the fields present in the payload, in declaration order, and
// returns the surviving string values. The non-empty check only
// applies on create, where all fields are required.
func checkPresentFields(payload map[string]any, required bool) (map[string]string, error) {
	values := make(map[string]string, len(userFields))

	// type check first so the later string operations are safe
	for _, f := range userFields {
		raw, ok := payload[f]
		if !ok {
			continue
		}
		s, isString := raw.(string)
		if !isString {
			return nil, &Error{Field: f, Rule: RuleType}
		}
		values[f] = s
	}

	for _, f := range userFields {
		s, ok := values[f]
		if !ok {
			continue
		}
		if strings.TrimSpace(s) != s {
			return nil, &Error{Field: f, Rule: RuleUntrimmed}
		}
	}

	if required {
		for _, f := range userFields {
			if s, ok := values[f]; ok && len(strings.TrimSpace(s)) == 0 {
				return nil, &Error{Field: f, Rule: RuleTooShort, Limit: 1}
			}
		}
	}

	for _, f := range userFields {
		s, ok := values[f]
		if !ok {
			continue
		}
		b := sizedFields[f]
		n := len(strings.TrimSpace(s))
		if b.Min > 0 && n < b.Min {
			return nil, &Error{Field: f, Rule: RuleTooShort, Limit: b.Min}
		}
		if b.Max > 0 && n > b.Max {
			return nil, &Error{Field: f, Rule: RuleTooLong, Limit: b.Max}
		}
	}

	return values, nil
}
