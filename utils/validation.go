package utils

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// BindingError translates a binding failure into a BadRequest naming the
// FIRST missing or invalid field, e.g. "Name is required". Validation runs
// on the DTOs before anything touches persistence.
func BindingError(err error) *HTTPError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return BadRequest("invalid request body")
	}

	fe := verrs[0]
	field := spaceCamel(fe.Field())

	switch fe.Tag() {
	case "required":
		return BadRequest(fmt.Sprintf("%s is required", field))
	case "email":
		return BadRequest(fmt.Sprintf("%s must be a valid email address", field))
	case "min", "gte":
		return BadRequest(fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	case "max", "lte":
		return BadRequest(fmt.Sprintf("%s must be at most %s", field, fe.Param()))
	case "oneof":
		return BadRequest(fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")))
	default:
		return BadRequest(fmt.Sprintf("%s is invalid", field))
	}
}

// spaceCamel turns a struct field name into a display name: "ProductID"
// becomes "Product ID", "HeroImage" becomes "Hero image".
func spaceCamel(name string) string {
	var parts []string
	var cur []rune
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				parts = append(parts, string(cur))
				cur = cur[:0]
			}
		}
		cur = append(cur, r)
	}
	parts = append(parts, string(cur))

	for i, p := range parts {
		if i == 0 {
			continue
		}
		// keep acronyms (ID, URL) uppercase, lowercase ordinary words
		if len(p) > 1 && !isAllUpper(p) {
			parts[i] = strings.ToLower(p)
		}
	}
	return strings.Join(parts, " ")
}

func isAllUpper(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return len(s) > 0
}
