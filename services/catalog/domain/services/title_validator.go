// Package services contains stateless domain services for the catalog bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateTitle enforces hygiene rules for catalog titles beyond the
// structural non-empty check done by the aggregate constructors.
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - At most 255 characters
func ValidateTitle(title string) error {
	if title != strings.TrimSpace(title) {
		return fmt.Errorf("title must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be only whitespace")
	}

	if len(title) > 255 {
		return fmt.Errorf("title must be at most 255 characters")
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return fmt.Errorf("title must not contain control characters")
		}
	}

	if strings.Contains(title, "  ") {
		return fmt.Errorf("title must not contain consecutive spaces")
	}

	return nil
}
