package visitor

import (
	"fmt"
	"strings"
)

// ValidationError reports a single invalid check-in field. It is raised
// before anything touches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks check-in input. Name must be non-empty, purpose must be
// one of ValidPurposes, and contact must be a non-empty digit-only string.
func Validate(name string, purpose Purpose, contact string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}

	if !purpose.IsValid() {
		return &ValidationError{Field: "purpose", Message: fmt.Sprintf("unknown purpose %q", purpose)}
	}

	if contact == "" {
		return &ValidationError{Field: "contact", Message: "contact is required"}
	}
	for _, r := range contact {
		if r < '0' || r > '9' {
			return &ValidationError{Field: "contact", Message: "contact must contain digits only"}
		}
	}

	return nil
}
