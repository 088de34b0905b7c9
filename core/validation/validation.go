// Package validation provides the violation-list error type returned for
// malformed update requests. Validation runs eagerly and completely
// before any write, so a request either yields a full violation list or
// reaches the reconcilers untouched.
package validation

import "fmt"

// Violation codes.
const (
	CodeRequired           = "required"
	CodeIdentifierNotGiven = "uniqueIdentifierNotGiven"
	CodePriceDataRequired  = "priceDataRequired"
	CodeCurrencyNotFound   = "currencyNotFound"
	CodeOutOfRange         = "outOfRange"
	CodeInvalidType        = "invalidType"
)

// Violation is one field-level validation failure.
type Violation struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Violations is the collected failure set for one request. It implements
// error so services can return it through the normal error path.
type Violations []Violation

// Add appends a violation.
func (v *Violations) Add(path, code, message string) {
	*v = append(*v, Violation{Path: path, Code: code, Message: message})
}

// OrNil returns nil when no violation was collected, otherwise the list
// itself as an error.
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Error implements the error interface.
func (v Violations) Error() string {
	if len(v) == 1 {
		return fmt.Sprintf("validation failed: %s (%s)", v[0].Path, v[0].Code)
	}
	return fmt.Sprintf("validation failed with %d violations", len(v))
}
