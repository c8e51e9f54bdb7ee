// Package compliance validates embosser ready-format output against the
// structural rules of the fixed page grid: exact line length, exact page
// length, the permitted 7-bit alphabet and page-break placement.
package compliance

import (
	"context"

	"github.com/wudi/braillekit/braille"
)

// Context is an alias for context.Context to allow for future expansion.
type Context = context.Context

// Severity separates hard structural violations from stylistic ones. Only
// errors make a document invalid; warnings surface cosmetic concerns a
// caller may still want to act on before embossing.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation represents a single compliance violation.
type Violation struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Severity    Severity `json:"severity"`
}

// Stats are computed on every validation regardless of pass or fail.
type Stats struct {
	TotalLines        int `json:"total_lines"`
	TotalPages        int `json:"total_pages"`
	LinesOverLength   int `json:"lines_over_length"`
	PagesWrongLength  int `json:"pages_wrong_length"`
	InvalidCharacters int `json:"invalid_characters"`
}

// Report details compliance status. Valid is true iff Errors is empty;
// warnings never affect it. Reports are never mutated after return.
type Report struct {
	Valid    bool        `json:"valid"`
	Standard string      `json:"standard"` // e.g., "BRF 40x25"
	Errors   []Violation `json:"errors"`
	Warnings []Violation `json:"warnings"`
	Stats    Stats       `json:"stats"`
}

// Validator checks ready-format content against the configured geometry.
type Validator interface {
	Validate(ctx Context, content string) (*Report, error)
}

// NewValidator returns the structural BRF validator for cfg.
func NewValidator(cfg braille.Config) Validator {
	return &brfValidator{cfg: cfg.Normalized()}
}
