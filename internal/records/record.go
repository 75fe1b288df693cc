// File path: internal/records/record.go

// Package records keeps the append-only list of cylinders tracked through
// identification and degassing, and derives the summary counts shown above
// the tracker table.
package records

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/immensecng/cylinder-retest/internal/catalog"
)

// DateLayout is the calendar date format used for record dates.
const DateLayout = "2006-01-02"

// Record is one cylinder tracking entry.
type Record struct {
	ID              string                  `json:"cylinder_id"`
	Type            catalog.CylinderType    `json:"type"`
	Status          catalog.Status          `json:"status"`
	DegassingStatus catalog.DegassingStatus `json:"degassing_status"`
	Date            time.Time               `json:"-"`
	Technician      string                  `json:"technician"`
	Notes           string                  `json:"notes,omitempty"`
}

// DateString formats the record date as YYYY-MM-DD.
func (r Record) DateString() string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format(DateLayout)
}

// MarshalJSON renders the date as a calendar day.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(struct {
		plain
		Date string `json:"date"`
	}{plain: plain(r), Date: r.DateString()})
}

// Candidate carries the raw form values for a new record.
type Candidate struct {
	Type       string `json:"type"`
	Date       string `json:"date"`
	Technician string `json:"technician"`
	Notes      string `json:"notes"`
}

// FieldError describes one rejected candidate field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by Add when required fields are missing or
// malformed. It lists every failing field.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid record"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

type validated struct {
	cylinder   catalog.CylinderType
	date       time.Time
	technician string
	notes      string
}

func (c Candidate) validate() (validated, error) {
	var (
		out  validated
		errs []FieldError
	)
	if strings.TrimSpace(c.Type) == "" {
		errs = append(errs, FieldError{Field: "type", Message: "Please select cylinder type"})
	} else if t, ok := catalog.ParseCylinderType(c.Type); !ok {
		errs = append(errs, FieldError{Field: "type", Message: fmt.Sprintf("unknown cylinder type %q", strings.TrimSpace(c.Type))})
	} else {
		out.cylinder = t
	}

	if trimmed := strings.TrimSpace(c.Date); trimmed == "" {
		errs = append(errs, FieldError{Field: "date", Message: "Please select date"})
	} else if parsed, err := time.Parse(DateLayout, trimmed); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "date must be YYYY-MM-DD"})
	} else {
		out.date = parsed
	}

	out.technician = strings.TrimSpace(c.Technician)
	if out.technician == "" {
		errs = append(errs, FieldError{Field: "technician", Message: "Please enter technician name"})
	}
	out.notes = strings.TrimSpace(c.Notes)

	if len(errs) > 0 {
		return validated{}, &ValidationError{Fields: errs}
	}
	return out, nil
}
