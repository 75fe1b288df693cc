// File path: internal/records/predicate.go
package records

import (
	"fmt"
	"strings"

	"github.com/immensecng/cylinder-retest/internal/catalog"
)

// Predicate selects records.
type Predicate func(Record) bool

// DegassingIs matches records in the given degassing state.
func DegassingIs(status catalog.DegassingStatus) Predicate {
	return func(r Record) bool { return r.DegassingStatus == status }
}

// StatusIs matches records with the given identification status.
func StatusIs(status catalog.Status) Predicate {
	return func(r Record) bool { return r.Status == status }
}

// TypeIs matches records of the given cylinder type.
func TypeIs(t catalog.CylinderType) Predicate {
	return func(r Record) bool { return r.Type == t }
}

// TechnicianIs matches records handled by the named technician, ignoring
// case.
func TechnicianIs(name string) Predicate {
	name = strings.TrimSpace(name)
	return func(r Record) bool { return strings.EqualFold(r.Technician, name) }
}

// AnyOf matches when at least one predicate matches.
func AnyOf(preds ...Predicate) Predicate {
	return func(r Record) bool {
		for _, p := range preds {
			if p != nil && p(r) {
				return true
			}
		}
		return false
	}
}

// Completed matches records whose degassing is finished.
var Completed Predicate = DegassingIs(catalog.DegassingCompleted)

// Pending matches records that still need action: degassing underway or
// flagged for degassing.
var Pending Predicate = AnyOf(DegassingIs(catalog.DegassingInProgress), StatusIs(catalog.StatusPendingDegassing))

// FieldPredicate builds a predicate for a named record field. Supported
// fields are type, status, degassingStatus and technician.
func FieldPredicate(field, value string) (Predicate, error) {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "type":
		t, ok := catalog.ParseCylinderType(value)
		if !ok {
			return nil, fmt.Errorf("unknown cylinder type %q", value)
		}
		return TypeIs(t), nil
	case "status":
		s, ok := catalog.ParseStatus(value)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", value)
		}
		return StatusIs(s), nil
	case "degassingstatus", "degassing_status":
		s, ok := catalog.ParseDegassingStatus(value)
		if !ok {
			return nil, fmt.Errorf("unknown degassing status %q", value)
		}
		return DegassingIs(s), nil
	case "technician":
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("technician value required")
		}
		return TechnicianIs(value), nil
	default:
		return nil, fmt.Errorf("unsupported filter field %q", field)
	}
}
