// File path: internal/catalog/types.go

// Package catalog holds the enumerations used by the identification wizard
// and the degassing tracker, together with the display metadata the pages
// render for each value. Transition and validation logic only ever depends
// on the enum types; the metadata tables are looked up separately.
package catalog

import "strings"

// CylinderType names the gas a cylinder is rated for.
type CylinderType string

const (
	Oxygen        CylinderType = "Oxygen"
	Acetylene     CylinderType = "Acetylene"
	Nitrogen      CylinderType = "Nitrogen"
	Argon         CylinderType = "Argon"
	Hydrogen      CylinderType = "Hydrogen"
	CarbonDioxide CylinderType = "Carbon Dioxide"
)

// String returns the display value of the cylinder type.
func (t CylinderType) String() string {
	return string(t)
}

// Valid reports whether t is one of the known cylinder types.
func (t CylinderType) Valid() bool {
	_, ok := typeInfo[t]
	return ok
}

// Status is the identification status of a tracked cylinder.
type Status string

const (
	StatusIdentified       Status = "Identified"
	StatusPendingDegassing Status = "Pending Degassing"
	StatusDegassed         Status = "Degassed"
	StatusFailed           Status = "Failed"
)

func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is a member of the status set.
func (s Status) Valid() bool {
	for _, info := range statusOptions {
		if info.Value == string(s) {
			return true
		}
	}
	return false
}

// DegassingStatus tracks where a cylinder is in the degassing procedure.
type DegassingStatus string

const (
	DegassingNotStarted  DegassingStatus = "Not Started"
	DegassingInProgress  DegassingStatus = "In Progress"
	DegassingCompleted   DegassingStatus = "Completed"
	DegassingNotRequired DegassingStatus = "Not Required"
)

func (s DegassingStatus) String() string {
	return string(s)
}

// Valid reports whether s is a member of the degassing status set.
func (s DegassingStatus) Valid() bool {
	for _, info := range degassingOptions {
		if info.Value == string(s) {
			return true
		}
	}
	return false
}

// ParseCylinderType matches value against the known types, ignoring case and
// surrounding whitespace.
func ParseCylinderType(value string) (CylinderType, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	for _, t := range allTypes {
		if strings.EqualFold(string(t), trimmed) {
			return t, true
		}
	}
	return "", false
}

// ParseStatus matches value against the status set.
func ParseStatus(value string) (Status, bool) {
	trimmed := strings.TrimSpace(value)
	for _, info := range statusOptions {
		if strings.EqualFold(info.Value, trimmed) {
			return Status(info.Value), true
		}
	}
	return "", false
}

// ParseDegassingStatus matches value against the degassing status set.
func ParseDegassingStatus(value string) (DegassingStatus, bool) {
	trimmed := strings.TrimSpace(value)
	for _, info := range degassingOptions {
		if strings.EqualFold(info.Value, trimmed) {
			return DegassingStatus(info.Value), true
		}
	}
	return "", false
}
