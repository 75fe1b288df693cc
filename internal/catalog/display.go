// File path: internal/catalog/display.go
package catalog

// TypeInfo is the display metadata for a cylinder type.
type TypeInfo struct {
	Type          CylinderType `json:"value" yaml:"value"`
	Label         string       `json:"label" yaml:"label"`
	Color         string       `json:"color" yaml:"color"`
	Description   string       `json:"description" yaml:"description"`
	StandardColor string       `json:"standard_color" yaml:"standard_color"`
}

// Option is the display metadata for a status value.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var allTypes = []CylinderType{Oxygen, Acetylene, Nitrogen, Argon, Hydrogen, CarbonDioxide}

var identificationTypes = []CylinderType{Oxygen, Acetylene, Nitrogen, Argon}

var typeInfo = map[CylinderType]TypeInfo{
	Oxygen: {
		Type:          Oxygen,
		Label:         "Oxygen",
		Color:         "blue",
		Description:   "Medical and industrial use, supports combustion",
		StandardColor: "White",
	},
	Acetylene: {
		Type:          Acetylene,
		Label:         "Acetylene",
		Color:         "red",
		Description:   "Used for welding and cutting metals",
		StandardColor: "Maroon",
	},
	Nitrogen: {
		Type:          Nitrogen,
		Label:         "Nitrogen",
		Color:         "gray",
		Description:   "Inert gas for purging and blanketing",
		StandardColor: "Black",
	},
	Argon: {
		Type:          Argon,
		Label:         "Argon",
		Color:         "purple",
		Description:   "Used in welding and lighting",
		StandardColor: "Dark Green",
	},
	Hydrogen: {
		Type:          Hydrogen,
		Label:         "Hydrogen",
		Color:         "orange",
		Description:   "Fuel gas and reducing agent",
		StandardColor: "Red",
	},
	CarbonDioxide: {
		Type:          CarbonDioxide,
		Label:         "Carbon Dioxide",
		Color:         "green",
		Description:   "Used in beverages and fire suppression",
		StandardColor: "Gray",
	},
}

var statusOptions = []Option{
	{Value: string(StatusIdentified), Label: "Identified", Color: "blue"},
	{Value: string(StatusPendingDegassing), Label: "Pending Degassing", Color: "orange"},
	{Value: string(StatusDegassed), Label: "Degassed", Color: "green"},
	{Value: string(StatusFailed), Label: "Failed", Color: "red"},
}

var degassingOptions = []Option{
	{Value: string(DegassingNotStarted), Label: "Not Started", Color: "gray"},
	{Value: string(DegassingInProgress), Label: "In Progress", Color: "orange"},
	{Value: string(DegassingCompleted), Label: "Completed", Color: "green"},
	{Value: string(DegassingNotRequired), Label: "Not Required", Color: "blue"},
}

// CylinderTypes returns every cylinder type accepted by the record tracker,
// in display order.
func CylinderTypes() []TypeInfo {
	return infos(allTypes)
}

// IdentificationTypes returns the subset offered on the first wizard step.
func IdentificationTypes() []TypeInfo {
	return infos(identificationTypes)
}

// IsIdentificationType reports whether t is offered by the wizard.
func IsIdentificationType(t CylinderType) bool {
	for _, candidate := range identificationTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// LookupType returns the display metadata for t.
func LookupType(t CylinderType) (TypeInfo, bool) {
	info, ok := typeInfo[t]
	return info, ok
}

// StatusOptions returns the status display table.
func StatusOptions() []Option {
	return append([]Option(nil), statusOptions...)
}

// DegassingOptions returns the degassing status display table.
func DegassingOptions() []Option {
	return append([]Option(nil), degassingOptions...)
}

// StatusColor returns the tag colour for s, gray when unknown.
func StatusColor(s Status) string {
	return optionColor(statusOptions, string(s))
}

// DegassingColor returns the tag colour for s, gray when unknown.
func DegassingColor(s DegassingStatus) string {
	return optionColor(degassingOptions, string(s))
}

// TypeColor returns the tag colour for t, green when unknown.
func TypeColor(t CylinderType) string {
	if info, ok := typeInfo[t]; ok {
		return info.Color
	}
	return "green"
}

func optionColor(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Color
		}
	}
	return "gray"
}

func infos(types []CylinderType) []TypeInfo {
	out := make([]TypeInfo, 0, len(types))
	for _, t := range types {
		out = append(out, typeInfo[t])
	}
	return out
}
