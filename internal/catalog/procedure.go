// File path: internal/catalog/procedure.go
package catalog

// ProcedureStep is one stage of the standard degassing procedure.
type ProcedureStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// TestingParameter is the residual gas limit checked before certification.
type TestingParameter struct {
	MaxPPM     int    `json:"max_ppm"`
	TestMethod string `json:"test_method"`
}

// CurrentProcedureStep is the index highlighted on the procedure tab.
const CurrentProcedureStep = 2

var degassingSteps = []ProcedureStep{
	{Title: "Identification", Description: "Cylinder type and contents verified", Icon: "file-text"},
	{Title: "Preparation", Description: "Area prepared for degassing", Icon: "safety-certificate"},
	{Title: "Purging", Description: "Initial gas purging completed", Icon: "history"},
	{Title: "Testing", Description: "Residual gas levels tested", Icon: "check-circle"},
	{Title: "Certification", Description: "Degassing certified complete", Icon: "safety-certificate"},
}

var safetyGuidelines = []string{
	"Always wear appropriate PPE (gloves, goggles, respirator)",
	"Work in well-ventilated areas only",
	"Never attempt to degass cylinders without proper training",
	"Use gas detectors to monitor environment",
	"Keep ignition sources away from degassing area",
	"Follow proper lockout/tagout procedures",
	"Have emergency equipment readily available",
}

var requiredEquipment = []string{
	"Gas detector",
	"Proper ventilation system",
	"PPE (gloves, goggles, respirator)",
	"Pressure relief valves",
	"Neutralization chemicals (if applicable)",
	"Fire extinguisher",
	"Emergency shower/eye wash station",
}

var testingParameters = map[CylinderType]TestingParameter{
	Oxygen:    {MaxPPM: 100, TestMethod: "Oxygen analyzer"},
	Acetylene: {MaxPPM: 50, TestMethod: "Combustible gas detector"},
	Nitrogen:  {MaxPPM: 1000, TestMethod: "Oxygen deficiency monitor"},
	Hydrogen:  {MaxPPM: 25, TestMethod: "Combustible gas detector"},
}

// SafetyReminder is shown on the wizard's confirmation step.
const SafetyReminder = "Always handle gas cylinders with care. Store upright in a well-ventilated area, " +
	"keep away from heat sources, and ensure valves are properly closed when not in use."

// DegassingSteps returns the five procedure stages in order.
func DegassingSteps() []ProcedureStep {
	return append([]ProcedureStep(nil), degassingSteps...)
}

// SafetyGuidelines returns the degassing safety checklist.
func SafetyGuidelines() []string {
	return append([]string(nil), safetyGuidelines...)
}

// RequiredEquipment returns the equipment list for a degassing bay.
func RequiredEquipment() []string {
	return append([]string(nil), requiredEquipment...)
}

// TestingParameterFor returns the residual gas limit for t, if one is
// defined.
func TestingParameterFor(t CylinderType) (TestingParameter, bool) {
	param, ok := testingParameters[t]
	return param, ok
}

// ColorCodes lists "Type - Colour" pairs for the common cylinder reference
// card.
func ColorCodes() []string {
	out := make([]string, 0, len(allTypes))
	for _, t := range allTypes {
		if t == CarbonDioxide {
			continue
		}
		info := typeInfo[t]
		out = append(out, info.Label+" - "+info.StandardColor)
	}
	return out
}
