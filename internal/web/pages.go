// File path: internal/web/pages.go
package web

import (
	"github.com/immensecng/cylinder-retest/internal/catalog"
	"github.com/immensecng/cylinder-retest/internal/records"
	"github.com/immensecng/cylinder-retest/internal/site"
	"github.com/immensecng/cylinder-retest/internal/wizard"
)

// Nav marks the active header link.
type Nav struct {
	Active  string
	Company site.Company
}

// HomePage is the marketing landing page.
type HomePage struct {
	Nav
	Content          site.Content
	Category         string
	Categories       []string
	Images           []site.Image
	Selected         *site.Image
	Testimonial      site.Testimonial
	TestimonialIndex int
	PrevTestimonial  int
	NextTestimonial  int
	Inquiry          site.Inquiry
	InquiryErrors    map[string]string
}

// IdentifyPage is the identification wizard.
type IdentifyPage struct {
	Nav
	State          wizard.State
	Steps          []wizard.Step
	Types          []catalog.TypeInfo
	Selected       catalog.TypeInfo
	ColorCodes     []string
	SafetyReminder string
}

// ParameterRow pairs a cylinder type with its residual gas limit.
type ParameterRow struct {
	Type      catalog.TypeInfo
	Parameter catalog.TestingParameter
}

// DegassingPage is the tracker with its identification and procedure tabs.
type DegassingPage struct {
	Nav
	Tab         string
	Summary     records.Summary
	Page        records.Page
	Candidate   records.Candidate
	FieldErrors map[string]string
	Types       []catalog.TypeInfo
	Steps       []catalog.ProcedureStep
	CurrentStep int
	Safety      []string
	Equipment   []string
	Parameters  []ParameterRow
}

// Degassing tabs.
const (
	TabIdentification = "identification"
	TabProcess        = "process"
)

// NewDegassingPage fills the static procedure sections of the tracker.
func NewDegassingPage(company site.Company, tab string) DegassingPage {
	if tab != TabProcess {
		tab = TabIdentification
	}
	page := DegassingPage{
		Nav:         Nav{Active: PageDegassing, Company: company},
		Tab:         tab,
		Types:       catalog.CylinderTypes(),
		Steps:       catalog.DegassingSteps(),
		CurrentStep: catalog.CurrentProcedureStep,
		Safety:      catalog.SafetyGuidelines(),
		Equipment:   catalog.RequiredEquipment(),
	}
	for _, info := range catalog.CylinderTypes() {
		if param, ok := catalog.TestingParameterFor(info.Type); ok {
			page.Parameters = append(page.Parameters, ParameterRow{Type: info, Parameter: param})
		}
	}
	return page
}

// NewIdentifyPage builds the wizard view for a state snapshot.
func NewIdentifyPage(company site.Company, state wizard.State) IdentifyPage {
	page := IdentifyPage{
		Nav:            Nav{Active: PageIdentify, Company: company},
		State:          state,
		Steps:          wizard.Steps(),
		Types:          catalog.IdentificationTypes(),
		ColorCodes:     catalog.ColorCodes(),
		SafetyReminder: catalog.SafetyReminder,
	}
	if info, ok := catalog.LookupType(state.SelectedType); ok {
		page.Selected = info
	}
	return page
}

// FieldErrorMap flattens a validation error for the form template.
func FieldErrorMap(fields []records.FieldError) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}
