// File path: internal/api/catalog_handler.go
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/immensecng/cylinder-retest/internal/catalog"
	"github.com/immensecng/cylinder-retest/internal/common"
)

type testingParameterView struct {
	Type catalog.CylinderType `json:"type"`
	catalog.TestingParameter
}

type catalogResponse struct {
	CylinderTypes       []catalog.TypeInfo      `json:"cylinder_types"`
	IdentificationTypes []catalog.TypeInfo      `json:"identification_types"`
	Statuses            []catalog.Option        `json:"statuses"`
	DegassingStatuses   []catalog.Option        `json:"degassing_statuses"`
	ProcedureSteps      []catalog.ProcedureStep `json:"procedure_steps"`
	CurrentStep         int                     `json:"current_step"`
	SafetyGuidelines    []string                `json:"safety_guidelines"`
	RequiredEquipment   []string                `json:"required_equipment"`
	TestingParameters   []testingParameterView  `json:"testing_parameters"`
	ColorCodes          []string                `json:"color_codes"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{
		CylinderTypes:       catalog.CylinderTypes(),
		IdentificationTypes: catalog.IdentificationTypes(),
		Statuses:            catalog.StatusOptions(),
		DegassingStatuses:   catalog.DegassingOptions(),
		ProcedureSteps:      catalog.DegassingSteps(),
		CurrentStep:         catalog.CurrentProcedureStep,
		SafetyGuidelines:    catalog.SafetyGuidelines(),
		RequiredEquipment:   catalog.RequiredEquipment(),
		ColorCodes:          catalog.ColorCodes(),
	}
	for _, info := range resp.CylinderTypes {
		if param, ok := catalog.TestingParameterFor(info.Type); ok {
			resp.TestingParameters = append(resp.TestingParameters, testingParameterView{Type: info.Type, TestingParameter: param})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.content)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := 0
	if raw := strings.TrimSpace(query.Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}
	entries := common.FilterEntries(common.LogEntries(), query.Get("level"), query.Get("component"), limit)
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}
