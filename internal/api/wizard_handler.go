// File path: internal/api/wizard_handler.go
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"

	"github.com/immensecng/cylinder-retest/internal/catalog"
	"github.com/immensecng/cylinder-retest/internal/common"
	"github.com/immensecng/cylinder-retest/internal/common/telemetry"
	"github.com/immensecng/cylinder-retest/internal/records"
	"github.com/immensecng/cylinder-retest/internal/web"
	"github.com/immensecng/cylinder-retest/internal/wizard"
)

var errUnknownAction = errors.New("unknown wizard action")

type wizardInput struct {
	Type  string `json:"type"`
	Marks string `json:"marks"`
}

type wizardView struct {
	wizard.State
	StepLabel string            `json:"step_label"`
	Terminal  bool              `json:"terminal"`
	Selected  *catalog.TypeInfo `json:"selected,omitempty"`
}

func newWizardView(state wizard.State) wizardView {
	view := wizardView{State: state, StepLabel: state.Step.Label(), Terminal: state.Terminal()}
	if info, ok := catalog.LookupType(state.SelectedType); ok {
		view.Selected = &info
	}
	return view
}

func applyWizardAction(ctrl *wizard.Controller, action string, in wizardInput) error {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "select":
		t, ok := catalog.ParseCylinderType(in.Type)
		if !ok || !catalog.IsIdentificationType(t) {
			return fmt.Errorf("cannot identify cylinder type %q", strings.TrimSpace(in.Type))
		}
		ctrl.SelectOption(t)
	case "advance":
		ctrl.Advance()
	case "retreat":
		ctrl.Retreat()
	case "reset":
		ctrl.Reset()
	case "marks":
		ctrl.SetMarks(in.Marks)
	default:
		return fmt.Errorf("%w %q", errUnknownAction, action)
	}
	return nil
}

// runWizardAction applies action to the request's session and returns the
// resulting state.
func runWizardAction(r *http.Request, action string, in wizardInput) (wizard.State, error) {
	var (
		state wizard.State
		err   error
	)
	sess := sessionFrom(r)
	sess.Do(func(ctrl *wizard.Controller, _ *records.Store) {
		from := ctrl.Step()
		err = applyWizardAction(ctrl, action, in)
		state = ctrl.Snapshot()
		if err == nil {
			common.Logger().Debug("wizard: transition", "session", sess.ID(), "action", action, "from", int(from), "to", int(state.Step))
		}
	})
	if err == nil {
		telemetry.RecordWizardTransition(action)
	}
	return state, err
}

func wizardErrorStatus(err error) int {
	if errors.Is(err, errUnknownAction) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	var state wizard.State
	sessionFrom(r).Do(func(ctrl *wizard.Controller, _ *records.Store) {
		state = ctrl.Snapshot()
	})
	page := web.NewIdentifyPage(s.content.Company, state)
	s.renderPage(w, r, http.StatusOK, web.PageIdentify, page)
}

func (s *Server) handleIdentifyAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	action := chi.URLParam(r, "action")
	in := wizardInput{Type: r.PostForm.Get("type"), Marks: r.PostForm.Get("marks")}
	if _, err := runWizardAction(r, action, in); err != nil {
		common.Logger().Warn("api: wizard action rejected", "action", action, "error", err)
		http.Error(w, err.Error(), wizardErrorStatus(err))
		return
	}
	http.Redirect(w, r, "/identify", http.StatusSeeOther)
}

func (s *Server) handleWizardState(w http.ResponseWriter, r *http.Request) {
	var state wizard.State
	sessionFrom(r).Do(func(ctrl *wizard.Controller, _ *records.Store) {
		state = ctrl.Snapshot()
	})
	writeJSON(w, http.StatusOK, newWizardView(state))
}

func (s *Server) handleWizardAction(w http.ResponseWriter, r *http.Request) {
	var in wizardInput
	if err := decodeJSON(w, r, &in); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	state, err := runWizardAction(r, chi.URLParam(r, "action"), in)
	if err != nil {
		writeError(w, wizardErrorStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, newWizardView(state))
}
