// File path: internal/api/records_handler.go
package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/immensecng/cylinder-retest/internal/common"
	"github.com/immensecng/cylinder-retest/internal/common/telemetry"
	"github.com/immensecng/cylinder-retest/internal/records"
	"github.com/immensecng/cylinder-retest/internal/web"
	"github.com/immensecng/cylinder-retest/internal/wizard"
)

type recordListResponse struct {
	Records []records.Record `json:"records"`
	Count   int              `json:"count"`
}

type recordErrorResponse struct {
	Error  string               `json:"error"`
	Fields []records.FieldError `json:"fields"`
}

// addRecord runs Add against the request's session store and reports the
// page the new record landed on.
func addRecord(r *http.Request, candidate records.Candidate) (records.Record, int, error) {
	var (
		rec  records.Record
		last int
		err  error
	)
	sess := sessionFrom(r)
	sess.Do(func(_ *wizard.Controller, store *records.Store) {
		rec, err = store.Add(candidate)
		last = (store.Len() + records.DefaultPageSize - 1) / records.DefaultPageSize
	})
	telemetry.RecordRecordAdd(err == nil)
	if err != nil {
		common.Logger().Info("records: candidate rejected", "session", sess.ID(), "error", err)
		return records.Record{}, 0, err
	}
	common.Logger().Info("records: cylinder added", "session", sess.ID(), "id", rec.ID, "type", rec.Type)
	return rec, last, nil
}

func (s *Server) degassingPage(r *http.Request, tab string, pageNum int) web.DegassingPage {
	page := web.NewDegassingPage(s.content.Company, tab)
	sessionFrom(r).Do(func(_ *wizard.Controller, store *records.Store) {
		page.Summary = store.Summary()
		page.Page = store.Page(pageNum, records.DefaultPageSize)
	})
	return page
}

func (s *Server) handleDegassing(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pageNum, _ := strconv.Atoi(query.Get("page"))
	page := s.degassingPage(r, strings.ToLower(strings.TrimSpace(query.Get("tab"))), pageNum)
	s.renderPage(w, r, http.StatusOK, web.PageDegassing, page)
}

func (s *Server) handleRecordForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	candidate := records.Candidate{
		Type:       r.PostForm.Get("type"),
		Date:       r.PostForm.Get("date"),
		Technician: r.PostForm.Get("technician"),
		Notes:      r.PostForm.Get("notes"),
	}
	_, last, err := addRecord(r, candidate)
	if err != nil {
		var invalid *records.ValidationError
		if !errors.As(err, &invalid) {
			http.Error(w, "unable to add cylinder", http.StatusInternalServerError)
			return
		}
		page := s.degassingPage(r, web.TabIdentification, 1)
		page.Candidate = candidate
		page.FieldErrors = web.FieldErrorMap(invalid.Fields)
		s.renderPage(w, r, http.StatusUnprocessableEntity, web.PageDegassing, page)
		return
	}
	http.Redirect(w, r, "/degassing?tab=identification&page="+strconv.Itoa(last), http.StatusSeeOther)
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	field := strings.TrimSpace(query.Get("field"))
	var (
		list []records.Record
		err  error
	)
	sessionFrom(r).Do(func(_ *wizard.Controller, store *records.Store) {
		if field == "" {
			list = store.List()
			return
		}
		list, err = store.FilterByField(field, query.Get("value"))
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if list == nil {
		list = []records.Record{}
	}
	writeJSON(w, http.StatusOK, recordListResponse{Records: list, Count: len(list)})
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var candidate records.Candidate
	if err := decodeJSON(w, r, &candidate); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rec, _, err := addRecord(r, candidate)
	if err != nil {
		var invalid *records.ValidationError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusUnprocessableEntity, recordErrorResponse{Error: invalid.Error(), Fields: invalid.Fields})
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleRecordSummary(w http.ResponseWriter, r *http.Request) {
	var summary records.Summary
	sessionFrom(r).Do(func(_ *wizard.Controller, store *records.Store) {
		summary = store.Summary()
	})
	writeJSON(w, http.StatusOK, summary)
}
