// File path: internal/api/pages_handler.go
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/immensecng/cylinder-retest/internal/common"
	"github.com/immensecng/cylinder-retest/internal/common/telemetry"
	"github.com/immensecng/cylinder-retest/internal/site"
	"github.com/immensecng/cylinder-retest/internal/web"
)

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	_, end := telemetry.StartSpan(r.Context(), "render "+page)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.renderer.Render(w, page, data); err != nil {
		common.Logger().Error("api: render failed", "page", page, "error", err)
	}
	end("status", status)
	telemetry.RecordPageView(page)
}

func (s *Server) homePage(r *http.Request) web.HomePage {
	query := r.URL.Query()
	category := strings.ToLower(strings.TrimSpace(query.Get("category")))
	if category == "" {
		category = site.AllCategories
	}
	index, _ := strconv.Atoi(query.Get("t"))
	testimonial, idx := s.content.TestimonialAt(index)
	var selected *site.Image
	if id, err := strconv.Atoi(query.Get("image")); err == nil {
		if img, ok := s.content.Gallery.Find(id); ok {
			selected = &img
		}
	}
	return web.HomePage{
		Nav:              s.nav(web.PageHome),
		Content:          s.content,
		Category:         category,
		Categories:       s.content.Gallery.Categories(),
		Images:           s.content.Gallery.Filter(category),
		Selected:         selected,
		Testimonial:      testimonial,
		TestimonialIndex: idx,
		PrevTestimonial:  idx - 1,
		NextTestimonial:  idx + 1,
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, web.PageHome, s.homePage(r))
}

func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	inquiry := site.Inquiry{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Message: r.PostForm.Get("message"),
	}
	target, err := s.submitInquiry(r.Context(), inquiry)
	if err != nil {
		var invalid *site.InquiryError
		if !errors.As(err, &invalid) {
			http.Error(w, "unable to process inquiry", http.StatusInternalServerError)
			return
		}
		page := s.homePage(r)
		page.Inquiry = inquiry
		page.InquiryErrors = invalid.Fields
		s.renderPage(w, r, http.StatusUnprocessableEntity, web.PageHome, page)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type contactResponse struct {
	WhatsAppURL string `json:"whatsapp_url"`
}

type contactErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func (s *Server) handleContactJSON(w http.ResponseWriter, r *http.Request) {
	var inquiry site.Inquiry
	if err := decodeJSON(w, r, &inquiry); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	target, err := s.submitInquiry(r.Context(), inquiry)
	if err != nil {
		var invalid *site.InquiryError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusUnprocessableEntity, contactErrorResponse{Error: invalid.Error(), Fields: invalid.Fields})
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{WhatsAppURL: target})
}

// submitInquiry validates the inquiry, logs it when an inquiry log is
// configured, and returns the chat link to send the visitor to. A failed log
// write is reported but does not stop the hand-off to chat.
func (s *Server) submitInquiry(ctx context.Context, inquiry site.Inquiry) (string, error) {
	logger := common.Logger()
	if err := inquiry.Validate(); err != nil {
		telemetry.RecordInquiry(false)
		logger.Info("contact: inquiry rejected", "error", err)
		return "", err
	}
	inquiry = inquiry.Normalize()
	target := inquiry.WhatsAppURL(s.config.WhatsAppNumber)
	telemetry.RecordInquiry(true)
	if s.inquiries != nil {
		id, err := s.inquiries.RecordInquiry(ctx, inquiry, target)
		if err != nil {
			logger.Error("contact: failed to log inquiry", "error", err)
		} else {
			logger.Info("contact: inquiry logged", "id", id)
		}
	}
	return target, nil
}
