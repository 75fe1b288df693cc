// File path: internal/web/render_test.go
package web

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/immensecng/cylinder-retest/internal/catalog"
	"github.com/immensecng/cylinder-retest/internal/records"
	"github.com/immensecng/cylinder-retest/internal/site"
	"github.com/immensecng/cylinder-retest/internal/wizard"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRenderHome(t *testing.T) {
	r := newRenderer(t)
	content := site.Default()
	testimonial, idx := content.TestimonialAt(0)
	page := HomePage{
		Nav:              Nav{Active: PageHome, Company: content.Company},
		Content:          content,
		Category:         site.AllCategories,
		Categories:       content.Gallery.Categories(),
		Images:           content.Gallery.Filter(site.AllCategories),
		Testimonial:      testimonial,
		TestimonialIndex: idx,
		Inquiry:          site.Inquiry{Name: "<script>"},
		InquiryErrors:    map[string]string{"phone": "Please enter a valid 10-digit phone number"},
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, PageHome, page); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{content.Company.Brand, content.Hero.Title, testimonial.Name, "Please enter a valid 10-digit phone number", `action="/contact"`} {
		if !strings.Contains(out, want) {
			t.Errorf("home page missing %q", want)
		}
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("expected inquiry values to be escaped")
	}
}

func TestRenderIdentifySteps(t *testing.T) {
	r := newRenderer(t)
	company := site.Default().Company
	cases := []struct {
		state wizard.State
		want  string
	}{
		{wizard.State{Step: wizard.StepSelectType}, `action="/identify/select"`},
		{wizard.State{Step: wizard.StepVerifyDetail, SelectedType: catalog.Argon}, "Dark Green"},
		{wizard.State{Step: wizard.StepConfirmation, SelectedType: catalog.Oxygen, Marks: "SN-42"}, "SN-42"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := r.Render(&buf, PageIdentify, NewIdentifyPage(company, tc.state)); err != nil {
			t.Fatalf("Render step %d: %v", tc.state.Step, err)
		}
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("step %d output missing %q", tc.state.Step, tc.want)
		}
	}
}

func TestRenderDegassingTabs(t *testing.T) {
	r := newRenderer(t)
	company := site.Default().Company
	store := records.NewStore(records.WithRecords(records.SeedRecords()...))

	page := NewDegassingPage(company, TabIdentification)
	page.Summary = store.Summary()
	page.Page = store.Page(1, records.DefaultPageSize)
	page.FieldErrors = FieldErrorMap([]records.FieldError{{Field: "technician", Message: "Please enter technician name"}})
	var buf bytes.Buffer
	if err := r.Render(&buf, PageDegassing, page); err != nil {
		t.Fatalf("Render identification tab: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"CYL-2023-001", "Mike Johnson", "33%", "Please enter technician name"} {
		if !strings.Contains(out, want) {
			t.Errorf("identification tab missing %q", want)
		}
	}

	buf.Reset()
	if err := r.Render(&buf, PageDegassing, NewDegassingPage(company, "process")); err != nil {
		t.Fatalf("Render process tab: %v", err)
	}
	out = buf.String()
	for _, want := range []string{"Safety Guidelines", "Oxygen analyzer", "Certification"} {
		if !strings.Contains(out, want) {
			t.Errorf("process tab missing %q", want)
		}
	}
}

func TestNewDegassingPageDefaultsTab(t *testing.T) {
	page := NewDegassingPage(site.Company{}, "bogus")
	if page.Tab != TabIdentification {
		t.Fatalf("Tab = %q", page.Tab)
	}
	if len(page.Parameters) != 4 {
		t.Fatalf("expected 4 testing parameters, got %d", len(page.Parameters))
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r := newRenderer(t)
	if err := r.Render(&bytes.Buffer{}, "missing", nil); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}

func TestStaticContainsStylesheet(t *testing.T) {
	if _, err := fs.Stat(Static(), "site.css"); err != nil {
		t.Fatalf("stat site.css: %v", err)
	}
}
