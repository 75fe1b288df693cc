// File path: internal/site/site_test.go
package site

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryCategoriesInFirstSeenOrder(t *testing.T) {
	g := Default().Gallery
	assert.Equal(t, []string{"all", "facility", "process", "equipment", "team", "results"}, g.Categories())
}

func TestGalleryFilter(t *testing.T) {
	g := Default().Gallery
	assert.Len(t, g.Filter(""), 6)
	assert.Len(t, g.Filter("all"), 6)

	process := g.Filter("Process")
	require.Len(t, process, 2)
	assert.Equal(t, "Certification Process", process[0].Alt)
	assert.Equal(t, "Testing Procedure", process[1].Alt)

	assert.Empty(t, g.Filter("drones"))

	img, ok := g.Find(4)
	require.True(t, ok)
	assert.Equal(t, "team", img.Category)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Equipment", CategoryLabel("equipment"))
	assert.Equal(t, "All", CategoryLabel("all"))
}

func TestTestimonialCarouselWraps(t *testing.T) {
	c := Default()
	first, idx := c.TestimonialAt(0)
	assert.Equal(t, 0, idx)
	assert.Contains(t, first.Name, "Sanjay")

	wrapped, idx := c.TestimonialAt(3)
	assert.Equal(t, 0, idx)
	assert.Equal(t, first, wrapped)

	last, idx := c.TestimonialAt(-1)
	assert.Equal(t, 2, idx)
	assert.Contains(t, last.Name, "Ravindra")

	_, idx = Content{}.TestimonialAt(5)
	assert.Zero(t, idx)
}

func TestInquiryValidate(t *testing.T) {
	ok := Inquiry{Name: "Meera", Email: "meera@example.com", Phone: "9876543210", Message: "Fleet of 12 cars"}
	require.NoError(t, ok.Validate())

	err := Inquiry{Email: "not-an-email", Phone: "98765", Message: " "}.Validate()
	var ierr *InquiryError
	require.True(t, errors.As(err, &ierr))
	assert.Len(t, ierr.Fields, 4)
	assert.Contains(t, ierr.Fields["phone"], "10 digits")
	assert.True(t, strings.HasPrefix(ierr.Error(), "invalid inquiry: name:"))

	err = Inquiry{Name: "A", Email: "Meera <meera@example.com>", Phone: "98765432a0", Message: "x"}.Validate()
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Fields, "email")
	assert.Contains(t, ierr.Fields, "phone")
}

func TestWhatsAppMessage(t *testing.T) {
	q := Inquiry{Name: " Ravi ", Email: "ravi@example.com", Phone: "9876543210", Message: "Need retest"}
	want := "New Inquiry from Website:\n\n" +
		"*Name:* Ravi\n" +
		"*Email:* ravi@example.com\n" +
		"*Phone:* 9876543210\n" +
		"*Message:* Need retest\n\n" +
		"_Sent via Immense CNG Website_"
	assert.Equal(t, want, q.WhatsAppMessage())
}

func TestWhatsAppURLRoundTrips(t *testing.T) {
	q := Inquiry{Name: "Ravi & Co", Email: "ravi@example.com", Phone: "9876543210", Message: "50% off? é"}
	link := q.WhatsAppURL("+91 86574-74631")
	require.True(t, strings.HasPrefix(link, "https://wa.me/918657474631?text="))

	encoded := strings.TrimPrefix(link, "https://wa.me/918657474631?text=")
	assert.NotContains(t, encoded, " ")
	assert.Contains(t, encoded, "*Name:*")
	assert.Contains(t, encoded, "%0A")
	assert.Contains(t, encoded, "Ravi%20%26%20Co")

	decoded, err := url.QueryUnescape(strings.ReplaceAll(encoded, "+", "%2B"))
	require.NoError(t, err)
	assert.Equal(t, q.WhatsAppMessage(), decoded)
}

func TestEncodeComponentMatchesBrowser(t *testing.T) {
	assert.Equal(t, "a-b_c.d!e~f*g'h(i)j", encodeComponent("a-b_c.d!e~f*g'h(i)j"))
	assert.Equal(t, "%2F%3F%3D%26%23%2B%20", encodeComponent("/?=&#+ "))
	assert.Equal(t, "%E2%82%B9", encodeComponent("₹"))
}

func TestLoadOverridesSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	body := `company:
  phone: "+91 9000000000"
  whatsapp: "919000000000"
services:
  - title: Hydrotest
    description: Pressure check
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	content, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "+91 9000000000", content.Company.Phone)
	assert.Equal(t, "919000000000", content.Company.WhatsApp)
	assert.Equal(t, Default().Company.Email, content.Company.Email)
	require.Len(t, content.Services, 1)
	assert.Equal(t, "Hydrotest", content.Services[0].Title)
	assert.Equal(t, Default().Testimonials, content.Testimonials)
}

func TestLoadDefaultsAndErrors(t *testing.T) {
	content, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), content)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("services: [\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestMapURL(t *testing.T) {
	assert.Equal(t, "https://maps.google.com/?q=Plot%20No%20549%2C%20Nashik", Company{MapQuery: "Plot No 549, Nashik"}.MapURL())
}
