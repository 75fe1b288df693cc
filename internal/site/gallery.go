// File path: internal/site/gallery.go
package site

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllCategories selects every gallery image.
const AllCategories = "all"

// Image is one gallery photo.
type Image struct {
	ID       int    `json:"id" yaml:"id"`
	Src      string `json:"src" yaml:"src"`
	Alt      string `json:"alt" yaml:"alt"`
	Category string `json:"category" yaml:"category"`
}

// Gallery is the ordered photo set.
type Gallery struct {
	Images []Image `json:"images" yaml:"images"`
}

// Categories returns "all" followed by each distinct category in the order
// it first appears.
func (g Gallery) Categories() []string {
	out := []string{AllCategories}
	seen := map[string]struct{}{AllCategories: {}}
	for _, img := range g.Images {
		key := strings.ToLower(strings.TrimSpace(img.Category))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

// Filter returns the images in category; empty or "all" returns every
// image and an unknown category returns none.
func (g Gallery) Filter(category string) []Image {
	key := strings.ToLower(strings.TrimSpace(category))
	if key == "" || key == AllCategories {
		return append([]Image(nil), g.Images...)
	}
	out := make([]Image, 0, len(g.Images))
	for _, img := range g.Images {
		if strings.EqualFold(strings.TrimSpace(img.Category), key) {
			out = append(out, img)
		}
	}
	return out
}

// Find returns the image with id.
func (g Gallery) Find(id int) (Image, bool) {
	for _, img := range g.Images {
		if img.ID == id {
			return img, true
		}
	}
	return Image{}, false
}

// CategoryLabel renders a category key for the filter buttons.
func CategoryLabel(category string) string {
	// Casers keep state between calls and are not shared across goroutines.
	return cases.Title(language.English).String(strings.TrimSpace(category))
}
