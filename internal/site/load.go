// File path: internal/site/load.go
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Merge overlays every non-empty section of override onto c. Company fields
// are merged one by one so a file can change only the phone number.
func (c Content) Merge(override Content) Content {
	result := c
	result.Company = c.Company.merge(override.Company)
	if strings.TrimSpace(override.Hero.Title) != "" {
		result.Hero.Title = override.Hero.Title
	}
	if strings.TrimSpace(override.Hero.Subtitle) != "" {
		result.Hero.Subtitle = override.Hero.Subtitle
	}
	if strings.TrimSpace(override.Hero.CTA) != "" {
		result.Hero.CTA = override.Hero.CTA
	}
	if len(override.Hero.Badges) > 0 {
		result.Hero.Badges = append([]string(nil), override.Hero.Badges...)
	}
	if len(override.About) > 0 {
		result.About = append([]string(nil), override.About...)
	}
	if len(override.Services) > 0 {
		result.Services = append([]Entry(nil), override.Services...)
	}
	if len(override.ProcessSteps) > 0 {
		result.ProcessSteps = append([]Entry(nil), override.ProcessSteps...)
	}
	if len(override.Certifications) > 0 {
		result.Certifications = append([]string(nil), override.Certifications...)
	}
	if len(override.Certificates) > 0 {
		result.Certificates = append([]Certificate(nil), override.Certificates...)
	}
	if len(override.WhyChooseUs) > 0 {
		result.WhyChooseUs = append([]string(nil), override.WhyChooseUs...)
	}
	if len(override.Testimonials) > 0 {
		result.Testimonials = append([]Testimonial(nil), override.Testimonials...)
	}
	if len(override.Gallery.Images) > 0 {
		result.Gallery = Gallery{Images: append([]Image(nil), override.Gallery.Images...)}
	}
	return result
}

func (c Company) merge(o Company) Company {
	pick := func(base, over string) string {
		if strings.TrimSpace(over) != "" {
			return strings.TrimSpace(over)
		}
		return base
	}
	return Company{
		Name:     pick(c.Name, o.Name),
		Brand:    pick(c.Brand, o.Brand),
		Phone:    pick(c.Phone, o.Phone),
		Email:    pick(c.Email, o.Email),
		WhatsApp: pick(c.WhatsApp, o.WhatsApp),
		Address:  pick(c.Address, o.Address),
		MapQuery: pick(c.MapQuery, o.MapQuery),
		Region:   pick(c.Region, o.Region),
	}
}

// Load returns the default content overlaid with the YAML file at path. An
// empty path yields the defaults.
func Load(path string) (Content, error) {
	content := Default()
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return content, nil
	}
	data, err := os.ReadFile(filepath.Clean(trimmed))
	if err != nil {
		return Content{}, fmt.Errorf("read site content: %w", err)
	}
	var override Content
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Content{}, fmt.Errorf("parse site content: %w", err)
	}
	return content.Merge(override), nil
}
