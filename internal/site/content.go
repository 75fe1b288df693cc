// File path: internal/site/content.go

// Package site holds the marketing content of the testing centre: company
// details, services, the customer process, certifications, testimonials and
// the gallery.
package site

// Company is the contact block repeated in the header, contact section and
// footer.
type Company struct {
	Name     string `json:"name" yaml:"name"`
	Brand    string `json:"brand" yaml:"brand"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
	WhatsApp string `json:"whatsapp" yaml:"whatsapp"`
	Address  string `json:"address" yaml:"address"`
	MapQuery string `json:"map_query" yaml:"map_query"`
	Region   string `json:"region" yaml:"region"`
}

// Hero is the landing banner.
type Hero struct {
	Title    string   `json:"title" yaml:"title"`
	Subtitle string   `json:"subtitle" yaml:"subtitle"`
	CTA      string   `json:"cta" yaml:"cta"`
	Badges   []string `json:"badges" yaml:"badges"`
}

// Entry is a titled description used by services and process steps.
type Entry struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Certificate is a certificate card with its scanned image.
type Certificate struct {
	Title       string `json:"title" yaml:"title"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name   string `json:"name" yaml:"name"`
	Text   string `json:"text" yaml:"text"`
	Rating int    `json:"rating" yaml:"rating"`
}

// Content is everything the home page renders.
type Content struct {
	Company        Company       `json:"company" yaml:"company"`
	Hero           Hero          `json:"hero" yaml:"hero"`
	About          []string      `json:"about" yaml:"about"`
	Services       []Entry       `json:"services" yaml:"services"`
	ProcessSteps   []Entry       `json:"process_steps" yaml:"process_steps"`
	Certifications []string      `json:"certifications" yaml:"certifications"`
	Certificates   []Certificate `json:"certificates" yaml:"certificates"`
	WhyChooseUs    []string      `json:"why_choose_us" yaml:"why_choose_us"`
	Testimonials   []Testimonial `json:"testimonials" yaml:"testimonials"`
	Gallery        Gallery       `json:"gallery" yaml:"gallery"`
}

// TestimonialAt returns the testimonial for a carousel position. Positions
// wrap in both directions.
func (c Content) TestimonialAt(i int) (Testimonial, int) {
	n := len(c.Testimonials)
	if n == 0 {
		return Testimonial{}, 0
	}
	idx := ((i % n) + n) % n
	return c.Testimonials[idx], idx
}

// MapURL links the address to a maps search.
func (c Company) MapURL() string {
	return "https://maps.google.com/?q=" + encodeComponent(c.MapQuery)
}

// Default returns the built-in content.
func Default() Content {
	return Content{
		Company: Company{
			Name:     "Immense CNG Cylinder Testing Company",
			Brand:    "Cylinder Re-Test",
			Phone:    "+91 8657474631",
			Email:    "info@immensecngtesting.com",
			WhatsApp: "918657474631",
			Address: "Plot No 549, Gonde Dumala, Gonde Phata, Behind Indian Oil Petrol Pump, " +
				"Opposite Shalimar Paints, Mumbai Agra Highway, Nashik, Maharashtra 422403",
			MapQuery: "Plot No 549, Gonde Dumala, Gonde Phata, Nashik, Maharashtra 422403",
			Region:   "Nashik District",
		},
		Hero: Hero{
			Title: "Certified CNG Cylinder Testing for Your Safety and Compliance!",
			Subtitle: "At Immense CNG Cylinder Testing Company, we ensure your CNG cylinders are tested, " +
				"certified, and 100% compliant with Indian Government standards. Serving all CNG users across Nashik District.",
			CTA:    "Book Your Test Now",
			Badges: []string{"Government Approved", "PESO Certified", "BIS Standards Compliant"},
		},
		About: []string{
			"At Immense CNG Cylinder Testing Company, we are committed to safety, accuracy, and trust. " +
				"We are proudly approved by the Government of India, authorized to conduct CNG cylinder testing " +
				"under strict compliance with PESO and BIS standards.",
			"Our mission is simple: to ensure the safety of CNG users by providing precise, professional, " +
				"and affordable cylinder testing services. Our highly trained team uses advanced technology " +
				"and strict protocols to guarantee the structural integrity of every cylinder we test.",
			"With Immense, you're not just testing a cylinder. You're ensuring safety for yourself, your family, and your business.",
		},
		Services: []Entry{
			{Title: "Hydrostatic Pressure Testing", Description: "Checking cylinder strength and safety under pressure"},
			{Title: "Visual Inspection & Defect Identification", Description: "Detecting cracks, corrosion, and deformities"},
			{Title: "Cylinder Cleaning and Painting", Description: "Maintain appearance and prevent corrosion"},
			{Title: "Stamping & Certification", Description: "Government-mandated stamping after successful testing"},
			{Title: "Documentation Assistance", Description: "Get complete testing certificates and reports"},
			{Title: "Pickup and Drop-off Service", Description: "For Bulk Orders"},
		},
		ProcessSteps: []Entry{
			{Title: "Contact Us & Book an Appointment", Description: "Call or WhatsApp us to schedule a testing slot."},
			{Title: "Drop Off Your CNG Cylinder", Description: "Visit our center or avail our pick-up service (for bulk orders)."},
			{Title: "Professional Testing & Certification", Description: "Our experts perform thorough testing, cleaning, and certification as per norms."},
			{Title: "Pickup Your Certified Cylinder", Description: "Get your government-approved testing certificate and use your cylinder worry-free!"},
		},
		Certifications: []string{
			"Bureau of Indian Standards (BIS)",
			"Petroleum and Explosives Safety Organization (PESO)",
			"Approved by Ministry of Road Transport and Highways (MoRTH)",
		},
		Certificates: []Certificate{
			{Title: "BIS Certification", Image: "/certificates/bis-certificate.jpg", Description: "Approved by Bureau of Indian Standards"},
			{Title: "PESO Approval", Image: "/certificates/peso-certificate.jpg", Description: "Certified by Petroleum and Explosives Safety Organization"},
			{Title: "MoRTH Recognition", Image: "/certificates/morth-certificate.jpg", Description: "Recognized by Ministry of Road Transport and Highways"},
		},
		WhyChooseUs: []string{
			"Government Approved Testing Center: officially authorized and certified.",
			"State-of-the-Art Testing Equipment: modern technology for maximum accuracy.",
			"Experienced and Certified Technicians: experts with years of practical experience.",
			"Transparent Testing Process: no hidden charges, no delays.",
			"Quick Turnaround Time: get testing and certification done in minimum time.",
			"Fair and Competitive Pricing: quality testing at affordable rates.",
			"Pickup and Drop Services Available: for businesses and fleets.",
		},
		Testimonials: []Testimonial{
			{Name: "Sanjay Pawar, Nashik", Text: "Got my CNG car cylinder tested within a day. Excellent service and genuine staff. Highly recommended!", Rating: 5},
			{Name: "Meera Kulkarni, Industrial Client", Text: "For fleet vehicles, Immense Testing is the most reliable and affordable solution. Certified, quick, and professional.", Rating: 5},
			{Name: "Ravindra Shinde, Taxi Operator", Text: "Professional testing center with all proper approvals. I trust Immense for my vehicle's safety needs!", Rating: 5},
		},
		Gallery: Gallery{Images: []Image{
			{ID: 1, Src: "/static/gallery/facility.jpg", Alt: "CNG Testing Facility", Category: "facility"},
			{ID: 2, Src: "/static/gallery/certification.jpg", Alt: "Certification Process", Category: "process"},
			{ID: 3, Src: "/static/gallery/equipment.jpg", Alt: "Safety Equipment", Category: "equipment"},
			{ID: 4, Src: "/static/gallery/team.jpg", Alt: "Team at Work", Category: "team"},
			{ID: 5, Src: "/static/gallery/procedure.jpg", Alt: "Testing Procedure", Category: "process"},
			{ID: 6, Src: "/static/gallery/certified.jpg", Alt: "Certified Cylinders", Category: "results"},
		}},
	}
}
