// File path: internal/site/contact.go
package site

import (
	"fmt"
	"net/mail"
	"strings"
)

// Inquiry is a contact form submission.
type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// InquiryError lists the contact form fields that failed validation, keyed
// by form field name.
type InquiryError struct {
	Fields map[string]string `json:"fields"`
}

func (e *InquiryError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "invalid inquiry"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, key := range []string{"name", "email", "phone", "message"} {
		if msg, ok := e.Fields[key]; ok {
			parts = append(parts, key+": "+msg)
		}
	}
	return "invalid inquiry: " + strings.Join(parts, "; ")
}

// Normalize trims every field.
func (q Inquiry) Normalize() Inquiry {
	return Inquiry{
		Name:    strings.TrimSpace(q.Name),
		Email:   strings.TrimSpace(q.Email),
		Phone:   strings.TrimSpace(q.Phone),
		Message: strings.TrimSpace(q.Message),
	}
}

// Validate checks the same constraints the form declares: every field is
// required, the email must parse and the phone is exactly ten digits.
func (q Inquiry) Validate() error {
	q = q.Normalize()
	fields := map[string]string{}
	if q.Name == "" {
		fields["name"] = "Please enter your name"
	}
	if q.Email == "" {
		fields["email"] = "Please enter your email"
	} else if addr, err := mail.ParseAddress(q.Email); err != nil || addr.Address != q.Email {
		fields["email"] = "Please enter a valid email address"
	}
	if q.Phone == "" {
		fields["phone"] = "Please enter your phone number"
	} else if !tenDigits(q.Phone) {
		fields["phone"] = "Phone number must be 10 digits"
	}
	if q.Message == "" {
		fields["message"] = "Please enter a message"
	}
	if len(fields) > 0 {
		return &InquiryError{Fields: fields}
	}
	return nil
}

func tenDigits(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// WhatsAppMessage formats the inquiry as a WhatsApp chat message using the
// app's *bold* and _italic_ markup.
func (q Inquiry) WhatsAppMessage() string {
	q = q.Normalize()
	var b strings.Builder
	b.WriteString("New Inquiry from Website:\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", q.Name)
	fmt.Fprintf(&b, "*Email:* %s\n", q.Email)
	fmt.Fprintf(&b, "*Phone:* %s\n", q.Phone)
	fmt.Fprintf(&b, "*Message:* %s\n\n", q.Message)
	b.WriteString("_Sent via Immense CNG Website_")
	return b.String()
}

// WhatsAppURL is the click-to-chat link that opens a chat with number and
// the inquiry pre-filled.
func (q Inquiry) WhatsAppURL(number string) string {
	return ChatURL(number) + "?text=" + encodeComponent(q.WhatsAppMessage())
}

// ChatURL is the plain click-to-chat link for number.
func ChatURL(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "https://wa.me/" + digits
}

// encodeComponent percent-encodes s the way browsers' encodeURIComponent
// does: only A-Z a-z 0-9 and -_.!~*'() are left as is.
func encodeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreservedComponent(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
