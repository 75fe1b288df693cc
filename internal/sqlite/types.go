// File path: internal/sqlite/types.go
package sqlite

import "time"

// InquiryRow is one logged contact form submission.
type InquiryRow struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Message   string    `db:"message" json:"message"`
	ChatURL   string    `db:"chat_url" json:"chat_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AuditRow represents an audit entry.
type AuditRow struct {
	ID        int64     `db:"id"`
	InquiryID *int64    `db:"inquiry_id"`
	Action    string    `db:"action"`
	Detail    string    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}
