// File path: internal/sqlite/inquiries.go
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/immensecng/cylinder-retest/internal/site"
)

const defaultInquiryLimit = 50

var errNotInitialised = errors.New("sqlite store not initialised")

// RecordInquiry stores a validated contact submission together with the chat
// link the visitor was redirected to, and returns the new row id.
func (s *Store) RecordInquiry(ctx context.Context, inquiry site.Inquiry, chatURL string) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errNotInitialised
	}
	inquiry = inquiry.Normalize()
	var id int64
	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO inquiries(name, email, phone, message, chat_url, created_at) VALUES(?, ?, ?, ?, ?, ?)`,
			inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message, chatURL, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("insert inquiry: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("inquiry id: %w", err)
		}
		return recordAudit(ctx, tx, sql.NullInt64{Int64: id, Valid: true}, "inquiry_received", inquiry.Email)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// RecentInquiries returns up to limit inquiries, newest first. A non-positive
// limit falls back to 50.
func (s *Store) RecentInquiries(ctx context.Context, limit int) ([]InquiryRow, error) {
	if s == nil || s.db == nil {
		return nil, errNotInitialised
	}
	if limit <= 0 {
		limit = defaultInquiryLimit
	}
	rows := []InquiryRow{}
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, name, email, phone, message, chat_url, created_at FROM inquiries ORDER BY created_at DESC, id DESC LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("select inquiries: %w", err)
	}
	return rows, nil
}

// CountInquiries reports how many inquiries have been logged.
func (s *Store) CountInquiries(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, errNotInitialised
	}
	var count int
	if err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM inquiries`); err != nil {
		return 0, fmt.Errorf("count inquiries: %w", err)
	}
	return count, nil
}

// AuditTrail returns audit entries, oldest first.
func (s *Store) AuditTrail(ctx context.Context) ([]AuditRow, error) {
	if s == nil || s.db == nil {
		return nil, errNotInitialised
	}
	rows := []AuditRow{}
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, inquiry_id, action, COALESCE(detail, '') AS detail, created_at FROM audit ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select audit: %w", err)
	}
	return rows, nil
}

func recordAudit(ctx context.Context, tx *sqlx.Tx, inquiryID sql.NullInt64, action, detail string) error {
	if _, err := tx.ExecContext(ctx, `INSERT INTO audit(inquiry_id, action, detail) VALUES(?, ?, ?)`,
		nullIfInvalid(inquiryID), action, detail); err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

func nullIfInvalid(v sql.NullInt64) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Int64
}
