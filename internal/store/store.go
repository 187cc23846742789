// Package store persists accepted contact messages in Postgres. The
// write path collapses every internal failure to a boolean so callers
// surface a uniform "save failed" outcome; the detail stays in the log.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arina-sh/contact-api/internal/contact"
	"github.com/arina-sh/contact-api/internal/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS contact_messages (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL CHECK (name <> ''),
	email      TEXT NOT NULL CHECK (email <> ''),
	message    TEXT NOT NULL CHECK (message <> ''),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// MessageStore provides append-only persistence for contact messages.
// Rows are never updated or deleted; id and created_at are assigned by
// the database and immutable.
type MessageStore struct {
	db *sql.DB
}

// New creates a MessageStore on an open database handle.
func New(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

// InitSchema creates the messages table if it does not exist. It is
// idempotent and safe to call on every process start.
func (s *MessageStore) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating contact_messages table: %w", err)
	}
	return nil
}

// Save inserts one sanitized message and reports success. Connection
// errors, constraint violations and I/O failures all collapse to false;
// the underlying error is logged here and never propagated.
func (s *MessageStore) Save(ctx context.Context, msg contact.Sanitized) bool {
	// The table forbids empty fields; reject before touching the db so a
	// bad caller shows up as a save failure, not a constraint error.
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		logger.Error("save rejected", "reason", "empty field after sanitization", "email", msg.Email)
		return false
	}

	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO contact_messages (name, email, message) VALUES ($1, $2, $3) RETURNING id`,
		msg.Name, msg.Email, msg.Message,
	).Scan(&id)
	if err != nil {
		logger.Error("save failed", "error", err, "email", msg.Email)
		return false
	}

	logger.Info("message saved", "id", id, "email", msg.Email)
	return true
}

// ListAll returns every stored message ordered by created_at descending.
// This is an administrative read path; it returns an empty slice on any
// internal failure rather than propagating the error.
func (s *MessageStore) ListAll(ctx context.Context) []contact.Message {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		logger.Error("list failed", "error", err)
		return []contact.Message{}
	}
	defer rows.Close()

	messages := []contact.Message{}
	for rows.Next() {
		var m contact.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			logger.Error("list scan failed", "error", err)
			return []contact.Message{}
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		logger.Error("list iteration failed", "error", err)
		return []contact.Message{}
	}
	return messages
}
