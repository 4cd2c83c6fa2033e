package models

import "time"

// NotificationRequest asks the server to compose and send one
// notification email pre-filled from the given assessment. Duplicate
// sends are possible and accepted; there is no retry or idempotency key.
type NotificationRequest struct {
	Recipients []string   `json:"recipients" validate:"required,min=1,dive,email"`
	Subject    string     `json:"subject,omitempty"`
	Note       string     `json:"note,omitempty"`
	Assessment Assessment `json:"assessment"`
}

type NotificationResponse struct {
	Recipients int    `json:"recipients"`
	Message    string `json:"message"`
}

// NotificationRecord is the audit row written after a successful send,
// when a database is configured.
type NotificationRecord struct {
	ID           int64         `json:"id" db:"id"`
	Sender       string        `json:"sender" db:"sender"`
	Recipients   []string      `json:"recipients" db:"recipients"`
	Subject      string        `json:"subject" db:"subject"`
	TotalMinutes int           `json:"total_minutes" db:"total_minutes"`
	Flags        AdvisoryFlags `json:"flags"`
	SentAt       time.Time     `json:"sent_at" db:"sent_at"`
}
