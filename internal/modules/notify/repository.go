package notify

import (
	"context"
	"fmt"

	"commute-notice/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepositoryInterface records sent notifications. The audit trail is
// an operational record only; nothing reads it back through the API.
type AuditRepositoryInterface interface {
	Record(ctx context.Context, rec *models.NotificationRecord) error
}

// AuditRepository is the PostgreSQL implementation.
type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Record(ctx context.Context, rec *models.NotificationRecord) error {
	query := `
        INSERT INTO notifications (sender, recipients, subject, total_minutes, overnight, half_per_diem, special_workday)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, sent_at`
	err := r.db.QueryRow(ctx, query,
		rec.Sender, rec.Recipients, rec.Subject, rec.TotalMinutes,
		rec.Flags.Overnight, rec.Flags.HalfPerDiem, rec.Flags.SpecialWorkday,
	).Scan(&rec.ID, &rec.SentAt)
	if err != nil {
		return fmt.Errorf("repo.Record: %w", err)
	}
	return nil
}
