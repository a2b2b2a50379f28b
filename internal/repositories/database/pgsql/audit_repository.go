package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
)

type auditLogRepository struct {
	BaseRepository
}

func newAuditLogRepository(db *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &auditLogRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AuditLogRepositoryFacade = (*auditLogRepository)(nil)

func (r *auditLogRepository) AppendEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	query := `
		INSERT INTO audit_logs (entry_id, action_type, user_email, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.ActionType,
		entry.UserEmail,
		entry.Details,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (r *auditLogRepository) ListEntries(ctx context.Context, search string, limit int) ([]domain.AuditLogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT entry_id, action_type, user_email, details, created_at
		FROM audit_logs
	`
	args := []any{}
	if search != "" {
		query += ` WHERE action_type ILIKE $1 OR user_email ILIKE $1`
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
	}
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying audit entries: %w", err)
	}
	defer rows.Close()

	return scanAuditRows(rows)
}

func scanAuditRows(rows pgx.Rows) ([]domain.AuditLogEntry, error) {
	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		var e domain.AuditLogEntry
		if err := rows.Scan(&e.EntryID, &e.ActionType, &e.UserEmail, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning audit entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entry rows: %w", err)
	}
	return entries, nil
}
