package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portsrepo "github.com/nunsahui/cafeledger/internal/core/ports/repositories"
)

type settingsRepository struct {
	BaseRepository
}

func newSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &settingsRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SettingsRepositoryFacade = (*settingsRepository)(nil)

func (r *settingsRepository) GetSettings(ctx context.Context) (*domain.CafeSettings, error) {
	query := `
		SELECT settings_id, version, cafe_name, address, phone, whatsapp, email,
		       logo_url, report_recipient_email, auto_reports_enabled, salary_percentage,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM cafe_settings
		LIMIT 1
	`
	var s domain.CafeSettings
	var whatsapp, logoURL *string

	err := r.Pool.QueryRow(ctx, query).Scan(
		&s.SettingsID,
		&s.Version,
		&s.CafeName,
		&s.Address,
		&s.Phone,
		&whatsapp,
		&s.Email,
		&logoURL,
		&s.ReportRecipientEmail,
		&s.AutoReportsEnabled,
		&s.SalaryPercentage,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cafe settings row missing", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying cafe settings: %w", err)
	}

	if whatsapp != nil {
		s.Whatsapp = *whatsapp
	}
	if logoURL != nil {
		s.LogoURL = *logoURL
	}
	return &s, nil
}

func (r *settingsRepository) UpdateSettings(ctx context.Context, settings domain.CafeSettings, expectedVersion int64) error {
	query := `
		UPDATE cafe_settings
		SET version = version + 1,
		    cafe_name = $1,
		    address = $2,
		    phone = $3,
		    whatsapp = $4,
		    email = $5,
		    logo_url = $6,
		    report_recipient_email = $7,
		    auto_reports_enabled = $8,
		    salary_percentage = $9,
		    last_updated_at = $10,
		    last_updated_by = $11
		WHERE settings_id = $12 AND version = $13
	`
	var whatsapp, logoURL *string
	if settings.Whatsapp != "" {
		whatsapp = &settings.Whatsapp
	}
	if settings.LogoURL != "" {
		logoURL = &settings.LogoURL
	}

	tag, err := r.Pool.Exec(ctx, query,
		settings.CafeName,
		settings.Address,
		settings.Phone,
		whatsapp,
		settings.Email,
		logoURL,
		settings.ReportRecipientEmail,
		settings.AutoReportsEnabled,
		settings.SalaryPercentage,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
		settings.SettingsID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update cafe settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row vanished or someone updated it first; the version
		// predicate cannot tell the two apart without a second read.
		return fmt.Errorf("%w: settings version %d is stale", apperrors.ErrVersionConflict, expectedVersion)
	}
	return nil
}
