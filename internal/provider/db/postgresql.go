package providerdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/pinfinds-backend/internal/logging"
	"github.com/xw1nchester/pinfinds-backend/internal/provider"
	pgtx "github.com/xw1nchester/pinfinds-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

const providerColumns = `id, name, service_type, contact, is_verified, show_contact, image_url, bio, whatsapp, instagram, website, map_url`

type repository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(client *pgxpool.Pool, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func scanProvider(row pgx.Row) (*provider.Provider, error) {
	var p provider.Provider
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.ServiceType,
		&p.Contact,
		&p.IsVerified,
		&p.ShowContact,
		&p.ImageURL,
		&p.Bio,
		&p.WhatsApp,
		&p.Instagram,
		&p.Website,
		&p.MapURL,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListByPincode(ctx context.Context, pincode string) ([]provider.Provider, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM providers
		WHERE pincode=$1
		ORDER BY created_at DESC, id DESC
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := pgtx.GetExecutor(ctx, r.client).Query(ctx, query, pincode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]provider.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		providers = append(providers, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %w", err)
	}

	return providers, nil
}

func (r *repository) GetByContact(ctx context.Context, contact string) (*provider.Provider, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM providers
		WHERE contact=$1
		ORDER BY id
		LIMIT 1
	`

	logging.LogSQLQuery(r.logger, query)

	p, err := scanProvider(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, contact))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	return p, nil
}

// GetByID locks the row when called inside a transaction.
func (r *repository) GetByID(ctx context.Context, id int) (*provider.Provider, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM providers
		WHERE id=$1
		FOR UPDATE
	`

	logging.LogSQLQuery(r.logger, query)

	p, err := scanProvider(pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, pincode string, data provider.Fields) (*provider.Provider, error) {
	query := `
		INSERT INTO providers (pincode, name, service_type, contact, is_verified, show_contact, image_url, bio, whatsapp, instagram, website, map_url)
		VALUES ($1, $2, $3, $4, true, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + providerColumns

	logging.LogSQLQuery(r.logger, query)

	return scanProvider(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		pincode,
		data.Name,
		data.ServiceType,
		data.Contact,
		data.ShowContact,
		data.ImageURL,
		data.Bio,
		data.WhatsApp,
		data.Instagram,
		data.Website,
		data.MapURL,
	))
}

func (r *repository) Update(ctx context.Context, data provider.Provider) (*provider.Provider, error) {
	query := `
		UPDATE providers
		SET name=$1, service_type=$2, contact=$3, show_contact=$4, image_url=$5, bio=$6, whatsapp=$7, instagram=$8, website=$9, map_url=$10, updated_at=NOW()
		WHERE id=$11
		RETURNING ` + providerColumns

	logging.LogSQLQuery(r.logger, query)

	p, err := scanProvider(pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.Name,
		data.ServiceType,
		data.Contact,
		data.ShowContact,
		data.ImageURL,
		data.Bio,
		data.WhatsApp,
		data.Instagram,
		data.Website,
		data.MapURL,
		data.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}

	return p, nil
}
