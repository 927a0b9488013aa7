package pgsql

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_payments/internal/core/ports/repositories"
	"github.com/SscSPs/pos_payments/internal/models"
	"github.com/SscSPs/pos_payments/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository stores the latest rate per currency using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const exchangeRateColumns = `currency_code, rate, created_at, created_by, last_updated_at, last_updated_by`

// SaveExchangeRate inserts the rate or replaces the existing one for the currency.
// The original creation audit fields are kept on replace.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)
	modelRate.CurrencyCode = strings.ToUpper(modelRate.CurrencyCode)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (`+exchangeRateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (currency_code) DO UPDATE
		SET rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`,
		modelRate.CurrencyCode, modelRate.Rate,
		modelRate.CreatedAt, modelRate.CreatedBy,
		modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save exchange rate", err)
	}
	return nil
}

// FindExchangeRate retrieves the stored rate for a currency.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(currencyCode)
	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, `SELECT `+exchangeRateColumns+` FROM exchange_rates WHERE currency_code = $1`, code).Scan(
		&modelRate.CurrencyCode, &modelRate.Rate,
		&modelRate.CreatedAt, &modelRate.CreatedBy,
		&modelRate.LastUpdatedAt, &modelRate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate for " + code)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListExchangeRates retrieves every stored rate ordered by currency code.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+exchangeRateColumns+` FROM exchange_rates ORDER BY currency_code`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list exchange rates", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		var modelRate models.ExchangeRate
		if err := rows.Scan(
			&modelRate.CurrencyCode, &modelRate.Rate,
			&modelRate.CreatedAt, &modelRate.CreatedBy,
			&modelRate.LastUpdatedAt, &modelRate.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(modelRate))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating exchange rates", err)
	}
	return rates, nil
}
