package pgsql

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_payments/internal/core/ports/repositories"
	"github.com/SscSPs/pos_payments/internal/models"
	"github.com/SscSPs/pos_payments/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCheckoutRepository stores checkouts and their payment records.
type PgxCheckoutRepository struct {
	BaseRepository
}

func newPgxCheckoutRepository(pool *pgxpool.Pool) *PgxCheckoutRepository {
	return &PgxCheckoutRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CheckoutRepositoryFacade = (*PgxCheckoutRepository)(nil)

const checkoutColumns = `
	checkout_id, base_currency, sale_total, total_paid_base, total_commissions,
	change_base, change_reference, reference_currency, denominations,
	created_at, created_by, last_updated_at, last_updated_by`

const paymentRecordColumns = `
	payment_id, checkout_id, position, method, amount, currency_code, reference, bank,
	commission, commission_base, exchange_rate, amount_base, processed_at,
	validated, validation_detail`

// SaveCheckout inserts the checkout header and all of its payment records in one transaction.
func (r *PgxCheckoutRepository) SaveCheckout(ctx context.Context, checkout domain.Checkout) error {
	header, records, err := mapping.ToModelCheckout(checkout)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to map checkout", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once the transaction is committed
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO checkouts (`+checkoutColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		header.CheckoutID, header.BaseCurrency, header.SaleTotal, header.TotalPaidBase, header.TotalCommissions,
		header.ChangeBase, header.ChangeReference, header.ReferenceCurrency, header.Denominations,
		header.CreatedAt, header.CreatedBy, header.LastUpdatedAt, header.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert checkout", err)
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
			INSERT INTO payment_records (`+paymentRecordColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			rec.PaymentID, rec.CheckoutID, rec.Position, rec.Method, rec.Amount, rec.CurrencyCode,
			rec.Reference, rec.Bank, rec.Commission, rec.CommissionBase, rec.ExchangeRate,
			rec.AmountBase, rec.ProcessedAt, rec.Validated, rec.ValidationDetail,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert payment records", err)
	}

	return r.Commit(ctx, tx)
}

// FindCheckoutByID retrieves a checkout with its payment records in position order.
func (r *PgxCheckoutRepository) FindCheckoutByID(ctx context.Context, checkoutID string) (*domain.Checkout, error) {
	header, err := scanCheckout(r.Pool.QueryRow(ctx, `SELECT `+checkoutColumns+` FROM checkouts WHERE checkout_id = $1`, checkoutID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("checkout " + checkoutID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find checkout", err)
	}

	byCheckout, err := r.findRecords(ctx, []string{checkoutID})
	if err != nil {
		return nil, err
	}

	checkout, err := mapping.ToDomainCheckout(header, byCheckout[checkoutID])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map checkout", err)
	}
	return &checkout, nil
}

// ListCheckouts retrieves up to limit checkouts, newest first, strictly
// after the (before, beforeID) cursor when one is given.
func (r *PgxCheckoutRepository) ListCheckouts(ctx context.Context, limit int, before *time.Time, beforeID string) ([]domain.Checkout, error) {
	query := `SELECT ` + checkoutColumns + ` FROM checkouts`
	args := []any{}
	if before != nil {
		query += ` WHERE (created_at, checkout_id) < ($1, $2)`
		args = append(args, *before, beforeID)
	}
	query += ` ORDER BY created_at DESC, checkout_id DESC LIMIT $` + placeholder(len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list checkouts", err)
	}
	defer rows.Close()

	var headers []models.Checkout
	for rows.Next() {
		header, err := scanCheckout(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan checkout", err)
		}
		headers = append(headers, header)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating checkouts", err)
	}
	if len(headers) == 0 {
		return []domain.Checkout{}, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.CheckoutID
	}
	byCheckout, err := r.findRecords(ctx, ids)
	if err != nil {
		return nil, err
	}

	checkouts := make([]domain.Checkout, 0, len(headers))
	for _, h := range headers {
		checkout, err := mapping.ToDomainCheckout(h, byCheckout[h.CheckoutID])
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to map checkout", err)
		}
		checkouts = append(checkouts, checkout)
	}
	return checkouts, nil
}

// findRecords loads the payment records of the given checkouts keyed by checkout ID.
func (r *PgxCheckoutRepository) findRecords(ctx context.Context, checkoutIDs []string) (map[string][]models.PaymentRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT `+paymentRecordColumns+`
		FROM payment_records
		WHERE checkout_id = ANY($1)
		ORDER BY checkout_id, position`, checkoutIDs)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find payment records", err)
	}
	defer rows.Close()

	byCheckout := make(map[string][]models.PaymentRecord, len(checkoutIDs))
	for rows.Next() {
		var rec models.PaymentRecord
		if err := rows.Scan(
			&rec.PaymentID, &rec.CheckoutID, &rec.Position, &rec.Method, &rec.Amount, &rec.CurrencyCode,
			&rec.Reference, &rec.Bank, &rec.Commission, &rec.CommissionBase, &rec.ExchangeRate,
			&rec.AmountBase, &rec.ProcessedAt, &rec.Validated, &rec.ValidationDetail,
		); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan payment record", err)
		}
		byCheckout[rec.CheckoutID] = append(byCheckout[rec.CheckoutID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating payment records", err)
	}
	return byCheckout, nil
}

func scanCheckout(row pgx.Row) (models.Checkout, error) {
	var m models.Checkout
	err := row.Scan(
		&m.CheckoutID, &m.BaseCurrency, &m.SaleTotal, &m.TotalPaidBase, &m.TotalCommissions,
		&m.ChangeBase, &m.ChangeReference, &m.ReferenceCurrency, &m.Denominations,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func placeholder(n int) string {
	return strconv.Itoa(n)
}
