package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_payments/internal/apperrors"
	"github.com/SscSPs/pos_payments/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_payments/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_payments/internal/core/ports/services"
	"github.com/SscSPs/pos_payments/internal/dto"
	"github.com/SscSPs/pos_payments/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultCheckoutPageSize = 20
	maxCheckoutPageSize     = 100
)

// checkoutService processes mixed payments and persists the finalized result.
type checkoutService struct {
	BaseService
	checkoutRepo portsrepo.CheckoutRepositoryFacade
	handler      *MultiPaymentHandler
	now          func() time.Time
	newID        func() string
}

// CheckoutServiceOption is a functional option for configuring the checkout service
type CheckoutServiceOption func(*checkoutService)

// WithCheckoutClock overrides the time source used for audit fields.
func WithCheckoutClock(now func() time.Time) CheckoutServiceOption {
	return func(s *checkoutService) {
		s.now = now
	}
}

// WithCheckoutIDGenerator overrides how checkout IDs are generated.
func WithCheckoutIDGenerator(newID func() string) CheckoutServiceOption {
	return func(s *checkoutService) {
		s.newID = newID
	}
}

// NewCheckoutService creates a new checkout service with the provided options
func NewCheckoutService(repo portsrepo.CheckoutRepositoryFacade, handler *MultiPaymentHandler, options ...CheckoutServiceOption) portssvc.CheckoutSvcFacade {
	svc := &checkoutService{
		checkoutRepo: repo,
		handler:      handler,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CheckoutSvcFacade = (*checkoutService)(nil)

func (s *checkoutService) CreateCheckout(ctx context.Context, req dto.CreateCheckoutRequest, cashierID string) (*domain.Checkout, error) {
	legs, err := req.ToPaymentLegs()
	if err != nil {
		return nil, err
	}

	result, err := s.handler.ProcessMixedPayment(legs, req.SaleTotal)
	if err != nil {
		s.LogDebug(ctx, "Checkout rejected", slog.String("reason", err.Error()), slog.String("cashier_id", cashierID))
		return nil, err
	}
	if !result.FullyPaid {
		short := result.Change.Shortfall
		return nil, fmt.Errorf("%w: %s %s still due", apperrors.ErrInsufficientPayment, short.AmountBase, result.BaseCurrency)
	}

	now := s.now().UTC()
	checkout := domain.Checkout{
		CheckoutID:         s.newID(),
		MixedPaymentResult: *result,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     cashierID,
			LastUpdatedAt: now,
			LastUpdatedBy: cashierID,
		},
	}

	if err := s.checkoutRepo.SaveCheckout(ctx, checkout); err != nil {
		s.LogError(ctx, err, "Failed to save checkout", slog.String("checkout_id", checkout.CheckoutID))
		return nil, fmt.Errorf("failed to save checkout: %w", err)
	}

	s.LogInfo(ctx, "Checkout completed",
		slog.String("checkout_id", checkout.CheckoutID),
		slog.String("cashier_id", cashierID),
		slog.Int("payments", len(checkout.Payments)),
		slog.String("total_paid", checkout.TotalPaidBase.String()))
	return &checkout, nil
}

func (s *checkoutService) GetCheckoutByID(ctx context.Context, checkoutID string) (*domain.Checkout, error) {
	checkout, err := s.checkoutRepo.FindCheckoutByID(ctx, checkoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout %s: %w", checkoutID, err)
	}
	return checkout, nil
}

func (s *checkoutService) ListCheckouts(ctx context.Context, params dto.ListCheckoutsParams) (*dto.ListCheckoutsResponse, error) {
	limit := pagination.Limit(params.Limit, defaultCheckoutPageSize, maxCheckoutPageSize)

	var before *time.Time
	var beforeID string
	if params.NextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		before, beforeID = &createdAt, id
	}

	// One extra row tells us whether another page exists.
	checkouts, err := s.checkoutRepo.ListCheckouts(ctx, limit+1, before, beforeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list checkouts")
		return nil, fmt.Errorf("failed to list checkouts: %w", err)
	}

	resp := &dto.ListCheckoutsResponse{}
	if len(checkouts) > limit {
		checkouts = checkouts[:limit]
		last := checkouts[len(checkouts)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.CheckoutID)
		resp.NextToken = &token
	}
	resp.Checkouts = dto.ToListCheckoutResponse(checkouts)
	return resp, nil
}
