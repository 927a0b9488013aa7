package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_payments/internal/core/domain"
)

// CheckoutReader defines read operations for persisted checkouts
type CheckoutReader interface {
	// FindCheckoutByID retrieves a checkout with all of its payment records.
	FindCheckoutByID(ctx context.Context, checkoutID string) (*domain.Checkout, error)

	// ListCheckouts retrieves up to limit checkouts, newest first. When
	// before is set only checkouts strictly older than (before, beforeID)
	// are returned.
	ListCheckouts(ctx context.Context, limit int, before *time.Time, beforeID string) ([]domain.Checkout, error)
}

// CheckoutWriter defines write operations for persisted checkouts
type CheckoutWriter interface {
	// SaveCheckout stores the checkout and its payment records atomically.
	SaveCheckout(ctx context.Context, checkout domain.Checkout) error
}

// CheckoutRepositoryFacade combines all checkout-related repository interfaces
type CheckoutRepositoryFacade interface {
	CheckoutReader
	CheckoutWriter
}
