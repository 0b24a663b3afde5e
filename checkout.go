package sdk

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/stripe/stripe-go/v84"
	stripeclient "github.com/stripe/stripe-go/v84/client"
)

// ConfirmParams carries the optional confirmation inputs forwarded to the
// payment provider.
type ConfirmParams struct {
	ReturnURL     string
	PaymentMethod string
}

// PaymentConfirmer confirms one payment attempt identified by its client
// secret. The provider's widget internals stay behind this interface.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, clientSecret string, params ConfirmParams) error
}

// StripeConfirmer confirms payment intents through the Stripe API.
type StripeConfirmer struct {
	api *stripeclient.API
}

// NewStripeConfirmer builds a confirmer authenticated with the given key.
func NewStripeConfirmer(key string) *StripeConfirmer {
	api := &stripeclient.API{}
	api.Init(key, nil)
	return &StripeConfirmer{api: api}
}

// ConfirmPayment confirms the intent named by the client secret. Provider
// rejections come back as PaymentError with Stripe's message verbatim.
func (s *StripeConfirmer) ConfirmPayment(ctx context.Context, clientSecret string, params ConfirmParams) error {
	intentID, ok := paymentIntentID(clientSecret)
	if !ok {
		return UsageError{Reason: "malformed client secret"}
	}

	confirm := &stripe.PaymentIntentConfirmParams{}
	confirm.AddExtra("client_secret", clientSecret)
	confirm.Context = ctx
	if params.ReturnURL != "" {
		confirm.ReturnURL = stripe.String(params.ReturnURL)
	}
	if params.PaymentMethod != "" {
		confirm.PaymentMethod = stripe.String(params.PaymentMethod)
	}

	if _, err := s.api.PaymentIntents.Confirm(intentID, confirm); err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			return PaymentError{Message: stripeErr.Msg}
		}
		return PaymentError{Message: err.Error()}
	}
	return nil
}

// paymentIntentID extracts the intent identifier from a client secret of
// the form "pi_xxx_secret_yyy".
func paymentIntentID(clientSecret string) (string, bool) {
	id, _, found := strings.Cut(clientSecret, "_secret_")
	if !found || id == "" {
		return "", false
	}
	return id, true
}

// CheckoutPresenter drives one payment confirmation at a time. A second
// submission while one is in flight is ignored until the first settles, so
// double-clicks cannot reach the provider twice.
type CheckoutPresenter struct {
	confirmer PaymentConfirmer
	returnURL string
	inFlight  atomic.Bool
}

// NewCheckoutPresenter wraps a confirmer. returnURL is forwarded on every
// confirmation and may be empty.
func NewCheckoutPresenter(confirmer PaymentConfirmer, returnURL string) *CheckoutPresenter {
	return &CheckoutPresenter{confirmer: confirmer, returnURL: returnURL}
}

// Submit runs one confirmation attempt. submitted is false when the call
// was ignored because another attempt is still pending. On provider
// failure the error is a PaymentError carrying the provider's message; on
// success onSuccess is invoked exactly once.
func (p *CheckoutPresenter) Submit(ctx context.Context, setup PaymentSetup, onSuccess func()) (submitted bool, err error) {
	if p == nil || p.confirmer == nil {
		return false, UsageError{Reason: "checkout presenter not initialized"}
	}
	if setup.ClientSecret == "" {
		return false, UsageError{Reason: "client secret required"}
	}
	if !p.inFlight.CompareAndSwap(false, true) {
		return false, nil
	}
	defer p.inFlight.Store(false)

	if err := p.confirmer.ConfirmPayment(ctx, setup.ClientSecret, ConfirmParams{ReturnURL: p.returnURL}); err != nil {
		var payErr PaymentError
		if errors.As(err, &payErr) {
			return true, payErr
		}
		return true, PaymentError{Message: err.Error()}
	}
	if onSuccess != nil {
		onSuccess()
	}
	return true, nil
}
