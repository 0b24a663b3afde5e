package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/roadready/sdk-go/routes"
)

const intentStorageKey = "subscriptionIntent"

// intentStore holds at most one pending "user wants package P but is not
// signed in yet" marker. Superseding intents overwrite; consuming reads
// and clears in one step.
type intentStore struct {
	storage Storage
}

func (s intentStore) store(packageID string) error {
	return s.storage.Set(intentStorageKey, packageID)
}

func (s intentStore) take() (string, bool) {
	v, ok := s.storage.Get(intentStorageKey)
	if !ok {
		return "", false
	}
	_ = s.storage.Delete(intentStorageKey)
	return v, true
}

// SubscriptionsClient sequences the select package → (sign in if needed) →
// create payment setup → confirm flow, including the intent that survives
// the sign-in redirect.
type SubscriptionsClient struct {
	client  *Client
	session *SessionStore
	intents intentStore
}

// ensureInitialized returns an error if the client is not properly initialized.
func (s *SubscriptionsClient) ensureInitialized() error {
	if s == nil || s.client == nil {
		return fmt.Errorf("sdk: subscriptions client not initialized")
	}
	return nil
}

// BeginCheckout creates a payment setup for the package. The auth check
// runs strictly before any network call: an anonymous user gets the intent
// persisted and an AuthenticationError back, so the caller can redirect to
// sign-in and later resume. A 401 from the setup call itself is a
// transient auth failure, not the redirect signal, and is never conflated
// with it.
func (s *SubscriptionsClient) BeginCheckout(ctx context.Context, packageID string) (PaymentSetup, error) {
	if err := s.ensureInitialized(); err != nil {
		return PaymentSetup{}, err
	}
	if packageID == "" {
		return PaymentSetup{}, UsageError{Reason: "package id required"}
	}

	if !s.session.HasSession() {
		if err := s.intents.store(packageID); err != nil {
			return PaymentSetup{}, err
		}
		return PaymentSetup{}, AuthenticationError{}
	}

	payload := struct {
		PackageID string `json:"packageId"`
	}{PackageID: packageID}

	var setup PaymentSetup
	if err := s.client.sendAndDecode(ctx, http.MethodPost, routes.Subscriptions, payload, &setup); err != nil {
		return PaymentSetup{}, err
	}
	return setup, nil
}

// StoreIntent remembers the package the user wanted before being sent to
// sign in. A newer intent overwrites any pending one.
func (s *SubscriptionsClient) StoreIntent(packageID string) error {
	if err := s.ensureInitialized(); err != nil {
		return err
	}
	if packageID == "" {
		return UsageError{Reason: "package id required"}
	}
	return s.intents.store(packageID)
}

// ResumeIntentAfterLogin reads and clears the pending intent in one step.
// A second call immediately after reports no intent.
func (s *SubscriptionsClient) ResumeIntentAfterLogin() (string, bool) {
	if s.ensureInitialized() != nil {
		return "", false
	}
	return s.intents.take()
}

// GetActiveSubscription returns nil both when the session is anonymous and
// when the backend reports no active subscription. The caller cannot tell
// the two apart, which is fine: an anonymous user trivially has no
// subscription.
func (s *SubscriptionsClient) GetActiveSubscription(ctx context.Context) *Package {
	if s.ensureInitialized() != nil {
		return nil
	}
	if !s.session.HasSession() {
		return nil
	}
	var pkg Package
	if err := s.client.sendAndDecode(ctx, http.MethodGet, routes.SubscriptionsActive, nil, &pkg); err != nil {
		return nil
	}
	if pkg.ID == "" {
		return nil
	}
	return &pkg
}

// CancelSubscription returns true only on confirmed server-side
// cancellation. Every failure reads as false: a failed cancellation is a
// recoverable UI state, not a program fault.
func (s *SubscriptionsClient) CancelSubscription(ctx context.Context) bool {
	if s.ensureInitialized() != nil {
		return false
	}
	if !s.session.HasSession() {
		return false
	}
	if err := s.client.sendAndDecode(ctx, http.MethodPost, routes.SubscriptionsCancel, nil, nil); err != nil {
		return false
	}
	return true
}
