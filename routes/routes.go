// Package routes provides shared API route constants used by the SDK's
// service clients to prevent endpoint-path mismatches.
package routes

const (
	// AuthSignup registers a new account.
	AuthSignup = "/auth/signup"

	// AuthSignin exchanges form-encoded credentials for tokens.
	AuthSignin = "/auth/signin"

	// AuthRefresh exchanges a refresh token for a new access token.
	AuthRefresh = "/auth/refresh"

	// Centers lists the available road-test centers.
	Centers = "/centers"

	// Subscriptions creates a payment setup for a package (bearer-authenticated).
	Subscriptions = "/subscriptions"

	// SubscriptionsActive returns the caller's active subscription, or 404.
	SubscriptionsActive = "/subscriptions/active"

	// SubscriptionsCancel cancels the caller's active subscription.
	SubscriptionsCancel = "/subscriptions/cancel"

	// NotificationPreferences updates the caller's slot-notification preferences.
	NotificationPreferences = "/notifications/preferences"

	// NotificationsUnsubscribe is the prefix for per-notification opt-out.
	NotificationsUnsubscribe = "/notifications/unsubscribe"
)
