package sdk

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/roadready/sdk-go/routes"
)

// NotificationsClient manages slot-notification preferences. Both
// operations are best-effort writes that degrade to a boolean, since the
// UI treats a failed save as a retryable state rather than a fault.
type NotificationsClient struct {
	client *Client
}

func (n *NotificationsClient) ensureInitialized() error {
	if n == nil || n.client == nil {
		return fmt.Errorf("sdk: notifications client not initialized")
	}
	return nil
}

// UpdatePreferences replaces the caller's notification preferences.
func (n *NotificationsClient) UpdatePreferences(ctx context.Context, prefs Preferences) bool {
	if n.ensureInitialized() != nil {
		return false
	}
	if err := n.client.sendAndDecode(ctx, http.MethodPut, routes.NotificationPreferences, prefs, nil); err != nil {
		return false
	}
	return true
}

// Unsubscribe opts out of a single notification stream by its identifier.
func (n *NotificationsClient) Unsubscribe(ctx context.Context, notificationID uuid.UUID) bool {
	if n.ensureInitialized() != nil {
		return false
	}
	if notificationID == uuid.Nil {
		return false
	}
	path := fmt.Sprintf("%s/%s", routes.NotificationsUnsubscribe, notificationID)
	if err := n.client.sendAndDecode(ctx, http.MethodPost, path, nil, nil); err != nil {
		return false
	}
	return true
}
