package sdk

// Version is the published SDK version.
// 0.2.0: Add EnsureSession and the notification preference endpoints.
// 0.1.0: Initial release - auth, subscriptions, checkout, centers.
const Version = "0.2.0"
