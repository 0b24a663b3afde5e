// Package headers defines HTTP header constants used across the RoadReady API.
package headers

const (
	// RequestID is the header for request correlation. The SDK generates one
	// per request when the caller has not supplied it.
	RequestID = "X-RoadReady-Request-Id"
)
