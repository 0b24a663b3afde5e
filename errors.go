package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// UsageError reports misuse of the SDK by the caller, such as an empty
// endpoint path. It is raised before any network activity and is never
// retried.
type UsageError struct {
	Reason string
}

func (e UsageError) Error() string { return "sdk: " + e.Reason }

// AuthenticationError signals that the backend rejected the request with
// 401, or that an operation deliberately requires the user to sign in
// before it can proceed (see SubscriptionsClient.BeginCheckout).
type AuthenticationError struct {
	Message string
}

func (e AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication required"
	}
	return e.Message
}

// ValidationError carries the field-level detail of a 400 response so forms
// can re-display the server's messages verbatim.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e ValidationError) Error() string {
	if e.Message == "" {
		return "validation failed"
	}
	return e.Message
}

// APIError captures any other non-success response, with the status code
// and the parsed body when one was present.
type APIError struct {
	Status  int
	Message string
	Body    any
}

func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed (%d)", e.Status)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Status)
}

// PaymentError surfaces a payment-provider failure. Message is the
// provider's own text, passed through verbatim.
type PaymentError struct {
	Message string
}

func (e PaymentError) Error() string {
	if e.Message == "" {
		return "payment failed"
	}
	return e.Message
}

// IsAuthenticationRequired reports whether err is an AuthenticationError.
func IsAuthenticationRequired(err error) bool {
	var authErr AuthenticationError
	return errors.As(err, &authErr)
}

// IsValidationFailed reports whether err is a ValidationError.
func IsValidationFailed(err error) bool {
	var valErr ValidationError
	return errors.As(err, &valErr)
}

// userMessage extracts a server-supplied message suitable for inline form
// display. ok is false for errors outside the API taxonomy, which callers
// should propagate instead of flattening.
func userMessage(err error) (string, bool) {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return valErr.Error(), true
	}
	var authErr AuthenticationError
	if errors.As(err, &authErr) {
		return authErr.Error(), true
	}
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error(), true
	}
	return "", false
}

// decodeAPIError classifies a non-success response into the SDK error
// taxonomy: 401 AuthenticationError, 400 ValidationError, anything else
// APIError. The body is parsed as JSON when the response declares it and
// treated as opaque text otherwise.
func decodeAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	var body any
	if isJSONContentType(resp.Header.Get("Content-Type")) && len(data) > 0 {
		if err := json.Unmarshal(data, &body); err != nil {
			body = string(data)
		}
	} else if len(data) > 0 {
		body = string(data)
	}

	message, fields := errorDetail(body)
	if message == "" {
		message = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return AuthenticationError{Message: message}
	case http.StatusBadRequest:
		return ValidationError{Message: message, Fields: fields}
	default:
		return APIError{Status: resp.StatusCode, Message: message, Body: body}
	}
}

// errorDetail pulls the backend's "detail" payload apart. The API reports
// either a plain string or a field → message object.
func errorDetail(body any) (string, map[string]string) {
	obj, ok := body.(map[string]any)
	if !ok {
		return "", nil
	}
	switch detail := obj["detail"].(type) {
	case string:
		return detail, nil
	case map[string]any:
		fields := make(map[string]string, len(detail))
		for field, msg := range detail {
			if s, ok := msg.(string); ok {
				fields[field] = s
			}
		}
		return joinFieldMessages(fields), fields
	default:
		return "", nil
	}
}

func joinFieldMessages(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, field := range keys {
		msgs = append(msgs, fields[field])
	}
	return strings.Join(msgs, "; ")
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}
