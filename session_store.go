package sdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	storageKeyAccessToken  = "auth_token"
	storageKeyRefreshToken = "refresh_token"
)

// SessionStore persists the access/refresh token pair in the injected
// Storage. It carries no network or validation logic; AuthClient is the
// only component that writes to it.
//
// A refresh token may be present without a valid access token (expired
// access, still refreshable). An access token is only ever written from a
// successful auth response.
type SessionStore struct {
	storage Storage
}

// NewSessionStore wraps the given storage.
func NewSessionStore(storage Storage) *SessionStore {
	return &SessionStore{storage: storage}
}

// AccessToken returns the stored access token, or "" when absent.
func (s *SessionStore) AccessToken() string {
	v, _ := s.storage.Get(storageKeyAccessToken)
	return v
}

// RefreshToken returns the stored refresh token, or "" when absent.
func (s *SessionStore) RefreshToken() string {
	v, _ := s.storage.Get(storageKeyRefreshToken)
	return v
}

// SetTokens commits the access token and, when non-empty, the refresh
// token. An empty refresh argument leaves any stored refresh token as is,
// mirroring refresh responses that return only a new access token.
func (s *SessionStore) SetTokens(access, refresh string) error {
	if err := s.storage.Set(storageKeyAccessToken, access); err != nil {
		return err
	}
	if refresh != "" {
		return s.storage.Set(storageKeyRefreshToken, refresh)
	}
	return nil
}

// Clear removes both tokens. It never fails: a delete on a missing key is
// a no-op and storage errors leave the session no worse than stale.
func (s *SessionStore) Clear() {
	_ = s.storage.Delete(storageKeyAccessToken)
	_ = s.storage.Delete(storageKeyRefreshToken)
}

// HasSession reports whether an access token is present. Presence does not
// imply the token is still accepted server-side.
func (s *SessionStore) HasSession() bool {
	return s.AccessToken() != ""
}

// AccessTokenExpired peeks at the unverified exp claim of the stored access
// token. Opaque or claim-less tokens report false; the server remains the
// authority on acceptance either way.
func (s *SessionStore) AccessTokenExpired(now time.Time) bool {
	token := s.AccessToken()
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
