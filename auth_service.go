package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/roadready/sdk-go/routes"
)

// AuthClient implements sign-up, sign-in, session refresh, and logout as
// atomic operations over the shared Client and SessionStore.
//
// Session validity moves Anonymous → Authenticated on a successful
// sign-in/sign-up and back on logout or a failed refresh. An access token
// that is present but expired server-side is a valid transient state; only
// an explicit refresh attempt or logout resolves it.
type AuthClient struct {
	client  *Client
	session *SessionStore
}

// ensureInitialized returns an error if the client is not properly initialized.
func (a *AuthClient) ensureInitialized() error {
	if a == nil || a.client == nil {
		return fmt.Errorf("sdk: auth client not initialized")
	}
	return nil
}

// SignUp registers a new account. On a response containing an access token
// the session is committed. Backend rejections within the API taxonomy
// come back as AuthResult{Success: false, Message: <server text>} with a
// nil error so forms can display them inline; anything else propagates.
func (a *AuthClient) SignUp(ctx context.Context, input SignupInput) (AuthResult, error) {
	if err := a.ensureInitialized(); err != nil {
		return AuthResult{}, err
	}

	payload := struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Password string `json:"password"`
	}{
		Email:    input.Email,
		FullName: input.FullName,
		Password: input.Password,
	}

	var tokens tokenResponse
	if err := a.client.sendAndDecode(ctx, http.MethodPost, routes.AuthSignup, payload, &tokens); err != nil {
		if msg, ok := userMessage(err); ok {
			return AuthResult{Success: false, Message: msg}, nil
		}
		return AuthResult{}, err
	}

	if tokens.AccessToken != "" {
		if err := a.session.SetTokens(tokens.AccessToken, tokens.RefreshToken); err != nil {
			return AuthResult{}, err
		}
	}
	return AuthResult{Success: true}, nil
}

// SignIn submits credentials form-encoded (username=email) because the
// sign-in endpoint is form-based, unlike the rest of the API. A response
// that carries no token and no error resolves to "Invalid credentials"
// rather than crashing on a misbehaving backend.
func (a *AuthClient) SignIn(ctx context.Context, creds Credentials) (AuthResult, error) {
	if err := a.ensureInitialized(); err != nil {
		return AuthResult{}, err
	}

	form := url.Values{}
	form.Set("username", creds.Email)
	form.Set("password", creds.Password)

	req, err := a.client.newFormRequest(ctx, http.MethodPost, routes.AuthSignin, form)
	if err != nil {
		return AuthResult{}, err
	}
	var tokens tokenResponse
	if err := a.client.decodeResponse(req, &tokens); err != nil {
		if msg, ok := userMessage(err); ok {
			return AuthResult{Success: false, Message: msg}, nil
		}
		return AuthResult{}, err
	}

	if tokens.AccessToken == "" {
		return AuthResult{Success: false, Message: "Invalid credentials"}, nil
	}
	if err := a.session.SetTokens(tokens.AccessToken, tokens.RefreshToken); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Success: true}, nil
}

// RefreshSession exchanges the stored refresh token for a new access
// token. With no refresh token stored it returns false without touching
// the network. Any failure clears the entire session: a failed refresh
// invalidates the whole session rather than leaving a stale access token
// in place.
func (a *AuthClient) RefreshSession(ctx context.Context) bool {
	if a.ensureInitialized() != nil {
		return false
	}
	refresh := a.session.RefreshToken()
	if refresh == "" {
		return false
	}

	payload := struct {
		RefreshToken string `json:"refresh_token"`
	}{RefreshToken: refresh}

	var tokens tokenResponse
	if err := a.client.sendAndDecode(ctx, http.MethodPost, routes.AuthRefresh, payload, &tokens); err != nil {
		a.session.Clear()
		return false
	}
	if tokens.AccessToken == "" {
		return false
	}
	if err := a.session.SetTokens(tokens.AccessToken, ""); err != nil {
		a.session.Clear()
		return false
	}
	return true
}

// EnsureSession refreshes when the stored access token is absent or has an
// expired exp claim. Returns whether an access token is usable afterwards.
func (a *AuthClient) EnsureSession(ctx context.Context) bool {
	if a.ensureInitialized() != nil {
		return false
	}
	if a.session.HasSession() && !a.session.AccessTokenExpired(time.Now()) {
		return true
	}
	return a.RefreshSession(ctx)
}

// Logout clears the session unconditionally. It never fails.
func (a *AuthClient) Logout() {
	if a.ensureInitialized() != nil {
		return
	}
	a.session.Clear()
}

// IsAuthenticated reports token presence only; it does not contact the
// network.
func (a *AuthClient) IsAuthenticated() bool {
	if a.ensureInitialized() != nil {
		return false
	}
	return a.session.HasSession()
}
