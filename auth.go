// Package sdk provides the RoadReady Go SDK for interacting with the RoadReady API.
package sdk

import (
	"net/http"
)

type authStrategy interface {
	Apply(req *http.Request)
}

type authChain []authStrategy

func (c authChain) Apply(req *http.Request) {
	for _, s := range c {
		if s == nil {
			continue
		}
		s.Apply(req)
	}
}

// sessionAuth attaches the stored access token as a bearer header. Requests
// made while the session is anonymous go out unauthenticated.
type sessionAuth struct {
	session *SessionStore
}

func (s sessionAuth) Apply(req *http.Request) {
	token := s.session.AccessToken()
	if token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
