package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestBeginCheckoutUnauthenticated(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(ts.Close)

	intents := NewMemoryStorage()
	client, err := NewClient(Config{BaseURL: ts.URL, IntentStorage: intents})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Subscriptions.BeginCheckout(context.Background(), "premium")
	if !IsAuthenticationRequired(err) {
		t.Fatalf("expected AuthenticationError, got %v", err)
	}
	if got := hits.Load(); got != 0 {
		t.Fatalf("expected no payment-setup call, got %d", got)
	}
	if stored, ok := intents.Get(intentStorageKey); !ok || stored != "premium" {
		t.Fatalf("expected pending intent %q, got %q (present=%v)", "premium", stored, ok)
	}
}

func TestBeginCheckoutAuthenticated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/subscriptions", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("expected bearer header, got %q", got)
		}
		var payload struct {
			PackageID string `json:"packageId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if payload.PackageID != "premium" {
			t.Errorf("unexpected package id %q", payload.PackageID)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(PaymentSetup{ClientSecret: "pi_123_secret_456"})
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	client, err := NewClient(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := client.Session().SetTokens("tok-1", ""); err != nil {
		t.Fatalf("SetTokens: %v", err)
	}

	setup, err := client.Subscriptions.BeginCheckout(context.Background(), "premium")
	if err != nil {
		t.Fatalf("BeginCheckout: %v", err)
	}
	if setup.ClientSecret != "pi_123_secret_456" {
		t.Fatalf("unexpected client secret %q", setup.ClientSecret)
	}
}

func TestIntentRoundTrip(t *testing.T) {
	client, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if err := client.Subscriptions.StoreIntent("P1"); err != nil {
		t.Fatalf("StoreIntent: %v", err)
	}
	// A later intent supersedes, never appends.
	if err := client.Subscriptions.StoreIntent("P2"); err != nil {
		t.Fatalf("StoreIntent: %v", err)
	}

	pkg, ok := client.Subscriptions.ResumeIntentAfterLogin()
	if !ok || pkg != "P2" {
		t.Fatalf("expected P2, got %q (present=%v)", pkg, ok)
	}
	if pkg, ok := client.Subscriptions.ResumeIntentAfterLogin(); ok {
		t.Fatalf("expected absent on second resume, got %q", pkg)
	}
}

func TestGetActiveSubscription(t *testing.T) {
	tests := []struct {
		name          string
		authenticated bool
		status        int
		body          string
		wantNil       bool
		wantHit       bool
	}{
		{
			name:          "active package",
			authenticated: true,
			status:        http.StatusOK,
			body:          `{"id": "premium", "name": "Premium", "price": 50}`,
			wantNil:       false,
			wantHit:       true,
		},
		{
			name:          "unauthenticated skips network",
			authenticated: false,
			wantNil:       true,
			wantHit:       false,
		},
		{
			name:          "401 reads as absent",
			authenticated: true,
			status:        http.StatusUnauthorized,
			body:          `{"detail": "expired"}`,
			wantNil:       true,
			wantHit:       true,
		},
		{
			name:          "404 reads as absent",
			authenticated: true,
			status:        http.StatusNotFound,
			body:          `{"detail": "no active subscription"}`,
			wantNil:       true,
			wantHit:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(ts.Close)

			client, err := NewClient(Config{BaseURL: ts.URL})
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if tt.authenticated {
				if err := client.Session().SetTokens("tok-1", ""); err != nil {
					t.Fatalf("SetTokens: %v", err)
				}
			}

			pkg := client.Subscriptions.GetActiveSubscription(context.Background())
			if tt.wantNil && pkg != nil {
				t.Fatalf("expected nil, got %+v", pkg)
			}
			if !tt.wantNil {
				if pkg == nil {
					t.Fatal("expected a package")
				}
				if pkg.ID != "premium" {
					t.Fatalf("unexpected package %+v", pkg)
				}
			}
			if tt.wantHit != (hits.Load() > 0) {
				t.Fatalf("expected network hit %v, got %d calls", tt.wantHit, hits.Load())
			}
		})
	}
}

func TestCancelSubscription(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{name: "confirmed", status: http.StatusOK, want: true},
		{name: "server error", status: http.StatusInternalServerError, want: false},
		{name: "expired auth", status: http.StatusUnauthorized, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(ts.Close)

			client, err := NewClient(Config{BaseURL: ts.URL})
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if err := client.Session().SetTokens("tok-1", ""); err != nil {
				t.Fatalf("SetTokens: %v", err)
			}

			if got := client.Subscriptions.CancelSubscription(context.Background()); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCancelSubscriptionUnauthenticated(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(ts.Close)

	client, err := NewClient(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.Subscriptions.CancelSubscription(context.Background()) {
		t.Fatal("expected false while anonymous")
	}
	if got := hits.Load(); got != 0 {
		t.Fatalf("expected no network call, got %d", got)
	}
}
