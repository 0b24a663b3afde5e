package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUpdatePreferences(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/notifications/preferences", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		var prefs Preferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if len(prefs.CenterIDs) != 2 || prefs.Days[0] != "saturday" {
			t.Errorf("unexpected preferences %+v", prefs)
		}
		w.WriteHeader(http.StatusOK)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	client, err := NewClient(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ok := client.Notifications.UpdatePreferences(context.Background(), Preferences{
		Email:     "user@example.com",
		CenterIDs: []int{1, 2},
		StartDate: "2026-09-01",
		EndDate:   "2026-10-01",
		Days:      []string{"saturday", "sunday"},
	})
	if !ok {
		t.Fatal("expected update to report success")
	}
}

func TestUpdatePreferencesFailureIsFalse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	client, err := NewClient(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.Notifications.UpdatePreferences(context.Background(), Preferences{}) {
		t.Fatal("expected failure to read as false")
	}
}

func TestUnsubscribe(t *testing.T) {
	id := uuid.New()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/notifications/unsubscribe/"+id.String()) {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	client, err := NewClient(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if !client.Notifications.Unsubscribe(context.Background(), id) {
		t.Fatal("expected unsubscribe to report success")
	}
	if client.Notifications.Unsubscribe(context.Background(), uuid.Nil) {
		t.Fatal("expected nil id to report false")
	}
}
