package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCentersList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/centers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Downtown", "city": "Vancouver", "address": "999 Main St"},
			{"id": 2, "name": "North Shore", "city": "North Vancouver", "address": "12 Esplanade"}
		]`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	client, err := NewClient(Config{BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	centers, err := client.Centers.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(centers) != 2 {
		t.Fatalf("expected 2 centers, got %d", len(centers))
	}
	if centers[0].City != "Vancouver" {
		t.Fatalf("unexpected first center %+v", centers[0])
	}
}
