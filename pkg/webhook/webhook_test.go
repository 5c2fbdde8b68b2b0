package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	statex "github.com/viliokaized/prime-intake/agent/state"
)

func testLead() statex.Lead {
	return statex.Lead{
		Name:          "John Smith",
		Email:         "john@smith.com",
		Phone:         "+1 555 010 2030",
		InsuranceType: "auto",
	}
}

func TestNotifySendsLeadPayload(t *testing.T) {
	t.Parallel()

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if err := client.Notify(context.Background(), testLead()); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}

	want := map[string]string{
		"name":  "John Smith",
		"email": "john@smith.com",
		"phone": "+1 555 010 2030",
		"type":  "auto",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("payload[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestNotifyNon2xxIsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "scenario disabled", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	err = client.Notify(context.Background(), testLead())
	if err == nil {
		t.Fatal("Notify() succeeded on a 503 response")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("error does not carry status: %v", err)
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{URL: ""}); err == nil {
		t.Fatal("empty url accepted")
	}
	if _, err := NewClient(Config{URL: "not a url"}); err == nil {
		t.Fatal("malformed url accepted")
	}
}
