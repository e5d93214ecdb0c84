package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:    baseURL,
		SecretKey:  "sk_test_123",
		Currency:   "usd",
		SuccessURL: "https://app.example.com/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  "https://app.example.com/cancel",
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	var got createSessionRequest
	var idempotencyKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk_test_123" {
			t.Errorf("missing secret key header")
		}
		idempotencyKey = r.Header.Get("Idempotency-Key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CheckoutSession{
			ID:  "cs_123",
			URL: "https://checkout.example.com/cs_123",
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	session, err := client.CreateCheckoutSession(context.Background(), CheckoutParams{
		AmountMinor: 5000,
		ProductName: "Global Excellence Scholarship - University of Oxford",
		Metadata:    map[string]string{"scholarshipId": "42"},
	})
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	if session.URL != "https://checkout.example.com/cs_123" {
		t.Fatalf("unexpected session URL %q", session.URL)
	}
	if idempotencyKey == "" {
		t.Fatalf("expected an idempotency key on the request")
	}
	if got.Mode != "payment" || got.Currency != "usd" {
		t.Fatalf("unexpected session payload: mode %q currency %q", got.Mode, got.Currency)
	}
	if len(got.LineItems) != 1 || got.LineItems[0].Amount != 5000 || got.LineItems[0].Quantity != 1 {
		t.Fatalf("unexpected line items %+v", got.LineItems)
	}
	if got.Metadata["scholarshipId"] != "42" {
		t.Fatalf("expected metadata to pass through, got %v", got.Metadata)
	}
}

// Each call is its own submission toward the processor, so keys must differ
// between calls.
func TestCreateCheckoutSessionUsesFreshIdempotencyKeys(t *testing.T) {
	keys := map[string]int{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys[r.Header.Get("Idempotency-Key")]++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CheckoutSession{ID: "cs_123", URL: "https://checkout.example.com/cs_123"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	params := CheckoutParams{AmountMinor: 5000, ProductName: "Global Excellence Scholarship"}
	for i := 0; i < 2; i++ {
		if _, err := client.CreateCheckoutSession(context.Background(), params); err != nil {
			t.Fatalf("create session failed: %v", err)
		}
	}

	if len(keys) != 2 {
		t.Fatalf("expected 2 distinct keys, got %v", keys)
	}
}

func TestGetCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/checkout/sessions/cs_123" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(CheckoutSession{
			ID:            "cs_123",
			PaymentStatus: PaymentStatusPaid,
			PaymentIntent: "pi_456",
			AmountTotal:   5000,
			Metadata:      map[string]string{"userEmail": "student@example.com"},
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	session, err := client.GetCheckoutSession(context.Background(), "cs_123")
	if err != nil {
		t.Fatalf("get session failed: %v", err)
	}

	if session.PaymentStatus != PaymentStatusPaid {
		t.Fatalf("expected paid status, got %q", session.PaymentStatus)
	}
	if session.PaymentIntent != "pi_456" {
		t.Fatalf("expected payment intent, got %q", session.PaymentIntent)
	}
	if session.Metadata["userEmail"] != "student@example.com" {
		t.Fatalf("expected metadata, got %v", session.Metadata)
	}
}

func TestGetCheckoutSessionErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	if _, err := client.GetCheckoutSession(context.Background(), "cs_missing"); err == nil {
		t.Fatalf("expected an error for a missing session")
	}
}
