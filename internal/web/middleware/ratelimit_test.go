package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimit_AllowsRequestUnderLimit(t *testing.T) {
	middleware := RateLimit(100, 200)

	handlerCalled := false
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req.RemoteAddr = "10.0.0.1:50000"
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("got status %d, want %d", rr.Code, http.StatusOK)
	}
	if !handlerCalled {
		t.Error("expected handler to be called")
	}
}

func TestRateLimit_RejectsRequestOverLimit(t *testing.T) {
	middleware := RateLimit(1, 1)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// First request uses the burst.
	req1 := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req1.RemoteAddr = "10.0.0.2:50000"
	rr1 := httptest.NewRecorder()
	handler.ServeHTTP(rr1, req1)

	if rr1.Code != http.StatusOK {
		t.Errorf("first request: got status %d, want %d", rr1.Code, http.StatusOK)
	}

	// Second request from the same client is rejected.
	req2 := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req2.RemoteAddr = "10.0.0.2:50001"
	rr2 := httptest.NewRecorder()
	handler.ServeHTTP(rr2, req2)

	if rr2.Code != http.StatusTooManyRequests {
		t.Errorf("second request: got status %d, want %d", rr2.Code, http.StatusTooManyRequests)
	}
	if rr2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on a limited response")
	}
}

func TestRateLimit_LimitsPerClient(t *testing.T) {
	middleware := RateLimit(1, 1)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Exhaust one client's burst.
	req1 := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req1.RemoteAddr = "10.0.0.3:50000"
	handler.ServeHTTP(httptest.NewRecorder(), req1)

	// A different client still gets through.
	req2 := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
	req2.RemoteAddr = "10.0.0.4:50000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req2)

	if rr.Code != http.StatusOK {
		t.Errorf("different client: got status %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRateLimit_ZeroDisables(t *testing.T) {
	middleware := RateLimit(0, 0)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
		req.RemoteAddr = "10.0.0.5:50000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want %d", i, rr.Code, http.StatusOK)
		}
	}
}
