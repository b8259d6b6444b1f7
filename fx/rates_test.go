package fx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestJPYToLKRSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rates": {"LKR": 2.05, "USD": 0.0067}}`))
	}))
	defer srv.Close()

	rate, fallback := NewClientFor(srv.URL).JPYToLKR(context.Background())
	if fallback {
		t.Fatal("expected live rate, got fallback")
	}
	if rate != 2.05 {
		t.Errorf("rate = %v, want 2.05", rate)
	}
}

func TestJPYToLKRServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rate, fallback := NewClientFor(srv.URL).JPYToLKR(context.Background())
	if !fallback || rate != FallbackJPYLKR {
		t.Errorf("got (%v, %v), want fallback rate %v", rate, fallback, FallbackJPYLKR)
	}
}

func TestJPYToLKRBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	rate, fallback := NewClientFor(srv.URL).JPYToLKR(context.Background())
	if !fallback || rate != FallbackJPYLKR {
		t.Errorf("got (%v, %v), want fallback rate %v", rate, fallback, FallbackJPYLKR)
	}
}

func TestJPYToLKRMissingCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates": {"USD": 0.0067}}`))
	}))
	defer srv.Close()

	rate, fallback := NewClientFor(srv.URL).JPYToLKR(context.Background())
	if !fallback || rate != FallbackJPYLKR {
		t.Errorf("got (%v, %v), want fallback rate %v", rate, fallback, FallbackJPYLKR)
	}
}

func TestJPYToLKRTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"rates": {"LKR": 2.05}}`))
	}))
	defer srv.Close()

	c := NewClientFor(srv.URL)
	c.setTimeout(50 * time.Millisecond)

	rate, fallback := c.JPYToLKR(context.Background())
	if !fallback || rate != FallbackJPYLKR {
		t.Errorf("got (%v, %v), want fallback rate %v", rate, fallback, FallbackJPYLKR)
	}
}
