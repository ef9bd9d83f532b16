package fetch

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient(3 * time.Second)
	if client.http.Timeout != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %v", client.http.Timeout)
	}

	// Non-positive timeouts fall back to the default
	client = NewClient(0)
	if client.http.Timeout != DefaultTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultTimeout, client.http.Timeout)
	}
}

func TestFetch_Success(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("Expected User-Agent %q, got %q", UserAgent, got)
		}
		w.Write(payload)
	}))
	defer server.Close()

	client := NewClient(time.Second)
	data, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !bytes.Equal(data, payload) {
		t.Errorf("Expected payload %v, got %v", payload, data)
	}
}

func TestFetch_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(time.Second)
	_, err := client.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}

	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *fetch.Error, got %T", err)
	}
	if fetchErr.Kind != KindStatus {
		t.Errorf("Expected KindStatus, got %s", fetchErr.Kind)
	}
	if fetchErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected status code 500, got %d", fetchErr.StatusCode)
	}
	if !fetchErr.Temporary() {
		t.Error("Fetch errors should always be temporary")
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(time.Second)
	_, err := client.Fetch(context.Background(), url)
	if err == nil {
		t.Fatal("Expected error for closed server, got nil")
	}

	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *fetch.Error, got %T", err)
	}
	if fetchErr.Kind != KindTransport {
		t.Errorf("Expected KindTransport, got %s", fetchErr.Kind)
	}
	if fetchErr.Unwrap() == nil {
		t.Error("Transport errors should wrap the underlying error")
	}
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(50 * time.Millisecond)
	_, err := client.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected timeout error, got nil")
	}

	var fetchErr *Error
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *fetch.Error, got %T", err)
	}
	if fetchErr.Kind != KindTransport {
		t.Errorf("Expected KindTransport for timeout, got %s", fetchErr.Kind)
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(time.Second)
	_, err := client.Fetch(ctx, server.URL)
	if err == nil {
		t.Fatal("Expected error for cancelled context, got nil")
	}
}

func TestErrorMessage(t *testing.T) {
	statusErr := &Error{URL: "http://example.com/a.png", Kind: KindStatus, StatusCode: 404}
	if statusErr.Error() != "fetch http://example.com/a.png: unexpected status 404" {
		t.Errorf("Unexpected status error message: %q", statusErr.Error())
	}

	transportErr := &Error{URL: "http://example.com/a.png", Kind: KindTransport, Err: errors.New("refused")}
	msg := transportErr.Error()
	if msg != "fetch http://example.com/a.png: transport error: refused" {
		t.Errorf("Unexpected transport error message: %q", msg)
	}
}
