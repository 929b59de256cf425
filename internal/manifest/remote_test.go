package manifest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleManifest))
	}))
	defer server.Close()

	m, err := Fetch(context.Background(), server.URL, RemoteOptions{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(m.Entities) != 2 {
		t.Errorf("entities = %d, want 2", len(m.Entities))
	}
	if m.Hub.Name != "core" {
		t.Errorf("hub name = %q, want \"core\"", m.Hub.Name)
	}
}

func TestFetch_BasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "orbit" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(sampleManifest))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, RemoteOptions{})
	if err == nil {
		t.Error("Fetch() without credentials should fail")
	}

	m, err := Fetch(context.Background(), server.URL, RemoteOptions{Username: "orbit", Password: "secret"})
	if err != nil {
		t.Fatalf("Fetch() with credentials error = %v", err)
	}
	if len(m.Entities) != 2 {
		t.Errorf("entities = %d, want 2", len(m.Entities))
	}
}

func TestFetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL, RemoteOptions{}); err == nil {
		t.Error("Fetch() expected error for 404 response")
	}
}

func TestFetch_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("canvas {"))
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL, RemoteOptions{}); err == nil {
		t.Error("Fetch() expected error for unparseable body")
	}
}

func TestFetch_EmptyURL(t *testing.T) {
	if _, err := Fetch(context.Background(), "", RemoteOptions{}); err == nil {
		t.Error("Fetch() expected error for empty URL")
	}
}
