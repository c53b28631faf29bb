package ats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestChooseAdapter(t *testing.T) {
	if _, ok := ChooseAdapter("https://ats.example.com", "key").(*RemoteAdapter); !ok {
		t.Fatal("expected RemoteAdapter when url and key are set")
	}
	if _, ok := ChooseAdapter("https://ats.example.com", "").(*LocalAdapter); !ok {
		t.Fatal("expected LocalAdapter without api key")
	}
	if _, ok := ChooseAdapter("", "key").(*LocalAdapter); !ok {
		t.Fatal("expected LocalAdapter without url")
	}
	if _, ok := ChooseAdapter("  ", "  ").(*LocalAdapter); !ok {
		t.Fatal("expected LocalAdapter for blank config")
	}
}

func TestLocalAdapterFallsBackOnMissingFile(t *testing.T) {
	a := &LocalAdapter{}
	result, err := a.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if err != nil {
		t.Fatalf("local adapter returned error: %v", err)
	}
	if result.Score != 70 {
		t.Fatalf("fallback score = %d, want 70", result.Score)
	}
}

func TestLocalAdapterScoresUnparsablePDF(t *testing.T) {
	// Not a real PDF: extraction yields no text, so the score is pure
	// format and size bonus.
	path := filepath.Join(t.TempDir(), "resume.pdf")
	data := append([]byte("%PDF-1.4\n"), make([]byte, 60_000)...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	a := &LocalAdapter{}
	result, err := a.Analyze(context.Background(), path)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Score != 80 {
		t.Fatalf("score = %d, want 80", result.Score)
	}
}

func TestRemoteAdapterSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\ncontent"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("resume"); err != nil {
			t.Errorf("missing resume part: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"score":88,"sections":[{"name":"Overall","advice":"ok","severity":"low"}]}`))
	}))
	defer srv.Close()

	a := &RemoteAdapter{URL: srv.URL, APIKey: "secret-key", Client: srv.Client()}
	result, err := a.Analyze(context.Background(), path)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.Score != 88 {
		t.Fatalf("score = %d, want 88", result.Score)
	}
	if result.Meta == nil {
		t.Fatal("meta should be non-nil")
	}
}

func TestRemoteAdapterNon2xx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\ncontent"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := &RemoteAdapter{URL: srv.URL, APIKey: "secret-key", Client: srv.Client()}
	_, err := a.Analyze(context.Background(), path)
	var aerr *AdapterError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AdapterError, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("error should mention status: %v", err)
	}
}

func TestRemoteAdapterTransportError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\ncontent"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	a := &RemoteAdapter{URL: "http://127.0.0.1:1", APIKey: "secret-key"}
	_, err := a.Analyze(context.Background(), path)
	var aerr *AdapterError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AdapterError, got %v", err)
	}
}
