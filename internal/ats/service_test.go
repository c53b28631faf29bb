package ats

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type stubAdapter struct {
	result      Result
	err         error
	calls       int
	sawStagedAt string
}

func (a *stubAdapter) Analyze(ctx context.Context, path string) (Result, error) {
	a.calls++
	if _, err := os.Stat(path); err == nil {
		a.sawStagedAt = path
	}
	if a.err != nil {
		return Result{}, a.err
	}
	return a.result, nil
}

func newTestService(t *testing.T, adapter Adapter) (*Service, *MemoryRepo) {
	t.Helper()
	repo := NewMemoryRepo()
	svc := &Service{
		Repo:          repo,
		Limiter:       NewLimiter(10, time.Hour, nil),
		TempDir:       t.TempDir(),
		SelectAdapter: func() Adapter { return adapter },
	}
	return svc, repo
}

func validPDF() []byte {
	return []byte("%PDF-1.4\nfake resume body with experience and skills")
}

func TestCheckResumeStoresRecordAndCleansUp(t *testing.T) {
	adapter := &stubAdapter{result: Result{Score: 85, Meta: map[string]any{}}}
	svc, repo := newTestService(t, adapter)

	data := validPDF()
	result, err := svc.CheckResume(context.Background(), "guest:abc", "resume.pdf", int64(len(data)), bytes.NewReader(data))
	if err != nil {
		t.Fatalf("CheckResume: %v", err)
	}
	if result.Score != 85 {
		t.Fatalf("score = %d, want 85", result.Score)
	}

	if adapter.sawStagedAt == "" {
		t.Fatal("adapter never saw a staged file")
	}
	assertNoTempFiles(t, svc.TempDir)

	records, err := repo.ListRecentByUser(context.Background(), "guest:abc", 5)
	if err != nil {
		t.Fatalf("ListRecentByUser: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("persisted %d records, want 1", len(records))
	}
	if records[0].Score != 85 {
		t.Fatalf("persisted score = %d, want 85", records[0].Score)
	}
}

func TestCheckResumeRejectsOversizedBeforeStaging(t *testing.T) {
	adapter := &stubAdapter{result: Result{Score: 85}}
	svc, repo := newTestService(t, adapter)

	_, err := svc.CheckResume(context.Background(), "guest:abc", "resume.pdf", 6<<20, bytes.NewReader(nil))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "size" {
		t.Fatalf("field = %q, want size", verr.Field)
	}

	if adapter.calls != 0 {
		t.Fatal("adapter invoked for rejected upload")
	}
	assertNoTempFiles(t, svc.TempDir)
	if records, _ := repo.ListRecentByUser(context.Background(), "guest:abc", 5); len(records) != 0 {
		t.Fatalf("persisted %d records for rejected upload", len(records))
	}
}

func TestCheckResumeRejectsWrongExtension(t *testing.T) {
	svc, _ := newTestService(t, &stubAdapter{})

	data := []byte("plain text")
	_, err := svc.CheckResume(context.Background(), "guest:abc", "resume.txt", int64(len(data)), bytes.NewReader(data))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCheckResumeRejectsMismatchedContent(t *testing.T) {
	svc, _ := newTestService(t, &stubAdapter{})

	// Named .pdf but the payload is plain text.
	data := []byte("this is not a pdf at all, just some words in a row")
	_, err := svc.CheckResume(context.Background(), "guest:abc", "resume.pdf", int64(len(data)), bytes.NewReader(data))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	assertNoTempFiles(t, svc.TempDir)
}

func TestCheckResumeAdapterFailureCleansUp(t *testing.T) {
	adapter := &stubAdapter{err: &AdapterError{Err: errors.New("remote down")}}
	svc, repo := newTestService(t, adapter)

	data := validPDF()
	_, err := svc.CheckResume(context.Background(), "guest:abc", "resume.pdf", int64(len(data)), bytes.NewReader(data))
	var aerr *AdapterError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AdapterError, got %v", err)
	}

	assertNoTempFiles(t, svc.TempDir)
	if records, _ := repo.ListRecentByUser(context.Background(), "guest:abc", 5); len(records) != 0 {
		t.Fatalf("persisted %d records for failed analysis", len(records))
	}
}

func TestCheckResumeThrottlesEleventhUpload(t *testing.T) {
	adapter := &stubAdapter{result: Result{Score: 75, Meta: map[string]any{}}}
	svc, _ := newTestService(t, adapter)

	data := validPDF()
	for i := 0; i < 10; i++ {
		if _, err := svc.CheckResume(context.Background(), "guest:abc", "resume.pdf", int64(len(data)), bytes.NewReader(data)); err != nil {
			t.Fatalf("upload %d: %v", i+1, err)
		}
	}

	_, err := svc.CheckResume(context.Background(), "guest:abc", "resume.pdf", int64(len(data)), bytes.NewReader(data))
	var terr *ThrottleError
	if !errors.As(err, &terr) {
		t.Fatalf("expected ThrottleError on 11th upload, got %v", err)
	}
	if terr.RetryAfter <= 0 {
		t.Fatalf("RetryAfter = %s, want positive", terr.RetryAfter)
	}

	// A different user is unaffected.
	if _, err := svc.CheckResume(context.Background(), "guest:other", "resume.pdf", int64(len(data)), bytes.NewReader(data)); err != nil {
		t.Fatalf("other user throttled: %v", err)
	}
}

func TestCheckResumeRequiresUserID(t *testing.T) {
	svc, _ := newTestService(t, &stubAdapter{})
	data := validPDF()
	if _, err := svc.CheckResume(context.Background(), "  ", "resume.pdf", int64(len(data)), bytes.NewReader(data)); err == nil {
		t.Fatal("expected error for blank user id")
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	var leftover []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			leftover = append(leftover, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk temp dir: %v", err)
	}
	if len(leftover) != 0 {
		t.Fatalf("temp files left behind: %v", leftover)
	}
}
