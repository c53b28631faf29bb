package ats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"careers-backend/internal/extract"
	"careers-backend/internal/shared/telemetry"
)

const remoteTimeout = 30 * time.Second

// Adapter scores the resume file at path. Exactly two implementations exist:
// the remote ATS service and the local heuristic scorer.
type Adapter interface {
	Analyze(ctx context.Context, path string) (Result, error)
}

// ChooseAdapter picks the remote adapter when both the endpoint and the
// credential are configured, the local one otherwise. Callers invoke it per
// request so configuration changes apply on the next check.
func ChooseAdapter(remoteURL, remoteKey string) Adapter {
	if strings.TrimSpace(remoteURL) != "" && strings.TrimSpace(remoteKey) != "" {
		return &RemoteAdapter{
			URL:    remoteURL,
			APIKey: remoteKey,
			Client: &http.Client{Timeout: remoteTimeout},
		}
	}
	return &LocalAdapter{}
}

// LocalAdapter runs the heuristic scorer over locally extracted text. It
// never fails: any problem reading the file degrades to the fallback result.
type LocalAdapter struct{}

// Analyze extracts text from the file and scores it.
func (a *LocalAdapter) Analyze(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return FallbackResult(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		telemetry.Error("ats.local.stat_failed", map[string]any{"err": err.Error()})
		return FallbackResult(), nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	text := extract.Text(path, ext)
	return Score(info.Size(), ext, text), nil
}

// RemoteAdapter delegates scoring to an external ATS HTTP API.
type RemoteAdapter struct {
	URL    string
	APIKey string
	Client *http.Client
}

// Analyze posts the file bytes as multipart form data and decodes the JSON
// verdict. Transport errors and non-2xx responses surface as AdapterError.
func (a *RemoteAdapter) Analyze(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, &AdapterError{Err: fmt.Errorf("open resume: %w", err)}
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", filepath.Base(path))
	if err != nil {
		return Result{}, &AdapterError{Err: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return Result{}, &AdapterError{Err: fmt.Errorf("read resume: %w", err)}
	}
	if err := writer.Close(); err != nil {
		return Result{}, &AdapterError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL, &body)
	if err != nil {
		return Result{}, &AdapterError{Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+a.APIKey)

	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: remoteTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, &AdapterError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &AdapterError{Err: fmt.Errorf("ats api status %d", resp.StatusCode)}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, &AdapterError{Err: fmt.Errorf("decode ats response: %w", err)}
	}
	if result.Meta == nil {
		result.Meta = map[string]any{}
	}
	return result, nil
}
