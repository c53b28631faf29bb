package ats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"careers-backend/internal/shared/metrics"
	"careers-backend/internal/shared/telemetry"
	"careers-backend/internal/shared/util"
)

const recentHistoryLimit = 5

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// Service orchestrates the resume check pipeline: throttle, validate, stage
// the file, score it, record the verdict, and always remove the staged file.
type Service struct {
	Repo           Repo
	Limiter        *Limiter
	TempDir        string
	MaxUploadBytes int64
	RemoteURL      string
	RemoteKey      string

	// SelectAdapter overrides adapter selection, mainly for tests.
	SelectAdapter func() Adapter
}

// CheckResume runs one resume through the pipeline and returns the scored
// result. Errors crossing this boundary are *ThrottleError, *ValidationError,
// *AdapterError, or a storage failure; extraction and scoring problems never
// surface.
func (s *Service) CheckResume(ctx context.Context, userID, fileName string, declaredSize int64, r io.Reader) (Result, error) {
	start := time.Now()

	if strings.TrimSpace(userID) == "" {
		return Result{}, errors.New("user id is required")
	}

	if allowed, retryAfter := s.Limiter.Allow(userID); !allowed {
		metrics.IncResumeCheckThrottled()
		return Result{}, &ThrottleError{RetryAfter: retryAfter}
	}

	data, verr := s.validate(fileName, declaredSize, r)
	if verr != nil {
		metrics.IncResumeCheckRejected()
		return Result{}, verr
	}

	tempPath, err := s.stage(userID, fileName, data)
	if err != nil {
		return Result{}, err
	}
	// The staged file may hold sensitive personal data; it must never outlive
	// this request, whatever happens below.
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			telemetry.Error("ats.temp_cleanup_failed", map[string]any{
				"path": tempPath,
				"err":  err.Error(),
			})
		}
	}()

	adapter := s.adapter()
	result, err := adapter.Analyze(ctx, tempPath)
	if err != nil {
		metrics.IncResumeCheckFailed()
		telemetry.Error("ats.analyze_failed", map[string]any{
			"user_id": userID,
			"err":     err.Error(),
		})
		return Result{}, err
	}

	record := Analysis{
		ID:        uuid.NewString(),
		UserID:    userID,
		Score:     result.Score,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return Result{}, fmt.Errorf("persist analysis: %w", err)
	}

	metrics.IncResumeCheck()
	metrics.ObserveCheckDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("ats.check_complete", map[string]any{
		"user_id":     userID,
		"analysis_id": record.ID,
		"score":       result.Score,
	})
	return result, nil
}

// RecentAnalyses returns the user's latest records, newest first.
func (s *Service) RecentAnalyses(ctx context.Context, userID string) ([]Analysis, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}
	return s.Repo.ListRecentByUser(ctx, userID, recentHistoryLimit)
}

// validate rejects oversized, misnamed, or mistyped uploads before any side
// effect. It returns the full payload on success so staging writes exactly
// the bytes that were sniffed.
func (s *Service) validate(fileName string, declaredSize int64, r io.Reader) ([]byte, error) {
	maxBytes := s.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}

	if declaredSize > maxBytes {
		return nil, &ValidationError{Field: "size", Reason: fmt.Sprintf("file size must be under %d bytes", maxBytes)}
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, &ValidationError{Field: "resume", Reason: "only PDF, DOC, and DOCX files are allowed"}
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, &ValidationError{Field: "resume", Reason: "unable to read file"}
	}
	if int64(len(data)) > maxBytes {
		return nil, &ValidationError{Field: "size", Reason: fmt.Sprintf("file size must be under %d bytes", maxBytes)}
	}

	mime := sniffMimeType(data)
	if _, ok := allowedMimeTypes[mime]; !ok {
		return nil, &ValidationError{Field: "resume", Reason: "invalid file type"}
	}

	return data, nil
}

// stage writes the payload to a transient per-user location. Same-user
// concurrent uploads with the same file name share a path and the last write
// wins; the namespace only guarantees isolation between users.
func (s *Service) stage(userID, fileName string, data []byte) (string, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", &ValidationError{Field: "resume", Reason: "invalid file name"}
	}

	dir := filepath.Join(s.TempDir, util.HashUserKey(userID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir temp dir: %w", err)
	}

	path := filepath.Join(dir, sanitized)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return path, nil
}

func (s *Service) adapter() Adapter {
	if s.SelectAdapter != nil {
		return s.SelectAdapter()
	}
	return ChooseAdapter(s.RemoteURL, s.RemoteKey)
}
