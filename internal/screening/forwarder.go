// Package screening builds and dispatches resume screening requests to the
// external AI scoring service. Dispatch is best effort: the caller logs and
// drops any error, and nothing about the application record changes based
// on the outcome. The scorer reports results through its own channel.
package screening

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// FallbackJobDescription is sent when the job lookup fails or the job has
// no description text.
const FallbackJobDescription = "Standard Job Requirements"

// Submission is the screening payload for one application.
type Submission struct {
	ApplicationID  string
	Name           string
	Email          string
	JobDescription string

	// Exactly one of ResumePath (relative to the uploads dir) or
	// ResumeURL is set.
	ResumePath string
	ResumeURL  string
}

type Config struct {
	SubmitURL      string
	UploadsDir     string
	RequestTimeout time.Duration
}

// Forwarder posts screening submissions to the AI scoring endpoint.
type Forwarder struct {
	client     *http.Client
	submitURL  string
	uploadsDir string
	logger     *slog.Logger
}

func NewForwarder(cfg *Config, logger *slog.Logger) *Forwarder {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Forwarder{
		client:     &http.Client{Timeout: timeout},
		submitURL:  cfg.SubmitURL,
		uploadsDir: cfg.UploadsDir,
		logger:     logger,
	}
}

// Forward sends one screening request. At most one attempt is made; there
// is no retry.
func (f *Forwarder) Forward(ctx context.Context, sub *Submission) error {
	body, contentType, err := f.buildBody(sub)
	if err != nil {
		return fmt.Errorf("failed to build screening payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.submitURL, body)
	if err != nil {
		return fmt.Errorf("failed to build screening request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	f.logger.Info("Forwarding application to AI agent",
		slog.String("application_id", sub.ApplicationID),
		slog.String("url", f.submitURL),
	)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to dispatch screening request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("screening endpoint returned status %d", resp.StatusCode)
	}

	f.logger.Info("Application forwarded to AI agent",
		slog.String("application_id", sub.ApplicationID),
	)

	return nil
}

// buildBody assembles the multipart form the scoring endpoint expects:
// job_description, name, email, and either a resume file part or a
// resume_url field.
func (f *Forwarder) buildBody(sub *Submission) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	jobDescription := sub.JobDescription
	if jobDescription == "" {
		jobDescription = FallbackJobDescription
	}

	fields := map[string]string{
		"job_description": jobDescription,
		"name":            sub.Name,
		"email":           sub.Email,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	switch {
	case sub.ResumePath != "":
		file, err := os.Open(filepath.Join(f.uploadsDir, filepath.Base(sub.ResumePath)))
		if err != nil {
			return nil, "", fmt.Errorf("failed to open resume file: %w", err)
		}
		defer file.Close()

		part, err := w.CreateFormFile("resume", filepath.Base(sub.ResumePath))
		if err != nil {
			return nil, "", fmt.Errorf("failed to create resume part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", fmt.Errorf("failed to copy resume content: %w", err)
		}

	case sub.ResumeURL != "":
		if err := w.WriteField("resume_url", sub.ResumeURL); err != nil {
			return nil, "", fmt.Errorf("failed to write resume_url: %w", err)
		}

	default:
		return nil, "", fmt.Errorf("submission has no resume reference")
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}
