package screening

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedForm struct {
	fields      map[string]string
	fileName    string
	fileContent string
}

func newCaptureServer(t *testing.T, status int) (*httptest.Server, *capturedForm) {
	t.Helper()

	captured := &capturedForm{fields: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))

		for name, values := range r.MultipartForm.Value {
			captured.fields[name] = values[0]
		}
		if files := r.MultipartForm.File["resume"]; len(files) > 0 {
			captured.fileName = files[0].Filename
			f, err := files[0].Open()
			require.NoError(t, err)
			defer f.Close()
			content, err := io.ReadAll(f)
			require.NoError(t, err)
			captured.fileContent = string(content)
		}

		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

func testForwarder(submitURL, uploadsDir string) *Forwarder {
	return NewForwarder(&Config{
		SubmitURL:  submitURL,
		UploadsDir: uploadsDir,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestForwarder_Forward_ResumeURL(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK)
	f := testForwarder(srv.URL, t.TempDir())

	err := f.Forward(context.Background(), &Submission{
		ApplicationID:  "app-1",
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		JobDescription: "Build backend services",
		ResumeURL:      "https://cdn.example.com/resume.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "Build backend services", captured.fields["job_description"])
	assert.Equal(t, "Ada Lovelace", captured.fields["name"])
	assert.Equal(t, "ada@example.com", captured.fields["email"])
	assert.Equal(t, "https://cdn.example.com/resume.pdf", captured.fields["resume_url"])
	assert.Empty(t, captured.fileName)
}

func TestForwarder_Forward_ResumeFile(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK)

	uploadsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(uploadsDir, "resume.pdf"), []byte("resume body"), 0o644))

	f := testForwarder(srv.URL, uploadsDir)

	err := f.Forward(context.Background(), &Submission{
		ApplicationID: "app-1",
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		ResumePath:    "resume.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "resume.pdf", captured.fileName)
	assert.Equal(t, "resume body", captured.fileContent)
	assert.NotContains(t, captured.fields, "resume_url")
}

func TestForwarder_Forward_FallbackJobDescription(t *testing.T) {
	srv, captured := newCaptureServer(t, http.StatusOK)
	f := testForwarder(srv.URL, t.TempDir())

	err := f.Forward(context.Background(), &Submission{
		ApplicationID: "app-1",
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		ResumeURL:     "https://cdn.example.com/resume.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, FallbackJobDescription, captured.fields["job_description"])
}

func TestForwarder_Forward_Non2xxStatus(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusInternalServerError)
	f := testForwarder(srv.URL, t.TempDir())

	err := f.Forward(context.Background(), &Submission{
		ApplicationID: "app-1",
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		ResumeURL:     "https://cdn.example.com/resume.pdf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestForwarder_Forward_UnreachableEndpoint(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusOK)
	srv.Close()

	f := testForwarder(srv.URL, t.TempDir())

	err := f.Forward(context.Background(), &Submission{
		ApplicationID: "app-1",
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		ResumeURL:     "https://cdn.example.com/resume.pdf",
	})
	assert.Error(t, err)
}

func TestForwarder_Forward_MissingResumeReference(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusOK)
	f := testForwarder(srv.URL, t.TempDir())

	err := f.Forward(context.Background(), &Submission{
		ApplicationID: "app-1",
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no resume reference")
}

func TestForwarder_Forward_MissingResumeFile(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusOK)
	f := testForwarder(srv.URL, t.TempDir())

	err := f.Forward(context.Background(), &Submission{
		ApplicationID: "app-1",
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		ResumePath:    "does-not-exist.pdf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open resume file")
}
