package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrUploadNotConfigured indicates Cloudinary credentials are missing
var ErrUploadNotConfigured = errors.New("upload service not configured")

// UploadService forwards resume and project image files to Cloudinary's
// unsigned upload endpoint and returns the public URL. The call is treated
// as opaque; there is no retry or backoff.
type UploadService struct {
	cloudName    string
	uploadPreset string
	httpClient   *http.Client
	baseURL      string
}

// NewUploadService creates a new upload service. Returns nil when the cloud
// name or preset is not configured; callers must treat a nil service as
// uploads-disabled.
func NewUploadService(cloudName, uploadPreset string) *UploadService {
	if cloudName == "" || uploadPreset == "" {
		return nil
	}
	return &UploadService{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		baseURL: "https://api.cloudinary.com/v1_1",
	}
}

// cloudinaryResponse is the subset of the upload response we read
type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload streams a multipart file to Cloudinary and returns its public URL
func (s *UploadService) Upload(ctx context.Context, file multipart.File, filename string) (string, error) {
	if s == nil {
		return "", ErrUploadNotConfigured
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		defer writer.Close()

		if err := writer.WriteField("upload_preset", s.uploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
	}()

	url := fmt.Sprintf("%s/%s/upload", s.baseURL, s.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var parsed cloudinaryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload failed (status %d): %s", resp.StatusCode, parsed.Error.Message)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing file URL")
	}

	return parsed.SecureURL, nil
}
