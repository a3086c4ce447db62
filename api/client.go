package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultSettleDelay is the wait inserted before report reads. The backend
// writes the report file around the time the upload response returns; the
// delay absorbs the window where it is not yet flush-visible.
const DefaultSettleDelay = 500 * time.Millisecond

// Client talks to the analysis backend. All responses are text or JSON
// bodies; error responses surface the backend-supplied message when present.
type Client struct {
	baseURL string
	token   string
	userID  string
	http    *http.Client

	// SettleDelay applies to FetchReport. Tests zero it.
	SettleDelay time.Duration
}

func NewClient(baseURL, token, userID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		token:       token,
		userID:      userID,
		http:        &http.Client{Timeout: timeout},
		SettleDelay: DefaultSettleDelay,
	}
}

// Upload submits a project archive plus the user id as multipart form data
// and returns the backend's human-readable summary body.
func (c *Client) Upload(ctx context.Context, archivePath string) (string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(archivePath))
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("reading archive: %w", err)
	}
	if err := mw.WriteField("userId", c.userID); err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchReport reads a generated report's raw text body, waiting out the
// settling delay first.
func (c *Client) FetchReport(ctx context.Context, reportPath string) (string, error) {
	if c.SettleDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.SettleDelay):
		}
	}

	u := fmt.Sprintf("%s/upload/report?path=%s&userId=%s",
		c.baseURL, url.QueryEscape(reportPath), url.QueryEscape(c.userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating report request: %w", err)
	}
	c.authorize(req)

	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// VisualReport submits the archive to the visual-report pipeline. The
// payload is opaque to this client and passed through to the viewer.
func (c *Client) VisualReport(ctx context.Context, archivePath string) (json.RawMessage, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(archivePath))
	if err != nil {
		return nil, fmt.Errorf("building visual-report request: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("reading archive: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building visual-report request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/visual", &buf)
	if err != nil {
		return nil, fmt.Errorf("creating visual-report request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}
	return body, nil
}

// apiError surfaces the backend-supplied message when present, falling back
// to the status text.
func apiError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))

	// The backend wraps some errors in {"message": "..."}.
	var wrapped struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wrapped) == nil && wrapped.Message != "" {
		msg = wrapped.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("backend returned %d: %s", status, msg)
}
