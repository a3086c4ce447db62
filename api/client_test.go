package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/marcus/scandash/api"
)

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Demo.zip")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing archive: %v", err)
	}
	return path
}

func newTestClient(t *testing.T, handler http.Handler) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := api.NewClient(srv.URL, "tok-1", "user-7", 5*time.Second)
	c.SettleDelay = 0
	return c, srv
}

func TestUploadSendsMultipartFileAndUserID(t *testing.T) {
	archive := writeArchive(t, "zipbytes")

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/upload" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if got := r.FormValue("userId"); got != "user-7" {
			t.Errorf("userId = %q", got)
		}

		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer f.Close()
		if header.Filename != "Demo.zip" {
			t.Errorf("filename = %q", header.Filename)
		}

		w.Write([]byte("🔍 Issues detected: 2\n"))
	}))

	body, err := client.Upload(context.Background(), archive)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.Contains(body, "Issues detected: 2") {
		t.Errorf("body = %q", body)
	}
}

func TestUploadMissingArchive(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a missing archive")
	}))

	_, err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.zip"))
	if err == nil {
		t.Fatal("expected error for missing archive")
	}
}

func TestFetchReportQueryParameters(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload/report" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("path"); got != "uploads/My Proj/report.txt" {
			t.Errorf("path param = %q", got)
		}
		if got := q.Get("userId"); got != "user-7" {
			t.Errorf("userId param = %q", got)
		}
		w.Write([]byte("🚨 🔴 finding"))
	}))

	body, err := client.FetchReport(context.Background(), "uploads/My Proj/report.txt")
	if err != nil {
		t.Fatalf("FetchReport: %v", err)
	}
	if body != "🚨 🔴 finding" {
		t.Errorf("body = %q", body)
	}
}

func TestFetchReportSettleDelayCancellable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent when the context is already done")
	}))
	client.SettleDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchReport(ctx, "uploads/P/r.txt")
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestErrorSurfacesJSONMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "archive too large"}`))
	}))

	_, err := client.FetchReport(context.Background(), "uploads/P/r.txt")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "archive too large") {
		t.Errorf("backend message not surfaced: %v", err)
	}
}

func TestErrorSurfacesPlainBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("analysis pipeline crashed"))
	}))

	_, err := client.FetchReport(context.Background(), "uploads/P/r.txt")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "analysis pipeline crashed") {
		t.Errorf("plain body not surfaced: %v", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("status code not included: %v", err)
	}
}

func TestErrorEmptyBodyFallsBackToStatusText(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.FetchReport(context.Background(), "uploads/P/r.txt")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "Not Found") {
		t.Errorf("status text missing: %v", err)
	}
}

func TestVisualReportPassesPayloadThrough(t *testing.T) {
	archive := writeArchive(t, "zipbytes")
	payload := `{"nodes": [{"id": "a"}], "edges": []}`

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload/visual" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Fatalf("file part: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))

	got, err := client.VisualReport(context.Background(), archive)
	if err != nil {
		t.Fatalf("VisualReport: %v", err)
	}
	if string(got) != payload {
		t.Errorf("payload = %s, want %s", got, payload)
	}
}
