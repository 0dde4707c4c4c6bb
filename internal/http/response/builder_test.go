package response // import "github.com/Xunop/gutenshelf/internal/http/response"

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestResponseHasCommonHeaders(t *testing.T) {
	r, err := http.NewRequest("GET", "/", nil)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		New(w, r).Write()
	})

	handler.ServeHTTP(w, r)
	resp := w.Result()

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	}

	for header, expected := range headers {
		actual := resp.Header.Get(header)
		if actual != expected {
			t.Fatalf(`Unexpected header value, got %q instead of %q`, actual, expected)
		}
	}
}

func TestBuildResponseWithStatusAndBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	New(w, r).WithStatus(http.StatusTeapot).WithBody(errors.New("short and stout")).Write()

	resp := w.Result()
	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf(`Unexpected status code, got %d`, resp.StatusCode)
	}
	if body := w.Body.String(); body != "short and stout" {
		t.Fatalf(`Unexpected body, got %q`, body)
	}
}

func TestSmallBodyIsNotCompressed(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Encoding", "gzip, br")
	w := httptest.NewRecorder()

	New(w, r).WithBody("tiny").Write()

	if enc := w.Result().Header.Get("Content-Encoding"); enc != "" {
		t.Fatalf(`Unexpected encoding %q`, enc)
	}
	if w.Body.String() != "tiny" {
		t.Fatalf(`Unexpected body %q`, w.Body.String())
	}
}

func TestBrotliCompression(t *testing.T) {
	payload := strings.Repeat("gutenberg ", 500)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Encoding", "gzip, deflate, br")
	w := httptest.NewRecorder()

	New(w, r).WithBody(payload).Write()

	resp := w.Result()
	if enc := resp.Header.Get("Content-Encoding"); enc != "br" {
		t.Fatalf(`Unexpected encoding %q`, enc)
	}
	decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(w.Body.Bytes())))
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != payload {
		t.Fatal("brotli payload does not round trip")
	}
}

func TestGzipCompression(t *testing.T) {
	payload := strings.Repeat("gutenberg ", 500)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	New(w, r).WithBody(payload).Write()

	if enc := w.Result().Header.Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf(`Unexpected encoding %q`, enc)
	}
	gz, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := io.ReadAll(gz)
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != payload {
		t.Fatal("gzip payload does not round trip")
	}
}

func TestWithoutCompression(t *testing.T) {
	payload := strings.Repeat("gutenberg ", 500)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()

	New(w, r).WithoutCompression().WithBody(payload).Write()

	if enc := w.Result().Header.Get("Content-Encoding"); enc != "" {
		t.Fatalf(`Unexpected encoding %q`, enc)
	}
}
