package response // import "github.com/Xunop/gutenshelf/internal/http/response"

import (
	"net/http"

	"github.com/Xunop/gutenshelf/internal/http/request"
	"github.com/Xunop/gutenshelf/internal/log"
	"go.uber.org/zap"
)

const htmlContentType = "text/html; charset=utf-8"

// HTML writes a rendered page with the given status code.
func HTML(w http.ResponseWriter, r *http.Request, statusCode int, body []byte) {
	builder := New(w, r)
	builder.WithStatus(statusCode)
	builder.WithHeader("Content-Type", htmlContentType)
	builder.WithHeader("Cache-Control", "no-cache, max-age=0, must-revalidate, no-store")
	builder.WithBody(body)
	builder.Write()
}

// HTMLServerError answers a page that could not be rendered.
func HTMLServerError(w http.ResponseWriter, r *http.Request, err error) {
	log.Error(http.StatusText(http.StatusInternalServerError),
		zap.Error(err),
		zap.String("client_ip", request.FindClientIP(r)),
		zap.String("request_id", request.RequestID(r)),
		zap.String("request.method", r.Method),
		zap.String("request.uri", r.RequestURI),
		zap.Int("response.status_code", http.StatusInternalServerError),
	)

	builder := New(w, r)
	builder.WithStatus(http.StatusInternalServerError)
	builder.WithHeader("Content-Type", "text/plain; charset=utf-8")
	builder.WithBody(http.StatusText(http.StatusInternalServerError))
	builder.Write()
}

// Redirect replaces the current location with uri.
func Redirect(w http.ResponseWriter, r *http.Request, uri string) {
	http.Redirect(w, r, uri, http.StatusFound)
}
