package response // import "github.com/Xunop/gutenshelf/internal/http/response"

import (
	"net/http"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// XML writes an XML document, prefixed with the XML declaration.
func XML(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	builder := New(w, r)
	builder.WithHeader("Content-Type", contentType)
	builder.WithBody(append([]byte(xmlHeader), body...))
	builder.Write()
}
