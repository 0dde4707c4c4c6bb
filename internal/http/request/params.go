package request //import "github.com/Xunop/gutenshelf/internal/http/request"

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// RouteIntParam returns an URL route parameter as int.
func RouteIntParam(r *http.Request, param string) int {
	vars := mux.Vars(r)
	value, err := strconv.Atoi(vars[param])
	if err != nil {
		return 0
	}

	if value < 0 {
		return 0
	}

	return value
}

// RouteStringParam returns a URL route parameter as string.
func RouteStringParam(r *http.Request, param string) string {
	vars := mux.Vars(r)
	return vars[param]
}

// QueryStringParam returns a query string parameter as string, or fallback
// when it is missing or blank.
func QueryStringParam(r *http.Request, param, fallback string) string {
	value := strings.TrimSpace(r.URL.Query().Get(param))
	if value == "" {
		return fallback
	}
	return value
}
