// Package ui serves the server-rendered catalog pages.
package ui // import "github.com/Xunop/gutenshelf/internal/ui"

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/Xunop/gutenshelf/internal/config"
	"github.com/Xunop/gutenshelf/internal/http/response"
	"github.com/Xunop/gutenshelf/internal/model"
	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// PlaceholderCover is shown when a book has no cover or the cover fails to load.
const PlaceholderCover = "/static/img/placeholder-book.svg"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = []string{"home", "books", "book", "display"}

// BookSource fetches books from the upstream catalog.
type BookSource interface {
	ListBooks(ctx context.Context, find model.FindBook) (*model.BookList, error)
	GetBook(ctx context.Context, id int) (*model.Book, error)
}

type Handler struct {
	books       BookSource
	templates   map[string]*template.Template
	debounce    time.Duration
	previewSize int
}

// NewHandler parses the page templates once; opts supplies the search
// debounce and the home preview size.
func NewHandler(books BookSource, opts *config.Options) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		books:       books,
		templates:   templates,
		debounce:    opts.SearchDebounce,
		previewSize: opts.PreviewSize,
	}, nil
}

// Serve registers the browser routes and the static assets on router.
func Serve(router *mux.Router, h *Handler) error {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return errors.Wrap(err, "static assets")
	}
	router.PathPrefix("/static/").
		Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static)))).
		Methods(http.MethodGet, http.MethodHead).
		Name("static")

	router.HandleFunc("/", h.showHome).Methods(http.MethodGet).Name("home")
	router.HandleFunc("/books", h.showBooks).Methods(http.MethodGet, http.MethodPost).Name("books")
	router.HandleFunc("/book/{id}", h.showBook).Methods(http.MethodGet).Name("book")
	router.HandleFunc("/display", h.showGallery).Methods(http.MethodGet).Name("display")
	return nil
}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"comma": func(n int) string { return humanize.Comma(int64(n)) },
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", page)
		}
		templates[page] = tmpl
	}
	return templates, nil
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, statusCode int, data interface{}) {
	tmpl, ok := h.templates[page]
	if !ok {
		response.HTMLServerError(w, r, errors.Errorf("unknown page %s", page))
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		response.HTMLServerError(w, r, errors.Wrapf(err, "render %s", page))
		return
	}
	response.HTML(w, r, statusCode, buf.Bytes())
}
