package v1 // import "github.com/Xunop/gutenshelf/internal/api/v1"

import (
	"context"
	"net/http"

	"github.com/Xunop/gutenshelf/internal/middleware"
	"github.com/Xunop/gutenshelf/internal/model"
	"github.com/gorilla/mux"
)

// BookSource fetches books from the upstream catalog.
type BookSource interface {
	ListBooks(ctx context.Context, find model.FindBook) (*model.BookList, error)
	GetBook(ctx context.Context, id int) (*model.Book, error)
}

type Handler struct {
	books BookSource
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(books BookSource) *Handler {
	return &Handler{books: books}
}

func Server(router *mux.Router, handler *Handler) {
	sr := router.PathPrefix("/api/v1").Subrouter()
	sr.Use(middleware.HandleCORS)

	sr.HandleFunc("/categories", handler.listCategories).Methods(http.MethodGet, http.MethodOptions).Name("api.categories")
	sr.HandleFunc("/books", handler.listBooks).Methods(http.MethodGet, http.MethodOptions).Name("api.books")
	sr.HandleFunc("/books/{id:[0-9]+}", handler.getBook).Methods(http.MethodGet, http.MethodOptions).Name("api.book")

	opdsRouter := router.PathPrefix("/opds").Subrouter()
	opdsRouter.HandleFunc("", handler.opdsRootFeed).Methods(http.MethodGet).Name("opds")
	opdsRouter.HandleFunc("/books", handler.opdsBooksFeed).Methods(http.MethodGet).Name("opds.books")
}
