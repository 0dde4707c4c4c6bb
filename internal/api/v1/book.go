package v1 // import "github.com/Xunop/gutenshelf/internal/api/v1"

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Xunop/gutenshelf/internal/gutendex"
	"github.com/Xunop/gutenshelf/internal/http/request"
	"github.com/Xunop/gutenshelf/internal/http/response"
	"github.com/Xunop/gutenshelf/internal/model"
	"github.com/Xunop/gutenshelf/internal/validator"
	"github.com/pkg/errors"
)

// findFromQuery reads and validates the list filters.
func findFromQuery(r *http.Request) (model.FindBook, error) {
	find := model.FindBook{
		Page:   1,
		Topic:  request.QueryStringParam(r, "topic", ""),
		Search: request.QueryStringParam(r, "search", ""),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return find, errors.Errorf("invalid page %q", raw)
		}
		find.Page = page
	}
	return find, validator.ValidateFindBook(&find)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, model.Categories())
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	find, err := findFromQuery(r)
	if err != nil {
		response.BadRequest(w, r, err)
		return
	}

	list, err := h.books.ListBooks(r.Context(), find)
	if err != nil {
		response.BadGateway(w, r, err)
		return
	}
	if list.Results == nil {
		list.Results = []model.Book{}
	}
	response.OK(w, r, list)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	bookID := request.RouteIntParam(r, "id")
	if bookID == 0 {
		response.NotFound(w, r)
		return
	}

	book, err := h.books.GetBook(r.Context(), bookID)
	if err != nil {
		if gutendex.IsNotFound(err) {
			response.NotFound(w, r)
			return
		}
		response.BadGateway(w, r, err)
		return
	}
	if book == nil {
		response.NotFound(w, r)
		return
	}
	response.OK(w, r, book)
}
