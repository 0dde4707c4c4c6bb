package ui // import "github.com/Xunop/gutenshelf/internal/ui"

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Xunop/gutenshelf/internal/http/request"
	"github.com/Xunop/gutenshelf/internal/http/response"
	"github.com/Xunop/gutenshelf/internal/log"
	"github.com/Xunop/gutenshelf/internal/model"
	"go.uber.org/zap"
)

type listPage struct {
	Heading     string
	Icon        string
	Topic       string
	Search      string
	Action      string
	ClearURL    string
	Debounce    int64
	Books       []bookCard
	Total       int
	Page        int
	PrevPage    int
	NextPage    int
	HasPrevious bool
	HasNext     bool
	Placeholder string
}

func trimSearch(s string) string {
	return strings.TrimSpace(s)
}

// formPage reads the transient page number, clamping anything invalid to 1.
func formPage(value string) int {
	page, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) showBooks(w http.ResponseWriter, r *http.Request) {
	query := parseListQuery(r.URL.Query())
	canonical := query.URL()
	if r.Method == http.MethodGet && r.URL.RequestURI() != canonical {
		response.Redirect(w, r, canonical)
		return
	}

	page := 1
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			log.Debug("Unable to parse pagination form", zap.Error(err), zap.String("request_id", request.RequestID(r)))
		} else {
			page = formPage(r.PostForm.Get("page"))
		}
	}

	view := listPage{
		Heading:     query.Heading(),
		Topic:       query.Topic,
		Search:      query.Search,
		Action:      canonical,
		ClearURL:    query.WithoutSearch().URL(),
		Debounce:    h.debounce.Milliseconds(),
		Page:        page,
		PrevPage:    page - 1,
		NextPage:    page + 1,
		HasPrevious: page > 1,
		Placeholder: PlaceholderCover,
	}
	if c, ok := model.FindCategory(query.Topic); ok {
		view.Icon = categoryIcon(c)
	}

	list, err := h.books.ListBooks(r.Context(), model.FindBook{
		Page:   page,
		Topic:  query.Topic,
		Search: query.Search,
	})
	if err != nil {
		log.Error("Unable to fetch books",
			zap.Error(err),
			zap.String("request_id", request.RequestID(r)),
			zap.Int("page", page),
			zap.String("topic", query.Topic),
			zap.String("search", query.Search),
		)
	} else {
		view.Books = newBookCards(list.Results)
		view.Total = list.Count
		view.HasNext = list.HasNext()
	}

	h.render(w, r, "books", http.StatusOK, view)
}
