package ui // import "github.com/Xunop/gutenshelf/internal/ui"

import (
	"net/http"
	"strconv"

	"github.com/Xunop/gutenshelf/internal/http/request"
	"github.com/Xunop/gutenshelf/internal/log"
	"github.com/Xunop/gutenshelf/internal/model"
	"go.uber.org/zap"
)

type authorLine struct {
	Name     string
	Lifespan string
}

type detailPage struct {
	Found       bool
	ID          int
	Title       string
	Cover       string
	Authors     []authorLine
	Downloads   int
	Languages   string
	MediaType   string
	Links       []model.Link
	Placeholder string
}

func newDetailPage(b *model.Book) detailPage {
	authors := make([]authorLine, 0, len(b.Authors))
	for _, a := range b.Authors {
		authors = append(authors, authorLine{Name: a.Name, Lifespan: a.Lifespan()})
	}
	return detailPage{
		Found:       true,
		ID:          b.ID,
		Title:       b.DisplayTitle(),
		Cover:       b.Cover(PlaceholderCover),
		Authors:     authors,
		Downloads:   b.DownloadCount,
		Languages:   b.LanguageList(),
		MediaType:   b.MediaType,
		Links:       b.DownloadLinks(),
		Placeholder: PlaceholderCover,
	}
}

func (h *Handler) showBook(w http.ResponseWriter, r *http.Request) {
	raw := request.RouteStringParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		log.Debug("Invalid book id", zap.String("id", raw), zap.String("request_id", request.RequestID(r)))
		h.render(w, r, "book", http.StatusNotFound, detailPage{})
		return
	}

	book, err := h.books.GetBook(r.Context(), id)
	if err != nil || book == nil {
		log.Error("Unable to fetch book",
			zap.Error(err),
			zap.Int("book_id", id),
			zap.String("request_id", request.RequestID(r)),
		)
		h.render(w, r, "book", http.StatusNotFound, detailPage{})
		return
	}

	h.render(w, r, "book", http.StatusOK, newDetailPage(book))
}
