package ui // import "github.com/Xunop/gutenshelf/internal/ui"

import (
	"net/http"

	"github.com/Xunop/gutenshelf/internal/http/request"
	"github.com/Xunop/gutenshelf/internal/log"
	"github.com/Xunop/gutenshelf/internal/model"
	"go.uber.org/zap"
)

type categoryRow struct {
	Name string
	Href string
	Icon string
}

type homePage struct {
	Categories  []categoryRow
	Preview     []bookCard
	Placeholder string
}

type galleryCard struct {
	ID    int
	Title string
	Cover string
	Links []model.Link
}

type galleryPage struct {
	Books []galleryCard
}

func newGalleryCard(b *model.Book) galleryCard {
	cover, _ := b.Format(model.MimeJPEG)
	return galleryCard{
		ID:    b.ID,
		Title: b.DisplayTitle(),
		Cover: cover,
		Links: b.GalleryLinks(),
	}
}

// firstPage fetches the unfiltered first page; failures leave it empty.
func (h *Handler) firstPage(r *http.Request) []model.Book {
	list, err := h.books.ListBooks(r.Context(), model.FindBook{Page: 1})
	if err != nil {
		log.Error("Unable to fetch books",
			zap.Error(err),
			zap.String("request_id", request.RequestID(r)),
			zap.String("request.uri", r.RequestURI),
		)
		return nil
	}
	return list.Results
}

func (h *Handler) showHome(w http.ResponseWriter, r *http.Request) {
	categories := model.Categories()
	view := homePage{
		Categories:  make([]categoryRow, 0, len(categories)),
		Placeholder: PlaceholderCover,
	}
	for _, c := range categories {
		view.Categories = append(view.Categories, categoryRow{
			Name: c.Name,
			Href: topicURL(c.Topic),
			Icon: categoryIcon(c),
		})
	}

	books := h.firstPage(r)
	if len(books) > h.previewSize {
		books = books[:h.previewSize]
	}
	view.Preview = newBookCards(books)

	h.render(w, r, "home", http.StatusOK, view)
}

func (h *Handler) showGallery(w http.ResponseWriter, r *http.Request) {
	books := h.firstPage(r)
	view := galleryPage{Books: make([]galleryCard, 0, len(books))}
	for i := range books {
		view.Books = append(view.Books, newGalleryCard(&books[i]))
	}
	h.render(w, r, "display", http.StatusOK, view)
}
