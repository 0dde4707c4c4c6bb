package ui // import "github.com/Xunop/gutenshelf/internal/ui"

import (
	"net/url"
	"strconv"

	"github.com/Xunop/gutenshelf/internal/model"
)

type bookCard struct {
	ID      int
	Title   string
	Authors string
	Cover   string
	Href    string
}

func newBookCard(b *model.Book) bookCard {
	return bookCard{
		ID:      b.ID,
		Title:   b.DisplayTitle(),
		Authors: b.AuthorNames(),
		Cover:   b.Cover(PlaceholderCover),
		Href:    bookURL(b.ID),
	}
}

func newBookCards(books []model.Book) []bookCard {
	cards := make([]bookCard, 0, len(books))
	for i := range books {
		cards = append(cards, newBookCard(&books[i]))
	}
	return cards
}

func bookURL(id int) string {
	return "/book/" + strconv.Itoa(id)
}

func categoryIcon(c model.Category) string {
	return "/static/img/" + c.IconName() + ".svg"
}

func topicURL(topic string) string {
	return listQuery{Topic: topic}.URL()
}

// listQuery is the part of the list view state that lives in the URL.
type listQuery struct {
	Topic  string
	Search string
}

func parseListQuery(values url.Values) listQuery {
	return listQuery{
		Topic:  values.Get("topic"),
		Search: trimSearch(values.Get("search")),
	}
}

// URL returns the canonical list location: search then topic, empty values
// omitted.
func (q listQuery) URL() string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Topic != "" {
		values.Set("topic", q.Topic)
	}
	if len(values) == 0 {
		return "/books"
	}
	return "/books?" + values.Encode()
}

// WithoutSearch is where the clear button leads.
func (q listQuery) WithoutSearch() listQuery {
	return listQuery{Topic: q.Topic}
}

// Heading is the list title: the topic, else "Search Results", else "All Books".
func (q listQuery) Heading() string {
	switch {
	case q.Topic != "":
		return model.Capitalize(q.Topic)
	case q.Search != "":
		return "Search Results"
	default:
		return "All Books"
	}
}
