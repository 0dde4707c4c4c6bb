package v1

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Xunop/gutenshelf/internal/gutendex"
	"github.com/Xunop/gutenshelf/internal/model"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	list    *model.BookList
	listErr error
	book    *model.Book
	bookErr error

	finds []model.FindBook
}

func (f *fakeSource) ListBooks(_ context.Context, find model.FindBook) (*model.BookList, error) {
	f.finds = append(f.finds, find)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.list == nil {
		return &model.BookList{}, nil
	}
	return f.list, nil
}

func (f *fakeSource) GetBook(_ context.Context, id int) (*model.Book, error) {
	return f.book, f.bookErr
}

func newRouter(src BookSource) *mux.Router {
	router := mux.NewRouter()
	Server(router, NewHandler(src))
	return router
}

func do(router http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func strPtr(s string) *string { return &s }

func TestListCategories(t *testing.T) {
	w := do(newRouter(&fakeSource{}), http.MethodGet, "/api/v1/categories")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var categories []model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 7)
	assert.Equal(t, "fiction", categories[0].Topic)
	assert.Equal(t, "ADVENTURE", categories[6].Name)
}

func TestListBooks(t *testing.T) {
	src := &fakeSource{list: &model.BookList{
		Count:   1,
		Next:    strPtr("http://upstream/books?page=3"),
		Results: []model.Book{{ID: 84, Title: "Frankenstein"}},
	}}
	w := do(newRouter(src), http.MethodGet, "/api/v1/books?page=2&topic=fiction&search=%20shelley%20")

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, src.finds, 1)
	assert.Equal(t, model.FindBook{Page: 2, Topic: "fiction", Search: "shelley"}, src.finds[0])

	var list model.BookList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
	assert.True(t, list.HasNext())
	assert.Equal(t, "Frankenstein", list.Results[0].Title)
}

func TestListBooksEmptyResults(t *testing.T) {
	w := do(newRouter(&fakeSource{}), http.MethodGet, "/api/v1/books")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":[]`)
}

func TestListBooksInvalidPage(t *testing.T) {
	for _, page := range []string{"0", "-1", "two"} {
		src := &fakeSource{}
		w := do(newRouter(src), http.MethodGet, "/api/v1/books?page="+page)
		assert.Equal(t, http.StatusBadRequest, w.Code, page)
		assert.Empty(t, src.finds)
	}
}

func TestListBooksUpstreamFailure(t *testing.T) {
	w := do(newRouter(&fakeSource{listErr: errors.New("connection refused")}), http.MethodGet, "/api/v1/books")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "upstream catalog unavailable")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestGetBook(t *testing.T) {
	w := do(newRouter(&fakeSource{book: &model.Book{ID: 84, Title: "Frankenstein"}}), http.MethodGet, "/api/v1/books/84")
	require.Equal(t, http.StatusOK, w.Code)

	var book model.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	assert.Equal(t, 84, book.ID)
}

func TestGetBookErrors(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
		path string
		want int
	}{
		{"not found sentinel", &fakeSource{bookErr: errors.Wrap(gutendex.ErrNotFound, "get book 9")}, "/api/v1/books/9", http.StatusNotFound},
		{"upstream 404", &fakeSource{bookErr: &gutendex.StatusError{Code: http.StatusNotFound}}, "/api/v1/books/9", http.StatusNotFound},
		{"upstream 500", &fakeSource{bookErr: &gutendex.StatusError{Code: http.StatusInternalServerError}}, "/api/v1/books/9", http.StatusBadGateway},
		{"zero id", &fakeSource{}, "/api/v1/books/0", http.StatusNotFound},
		{"non numeric id", &fakeSource{}, "/api/v1/books/abc", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(tt.src), http.MethodGet, tt.path)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	w := do(newRouter(&fakeSource{}), http.MethodOptions, "/api/v1/books")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "7200", w.Header().Get("Access-Control-Max-Age"))
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}

type atomEntry struct {
	ID      string     `xml:"id"`
	Title   string     `xml:"title"`
	Authors []string   `xml:"author>name"`
	Links   []atomLink `xml:"link"`
}

type atomFeed struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Title   string      `xml:"title"`
	Links   []atomLink  `xml:"link"`
	Entries []atomEntry `xml:"entry"`
}

func decodeFeed(t *testing.T, w *httptest.ResponseRecorder) atomFeed {
	t.Helper()
	require.True(t, strings.HasPrefix(w.Body.String(), `<?xml version="1.0" encoding="UTF-8"?>`))
	var feed atomFeed
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &feed))
	return feed
}

func findLink(links []atomLink, rel string) (atomLink, bool) {
	for _, l := range links {
		if l.Rel == rel {
			return l, true
		}
	}
	return atomLink{}, false
}

func TestOpdsRootFeed(t *testing.T) {
	w := do(newRouter(&fakeSource{}), http.MethodGet, "http://shelf.example/opds")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, opdsNavigationType, w.Header().Get("Content-Type"))

	feed := decodeFeed(t, w)
	require.Len(t, feed.Entries, 8)
	assert.Equal(t, "All Books", feed.Entries[0].Title)
	assert.Equal(t, "Fiction", feed.Entries[1].Title)
	assert.Equal(t, "http://shelf.example/opds/books?topic=fiction", feed.Entries[1].Links[0].Href)
	assert.Equal(t, "subsection", feed.Entries[1].Links[0].Rel)

	self, ok := findLink(feed.Links, "self")
	require.True(t, ok)
	assert.Equal(t, "http://shelf.example/opds", self.Href)
}

func TestOpdsBooksFeed(t *testing.T) {
	src := &fakeSource{list: &model.BookList{
		Count:    64,
		Next:     strPtr("http://upstream/books?page=3"),
		Previous: strPtr("http://upstream/books?topic=fiction"),
		Results: []model.Book{{
			ID:      84,
			Title:   "Frankenstein; Or, The Modern Prometheus",
			Authors: []model.Person{{Name: "Shelley, Mary Wollstonecraft"}},
			Formats: map[string]string{
				model.MimeJPEG: "https://example.com/84.jpg",
				model.MimeEPUB: "https://example.com/84.epub",
				model.MimeHTML: "https://example.com/84.html",
			},
		}},
	}}
	w := do(newRouter(src), http.MethodGet, "http://shelf.example/opds/books?topic=fiction&page=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, opdsAcquisitionType, w.Header().Get("Content-Type"))
	assert.Equal(t, model.FindBook{Page: 2, Topic: "fiction"}, src.finds[0])

	feed := decodeFeed(t, w)
	assert.Equal(t, "Fiction", feed.Title)

	next, ok := findLink(feed.Links, "next")
	require.True(t, ok)
	assert.Equal(t, "http://shelf.example/opds/books?page=3&topic=fiction", next.Href)
	prev, ok := findLink(feed.Links, "previous")
	require.True(t, ok)
	assert.Equal(t, "http://shelf.example/opds/books?topic=fiction", prev.Href)

	require.Len(t, feed.Entries, 1)
	entry := feed.Entries[0]
	assert.Equal(t, "urn:gutenberg:84", entry.ID)
	assert.Equal(t, "Frankenstein; Or, The Modern Prometheus", entry.Title)
	assert.Equal(t, []string{"Shelley, Mary Wollstonecraft"}, entry.Authors)

	var acquisitions []string
	for _, l := range entry.Links {
		if l.Rel == relAcquisition {
			acquisitions = append(acquisitions, l.Type)
		}
	}
	assert.Equal(t, []string{model.MimeEPUB, model.MimeHTML}, acquisitions)
	cover, ok := findLink(entry.Links, relImage)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/84.jpg", cover.Href)
}

func TestOpdsBooksFeedFirstPage(t *testing.T) {
	w := do(newRouter(&fakeSource{}), http.MethodGet, "/opds/books")
	require.Equal(t, http.StatusOK, w.Code)

	feed := decodeFeed(t, w)
	assert.Equal(t, "All Books", feed.Title)
	_, ok := findLink(feed.Links, "previous")
	assert.False(t, ok)
	_, ok = findLink(feed.Links, "next")
	assert.False(t, ok)
	assert.Empty(t, feed.Entries)
}

func TestOpdsBooksFeedUpstreamFailure(t *testing.T) {
	w := do(newRouter(&fakeSource{listErr: errors.New("timeout")}), http.MethodGet, "/opds/books")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListBooksRejectsControlCharacters(t *testing.T) {
	src := &fakeSource{}
	w := do(newRouter(src), http.MethodGet, "/api/v1/books?search=war%00peace")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, src.finds)
}

func TestOpdsBooksFeedPreviousFollowsUpstream(t *testing.T) {
	src := &fakeSource{list: &model.BookList{Count: 3}}
	w := do(newRouter(src), http.MethodGet, "/opds/books?page=4")
	require.Equal(t, http.StatusOK, w.Code)

	feed := decodeFeed(t, w)
	_, ok := findLink(feed.Links, "previous")
	assert.False(t, ok, "no previous link when the upstream has no previous page")
}
