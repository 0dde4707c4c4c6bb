package v1 // import "github.com/Xunop/gutenshelf/internal/api/v1"

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/Xunop/gutenshelf/internal/http/request"
	"github.com/Xunop/gutenshelf/internal/http/response"
	"github.com/Xunop/gutenshelf/internal/log"
	"github.com/Xunop/gutenshelf/internal/model"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

const (
	opdsNavigationType  = "application/atom+xml;profile=opds-catalog;kind=navigation"
	opdsAcquisitionType = "application/atom+xml;profile=opds-catalog;kind=acquisition"

	relAcquisition = "http://opds-spec.org/acquisition"
	relImage       = "http://opds-spec.org/image"
	relThumbnail   = "http://opds-spec.org/image/thumbnail"
)

//go:embed templates/feed.xml
var feedTemplate string

var feedTmpl = template.Must(template.New("feed.xml").Parse(feedTemplate))

// OpdsFeed holds data for the OPDS XML template.
type OpdsFeed struct {
	ID      string
	Title   string
	Updated string
	Links   []OpdsLink
	Entries []OpdsEntry
}

type OpdsEntry struct {
	ID        string
	Title     string
	Authors   []string
	Languages []string
	Content   string
	Links     []OpdsLink
}

type OpdsLink struct {
	Rel  string
	Href string
	Type string
}

// opdsRootFeed lists the category catalog as navigation entries.
func (h *Handler) opdsRootFeed(w http.ResponseWriter, r *http.Request) {
	baseURL := getBaseURL(r)
	feed := OpdsFeed{
		ID:      "urn:gutenshelf:root",
		Title:   "Gutenberg Project",
		Updated: time.Now().UTC().Format(time.RFC3339),
		Links: []OpdsLink{
			{Rel: "self", Href: baseURL + "/opds", Type: opdsNavigationType},
			{Rel: "start", Href: baseURL + "/opds", Type: opdsNavigationType},
		},
	}

	feed.Entries = append(feed.Entries, OpdsEntry{
		ID:      "urn:gutenshelf:books",
		Title:   "All Books",
		Content: "Every book of the catalog",
		Links:   []OpdsLink{{Rel: "subsection", Href: baseURL + opdsBooksPath(model.FindBook{}), Type: opdsAcquisitionType}},
	})
	for _, c := range model.Categories() {
		feed.Entries = append(feed.Entries, OpdsEntry{
			ID:      "urn:gutenshelf:topic:" + c.Topic,
			Title:   model.Capitalize(c.Topic),
			Content: fmt.Sprintf("Books about %s", c.Topic),
			Links:   []OpdsLink{{Rel: "subsection", Href: baseURL + opdsBooksPath(model.FindBook{Topic: c.Topic}), Type: opdsAcquisitionType}},
		})
	}

	h.writeFeed(w, r, opdsNavigationType, feed)
}

// opdsBooksFeed renders one upstream page as an acquisition feed.
func (h *Handler) opdsBooksFeed(w http.ResponseWriter, r *http.Request) {
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

	baseURL := getBaseURL(r)
	feed := OpdsFeed{
		ID:      "urn:gutenshelf:books:" + find.Values().Encode(),
		Title:   opdsBooksTitle(find),
		Updated: time.Now().UTC().Format(time.RFC3339),
		Links: []OpdsLink{
			{Rel: "self", Href: baseURL + opdsBooksPath(find), Type: opdsAcquisitionType},
			{Rel: "start", Href: baseURL + "/opds", Type: opdsNavigationType},
		},
		Entries: make([]OpdsEntry, 0, len(list.Results)),
	}
	if find.Page > 1 && list.HasPrevious() {
		prev := find
		prev.Page--
		feed.Links = append(feed.Links, OpdsLink{Rel: "previous", Href: baseURL + opdsBooksPath(prev), Type: opdsAcquisitionType})
	}
	if list.HasNext() {
		next := find
		next.Page++
		feed.Links = append(feed.Links, OpdsLink{Rel: "next", Href: baseURL + opdsBooksPath(next), Type: opdsAcquisitionType})
	}

	for i := range list.Results {
		feed.Entries = append(feed.Entries, newOpdsBookEntry(&list.Results[i]))
	}

	h.writeFeed(w, r, opdsAcquisitionType, feed)
}

func newOpdsBookEntry(b *model.Book) OpdsEntry {
	entry := OpdsEntry{
		ID:        "urn:gutenberg:" + strconv.Itoa(b.ID),
		Title:     b.DisplayTitle(),
		Languages: b.Languages,
		Content:   fmt.Sprintf("%s downloads", humanize.Comma(int64(b.DownloadCount))),
	}
	for _, a := range b.Authors {
		entry.Authors = append(entry.Authors, a.Name)
	}
	for _, mimeType := range []string{model.MimeJPEG, model.MimePNG} {
		if cover, ok := b.Format(mimeType); ok {
			entry.Links = append(entry.Links,
				OpdsLink{Rel: relImage, Href: cover, Type: mimeType},
				OpdsLink{Rel: relThumbnail, Href: cover, Type: mimeType},
			)
			break
		}
	}
	for _, link := range b.DownloadLinks() {
		entry.Links = append(entry.Links, OpdsLink{Rel: relAcquisition, Href: link.URL, Type: link.MimeType})
	}
	return entry
}

func opdsBooksTitle(find model.FindBook) string {
	switch {
	case find.Topic != "":
		return model.Capitalize(find.Topic)
	case find.Search != "":
		return "Search Results"
	default:
		return "All Books"
	}
}

func opdsBooksPath(find model.FindBook) string {
	if find.Page == 1 {
		find.Page = 0
	}
	values := find.Values()
	if len(values) == 0 {
		return "/opds/books"
	}
	return "/opds/books?" + values.Encode()
}

func (h *Handler) writeFeed(w http.ResponseWriter, r *http.Request, contentType string, feed OpdsFeed) {
	var buf bytes.Buffer
	if err := feedTmpl.Execute(&buf, feed); err != nil {
		log.Error("error executing OPDS template", zap.Error(err), zap.String("request_id", request.RequestID(r)))
		response.ServerError(w, r, err)
		return
	}
	response.XML(w, r, contentType, buf.Bytes())
}

// getBaseURL determines the base URL for generating links.
func getBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
