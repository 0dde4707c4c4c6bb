package model //import "github.com/Xunop/gutenshelf/internal/model"

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MIME types used as keys of Book.Formats.
const (
	MimeJPEG      = "image/jpeg"
	MimePNG       = "image/png"
	MimeEPUB      = "application/epub+zip"
	MimePDF       = "application/pdf"
	MimePlainText = "text/plain; charset=utf-8"
	MimeHTML      = "text/html"
)

// Person is an author or a translator. Years are nil when the API does not
// know them.
type Person struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// Lifespan returns "(birth - death)", or an empty string unless both years
// are known and non-zero.
func (p Person) Lifespan() string {
	if p.BirthYear == nil || p.DeathYear == nil || *p.BirthYear == 0 || *p.DeathYear == 0 {
		return ""
	}
	return fmt.Sprintf("(%d - %d)", *p.BirthYear, *p.DeathYear)
}

type Book struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	Authors       []Person          `json:"authors"`
	Translators   []Person          `json:"translators"`
	Subjects      []string          `json:"subjects"`
	Bookshelves   []string          `json:"bookshelves"`
	Languages     []string          `json:"languages"`
	DownloadCount int               `json:"download_count"`
	Formats       map[string]string `json:"formats"`
	MediaType     string            `json:"media_type"`
}

// DisplayTitle falls back to "Book {id}" for untitled records.
func (b *Book) DisplayTitle() string {
	if b.Title != "" {
		return b.Title
	}
	return fmt.Sprintf("Book %d", b.ID)
}

// AuthorNames joins the author names, or returns "Unknown Author".
func (b *Book) AuthorNames() string {
	if len(b.Authors) == 0 {
		return "Unknown Author"
	}
	names := make([]string, 0, len(b.Authors))
	for _, author := range b.Authors {
		names = append(names, author.Name)
	}
	return strings.Join(names, ", ")
}

// Format returns the URL stored under mimeType. An empty URL counts as absent.
func (b *Book) Format(mimeType string) (string, bool) {
	link, ok := b.Formats[mimeType]
	if !ok || link == "" {
		return "", false
	}
	return link, true
}

// Cover resolves the cover image: JPEG, then PNG, then placeholder.
func (b *Book) Cover(placeholder string) string {
	if link, ok := b.Format(MimeJPEG); ok {
		return link
	}
	if link, ok := b.Format(MimePNG); ok {
		return link
	}
	return placeholder
}

// LanguageList renders the languages comma separated and upper cased.
func (b *Book) LanguageList() string {
	return strings.ToUpper(strings.Join(b.Languages, ", "))
}

// Link is a labelled format URL.
type Link struct {
	Label    string `json:"label"`
	MimeType string `json:"mime_type"`
	URL      string `json:"url"`
}

type formatLabel struct {
	mimeType string
	label    string
}

var downloadOrder = []formatLabel{
	{MimeEPUB, "EPUB"},
	{MimePDF, "PDF"},
	{MimePlainText, "Plain Text"},
	{MimeHTML, "HTML"},
}

var galleryOrder = []formatLabel{
	{MimePDF, "Download PDF"},
	{MimeEPUB, "Download EPUB"},
	{MimeHTML, "Read Online"},
}

// DownloadLinks lists the downloadable formats present, EPUB first.
func (b *Book) DownloadLinks() []Link {
	return b.links(downloadOrder)
}

// GalleryLinks lists the PDF, EPUB and online reading links present.
func (b *Book) GalleryLinks() []Link {
	return b.links(galleryOrder)
}

func (b *Book) links(order []formatLabel) []Link {
	links := make([]Link, 0, len(order))
	for _, f := range order {
		if link, ok := b.Format(f.mimeType); ok {
			links = append(links, Link{Label: f.label, MimeType: f.mimeType, URL: link})
		}
	}
	return links
}

// BookList is one page of the list endpoint.
type BookList struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Book  `json:"results"`
}

func (l *BookList) HasNext() bool {
	return l.Next != nil && *l.Next != ""
}

func (l *BookList) HasPrevious() bool {
	return l.Previous != nil && *l.Previous != ""
}

// FindBook holds the list filters. Zero values are omitted from the query.
type FindBook struct {
	Page   int    `json:"page"`
	Topic  string `json:"topic"`
	Search string `json:"search"`
}

func (f FindBook) Values() url.Values {
	values := url.Values{}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Topic != "" {
		values.Set("topic", f.Topic)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	return values
}
