package model //import "github.com/Xunop/gutenshelf/internal/model"

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Topic string `json:"topic"`
}

// IconName is the capitalised id used to name the category icon asset.
func (c Category) IconName() string {
	return Capitalize(c.ID)
}

var categories = []Category{
	{ID: "fiction", Name: "FICTION", Icon: "🧪", Topic: "fiction"},
	{ID: "drama", Name: "DRAMA", Icon: "🎭", Topic: "drama"},
	{ID: "humor", Name: "HUMOR", Icon: "😄", Topic: "humor"},
	{ID: "politics", Name: "POLITICS", Icon: "👤", Topic: "politics"},
	{ID: "philosophy", Name: "PHILOSOPHY", Icon: "☯️", Topic: "philosophy"},
	{ID: "history", Name: "HISTORY", Icon: "📜", Topic: "history"},
	{ID: "adventure", Name: "ADVENTURE", Icon: "🧗", Topic: "adventure"},
}

// Categories returns a copy of the fixed category catalog.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// FindCategory returns the catalog entry whose topic matches.
func FindCategory(topic string) (Category, bool) {
	for _, c := range categories {
		if c.Topic == topic {
			return c, true
		}
	}
	return Category{}, false
}

// Capitalize upper cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteRune(unicode.ToUpper(r))
	sb.WriteString(s[size:])
	return sb.String()
}
