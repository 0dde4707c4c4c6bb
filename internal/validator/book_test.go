package validator

import (
	"strings"
	"testing"

	"github.com/Xunop/gutenshelf/internal/model"
)

func TestValidateFindBook(t *testing.T) {
	tests := []struct {
		name    string
		find    *model.FindBook
		wantErr bool
	}{
		{"nil", nil, true},
		{"first page", &model.FindBook{Page: 1}, false},
		{"filters", &model.FindBook{Page: 3, Topic: "fiction", Search: "war and peace"}, false},
		{"zero page", &model.FindBook{Page: 0}, true},
		{"negative page", &model.FindBook{Page: -2}, true},
		{"long search", &model.FindBook{Page: 1, Search: strings.Repeat("a", maxSearchLength+1)}, true},
		{"max search", &model.FindBook{Page: 1, Search: strings.Repeat("é", maxSearchLength)}, false},
		{"control topic", &model.FindBook{Page: 1, Topic: "fic\x00tion"}, true},
		{"newline search", &model.FindBook{Page: 1, Search: "war\npeace"}, true},
		{"invalid utf8", &model.FindBook{Page: 1, Search: "\xff"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFindBook(tt.find)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateFindBook() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
