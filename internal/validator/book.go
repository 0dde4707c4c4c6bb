package validator // import "github.com/Xunop/gutenshelf/internal/validator"

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Xunop/gutenshelf/internal/model"
)

const maxSearchLength = 256

// ValidateFindBook checks list filters coming from API clients.
func ValidateFindBook(find *model.FindBook) error {
	if find == nil {
		return errors.New("find is nil")
	}
	if find.Page < 1 {
		return errors.Errorf("page %d is invalid", find.Page)
	}
	if utf8.RuneCountInString(find.Search) > maxSearchLength {
		return errors.Errorf("search is longer than %d characters", maxSearchLength)
	}
	if err := validatePrintable("topic", find.Topic); err != nil {
		return err
	}
	return validatePrintable("search", find.Search)
}

func validatePrintable(field, value string) error {
	if !utf8.ValidString(value) {
		return errors.Errorf("%s is not valid UTF-8", field)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return errors.Errorf("%s contains control characters", field)
		}
	}
	return nil
}
