package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesCatalog(t *testing.T) {
	cats := Categories()
	var ids []string
	for _, c := range cats {
		ids = append(ids, c.ID)
		assert.Equal(t, c.ID, c.Topic)
	}
	assert.Equal(t, []string{"fiction", "drama", "humor", "politics", "philosophy", "history", "adventure"}, ids)
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Topic = "mutated"

	assert.Equal(t, "fiction", Categories()[0].Topic)
}

func TestFindCategory(t *testing.T) {
	c, ok := FindCategory("history")
	assert.True(t, ok)
	assert.Equal(t, "HISTORY", c.Name)
	assert.Equal(t, "History", c.IconName())

	_, ok = FindCategory("cooking")
	assert.False(t, ok)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Fiction", Capitalize("fiction"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Émile", Capitalize("émile"))
}
