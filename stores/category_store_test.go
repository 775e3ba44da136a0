package stores

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryStore_Create(t *testing.T) {
	t.Parallel()

	store := NewCategoryStore(newTestDB(t))

	category, err := store.Create("tech", "posts about technology")
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "tech", category.Name)
	assert.Equal(t, "posts about technology", category.Description)
}

func TestCategoryStore_Create_DuplicateName(t *testing.T) {
	t.Parallel()

	store := NewCategoryStore(newTestDB(t))

	_, err := store.Create("tech", "")
	require.NoError(t, err)

	_, err = store.Create("tech", "another description")
	assert.ErrorIs(t, err, ErrCategoryTaken)
}

func TestCategoryStore_Create_Validation(t *testing.T) {
	t.Parallel()

	store := NewCategoryStore(newTestDB(t))

	_, err := store.Create("", "")
	assert.ErrorIs(t, err, ErrMissingCategoryName)

	_, err = store.Create("tech", strings.Repeat("x", 101))
	assert.ErrorIs(t, err, ErrDescriptionTooLong)

	_, err = store.Create("tech", strings.Repeat("x", 100))
	assert.NoError(t, err)
}

func TestCategoryStore_List(t *testing.T) {
	t.Parallel()

	store := NewCategoryStore(newTestDB(t))

	_, err := store.Create("tech", "")
	require.NoError(t, err)
	_, err = store.Create("life", "")
	require.NoError(t, err)

	categories, err := store.List()
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
