package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/registry-dev/registry/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryItemLifecycle(t *testing.T) {
	r, _ := setup(t)

	w := request(t, r, http.MethodPost, "/e-library", map[string]string{
		"author":       " K. Petrov ",
		"title":        "Numerical Methods",
		"organization": "  ",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.ELibraryItem
	decode(t, w, &item)

	assert.Equal(t, "K. Petrov", item.Author)
	assert.Nil(t, item.Organization, "blank optional string stores null")

	path := fmt.Sprintf("/e-library/%d", item.ID)

	w = request(t, r, http.MethodPut, path, map[string]string{"organization": "Institute of Mathematics"})
	require.Equal(t, http.StatusOK, w.Code)

	decode(t, w, &item)
	require.NotNil(t, item.Organization)
	assert.Equal(t, "Institute of Mathematics", *item.Organization)
	assert.Equal(t, "Numerical Methods", item.Title, "omitted fields stay put")

	require.Equal(t, http.StatusNoContent, request(t, r, http.MethodDelete, path, nil).Code)
	require.Equal(t, http.StatusNotFound, request(t, r, http.MethodGet, path, nil).Code)
	require.Equal(t, http.StatusNotFound, request(t, r, http.MethodDelete, path, nil).Code)
}

func TestLibraryItemValidation(t *testing.T) {
	r, _ := setup(t)

	cases := []struct {
		name string
		body interface{}
		want string
	}{
		{"missing author", map[string]string{"title": "x"}, "author is required and must be a non-empty string"},
		{"missing title", map[string]string{"author": "x"}, "title is required and must be a non-empty string"},
		{"numeric organization", raw(`{"author": "x", "title": "y", "organization": 1}`), "organization must be a string or null"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := request(t, r, http.MethodPost, "/e-library", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, errorMessage(t, w))
		})
	}
}

func TestListLibraryItemsNewestFirst(t *testing.T) {
	r, _ := setup(t)

	for _, title := range []string{"first", "second"} {
		w := request(t, r, http.MethodPost, "/e-library", map[string]string{"author": "a", "title": title})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var items []models.ELibraryItem
	decode(t, request(t, r, http.MethodGet, "/e-library", nil), &items)

	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
}
