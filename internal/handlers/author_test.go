package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/registry-dev/registry/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAuthorNormalizesOptionalFields(t *testing.T) {
	r, _ := setup(t)

	w := request(t, r, http.MethodPost, "/authors", map[string]interface{}{
		"fullName": " Grace Hopper ",
		"email":    "   ",
		"orcid":    " 0000-0001-2345-6789 ",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var author models.Author
	decode(t, w, &author)

	assert.Equal(t, "Grace Hopper", author.FullName)
	assert.Nil(t, author.Email, "blank optional string stores null")
	require.NotNil(t, author.Orcid)
	assert.Equal(t, "0000-0001-2345-6789", *author.Orcid)
}

func TestCreateAuthorValidation(t *testing.T) {
	r, _ := setup(t)

	cases := []struct {
		name string
		body interface{}
		want string
	}{
		{"missing fullName", map[string]interface{}{}, "fullName is required"},
		{"blank fullName", map[string]string{"fullName": " "}, "fullName is required"},
		{"numeric email", raw(`{"fullName": "Grace", "email": 5}`), "email must be a string (or null)"},
		{"array orcid", raw(`{"fullName": "Grace", "orcid": []}`), "orcid must be a string (or null)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := request(t, r, http.MethodPost, "/authors", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, errorMessage(t, w))
		})
	}
}

func TestUpdateAuthorClearsFieldWithNull(t *testing.T) {
	r, _ := setup(t)

	w := request(t, r, http.MethodPost, "/authors", map[string]string{
		"fullName": "Grace Hopper",
		"email":    "grace@example.org",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var author models.Author
	decode(t, w, &author)
	require.NotNil(t, author.Email)

	w = request(t, r, http.MethodPut, fmt.Sprintf("/authors/%d", author.ID), raw(`{"email": null}`))
	require.Equal(t, http.StatusOK, w.Code)

	decode(t, w, &author)
	assert.Nil(t, author.Email)
	assert.Equal(t, "Grace Hopper", author.FullName, "omitted fields stay put")
}

func TestCreateAuthorDuplicateOrcidConflict(t *testing.T) {
	r, _ := setup(t)

	body := map[string]string{"fullName": "Grace Hopper", "orcid": "0000-0001-2345-6789"}

	require.Equal(t, http.StatusCreated, request(t, r, http.MethodPost, "/authors", body).Code)

	w := request(t, r, http.MethodPost, "/authors", map[string]string{
		"fullName": "Someone Else",
		"orcid":    "0000-0001-2345-6789",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Error  string   `json:"error"`
		Fields []string `json:"fields"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "Unique constraint failed", resp.Error)
	assert.Equal(t, []string{"orcid"}, resp.Fields)
}

func TestListAuthorsOrderedByName(t *testing.T) {
	r, conn := setup(t)

	createAuthor(t, conn, "Charles Babbage")
	createAuthor(t, conn, "Ada Lovelace")
	createAuthor(t, conn, "Grace Hopper")

	var authors []models.Author
	decode(t, request(t, r, http.MethodGet, "/authors", nil), &authors)

	require.Len(t, authors, 3)
	assert.Equal(t, "Ada Lovelace", authors[0].FullName)
	assert.Equal(t, "Charles Babbage", authors[1].FullName)
	assert.Equal(t, "Grace Hopper", authors[2].FullName)
}

func TestDeleteAuthorTwice(t *testing.T) {
	r, conn := setup(t)

	author := createAuthor(t, conn, "Ada Lovelace")
	path := fmt.Sprintf("/authors/%d", author.ID)

	require.Equal(t, http.StatusNoContent, request(t, r, http.MethodDelete, path, nil).Code)
	require.Equal(t, http.StatusNotFound, request(t, r, http.MethodDelete, path, nil).Code)
	require.Equal(t, http.StatusNotFound, request(t, r, http.MethodGet, path, nil).Code)
}
