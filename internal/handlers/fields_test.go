package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptStringStates(t *testing.T) {
	var dest struct {
		Field optString `json:"field"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &dest))
	assert.False(t, dest.Field.set, "omitted")

	dest.Field = optString{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": null}`), &dest))
	assert.True(t, dest.Field.set)
	assert.True(t, dest.Field.null)
	assert.Nil(t, dest.Field.clean())

	dest.Field = optString{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": "  x  "}`), &dest))
	require.NotNil(t, dest.Field.clean())
	assert.Equal(t, "x", *dest.Field.clean())
	assert.True(t, dest.Field.requiredOK())

	dest.Field = optString{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": "   "}`), &dest))
	assert.Nil(t, dest.Field.clean(), "blank normalizes to null")
	assert.False(t, dest.Field.requiredOK())

	dest.Field = optString{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": 12}`), &dest))
	assert.True(t, dest.Field.invalid, "wrong type is distinct from missing")
}

func TestOptIntRejectsFractions(t *testing.T) {
	var dest struct {
		Field optInt `json:"field"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"field": 3}`), &dest))
	assert.True(t, dest.Field.intOK())
	assert.Equal(t, 3, dest.Field.value)

	dest.Field = optInt{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": 3.5}`), &dest))
	assert.True(t, dest.Field.invalid)

	dest.Field = optInt{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": "3"}`), &dest))
	assert.True(t, dest.Field.invalid)
}

func TestOptDateLayouts(t *testing.T) {
	var dest struct {
		Field optDate `json:"field"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"field": "2025-01-10"}`), &dest))
	require.True(t, dest.Field.dateOK())
	assert.Equal(t, 2025, dest.Field.value.Year())

	dest.Field = optDate{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": "2025-01-10T12:30:00Z"}`), &dest))
	assert.True(t, dest.Field.dateOK())

	dest.Field = optDate{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": ""}`), &dest))
	assert.True(t, dest.Field.invalid)

	dest.Field = optDate{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": "10/01/2025"}`), &dest))
	assert.True(t, dest.Field.invalid)
}

func TestOptStringListFiltersAndCleans(t *testing.T) {
	var dest struct {
		Field optStringList `json:"field"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"field": ["a", "", 5, " b "]}`), &dest))
	assert.False(t, dest.Field.invalid, "non-string elements are filtered, not rejected")
	assert.Equal(t, []string{"a", " b "}, dest.Field.items)
	assert.Equal(t, []string{"a", "b"}, dest.Field.cleaned())

	dest.Field = optStringList{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": [" x", "x ", "x"]}`), &dest))
	assert.Equal(t, []string{"x"}, dest.Field.cleaned(), "duplicates collapse after trimming")

	dest.Field = optStringList{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": "nope"}`), &dest))
	assert.True(t, dest.Field.invalid)
}

func TestOptAuthorList(t *testing.T) {
	var dest struct {
		Field optAuthorList `json:"field"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"field": [{"authorId": 2}, {"authorId": 1, "order": 5}]}`), &dest))
	require.False(t, dest.Field.invalid)
	require.Len(t, dest.Field.items, 2)
	assert.Nil(t, dest.Field.items[0].Order)
	require.NotNil(t, dest.Field.items[1].Order)
	assert.Equal(t, 5, *dest.Field.items[1].Order)

	dest.Field = optAuthorList{}
	require.NoError(t, json.Unmarshal([]byte(`{"field": []}`), &dest))
	assert.False(t, dest.Field.invalid, "empty array is a valid detach-all")
	assert.Empty(t, dest.Field.items)

	for _, bad := range []string{
		`{"field": null}`,
		`{"field": "x"}`,
		`{"field": [{"order": 1}]}`,
		`{"field": [{"authorId": "1"}]}`,
		`{"field": [{"authorId": 1, "order": 1.5}]}`,
	} {
		dest.Field = optAuthorList{}
		require.NoError(t, json.Unmarshal([]byte(bad), &dest))
		assert.True(t, dest.Field.invalid, bad)
	}
}
