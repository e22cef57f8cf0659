package handlers

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// The request field types below distinguish the four JSON states the API
// cares about: field omitted, explicit null, a usable value, and a value of
// the wrong type. Unmarshalers never return an error; a wrong-typed value is
// recorded so the handler can answer with a field-specific message instead of
// a generic decode failure.

var jsonNull = []byte("null")

// optString is a JSON string field that may be omitted or null.
type optString struct {
	set     bool
	null    bool
	invalid bool
	value   string
}

func (o *optString) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, jsonNull) {
		o.null = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		o.invalid = true
		return nil
	}
	o.value = s
	return nil
}

// requiredOK reports whether the field carries a non-empty string after
// trimming, the contract for required text fields.
func (o optString) requiredOK() bool {
	return o.set && !o.null && !o.invalid && strings.TrimSpace(o.value) != ""
}

// trimmed returns the trimmed value; only meaningful when requiredOK.
func (o optString) trimmed() string {
	return strings.TrimSpace(o.value)
}

// clean normalizes an optional string: null and blank input become nil,
// anything else is trimmed. Only meaningful when !invalid.
func (o optString) clean() *string {
	if o.null {
		return nil
	}
	t := strings.TrimSpace(o.value)
	if t == "" {
		return nil
	}
	return &t
}

// optInt is a JSON integer field that may be omitted or null. Fractional
// numbers and non-numbers are invalid.
type optInt struct {
	set     bool
	null    bool
	invalid bool
	value   int
}

func (o *optInt) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, jsonNull) {
		o.null = true
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		o.invalid = true
		return nil
	}
	o.value = n
	return nil
}

// intOK reports whether the field carries an integer value.
func (o optInt) intOK() bool {
	return o.set && !o.null && !o.invalid
}

// dateLayouts accepted for date fields, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// optDate is a JSON date field (string) that may be omitted or null.
type optDate struct {
	set     bool
	null    bool
	invalid bool
	value   time.Time
}

func (o *optDate) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, jsonNull) {
		o.null = true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		o.invalid = true
		return nil
	}
	if strings.TrimSpace(s) == "" {
		o.invalid = true
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			o.value = t
			return nil
		}
	}
	o.invalid = true
	return nil
}

// dateOK reports whether the field carries a parseable date.
func (o optDate) dateOK() bool {
	return o.set && !o.null && !o.invalid
}

// optStringList is a JSON array field of strings (users.emails / users.phones).
// Non-string and blank elements are filtered out, matching the permissive
// array handling of the API: only a non-array value is an error.
type optStringList struct {
	set     bool
	null    bool
	invalid bool
	items   []string
}

func (o *optStringList) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, jsonNull) {
		o.null = true
		return nil
	}
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		o.invalid = true
		return nil
	}
	o.items = []string{}
	for _, v := range raw {
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		o.items = append(o.items, s)
	}
	return nil
}

// cleaned returns the trimmed, de-duplicated items preserving first-seen
// order, the replacement contract for child-row updates.
func (o optStringList) cleaned() []string {
	out := []string{}
	seen := map[string]bool{}
	for _, s := range o.items {
		t := strings.TrimSpace(s)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// authorLinkInput is one entry of a publication's authors array.
type authorLinkInput struct {
	AuthorID int  `json:"authorId"`
	Order    *int `json:"order"`
}

// optAuthorList is the publication authors array: an optional field whose
// value must be an array of {authorId, order?} with integer members. An empty
// array is valid and means "detach all authors".
type optAuthorList struct {
	set     bool
	invalid bool
	items   []authorLinkInput
}

func (o *optAuthorList) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, jsonNull) {
		o.invalid = true
		return nil
	}
	if err := json.Unmarshal(data, &o.items); err != nil {
		o.invalid = true
		return nil
	}
	for _, a := range o.items {
		if a.AuthorID <= 0 {
			o.invalid = true
			return nil
		}
	}
	return nil
}
