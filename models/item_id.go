package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var errEmptyItemID = errors.New("empty item id")

// ItemID is an opaque catalog identifier.
//
// The server is free to use numeric or string identifiers. ItemID keeps the
// textual form and remembers whether it arrived as a JSON number so it is sent
// back in the same shape.
type ItemID struct {
	value   string
	numeric bool
}

// NewItemID returns an ItemID for value. Values that parse as integers are
// encoded as JSON numbers.
func NewItemID(value string) ItemID {
	_, err := strconv.ParseInt(value, 10, 64)
	return ItemID{value: value, numeric: err == nil}
}

func (id ItemID) String() string {
	return id.value
}

// IsZero reports whether the id was never set.
func (id ItemID) IsZero() bool {
	return id.value == ""
}

func (id ItemID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ItemID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return errEmptyItemID
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ItemID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ItemID{value: n.String(), numeric: true}
	return nil
}
