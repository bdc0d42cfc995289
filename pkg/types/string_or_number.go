package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

// StringOrNumber accepts both "560001" and 560001 and keeps the textual form.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		*s = StringOrNumber(asStr)
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()

	var asNumber json.Number
	if err := decoder.Decode(&asNumber); err == nil {
		*s = StringOrNumber(asNumber.String())
		return nil
	}

	return errors.New("invalid string or number")
}

func (s StringOrNumber) String() string {
	return string(s)
}
