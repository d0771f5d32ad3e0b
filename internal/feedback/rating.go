package feedback

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Rating is the raw rating as submitted. Forms send it as a string, JSON
// clients may send either a string or a number.
type Rating string

// maxExactFloat is the largest magnitude a float64 holds without losing integers.
const maxExactFloat = 1 << 53

// UnmarshalJSON accepts a JSON string, a JSON number or null. Numbers with an
// integral value (4, 4.0, 4e0) are stored in their integer form, strings are
// stored as sent.
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*r = Rating(s)
	default:
		if f, err := strconv.ParseFloat(string(data), 64); err == nil &&
			f == math.Trunc(f) && math.Abs(f) <= maxExactFloat {
			*r = Rating(strconv.FormatInt(int64(f), 10))

			return nil
		}

		// keep the literal, Int decides whether it is acceptable
		*r = Rating(data)
	}

	return nil
}

// Int parses the rating as a base 10 integer, surrounding spaces are ignored.
func (r Rating) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(r)))
}
