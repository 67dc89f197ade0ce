// Package pointarg parses points given on the command line.
package pointarg

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Parse turns a command-line point into a value for the pointdist
// validator. JSON ("[1, 2, 2]", "5") is decoded as is, a single word that is
// not JSON ("abc") is returned as a string, and anything else is split on
// commas. Tokens that are not numbers are kept as strings so that the
// validator reports them as non-numeric coordinates.
func Parse(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return []any{}
	}
	if strings.HasPrefix(s, "[") || !strings.Contains(s, ",") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
		if !strings.Contains(s, ",") {
			// a lone word is a scalar, not a one-element list
			return s
		}
	}

	fields := strings.Split(s, ",")
	coords := make([]any, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if n, err := strconv.ParseFloat(f, 64); err == nil {
			coords[i] = n
		} else {
			coords[i] = f
		}
	}
	return coords
}
