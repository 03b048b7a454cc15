package gateway

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// parseDate tries the accepted layouts in order; nil means unparseable.
func parseDate(raw string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// parseBool recognizes the literal boolean forms NetSuite exports use.
// ok is false for anything else.
func parseBool(raw string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "1", "yes", "y":
		return true, true
	case "false", "f", "0", "no", "n":
		return false, true
	}
	return false, false
}

// parsePostingFlag coerces a posting flag value. Unrecognized or empty
// values default to posting = true: transactions are included unless the
// export explicitly marks them non-posting.
func parsePostingFlag(raw string, inverted bool) bool {
	v, ok := parseBool(raw)
	if !ok {
		return true
	}
	if inverted {
		return !v
	}
	return v
}
