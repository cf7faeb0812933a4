package capture

import (
	"strconv"
	"strings"
)

// Field coercion helpers. Every raw XML field arrives as text; each helper
// reports whether the text usefully converts to the declared type so the
// decoder can make an explicit keep-or-drop decision per record.

func toInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func toFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func toBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// msToSeconds converts a millisecond epoch timestamp to whole seconds,
// flooring toward negative infinity for the (never observed) negative case.
func msToSeconds(ms int64) int64 {
	if ms < 0 && ms%1000 != 0 {
		return ms/1000 - 1
	}
	return ms / 1000
}
