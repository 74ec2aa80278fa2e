package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColor parses an ARGB color. Accepted forms are 0xAARRGGBB,
// #AARRGGBB, #RRGGBB (opaque) and plain decimal.
func ParseColor(s string) (uint32, error) {
	s = strings.Trim(strings.TrimSpace(s), `"`) // in case something comes in as if it were a json string

	var (
		v   uint64
		err error
	)
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) != 6 && len(hex) != 8 {
			return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
		}
		v, err = strconv.ParseUint(hex, 16, 32)
		if err == nil && len(hex) == 6 {
			v |= 0xFF000000
		}
	default:
		v, err = strconv.ParseUint(s, 0, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}

// FormatColor renders c as 0xAARRGGBB.
func FormatColor(c uint32) string {
	return fmt.Sprintf("0x%08X", c)
}

// SplitList splits a comma separated list, trimming each entry and dropping
// empty ones.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	v := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			v = append(v, p)
		}
	}
	return v
}
