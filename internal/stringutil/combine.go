// Package stringutil provides small string helpers shared by the textcase
// packages.
package stringutil

import (
	"fmt"
	"strings"
)

// CombineWith joins the string form of every value with sep. Empty values
// are skipped and a nil interface renders as "null".
// Example: CombineWith(", ", []any{"a", "", nil, 3}) -> "a, null, 3"
func CombineWith[T any](sep string, values []T) string {
	var b strings.Builder
	for _, v := range values {
		s := toString(v)
		if s == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s)
	}
	return b.String()
}

func toString(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
