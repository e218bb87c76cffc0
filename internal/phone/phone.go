// Package phone canonicalizes raw phone-number-like input into a comparison key.
package phone

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize coerces a raw value into a trimmed string key.
// A nil input yields the empty string. No case folding and no
// phone-format validation happens here, matching is exact string
// after trim and must be handled by upper layers.
func Normalize(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case float64:
		// JSON numbers decode as float64
		return strings.TrimSpace(strconv.FormatFloat(value, 'f', -1, 64))
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}
