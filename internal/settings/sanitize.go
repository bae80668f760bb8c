package settings

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"
)

var textPolicy = bluemonday.StrictPolicy()

// Sanitize coerces v into the canonical string form of d. Input that cannot
// be made valid becomes the default; numbers outside the range are clamped.
// It never fails.
func (d Definition) Sanitize(v any) string {
	switch d.Kind {
	case KindChoice:
		s, ok := asString(v)
		s = strings.ToLower(strings.TrimSpace(s))
		if ok && lo.Contains(d.Choices, s) {
			return s
		}
	case KindInt:
		if f, ok := asNumber(v); ok {
			f = math.Min(math.Max(f, float64(d.Min)), float64(d.Max))
			return strconv.Itoa(int(math.Round(f)))
		}
	case KindBool:
		if b, ok := asBool(v); ok {
			return strconv.FormatBool(b)
		}
	case KindText:
		if s, ok := asString(v); ok {
			s = strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
			if s != "" {
				return truncateRunes(s, maxTextRunes)
			}
		}
	}
	return d.Default
}

// Sanitize coerces v for the setting named key.
func Sanitize(key string, v any) (string, error) {
	d, ok := Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
	}
	return d.Sanitize(v), nil
}

// SanitizeAll sanitizes every known key in input and reports the keys that
// were ignored because the schema does not know them.
func SanitizeAll(input map[string]any) (clean map[string]string, ignored []string) {
	clean = make(map[string]string, len(input))
	for key, v := range input {
		d, ok := Lookup(key)
		if !ok {
			ignored = append(ignored, key)
			continue
		}
		clean[key] = d.Sanitize(v)
	}
	return clean, ignored
}

func asString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	case nil:
		return "", false
	default:
		return fmt.Sprint(x), true
	}
}

// asNumber reads v as a float so out-of-range input can be clamped before
// it is converted to an int.
func asNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
	case fmt.Stringer:
		return asNumber(x.String())
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case int:
		return x != 0, true
	case float64:
		return x != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off", "":
			return false, true
		}
	}
	return false, false
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
