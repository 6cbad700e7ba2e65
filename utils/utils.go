package utils

import (
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

func GenerateSlug(name string) string {
	// Normalize accents
	t := norm.NFD.String(name)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue // remove accent marks
		}
		b.WriteRune(r)
	}

	s := strings.ToLower(b.String())
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func ParseBoolQuery(value string) (*bool, error) {
	if value == "" {
		return nil, nil // not provided
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func ParseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func ParseFloatDefault(v string, def float64) float64 {
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// SplitList accepts both repeated values and comma separated lists and
// drops blanks.
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	n := ParseIntDefault(strings.TrimSpace(os.Getenv(key)), def)
	if n <= 0 {
		return def
	}
	return n
}

func EnvFloatDefault(key string, def float64) float64 {
	f := ParseFloatDefault(os.Getenv(key), def)
	if f < 0 {
		return def
	}
	return f
}

// Paginate returns the bounds of page within n items. Pages past the end
// yield an empty range.
func Paginate(n, page, limit int) (start, end int) {
	if n <= 0 || limit < 1 {
		return 0, 0
	}
	page = max(page, 1)
	if page-1 > (n-1)/limit {
		return n, n
	}
	start = (page - 1) * limit
	end = min(start+limit, n)
	return start, end
}
