package utils

import (
	"strconv"
	"strings"

	"github.com/gosimple/slug"
)

// ConvertToInt parses s and returns 0 when it is not an integer
func ConvertToInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Slugify transliterates s to ASCII and joins its alphanumeric runs with single hyphens
func Slugify(s string) string {
	return slug.Make(s)
}

// Truncate cuts s to at most n runes
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
