package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	latinDateRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// NormalizeDate accepts a user-entered date either already in ISO
// yyyy-mm-dd form or as dd/mm/yyyy, and returns the ISO form. It returns
// an empty string for anything else, including out-of-range day, month or
// pre-1900 year values.
func NormalizeDate(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if isoDateRe.MatchString(input) {
		return input
	}
	m := latinDateRe.FindStringSubmatch(input)
	if m == nil {
		return ""
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1900 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
