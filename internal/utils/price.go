package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d\.\-]`)

// ParseAmount parses "1 234,50", "£12.50", "197 ,00" (NBSP/NNBSP) etc.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// drop non-breaking/narrow spaces and regular ones, comma -> dot
	repl := strings.NewReplacer(" ", "", " ", "", " ", "", "\t", "", ",", ".")
	s = repl.Replace(s)
	// keep only digits, dot and minus (in case of stray symbols)
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// FormatPrice renders a raw price cell for display: a parseable number
// becomes "£" with two decimals, a non-numeric cell passes through as-is,
// blank or a literal N/A marker becomes "N/A".
func FormatPrice(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "n/a") {
		return "N/A"
	}
	if f, ok := ParseAmount(s); ok {
		return fmt.Sprintf("£%.2f", f)
	}
	return s
}
