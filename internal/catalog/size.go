package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
	tib = gib * 1024
)

// ParseSize converts a size label such as "12.7MB" into bytes. Labels without
// a leading number, or with a negative one, yield 0. Units are matched anywhere
// in the label in GB, MB, KB order; anything else is taken as bytes.
func ParseSize(label string) float64 {
	num, ok := leadingNumber(label)
	if !ok || num < 0 {
		return 0
	}
	unit := strings.ToUpper(label)
	switch {
	case strings.Contains(unit, "GB"):
		return num * gib
	case strings.Contains(unit, "MB"):
		return num * mib
	case strings.Contains(unit, "KB"):
		return num * kib
	}
	return num
}

// largeLabel is the bare number above which a size label is flagged,
// whatever its unit.
const largeLabel = 10

// IsLarge reports whether the number at the start of label exceeds 10.
// "12.7MB" and "800KB" are large; "4.7MB" and "1GB" are not.
func IsLarge(label string) bool {
	n, ok := leadingNumber(label)
	return ok && n > largeLabel
}

// leadingNumber parses the longest decimal prefix of s after leading spaces.
func leadingNumber(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	// Exponent only counts when followed by at least one digit.
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if exp < len(s) && isDigit(s[exp]) {
			for exp < len(s) && isDigit(s[exp]) {
				exp++
			}
			end = exp
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FormatBytes renders a byte count with binary units, e.g. "12.70 MB".
func FormatBytes(b float64) string {
	switch {
	case b >= tib:
		return fmt.Sprintf("%.2f TB", b/tib)
	case b >= gib:
		return fmt.Sprintf("%.2f GB", b/gib)
	case b >= mib:
		return fmt.Sprintf("%.2f MB", b/mib)
	case b >= kib:
		return fmt.Sprintf("%.2f KB", b/kib)
	default:
		return fmt.Sprintf("%.0f B", b)
	}
}

// TotalSize sums ParseSize over records.
func TotalSize(records []Record) float64 {
	var total float64
	for _, r := range records {
		total += ParseSize(r.Size)
	}
	return total
}
