package decision

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseVolume reads a transfer volume. Blank, non-numeric and negative input give 0.
func ParseVolume(line string) int {
	f := firstField(line)
	if f == "" {
		return 0
	}
	v, err := strconv.Atoi(f)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseYesNo accepts answers starting with y or д in either case.
func ParseYesNo(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	r := unicode.ToLower([]rune(s)[0])
	return r == 'y' || r == 'д'
}

// ParsePrice reads a selling price. Blank or non-numeric input gives fallback,
// negative input gives 0.
func ParsePrice(line string, fallback float64) float64 {
	f := firstField(line)
	if f == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	if v < 0 {
		return 0
	}
	return v
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
