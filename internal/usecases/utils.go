package usecases

import (
	"strconv"
	"strings"
)

// ParseAmount parses a money value that legacy clients and stored rows
// transmit as formatted strings ("R10,000.00", "10 000", "1234.5").
// Currency symbols, commas and spaces are stripped before parsing.
// Unparseable input degrades to ok=false, never an error.
func ParseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	replacer := strings.NewReplacer("R", "", "ZAR", "", ",", "", " ", "", " ", "")
	s = replacer.Replace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseTermMonths parses a loan term transmitted as a string. Returns
// ok=false for non-integer input.
func ParseTermMonths(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
