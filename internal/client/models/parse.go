package models

import (
	"strconv"
	"strings"
	"time"
)

// ParsePressure interprets free-text blood pressure input.
//
//	"120/80" -> 120, 80
//	"120"    -> 120, nil
//	anything else -> nil, nil
//
// Unparseable input never fails the caller; the reading is simply stored
// without pressure values.
func ParsePressure(value string) (systolic, diastolic *int64) {
	v := strings.ReplaceAll(value, " ", "")
	if v == "" {
		return nil, nil
	}

	parts := strings.Split(v, "/")
	switch len(parts) {
	case 2:
		s, err1 := strconv.ParseInt(parts[0], 10, 64)
		d, err2 := strconv.ParseInt(parts[1], 10, 64)
		if err1 != nil || err2 != nil {
			return nil, nil
		}
		return &s, &d
	case 1:
		// Bare values must be all digits; ParseInt alone would let a signed
		// string through.
		if !isDigits(parts[0]) {
			return nil, nil
		}
		s, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, nil
		}
		return &s, nil
	default:
		return nil, nil
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseGlucose interprets free-text glucose input as mg/dL. Empty or
// unparseable input yields nil.
func ParseGlucose(value string) *float64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	g, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &g
}

// ValidISODate reports whether s parses as a calendar date in YYYY-MM-DD form.
func ValidISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// OptionalString maps empty input to nil so blank form fields are stored as
// SQL NULL rather than empty strings.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
