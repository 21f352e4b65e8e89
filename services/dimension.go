package services

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Unit is the unit of a computed measurement.
type Unit int

const (
	UnitNone Unit = iota
	UnitArea
	UnitLength
)

// Symbol returns the display symbol of the unit ("m²" or "m").
func (u Unit) Symbol() string {
	switch u {
	case UnitArea:
		return "m²"
	case UnitLength:
		return "m"
	}
	return ""
}

// multiplicationMarkers are the characters accepted between widths and height.
const multiplicationMarkers = "xX×"

var subtractPattern = regexp.MustCompile(`(?i)retirer`)

// HasMultiplication reports whether s contains a multiplication marker.
func HasMultiplication(s string) bool {
	return strings.ContainsAny(s, multiplicationMarkers)
}

// EvaluateSegment computes widths × height for one side of a "retirer" split.
// The split point is the last multiplication marker: every number before it
// is summed as the width ("1,20 + 0,80 x 2,10" → 2 × 2,1), the first number
// after it is the height. It reports false when the segment has no marker or
// is missing either factor.
func EvaluateSegment(segment string) (float64, bool) {
	idx := strings.LastIndexAny(segment, multiplicationMarkers)
	if idx < 0 {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(segment[idx:])

	heights := parseDecimals(segment[idx+size:])
	if len(heights) == 0 {
		return 0, false
	}
	widths := parseDecimals(segment[:idx])
	if len(widths) == 0 {
		return 0, false
	}
	return sum(widths) * heights[0], true
}

// splitSubtraction splits a line on the first "retirer", case-insensitively.
// after is empty when the keyword is absent.
func splitSubtraction(line string) (before, after string) {
	loc := subtractPattern.FindStringIndex(line)
	if loc == nil {
		return line, ""
	}
	return line[:loc[0]], line[loc[1]:]
}

// EvaluateLine computes the area of a dimension line such as
// "3,20 x 2,40 retirer 1 x 2,10". The cut-out after "retirer" only counts
// when it carries its own multiplication marker.
func EvaluateLine(line string) (float64, bool) {
	if !HasMultiplication(line) {
		return 0, false
	}
	before, after := splitSubtraction(line)

	principal, ok := EvaluateSegment(before)
	if !ok {
		return 0, false
	}

	var cutout float64
	if HasMultiplication(after) {
		cutout, ok = EvaluateSegment(after)
		if !ok {
			return 0, false
		}
	}
	return principal - cutout, true
}

// EvaluateLengthLine computes a linear measurement: the sum of the numbers
// before "retirer" minus the sum of the numbers after it.
func EvaluateLengthLine(line string) (float64, bool) {
	before, after := splitSubtraction(line)

	principal := parseDecimals(before)
	if len(principal) == 0 {
		return 0, false
	}
	return sum(principal) - sum(parseDecimals(after)), true
}

// Measure evaluates a line as an area when it contains a multiplication
// marker and as a length otherwise.
func Measure(line string) (float64, Unit, bool) {
	if HasMultiplication(line) {
		v, ok := EvaluateLine(line)
		if !ok {
			return 0, UnitNone, false
		}
		return v, UnitArea, true
	}
	v, ok := EvaluateLengthLine(line)
	if !ok {
		return 0, UnitNone, false
	}
	return v, UnitLength, true
}
