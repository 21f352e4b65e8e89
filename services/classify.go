package services

import (
	"regexp"
	"strings"
	"unicode"
)

// LineKind is the category of an input line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineRoom
	LineSurface
	LineMeasurable
	LinePlain
	// LineTotal is never returned by Classify; it marks the TOTAL lines
	// inserted by the formatter.
	LineTotal
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineRoom:
		return "room"
	case LineSurface:
		return "surface"
	case LineMeasurable:
		return "measurable"
	case LinePlain:
		return "plain"
	case LineTotal:
		return "total"
	}
	return "unknown"
}

// hoursPattern matches a duration such as "3h", "1,5H", "2 h" or "3h30".
var hoursPattern = regexp.MustCompile(`(?i)\d\s*h(?:\d{1,2})?\b`)

// Classify returns the kind of line. Marker matching ignores case and
// surrounding spaces; it never depends on what was computed before.
func Classify(line string, vocab Vocabulary) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return LineBlank
	case vocab.IsRoom(trimmed):
		return LineRoom
	case vocab.IsSurface(trimmed):
		return LineSurface
	case strings.IndexFunc(trimmed, unicode.IsDigit) >= 0:
		return LineMeasurable
	}
	return LinePlain
}

// ShouldSkipComputation reports whether a line must be left as typed even if
// it has digits: it already carries an area ("12 m²", "4 m2") or it is an
// duration ("2h de ponçage", "3h30"). A multiplication marker does not lift the
// area skip.
func ShouldSkipComputation(line string) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "m²") || strings.Contains(lower, "m2") {
		return true
	}
	return hoursPattern.MatchString(line)
}
