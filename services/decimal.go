package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern matches a number written with an optional comma or dot
// decimal part ("3", "3,20", "2.4"). The integer part may be omitted
// (",5", ".5").
var decimalPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?|[.,]\d+`)

// FormatDecimal renders a value rounded to 2 decimals with a decimal comma.
// Trailing zeros of the fractional part are dropped, and the comma with them
// when nothing is left: 30.8 → "30,8", 11 → "11", 17.567 → "17,57".
func FormatDecimal(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	head, tail, _ := strings.Cut(s, ".")
	tail = strings.TrimRight(tail, "0")
	if head == "-0" && tail == "" {
		head = "0"
	}
	if tail == "" {
		return head
	}
	return head + "," + tail
}

// parseDecimals returns every number found in s, in order. Both "," and "."
// are accepted as decimal separator.
func parseDecimals(s string) []float64 {
	matches := decimalPattern.FindAllString(s, -1)
	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.Replace(m, ",", ".", 1), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
