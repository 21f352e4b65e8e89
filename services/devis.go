package services

import (
	"fmt"
	"strings"
)

const (
	// DefaultTrigger is the word that opens a quote message.
	DefaultTrigger = "devis"

	RoomGlyph    = "▶️"
	SurfaceGlyph = "▫️"
)

// DevisLine is one line of a formatted quote.
type DevisLine struct {
	Kind LineKind
	// Text is the line as emitted.
	Text string
	// Label is the marker name for room, surface and total lines, and the
	// typed line for measured ones.
	Label string
	// Computed is set when Value and Unit hold a measurement or a total.
	Computed bool
	Value    float64
	Unit     Unit
}

// Devis is a parsed quote.
type Devis struct {
	Lines []DevisLine
}

// String renders the quote as sent back to the user.
func (d Devis) String() string {
	texts := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// Totals returns the TOTAL lines, in order.
func (d Devis) Totals() []DevisLine {
	var totals []DevisLine
	for _, l := range d.Lines {
		if l.Kind == LineTotal {
			totals = append(totals, l)
		}
	}
	return totals
}

// GrandTotal sums the surface totals expressed in unit.
func (d Devis) GrandTotal(unit Unit) float64 {
	var total float64
	for _, l := range d.Totals() {
		if l.Unit == unit {
			total += l.Value
		}
	}
	return total
}

// surfaceTotal is the running total of the current surface. A line never
// mutates it; each step returns the next value.
type surfaceTotal struct {
	name  string
	total float64
	unit  Unit
}

// add accumulates v. A unit different from the established one closes the
// current surface (returned as flushed) and opens an unnamed one.
func (s surfaceTotal) add(v float64, u Unit) (next surfaceTotal, flushed surfaceTotal, closed bool) {
	if s.unit != UnitNone && s.unit != u {
		return surfaceTotal{total: v, unit: u}, s, true
	}
	s.unit = u
	s.total += v
	return s, surfaceTotal{}, false
}

// line returns the TOTAL line, if the surface is named and has a positive
// total.
func (s surfaceTotal) line() (DevisLine, bool) {
	if s.name == "" || s.total <= 0 || s.unit == UnitNone {
		return DevisLine{}, false
	}
	return DevisLine{
		Kind:     LineTotal,
		Text:     fmt.Sprintf("TOTAL %s : %s %s", s.name, FormatDecimal(s.total), s.unit.Symbol()),
		Label:    s.name,
		Computed: true,
		Value:    s.total,
		Unit:     s.unit,
	}, true
}

// Formatter turns hand-typed quote text into an annotated quote.
// The zero value has no vocabulary; use NewFormatter.
type Formatter struct {
	Vocabulary Vocabulary
	// Trigger is stripped from the start of the first line. Empty disables
	// stripping.
	Trigger string
}

// NewFormatter returns a Formatter using vocab and DefaultTrigger.
func NewFormatter(vocab Vocabulary) Formatter {
	return Formatter{Vocabulary: vocab, Trigger: DefaultTrigger}
}

// FormatDevis formats text with vocab and DefaultTrigger.
func FormatDevis(text string, vocab Vocabulary) string {
	return NewFormatter(vocab).Format(text)
}

// ParseDevis parses text with vocab and DefaultTrigger.
func ParseDevis(text string, vocab Vocabulary) Devis {
	return NewFormatter(vocab).Parse(text)
}

// Format returns the annotated quote. Blank input is returned unchanged.
func (f Formatter) Format(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	return f.Parse(text).String()
}

// Parse processes text line by line. It never fails: lines that cannot be
// measured are kept as typed.
func (f Formatter) Parse(text string) Devis {
	var d Devis
	var current surfaceTotal

	flush := func() {
		if l, ok := current.line(); ok {
			d.Lines = append(d.Lines, l)
		}
		current = surfaceTotal{}
	}

	for _, raw := range f.contentLines(text) {
		trimmed := strings.TrimSpace(raw)

		switch Classify(raw, f.Vocabulary) {
		case LineBlank:
			d.Lines = append(d.Lines, DevisLine{Kind: LineBlank})

		case LineRoom:
			flush()
			d.Lines = append(d.Lines, DevisLine{Kind: LineRoom, Text: RoomGlyph + trimmed, Label: trimmed})

		case LineSurface:
			flush()
			current = surfaceTotal{name: trimmed}
			d.Lines = append(d.Lines, DevisLine{Kind: LineSurface, Text: SurfaceGlyph + trimmed, Label: trimmed})

		case LineMeasurable:
			if ShouldSkipComputation(raw) {
				d.Lines = append(d.Lines, DevisLine{Kind: LinePlain, Text: raw, Label: trimmed})
				continue
			}
			value, unit, ok := Measure(raw)
			if !ok {
				d.Lines = append(d.Lines, DevisLine{Kind: LinePlain, Text: raw, Label: trimmed})
				continue
			}

			next, closed, mismatch := current.add(value, unit)
			if mismatch {
				current = closed
				flush()
			}
			current = next

			typed := strings.TrimRight(raw, " \t")
			d.Lines = append(d.Lines, DevisLine{
				Kind:     LineMeasurable,
				Text:     fmt.Sprintf("%s (🔸 %s %s)", typed, FormatDecimal(value), unit.Symbol()),
				Label:    trimmed,
				Computed: true,
				Value:    value,
				Unit:     unit,
			})

		default:
			d.Lines = append(d.Lines, DevisLine{Kind: LinePlain, Text: raw, Label: trimmed})
		}
	}
	flush()

	return d
}

// contentLines splits text into lines and removes the trigger word from the
// first one. Text following the trigger on that line is kept as content.
func (f Formatter) contentLines(text string) []string {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := strings.Split(text, "\n")

	if f.Trigger == "" {
		return lines
	}
	rest, ok := CutTrigger(lines[0], f.Trigger)
	if !ok {
		return lines
	}
	if rest == "" {
		return lines[1:]
	}
	lines[0] = rest
	return lines
}

// CutTrigger reports whether line starts with trigger, ignoring case and
// leading spaces, and returns what follows it.
func CutTrigger(line, trigger string) (rest string, ok bool) {
	s := strings.TrimSpace(line)
	if trigger == "" || len(s) < len(trigger) || !strings.EqualFold(s[:len(trigger)], trigger) {
		return "", false
	}
	rest = strings.TrimLeft(s[len(trigger):], " \t:")
	return strings.TrimSpace(rest), true
}
