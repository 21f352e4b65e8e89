package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExportRow represents a single row of an exported quote.
type ExportRow struct {
	Level       int    // 0 = room, 1 = surface or total, 2 = quote line
	Index       string // "1", "1.2", "1.2.3"; empty for totals and notes
	Description string
	Qty         float64
	HasQty      bool
	Unit        string
	IsTotal     bool
}

// ExportData holds all data needed for export.
type ExportData struct {
	Title           string
	ReferenceNumber string
	CreatedDate     string
	Rows            []ExportRow
	TotalArea       float64
	TotalLength     float64
}

// NewReference returns a quote reference such as "DEV-20261019-3F2A9C1B".
func NewReference(now time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("DEV-%s-%s", now.Format("20060102"), id[:8])
}

// numbering hands out hierarchical indexes ("1", "1.2", "1.2.3"). A line
// numbered at some depth restarts every deeper level.
type numbering struct {
	counters []int
}

func (n *numbering) next(depth int) string {
	for len(n.counters) <= depth {
		n.counters = append(n.counters, 0)
	}
	n.counters = n.counters[:depth+1]
	n.counters[depth]++

	parts := make([]string, len(n.counters))
	for i, c := range n.counters {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// BuildExportData flattens a parsed quote into export rows. Rooms, surfaces
// and measured lines are numbered hierarchically under whatever room and
// surface are open; blank lines are dropped.
func BuildExportData(d Devis, title string, now time.Time) ExportData {
	if title == "" {
		title = "Devis"
	}

	var rows []ExportRow
	var n numbering
	var inRoom, inSurface bool
	depth := func() int {
		level := 0
		if inRoom {
			level++
		}
		if inSurface {
			level++
		}
		return level
	}

	for _, l := range d.Lines {
		switch l.Kind {
		case LineRoom:
			inRoom, inSurface = false, false
			rows = append(rows, ExportRow{Level: 0, Index: n.next(0), Description: l.Label})
			inRoom = true
		case LineSurface:
			inSurface = false
			rows = append(rows, ExportRow{Level: 1, Index: n.next(depth()), Description: l.Label})
			inSurface = true
		case LineMeasurable:
			rows = append(rows, ExportRow{
				Level:       2,
				Index:       n.next(depth()),
				Description: l.Label,
				Qty:         l.Value,
				HasQty:      true,
				Unit:        l.Unit.Symbol(),
			})
		case LineTotal:
			rows = append(rows, ExportRow{
				Level:       1,
				Description: "TOTAL " + l.Label,
				Qty:         l.Value,
				HasQty:      true,
				Unit:        l.Unit.Symbol(),
				IsTotal:     true,
			})
		case LinePlain:
			rows = append(rows, ExportRow{Level: 2, Description: l.Label})
		}
	}

	return ExportData{
		Title:           title,
		ReferenceNumber: NewReference(now),
		CreatedDate:     now.Format("02/01/2006"),
		Rows:            rows,
		TotalArea:       d.GrandTotal(UnitArea),
		TotalLength:     d.GrandTotal(UnitLength),
	}
}
