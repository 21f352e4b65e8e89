package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a PDF document from quote export data using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the title, reference number, and date to the PDF.
func addHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Réf. : "+data.ReferenceNumber, props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
			col.New(6).Add(
				text.New("Date : "+data.CreatedDate, props.Text{Size: 9, Align: align.Right, Color: grey}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row.
func addTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(8).Add(text.New("Désignation", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Quantité", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unité", headerText)).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds a single row, styled by level.
func addTableRow(m core.Maroto, r ExportRow) {
	var cellStyle *props.Cell
	var textSize float64 = 8
	textStyle := fontstyle.Normal
	descPrefix := ""

	switch {
	case r.IsTotal:
		textStyle = fontstyle.Bold
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	case r.Level == 0:
		textStyle = fontstyle.Bold
		textSize = 9
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 225, Green: 225, Blue: 225}}
	case r.Level == 1:
		textStyle = fontstyle.BoldItalic
		descPrefix = "  "
	case r.Level == 2:
		descPrefix = "    "
	}

	baseText := props.Text{Size: textSize, Style: textStyle, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	qty, unit := "", ""
	if r.HasQty {
		qty, unit = FormatDecimal(r.Qty), r.Unit
	}

	cols := []core.Col{
		col.New(1).Add(text.New(r.Index, baseText)),
		col.New(8).Add(text.New(descPrefix+r.Description, leftText)),
		col.New(2).Add(text.New(qty, rightText)),
		col.New(1).Add(text.New(unit, baseText)),
	}
	if cellStyle != nil {
		for i := range cols {
			cols[i] = cols[i].WithStyle(cellStyle)
		}
	}

	m.AddRows(row.New(6).Add(cols...))
}

// addSummary adds the grand totals per unit.
func addSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	summary := []struct {
		label string
		value float64
		unit  Unit
	}{
		{"Total surfaces", data.TotalArea, UnitArea},
		{"Total linéaire", data.TotalLength, UnitLength},
	}
	for _, s := range summary {
		if s.value == 0 {
			continue
		}
		m.AddRows(
			row.New(8).Add(
				col.New(9).Add(text.New(s.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(
					text.New(FormatDecimal(s.value)+" "+s.unit.Symbol(), labelStyle),
				).WithStyle(summaryCell),
			),
		)
	}
}
