package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func sampleExportData() ExportData {
	d := NewFormatter(DefaultVocabulary()).Parse(
		"devis\nsalon\nmur\n3,20 x 2,40 retirer 1 x 2,10\nplinthes\nporte\n2 + 2")
	return BuildExportData(d, "Devis salon", time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC))
}

func TestGenerateExcel_Quote(t *testing.T) {
	result, err := GenerateExcel(sampleExportData())
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Devis salon" {
		t.Fatalf("expected sheet name 'Devis salon', got %v", sheets)
	}
	sheet := sheets[0]

	cells := map[string]string{
		"A1":  "Devis salon",
		"A3":  "Date : 19/10/2026",
		"B5":  "Désignation",
		"A6":  "1",
		"B6":  "salon",
		"B7":  "  mur",
		"A8":  "1.1.1",
		"B8":  "    3,20 x 2,40 retirer 1 x 2,10",
		"C8":  "5.58",
		"D8":  "m²",
		"B9":  "    plinthes",
		"B10": "  TOTAL mur",
		"C10": "5.58",
		"B11": "  porte",
		"C12": "4",
		"D12": "m",
		"B13": "  TOTAL porte",
		"B15": "Total surfaces :",
		"C15": "5.58",
		"B16": "Total linéaire :",
		"C16": "4",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestGenerateExcel_QuantitiesAreNumbers(t *testing.T) {
	result, err := GenerateExcel(sampleExportData())
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()
	sheet := f.GetSheetList()[0]

	// A number format only changes the display of numeric cells.
	for cell, want := range map[string]string{"C8": "5.58", "C12": "4.00", "C16": "4.00"} {
		got, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("%s displayed as %q, want %q", cell, got, want)
		}
	}

	if err := f.SetCellFormula(sheet, "C20", "SUM(C8,C12)"); err != nil {
		t.Fatalf("SetCellFormula: %v", err)
	}
	got, err := f.CalcCellValue(sheet, "C20")
	if err != nil {
		t.Fatalf("CalcCellValue: %v", err)
	}
	if got != "9.58" {
		t.Errorf("SUM(C8,C12) = %q, want 9.58", got)
	}
}

func TestGenerateExcel_EmptyRows(t *testing.T) {
	result, err := GenerateExcel(ExportData{Title: "Vide", CreatedDate: "19/10/2026"})
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
}

func TestGenerateExcel_SheetName(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"empty title", "", "Devis"},
		{"forbidden characters", "Chantier 12/03: [A]", "Chantier 12-03- (A)"},
		{"long title", "Rénovation complète de l'appartement du troisième étage", "Rénovation complète de l'appart"},
		{"quoted title", "'Chez Paul'", "Chez Paul"},
		{"only quotes", "''", "Devis"},
		{"quote at the cut", "Rénovation complète de la cour' bis", "Rénovation complète de la cour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GenerateExcel(ExportData{Title: tt.title})
			if err != nil {
				t.Fatalf("GenerateExcel() error = %v", err)
			}
			f, err := excelize.OpenReader(bytesReader(result))
			if err != nil {
				t.Fatalf("result is not valid Excel: %v", err)
			}
			defer f.Close()

			if got := f.GetSheetList()[0]; got != tt.want {
				t.Errorf("sheet name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "mur", "mur"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with pipe", "|command", "'|command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}
	for _, b := range borders {
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
}
