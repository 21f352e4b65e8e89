package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"devisbot/services"
)

// buildExportData parses the submitted quote into export data. The optional
// "title" form field names the document.
func buildExportData(e *core.RequestEvent, f services.Formatter, now time.Time) (services.ExportData, error) {
	text, err := readText(e)
	if err != nil {
		return services.ExportData{}, err
	}
	if strings.TrimSpace(text) == "" {
		return services.ExportData{}, fmt.Errorf("empty quote")
	}
	title := strings.TrimSpace(e.Request.FormValue("title"))
	return services.BuildExportData(f.Parse(text), title, now), nil
}

// HandleDevisExportExcel returns a handler that generates and downloads an
// Excel file for the submitted quote.
// Route: POST /devis/export/excel
func HandleDevisExportExcel(f services.Formatter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildExportData(e, f, time.Now())
		if err != nil {
			log.Printf("export_excel: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Devis vide ou invalide")
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Échec de la génération Excel")
		}

		filename := fmt.Sprintf("%s_%s.xlsx", sanitizeFilename(data.Title), data.ReferenceNumber)

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(xlsxBytes)
		return err
	}
}

// HandleDevisExportPDF returns a handler that generates and downloads a PDF
// file for the submitted quote.
// Route: POST /devis/export/pdf
func HandleDevisExportPDF(f services.Formatter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildExportData(e, f, time.Now())
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Devis vide ou invalide")
		}

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Échec de la génération PDF")
		}

		filename := fmt.Sprintf("%s_%s.pdf", sanitizeFilename(data.Title), data.ReferenceNumber)

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(pdfBytes)
		return err
	}
}
