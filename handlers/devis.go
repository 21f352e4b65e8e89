package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"devisbot/services"
	"devisbot/templates"
)

// HandleDevisForm renders the empty calculator page.
// Route: GET /
func HandleDevisForm() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return templates.DevisPage(templates.DevisPageData{}).Render(e.Request.Context(), e.Response)
	}
}

// HandleDevisFormat formats the submitted quote and renders it, as an HTMX
// partial when requested by HTMX, as the full page otherwise.
// Route: POST /devis
func HandleDevisFormat(f services.Formatter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		text, err := readText(e)
		if err != nil {
			log.Printf("devis_format: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Texte invalide")
		}

		data := templates.DevisPageData{
			Input:     text,
			Addresses: services.BuildAddressLinks(text),
		}
		if d := f.Parse(text); len(d.Lines) > 0 {
			data.Devis = &d
		}

		if isHTMX(e) {
			return templates.DevisResult(data).Render(e.Request.Context(), e.Response)
		}
		return templates.DevisPage(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleDevisText formats the submitted quote and returns it as plain text.
// Route: POST /devis.txt
func HandleDevisText(f services.Formatter) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		text, err := readText(e)
		if err != nil {
			log.Printf("devis_text: %v", err)
			return e.String(http.StatusBadRequest, "invalid text")
		}
		return e.String(http.StatusOK, f.Format(text))
	}
}

// HandleAddressLinks renders the addresses found in the submitted text with
// their navigation links.
// Route: POST /adresses
func HandleAddressLinks() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		text, err := readText(e)
		if err != nil {
			log.Printf("address_links: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Texte invalide")
		}

		links := services.BuildAddressLinks(text)
		if !isHTMX(e) {
			return e.JSON(http.StatusOK, links)
		}
		if len(links) == 0 {
			SetToast(e, "info", "Aucune adresse détectée")
		}
		return templates.AddressLinks(links).Render(e.Request.Context(), e.Response)
	}
}
