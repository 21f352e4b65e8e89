// Package templates renders the HTML pages of the quote calculator.
package templates

import "devisbot/services"

// DevisPageData is the view model of the calculator page.
type DevisPageData struct {
	Input     string
	Devis     *services.Devis
	Addresses []services.AddressLink
}

func lineClass(l services.DevisLine) string {
	return "line-" + l.Kind.String()
}
