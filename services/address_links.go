package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// addressTwoLines matches a street line followed by a "zip city" line:
//
//	32 bis rue des Fontaines
//	31300 Toulouse
var addressTwoLines = regexp.MustCompile(
	`(?im)^\s*(?P<street>\d{1,5}\s*(?:bis|ter|quater)?\s+[^\n,]{4,})\s*$\n` +
		`^\s*(?P<zip>\d{5})\s+(?P<city>[A-Za-zÀ-ÖØ-öø-ÿ' -]{2,})\s*$`)

// addressOneLine matches "32 bis rue des Fontaines 31300 Toulouse". The city
// runs as far as the letter class allows; it is trimmed afterwards.
var addressOneLine = regexp.MustCompile(
	`(?i)\b(?P<street>\d{1,5}\s*(?:bis|ter|quater)?\s+.+?)\s+` +
		`(?P<zip>\d{5})\s+(?P<city>[A-Za-zÀ-ÖØ-öø-ÿ' -]{2,})`)

// ExtractAddresses returns the French postal addresses found in text as
// "street, zip city", without case-insensitive duplicates, in the order
// they were found (two-line addresses first).
func ExtractAddresses(text string) []string {
	var found []string
	for _, re := range []*regexp.Regexp{addressTwoLines, addressOneLine} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			street := strings.Trim(strings.TrimSpace(m[re.SubexpIndex("street")]), ",")
			zip := strings.TrimSpace(m[re.SubexpIndex("zip")])
			city := strings.TrimSpace(m[re.SubexpIndex("city")])
			found = append(found, fmt.Sprintf("%s, %s %s", street, zip, city))
		}
	}

	seen := make(map[string]bool, len(found))
	var unique []string
	for _, a := range found {
		key := strings.ToLower(a)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, a)
	}
	return unique
}

// GoogleMapsURL returns a Google Maps search link for address.
func GoogleMapsURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}

// WazeURL returns a Waze navigation link for address.
func WazeURL(address string) string {
	return "https://waze.com/ul?q=" + url.QueryEscape(address) + "&navigate=yes"
}

// AddressLink is an address with its navigation links.
type AddressLink struct {
	Address string `json:"address"`
	Google  string `json:"google"`
	Waze    string `json:"waze"`
}

// BuildAddressLinks extracts the addresses of text with their links.
func BuildAddressLinks(text string) []AddressLink {
	addresses := ExtractAddresses(text)
	links := make([]AddressLink, 0, len(addresses))
	for _, a := range addresses {
		links = append(links, AddressLink{Address: a, Google: GoogleMapsURL(a), Waze: WazeURL(a)})
	}
	return links
}

// FormatAddressLinks renders links as a chat message, or "" when empty.
func FormatAddressLinks(links []AddressLink) string {
	if len(links) == 0 {
		return ""
	}
	lines := []string{"📍 Adresses détectées :"}
	for i, l := range links {
		lines = append(lines, fmt.Sprintf("\n%d) %s\nGoogle: %s\nWaze: %s", i+1, l.Address, l.Google, l.Waze))
	}
	return strings.Join(lines, "\n")
}
