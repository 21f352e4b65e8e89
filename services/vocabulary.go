package services

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultRooms is the room vocabulary seeded on first start.
var DefaultRooms = []string{
	"salon", "cuisine", "couloir", "salle de bain", "salle-de-bain",
	"cage d'escalier", "cage d’escalier", "entrée", "entree",
	"garage", "chambre", "buanderie", "placard", "toilettes",
	"wc", "salle à manger", "salle a manger",
}

// DefaultSurfaces is the surface vocabulary seeded on first start.
var DefaultSurfaces = []string{
	"plafond", "sol", "mur", "façade", "facade", "porte",
	"fenêtre", "fenetre", "escalier",
}

// Vocabulary holds the room and surface names recognized as markers.
// It is built once and only read afterwards, so a single value can be
// shared by concurrent callers.
type Vocabulary struct {
	rooms    map[string]struct{}
	surfaces []string
}

// NewVocabulary builds a Vocabulary. Entries are trimmed, lower-cased and
// NFC-normalized; blank entries and duplicates are ignored.
func NewVocabulary(rooms, surfaces []string) Vocabulary {
	v := Vocabulary{rooms: make(map[string]struct{}, len(rooms))}
	for _, r := range rooms {
		if key := normalizeMarker(r); key != "" {
			v.rooms[key] = struct{}{}
		}
	}
	seen := make(map[string]bool, len(surfaces))
	for _, s := range surfaces {
		key := normalizeMarker(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		v.surfaces = append(v.surfaces, key)
	}
	return v
}

// DefaultVocabulary returns the built-in French vocabulary.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(DefaultRooms, DefaultSurfaces)
}

// IsRoom reports whether line names a room.
func (v Vocabulary) IsRoom(line string) bool {
	_, ok := v.rooms[normalizeMarker(line)]
	return ok
}

// IsSurface reports whether line names a surface, either exactly or followed
// by a qualifier ("mur nord").
func (v Vocabulary) IsSurface(line string) bool {
	key := normalizeMarker(line)
	if key == "" {
		return false
	}
	for _, s := range v.surfaces {
		if key == s || strings.HasPrefix(key, s+" ") {
			return true
		}
	}
	return false
}

// Len returns the number of rooms and surfaces known.
func (v Vocabulary) Len() (rooms, surfaces int) {
	return len(v.rooms), len(v.surfaces)
}

func normalizeMarker(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
