package collections

import (
	"fmt"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"devisbot/services"
)

// Seed fills the rooms and surfaces collections with the default French
// vocabulary. A collection that already has records is left untouched, so
// it is safe to call on every startup and entries edited in the admin UI
// survive restarts.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedNames(app, RoomsCollection, services.DefaultRooms); err != nil {
		return err
	}
	return seedNames(app, SurfacesCollection, services.DefaultSurfaces)
}

func seedNames(app *pocketbase.PocketBase, collection string, names []string) error {
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		return fmt.Errorf("seed: could not find %s collection: %w", collection, err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query %s: %w", collection, err)
	}
	if len(existing) > 0 {
		return nil
	}

	log.Printf("seed: %s collection is empty – inserting %d defaults", collection, len(names))

	return app.RunInTransaction(func(txApp core.App) error {
		for _, name := range names {
			r := core.NewRecord(col)
			r.Set("name", strings.TrimSpace(name))
			if err := txApp.Save(r); err != nil {
				return fmt.Errorf("seed: could not save %s %q: %w", collection, name, err)
			}
		}
		return nil
	})
}

// LoadVocabulary reads the rooms and surfaces collections once and returns
// the resulting immutable vocabulary. Empty collections fall back to the
// built-in defaults.
func LoadVocabulary(app *pocketbase.PocketBase) (services.Vocabulary, error) {
	rooms, err := loadNames(app, RoomsCollection)
	if err != nil {
		return services.Vocabulary{}, err
	}
	surfaces, err := loadNames(app, SurfacesCollection)
	if err != nil {
		return services.Vocabulary{}, err
	}

	if len(rooms) == 0 {
		rooms = services.DefaultRooms
	}
	if len(surfaces) == 0 {
		surfaces = services.DefaultSurfaces
	}
	return services.NewVocabulary(rooms, surfaces), nil
}

func loadNames(app *pocketbase.PocketBase, collection string) ([]string, error) {
	records, err := app.FindAllRecords(collection)
	if err != nil {
		return nil, fmt.Errorf("vocabulary: could not query %s: %w", collection, err)
	}
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.GetString("name"))
	}
	return names, nil
}
