package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Collection names holding the marker vocabulary.
const (
	RoomsCollection    = "rooms"
	SurfacesCollection = "surfaces"
)

// Setup programmatically creates/ensures the rooms and surfaces collections
// exist. Both hold a single unique "name" field.
func Setup(app *pocketbase.PocketBase) {
	for _, name := range []string{RoomsCollection, SurfacesCollection} {
		ensureCollection(app, name, func(c *core.Collection) {
			c.Fields.Add(&core.TextField{Name: "name", Required: true, Max: 100})
			c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
			c.AddIndex("idx_"+name+"_name", true, "name", "")
		})
	}
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
