package entity

import "fmt"

// ItemCategory groups store items for filtering.
type ItemCategory string

const (
	CategoryMember    ItemCategory = "Member"
	CategoryOutfit    ItemCategory = "Outfit"
	CategoryPet       ItemCategory = "Pet"
	CategoryMerch     ItemCategory = "Merch"
	CategoryAccessory ItemCategory = "Accessory"
)

// ItemCategories lists every category in catalog order.
var ItemCategories = []ItemCategory{
	CategoryMember, CategoryOutfit, CategoryPet, CategoryMerch, CategoryAccessory,
}

// StoreItem is one cosmetic catalog entry. The catalog is fixed reference
// data; ownership lives in the user profile inventory.
type StoreItem struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         ItemCategory `json:"category"`
	Cost             int          `json:"cost"`
	ImagePlaceholder string       `json:"imagePlaceholder"`
}

const catalogSize = 200

var memberNames = []string{"Jisoo", "Jennie", "Rosé", "Lisa"}

var petNames = []string{
	"Jennie's Kuma",
	"Jennie's Kai",
	"Rosé's Hank",
	"Jisoo's Dalgom",
	"Lisa's Love",
	"Lisa's Leo",
	"Lisa's Luca",
	"Lisa's Louis",
	"Lisa's Lego",
	"Lisa's Lily",
}

var merchKinds = []string{"Lightstick", "Photo Album", "Hoodie", "Tote Bag", "Keyring", "Poster", "Calendar", "Perfume"}

var accessoryKinds = []string{"Earrings", "Necklace", "Ring", "Hat", "Scarf"}

// StoreCatalog holds the 200 generated store items.
var StoreCatalog = buildCatalog()

func buildCatalog() []StoreItem {
	items := make([]StoreItem, 0, catalogSize)
	for i := 0; i < catalogSize; i++ {
		category := ItemCategories[i%len(ItemCategories)]
		member := memberNames[i%len(memberNames)]

		var name string
		cost := 10
		switch category {
		case CategoryMember:
			name = fmt.Sprintf("Chibi %s Ver.%d", member, i/20+1)
			cost = 50
		case CategoryOutfit:
			name = fmt.Sprintf("%s's Stage Outfit #%d", member, i/10+1)
			cost = 30
		case CategoryPet:
			name = petNames[(i/5)%len(petNames)]
			cost = 40
		case CategoryMerch:
			name = fmt.Sprintf("BP %s (Ed. %d)", merchKinds[i%len(merchKinds)], i)
			cost = 20
		case CategoryAccessory:
			name = fmt.Sprintf("%s's %s", member, accessoryKinds[i%len(accessoryKinds)])
			cost = 15
		}

		items = append(items, StoreItem{
			ID:               fmt.Sprintf("item-%d", i),
			Name:             name,
			Category:         category,
			Cost:             cost,
			ImagePlaceholder: fmt.Sprintf("https://picsum.photos/seed/%d/200/200", i+500),
		})
	}
	return items
}

// FindStoreItem looks an item up by ID.
func FindStoreItem(id string) (StoreItem, bool) {
	for _, item := range StoreCatalog {
		if item.ID == id {
			return item, true
		}
	}
	return StoreItem{}, false
}
