package entity

import "testing"

func TestStoreCatalogShape(t *testing.T) {
	if len(StoreCatalog) != 200 {
		t.Fatalf("expected 200 catalog items, got %d", len(StoreCatalog))
	}

	wantCost := map[ItemCategory]int{
		CategoryMember:    50,
		CategoryOutfit:    30,
		CategoryPet:       40,
		CategoryMerch:     20,
		CategoryAccessory: 15,
	}

	seen := make(map[string]struct{}, len(StoreCatalog))
	counts := make(map[ItemCategory]int)
	for i, item := range StoreCatalog {
		if _, dup := seen[item.ID]; dup {
			t.Errorf("duplicate item ID %q", item.ID)
		}
		seen[item.ID] = struct{}{}
		counts[item.Category]++

		if item.Name == "" {
			t.Errorf("item %d has no name", i)
		}
		if item.ImagePlaceholder == "" {
			t.Errorf("item %d has no placeholder image", i)
		}
		if want := wantCost[item.Category]; item.Cost != want {
			t.Errorf("item %s: cost %d, want %d for %s", item.ID, item.Cost, want, item.Category)
		}
	}

	// Categories round-robin, so each gets an equal share.
	for _, category := range ItemCategories {
		if counts[category] != 40 {
			t.Errorf("category %s has %d items, want 40", category, counts[category])
		}
	}
}

func TestFindStoreItem(t *testing.T) {
	item, ok := FindStoreItem("item-0")
	if !ok {
		t.Fatal("item-0 not found")
	}
	if item.Category != CategoryMember || item.Cost != 50 {
		t.Errorf("unexpected item-0: %+v", item)
	}

	if _, ok := FindStoreItem("item-200"); ok {
		t.Error("expected lookup miss past the catalog end")
	}
}
