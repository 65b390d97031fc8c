package records

import (
	"github.com/mochihq/mochi/pkg/types"
)

const inventoryTitle = "Inventaire"

// Inventory file keys.
const (
	keyItemID       = "id"
	keyItemCategory = "categorie"
	keyItemPrice    = "prix"
	keyItemLevel    = "niveau_requis"
	keyItemOwned    = "possede"
	keyItemEquipped = "equipe"
)

// DecodeItems decodes one inventory item per top-level record. The heading
// is the item name; unknown categories fall back to the accessory slot.
func DecodeItems(text string) []types.Item {
	recs := Parse(text)
	items := make([]types.Item, 0, len(recs))
	for _, r := range recs {
		items = append(items, types.Item{
			ID:            idOrFresh(r.String(keyItemID, "")),
			Name:          r.Heading,
			Category:      types.ParseItemCategory(r.String(keyItemCategory, "")),
			Price:         r.Int(keyItemPrice, 0),
			RequiredLevel: r.Int(keyItemLevel, 0),
			Owned:         r.Bool(keyItemOwned),
			Equipped:      r.Bool(keyItemEquipped),
		})
	}
	return items
}

// EncodeItems renders the inventory list.
func EncodeItems(items []types.Item) string {
	b := newBuilder(inventoryTitle)
	for _, it := range items {
		b.record(it.Name)
		b.prop(keyItemID, it.ID)
		b.prop(keyItemCategory, string(types.ParseItemCategory(string(it.Category))))
		b.intProp(keyItemPrice, it.Price)
		b.intProp(keyItemLevel, it.RequiredLevel)
		b.boolProp(keyItemOwned, it.Owned)
		b.boolProp(keyItemEquipped, it.Equipped)
		b.endRecord()
	}
	return b.text()
}
