package types

// ItemCategory is the wardrobe slot an inventory item belongs to.
type ItemCategory string

const (
	CategoryHat        ItemCategory = "chapeau"
	CategoryGlasses    ItemCategory = "lunettes"
	CategoryAccessory  ItemCategory = "accessoire"
	CategoryColor      ItemCategory = "couleur"
	CategoryBackground ItemCategory = "decor"
)

// ParseItemCategory maps a stored category value to its enum constant.
// Unknown values resolve to CategoryAccessory.
func ParseItemCategory(s string) ItemCategory {
	switch ItemCategory(s) {
	case CategoryHat, CategoryGlasses, CategoryAccessory, CategoryColor, CategoryBackground:
		return ItemCategory(s)
	default:
		return CategoryAccessory
	}
}

// Exclusive reports whether at most one item of this category may be
// equipped at a time. Accessories and colors are equipped independently.
func (c ItemCategory) Exclusive() bool {
	return c != CategoryAccessory && c != CategoryColor
}

// Item is a purchasable cosmetic persisted in inventory/items.md.
type Item struct {
	ID            string
	Name          string
	Category      ItemCategory
	Price         int
	RequiredLevel int
	Owned         bool
	Equipped      bool
}
