package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mochihq/mochi/pkg/types"
)

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()
	require.NotEmpty(t, items)

	seen := map[string]bool{}
	categories := map[types.ItemCategory]bool{}
	for _, it := range items {
		assert.NotEmpty(t, it.ID)
		assert.False(t, seen[it.ID], "ids must be unique")
		seen[it.ID] = true
		assert.NotEmpty(t, it.Name)
		assert.False(t, it.Owned, "catalog items start unowned")
		assert.False(t, it.Equipped)
		categories[it.Category] = true
	}

	// The catalog covers every wardrobe slot.
	for _, c := range []types.ItemCategory{
		types.CategoryHat, types.CategoryGlasses, types.CategoryAccessory,
		types.CategoryColor, types.CategoryBackground,
	} {
		assert.True(t, categories[c], "missing category %s", c)
	}
}

func testItems() []types.Item {
	return []types.Item{
		{ID: "hat1", Name: "Béret", Category: types.CategoryHat, Price: 30, RequiredLevel: 1, Owned: true, Equipped: true},
		{ID: "hat2", Name: "Couronne", Category: types.CategoryHat, Price: 200, RequiredLevel: 10, Owned: true},
		{ID: "acc1", Name: "Écharpe", Category: types.CategoryAccessory, Price: 20, RequiredLevel: 1, Owned: true, Equipped: true},
		{ID: "acc2", Name: "Sacoche", Category: types.CategoryAccessory, Price: 80, RequiredLevel: 6, Owned: true},
		{ID: "col1", Name: "Menthe", Category: types.CategoryColor, Price: 40, RequiredLevel: 2, Owned: true, Equipped: true},
		{ID: "col2", Name: "Lavande", Category: types.CategoryColor, Price: 40, RequiredLevel: 2, Owned: true},
		{ID: "shop1", Name: "Jardin", Category: types.CategoryBackground, Price: 70, RequiredLevel: 5},
	}
}

func TestPurchase(t *testing.T) {
	t.Run("success deducts coins and marks owned", func(t *testing.T) {
		items := testItems()
		p := types.Progress{Level: 5, Coins: 100}
		require.NoError(t, Purchase(items, "shop1", &p))
		assert.Equal(t, 30, p.Coins)
		assert.True(t, items[6].Owned)
	})

	t.Run("level gate", func(t *testing.T) {
		items := testItems()
		p := types.Progress{Level: 2, Coins: 100}
		assert.ErrorIs(t, Purchase(items, "shop1", &p), ErrLevelTooLow)
		assert.Equal(t, 100, p.Coins)
	})

	t.Run("coin gate", func(t *testing.T) {
		items := testItems()
		p := types.Progress{Level: 5, Coins: 10}
		assert.ErrorIs(t, Purchase(items, "shop1", &p), ErrNotEnoughCoins)
	})

	t.Run("already owned", func(t *testing.T) {
		items := testItems()
		p := types.Progress{Level: 5, Coins: 100}
		assert.ErrorIs(t, Purchase(items, "hat1", &p), ErrAlreadyOwned)
	})

	t.Run("unknown id", func(t *testing.T) {
		items := testItems()
		p := types.Progress{Level: 5, Coins: 100}
		assert.ErrorIs(t, Purchase(items, "nope", &p), ErrItemNotFound)
	})
}

func TestEquip(t *testing.T) {
	t.Run("exclusive category unequips sibling", func(t *testing.T) {
		items := testItems()
		require.NoError(t, Equip(items, "hat2"))
		assert.False(t, items[0].Equipped, "previous hat unequipped")
		assert.True(t, items[1].Equipped)
	})

	t.Run("accessories stack", func(t *testing.T) {
		items := testItems()
		require.NoError(t, Equip(items, "acc2"))
		assert.True(t, items[2].Equipped, "first accessory stays equipped")
		assert.True(t, items[3].Equipped)
	})

	t.Run("colors stack", func(t *testing.T) {
		items := testItems()
		require.NoError(t, Equip(items, "col2"))
		assert.True(t, items[4].Equipped)
		assert.True(t, items[5].Equipped)
	})

	t.Run("unowned item cannot be equipped", func(t *testing.T) {
		items := testItems()
		assert.ErrorIs(t, Equip(items, "shop1"), ErrNotOwned)
	})
}

func TestUnequip(t *testing.T) {
	items := testItems()
	require.NoError(t, Unequip(items, "hat1"))
	assert.False(t, items[0].Equipped)

	assert.ErrorIs(t, Unequip(items, "shop1"), ErrNotOwned)
	assert.ErrorIs(t, Unequip(items, "nope"), ErrItemNotFound)
}
