package inventory

import (
	"errors"
	"fmt"

	"github.com/mochihq/mochi/pkg/types"
)

var (
	ErrItemNotFound   = errors.New("inventory: item not found")
	ErrAlreadyOwned   = errors.New("inventory: item already owned")
	ErrNotOwned       = errors.New("inventory: item not owned")
	ErrLevelTooLow    = errors.New("inventory: level requirement not met")
	ErrNotEnoughCoins = errors.New("inventory: not enough coins")
)

// find locates an item by identity. Linear scan is fine at the expected
// cardinality (a few dozen items).
func find(items []types.Item, id string) (*types.Item, error) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// Purchase buys the item for the user, deducting its price from the
// progress coin balance. The caller persists both collections afterwards.
func Purchase(items []types.Item, id string, p *types.Progress) error {
	it, err := find(items, id)
	if err != nil {
		return err
	}
	if it.Owned {
		return ErrAlreadyOwned
	}
	if p.Level < it.RequiredLevel {
		return ErrLevelTooLow
	}
	if p.Coins < it.Price {
		return ErrNotEnoughCoins
	}
	p.Coins -= it.Price
	it.Owned = true
	return nil
}

// Equip equips an owned item. For exclusive categories every other item of
// the same category is unequipped; accessories and colors stack.
func Equip(items []types.Item, id string) error {
	it, err := find(items, id)
	if err != nil {
		return err
	}
	if !it.Owned {
		return ErrNotOwned
	}
	if it.Category.Exclusive() {
		for i := range items {
			if items[i].Category == it.Category {
				items[i].Equipped = false
			}
		}
	}
	it.Equipped = true
	return nil
}

// Unequip removes an equipped item.
func Unequip(items []types.Item, id string) error {
	it, err := find(items, id)
	if err != nil {
		return err
	}
	if !it.Owned {
		return ErrNotOwned
	}
	it.Equipped = false
	return nil
}
