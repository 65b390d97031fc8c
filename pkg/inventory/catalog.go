// Package inventory implements the companion's cosmetic shop: the default
// item catalog and the purchase/equip rules.
package inventory

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mochihq/mochi/pkg/types"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Items []catalogItem `yaml:"items"`
}

type catalogItem struct {
	Name          string `yaml:"name"`
	Category      string `yaml:"category"`
	Price         int    `yaml:"price"`
	RequiredLevel int    `yaml:"required_level"`
}

// DefaultItems returns the seed inventory written on first run. Names,
// categories and prices come from the embedded catalog; ids are generated
// fresh so every installation gets its own.
func DefaultItems() []types.Item {
	var cf catalogFile
	if err := yaml.Unmarshal(catalogYAML, &cf); err != nil {
		// The catalog is compiled in; failing to parse it is a build defect.
		panic(fmt.Errorf("inventory: embedded catalog: %w", err))
	}
	items := make([]types.Item, 0, len(cf.Items))
	for _, ci := range cf.Items {
		items = append(items, types.Item{
			ID:            uuid.NewString(),
			Name:          ci.Name,
			Category:      types.ParseItemCategory(ci.Category),
			Price:         ci.Price,
			RequiredLevel: ci.RequiredLevel,
		})
	}
	return items
}
