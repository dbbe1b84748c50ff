package tile

import "fmt"

// ResourceCategory classifies resources by their strategic role.
type ResourceCategory uint8

const (
	// CategoryBonus marks common resources that boost tile yields.
	CategoryBonus ResourceCategory = iota
	// CategoryStrategic marks resources required by advanced units and
	// buildings.
	CategoryStrategic
	// CategoryLuxury marks rare resources providing happiness and trade
	// value.
	CategoryLuxury
)

var categoryNames = [3]string{"Bonus", "Strategic", "Luxury"}

// String returns the stable name of the category.
func (c ResourceCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("ResourceCategory(%d)", uint8(c))
}

// MarshalText encodes the category as its stable name.
func (c ResourceCategory) MarshalText() ([]byte, error) {
	if int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("invalid resource category %d", uint8(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText decodes a category from its stable name.
func (c *ResourceCategory) UnmarshalText(text []byte) error {
	for i, n := range categoryNames {
		if n == string(text) {
			*c = ResourceCategory(i)
			return nil
		}
	}
	return fmt.Errorf("unknown resource category %q", string(text))
}

// Resource is a collectible resource on a tile. Each resource grants a
// base yield bonus, and a larger bonus once a matching improvement is
// built on the tile.
type Resource uint8

const (
	// Bonus resources.
	ResourceCattle Resource = iota
	ResourceSheep
	ResourceFish
	ResourceStone
	ResourceWheat
	ResourceBananas
	ResourceDeer

	// Strategic resources.
	ResourceHorses
	ResourceIron
	ResourceCoal
	ResourceOil
	ResourceAluminum
	ResourceUranium

	// Luxury resources.
	ResourceCitrus
	ResourceCotton
	ResourceCopper
	ResourceGold
	ResourceCrab
	ResourceWhales
	ResourceTurtles
	ResourceOlives
	ResourceWine
	ResourceSilk
	ResourceSpices
	ResourceGems
	ResourceMarble
	ResourceIvory
)

// AllResources lists every resource kind, in declaration order.
var AllResources = [27]Resource{
	ResourceCattle, ResourceSheep, ResourceFish, ResourceStone,
	ResourceWheat, ResourceBananas, ResourceDeer,
	ResourceHorses, ResourceIron, ResourceCoal, ResourceOil,
	ResourceAluminum, ResourceUranium,
	ResourceCitrus, ResourceCotton, ResourceCopper, ResourceGold,
	ResourceCrab, ResourceWhales, ResourceTurtles, ResourceOlives,
	ResourceWine, ResourceSilk, ResourceSpices, ResourceGems,
	ResourceMarble, ResourceIvory,
}

var resourceNames = [27]string{
	"Cattle", "Sheep", "Fish", "Stone", "Wheat", "Bananas", "Deer",
	"Horses", "Iron", "Coal", "Oil", "Aluminum", "Uranium",
	"Citrus", "Cotton", "Copper", "Gold", "Crab", "Whales", "Turtles",
	"Olives", "Wine", "Silk", "Spices", "Gems", "Marble", "Ivory",
}

// Category returns the category of this resource.
func (r Resource) Category() ResourceCategory {
	switch {
	case r <= ResourceDeer:
		return CategoryBonus
	case r <= ResourceUranium:
		return CategoryStrategic
	default:
		return CategoryLuxury
	}
}

// IsBonus reports whether this is a bonus resource.
func (r Resource) IsBonus() bool { return r.Category() == CategoryBonus }

// IsStrategic reports whether this is a strategic resource.
func (r Resource) IsStrategic() bool { return r.Category() == CategoryStrategic }

// IsLuxury reports whether this is a luxury resource.
func (r Resource) IsLuxury() bool { return r.Category() == CategoryLuxury }

// FoodBonus returns the unimproved food bonus of this resource.
func (r Resource) FoodBonus() int {
	switch r {
	case ResourceFish, ResourceWheat, ResourceBananas, ResourceDeer,
		ResourceCitrus, ResourceCrab, ResourceWhales, ResourceTurtles:
		return 1
	default:
		return 0
	}
}

// ProductionBonus returns the unimproved production bonus of this
// resource.
func (r Resource) ProductionBonus() int {
	switch r {
	case ResourceCattle, ResourceSheep, ResourceStone,
		ResourceHorses, ResourceIron, ResourceCoal, ResourceOil,
		ResourceAluminum, ResourceUranium,
		ResourceOlives, ResourceMarble, ResourceIvory:
		return 1
	default:
		return 0
	}
}

// GoldBonus returns the unimproved gold bonus of this resource.
func (r Resource) GoldBonus() int {
	switch r {
	case ResourceGems:
		return 3
	case ResourceCotton, ResourceCopper, ResourceGold,
		ResourceWine, ResourceSilk, ResourceSpices:
		return 2
	case ResourceCitrus, ResourceWhales, ResourceTurtles,
		ResourceOlives, ResourceMarble, ResourceIvory:
		return 1
	default:
		return 0
	}
}

// ImprovedFoodBonus returns the food bonus once a matching improvement
// is built on the tile.
func (r Resource) ImprovedFoodBonus() int {
	switch r {
	case ResourceFish, ResourceWheat, ResourceBananas, ResourceDeer,
		ResourceCrab, ResourceWhales, ResourceTurtles:
		return 2
	case ResourceCitrus:
		return 1
	default:
		return 0
	}
}

// ImprovedProductionBonus returns the production bonus once a matching
// improvement is built on the tile.
func (r Resource) ImprovedProductionBonus() int {
	switch r {
	case ResourceCattle, ResourceSheep, ResourceStone,
		ResourceHorses, ResourceIron, ResourceCoal, ResourceOil,
		ResourceAluminum, ResourceUranium,
		ResourceMarble, ResourceIvory:
		return 2
	case ResourceCopper, ResourceOlives:
		return 1
	default:
		return 0
	}
}

// ImprovedGoldBonus returns the gold bonus once a matching improvement
// is built on the tile.
func (r Resource) ImprovedGoldBonus() int {
	switch r {
	case ResourceCotton, ResourceWine, ResourceSilk, ResourceSpices, ResourceGems:
		return 3
	case ResourceCitrus, ResourceCopper, ResourceGold, ResourceOlives:
		return 2
	case ResourceWhales, ResourceTurtles, ResourceMarble, ResourceIvory:
		return 1
	default:
		return 0
	}
}

// String returns the stable name of the resource kind.
func (r Resource) String() string {
	if int(r) < len(resourceNames) {
		return resourceNames[r]
	}
	return fmt.Sprintf("Resource(%d)", uint8(r))
}

// ParseResource resolves a resource name produced by String.
func ParseResource(name string) (Resource, error) {
	for i, n := range resourceNames {
		if n == name {
			return Resource(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}

// MarshalText encodes the resource as its stable name.
func (r Resource) MarshalText() ([]byte, error) {
	if int(r) >= len(resourceNames) {
		return nil, fmt.Errorf("invalid resource %d", uint8(r))
	}
	return []byte(resourceNames[r]), nil
}

// UnmarshalText decodes a resource from its stable name.
func (r *Resource) UnmarshalText(text []byte) error {
	parsed, err := ParseResource(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
