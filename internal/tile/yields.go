package tile

// Yields is the combined economic output of a tile. Food, production,
// and gold derive from the terrain/feature/resource combination and are
// never negative; science, culture, and faith come from buildings and
// specialists, so terrain-derived yields always carry zero there.
type Yields struct {
	Food       int `json:"food"`
	Production int `json:"production"`
	Gold       int `json:"gold"`
	Science    int `json:"science"`
	Culture    int `json:"culture"`
	Faith      int `json:"faith"`
}

// NewYields builds a Yields with the given food, production, and gold.
func NewYields(food, production, gold int) Yields {
	return Yields{Food: food, Production: production, Gold: gold}
}

// Calculate derives a tile's yields from its terrain, optional feature,
// and optional (unimproved) resource. Negative intermediate values,
// such as Jungle's -1 production, can suppress but never invert a
// channel: food, production, and gold are clamped to zero at the end.
//
// hasRiver is reserved for a future river yield bonus and does not
// currently affect the result.
func Calculate(terrain Terrain, feature *Feature, resource *Resource, hasRiver bool) Yields {
	y := Yields{
		Food:       terrain.BaseFood(),
		Production: terrain.BaseProduction(),
		Gold:       terrain.BaseGold(),
	}

	if feature != nil {
		y.Food += feature.FoodModifier()
		y.Production += feature.ProductionModifier()
		y.Gold += feature.GoldModifier()
	}

	if resource != nil {
		y.Food += resource.FoodBonus()
		y.Production += resource.ProductionBonus()
		y.Gold += resource.GoldBonus()
	}

	return y.clamped()
}

// CalculateImproved is Calculate using the resource's improved bonus
// values, for tiles whose resource is worked by a matching improvement.
func CalculateImproved(terrain Terrain, feature *Feature, resource *Resource, hasRiver bool) Yields {
	y := Yields{
		Food:       terrain.BaseFood(),
		Production: terrain.BaseProduction(),
		Gold:       terrain.BaseGold(),
	}

	if feature != nil {
		y.Food += feature.FoodModifier()
		y.Production += feature.ProductionModifier()
		y.Gold += feature.GoldModifier()
	}

	if resource != nil {
		y.Food += resource.ImprovedFoodBonus()
		y.Production += resource.ImprovedProductionBonus()
		y.Gold += resource.ImprovedGoldBonus()
	}

	return y.clamped()
}

func (y Yields) clamped() Yields {
	if y.Food < 0 {
		y.Food = 0
	}
	if y.Production < 0 {
		y.Production = 0
	}
	if y.Gold < 0 {
		y.Gold = 0
	}
	return y
}

// Add returns the component-wise sum of two yield vectors.
func (y Yields) Add(other Yields) Yields {
	return Yields{
		Food:       y.Food + other.Food,
		Production: y.Production + other.Production,
		Gold:       y.Gold + other.Gold,
		Science:    y.Science + other.Science,
		Culture:    y.Culture + other.Culture,
		Faith:      y.Faith + other.Faith,
	}
}

// Total returns the sum of all six channels, a rough tile quality score.
func (y Yields) Total() int {
	return y.Food + y.Production + y.Gold + y.Science + y.Culture + y.Faith
}

// IsEmpty reports whether every channel is zero.
func (y Yields) IsEmpty() bool {
	return y == Yields{}
}
