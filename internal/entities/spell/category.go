package spell

// Category is an effect category tag
type Category string

// Effect categories
const (
	CategoryDamage         Category = "damage"
	CategoryHealing        Category = "healing"
	CategoryBuff           Category = "buff"
	CategoryDebuff         Category = "debuff"
	CategoryControl        Category = "control"
	CategoryUtility        Category = "utility"
	CategorySummoning      Category = "summoning"
	CategoryTransformation Category = "transformation"
	CategoryPurification   Category = "purification"
	CategoryRestoration    Category = "restoration"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryDamage,
	CategoryHealing,
	CategoryBuff,
	CategoryDebuff,
	CategoryControl,
	CategoryUtility,
	CategorySummoning,
	CategoryTransformation,
	CategoryPurification,
	CategoryRestoration,
}

// String returns the tag
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// HasEffect reports whether the category tag is active on the spell
func (c *Config) HasEffect(category Category) bool {
	if c == nil {
		return false
	}
	for _, tag := range c.EffectTypes {
		if tag == category {
			return true
		}
	}
	return false
}

// ResolutionOrDefault returns the spell's resolution, defaulting to dice
func (c *Config) ResolutionOrDefault() Resolution {
	if c == nil || c.Resolution == "" {
		return ResolutionDice
	}
	return c.Resolution
}
