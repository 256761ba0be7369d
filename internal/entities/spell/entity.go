package spell

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityType is the toolkit entity type of a spell document
const EntityType = "spell"

var _ core.Entity = (*Config)(nil)

// GetID returns the spell ID
func (c *Config) GetID() string {
	return c.ID
}

// GetType returns the toolkit entity type
func (c *Config) GetType() string {
	return EntityType
}
