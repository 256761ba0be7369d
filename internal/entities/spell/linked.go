package spell

import "sort"

// LinkedSpellIDs returns the IDs of other spells this spell references
// through procs and form mechanics, sorted and without duplicates
func LinkedSpellIDs(c *Config) []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	add := func(id string) {
		if id != "" && id != c.ID {
			seen[id] = struct{}{}
		}
	}

	procs := []*ChanceOnHitConfig{c.ChanceOnHitConfig}
	if c.DamageConfig != nil {
		procs = append(procs, c.DamageConfig.ChanceOnHitConfig)
	}
	if c.HealingConfig != nil {
		procs = append(procs, c.HealingConfig.ChanceOnHitConfig)
	}
	for _, p := range procs {
		if p != nil {
			add(p.SpellEffect)
		}
	}

	mechanics := make([]*MechanicsConfig, 0, len(c.MechanicsConfig)+len(c.EffectMechanicsConfigs))
	for i := range c.MechanicsConfig {
		mechanics = append(mechanics, &c.MechanicsConfig[i])
	}
	for _, m := range c.EffectMechanicsConfigs {
		mechanics = append(mechanics, m)
	}
	for _, m := range mechanics {
		if m == nil {
			continue
		}
		if m.ProcOptions != nil {
			add(m.ProcOptions.SpellID)
		}
		if m.FormOptions != nil {
			add(m.FormOptions.FormSpellID)
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
