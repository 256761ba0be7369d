package spell

import "strings"

var legacySaveAbilities = map[string]string{
	"dexterity": "agility",
	"wisdom":    "spirit",
}

// Normalize folds legacy field aliases into their canonical fields so that
// formatters only read one shape. It returns a normalized copy and leaves
// cfg untouched; sub-configs are copied before they are rewritten, and
// unchanged ones are shared. Normalizing a normalized config is a no-op.
func Normalize(cfg *Config) *Config {
	if cfg == nil {
		return nil
	}

	out := *cfg
	c := &out

	if len(c.EffectTypes) == 0 && c.EffectType != "" {
		c.EffectTypes = []Category{c.EffectType}
	}
	c.EffectType = ""

	if c.SummoningConfig == nil {
		c.SummoningConfig = c.SummonConfig
	}
	c.SummonConfig = nil

	if c.TransformationConfig == nil {
		c.TransformationConfig = c.TransformConfig
	}
	c.TransformConfig = nil

	normalizeDamage(c)
	normalizeHealing(c)

	if c.ControlConfig != nil {
		t := strings.ToLower(c.ControlConfig.SavingThrowType)
		if canonical, ok := legacySaveAbilities[t]; ok {
			control := *c.ControlConfig
			control.SavingThrowType = canonical
			c.ControlConfig = &control
		}
	}

	return c
}

func normalizeDamage(cfg *Config) {
	if cfg.DamageConfig != nil {
		dc := *cfg.DamageConfig
		cfg.DamageConfig = &dc
	}

	if cfg.PrimaryDamage != nil && cfg.PrimaryDamage.Dice != "" {
		if cfg.DamageConfig == nil {
			cfg.DamageConfig = &DamageConfig{}
		}
		if cfg.DamageConfig.Formula == "" {
			cfg.DamageConfig.Formula = joinDiceAndFlat(cfg.PrimaryDamage)
		}
	}
	cfg.PrimaryDamage = nil

	dc := cfg.DamageConfig
	if dc == nil {
		return
	}

	if dc.CardConfig == nil {
		dc.CardConfig = cfg.CardConfig
	}
	if dc.CoinConfig == nil {
		dc.CoinConfig = cfg.CoinConfig
	}
	if cfg.DiceConfig != nil && cfg.DiceConfig.Formula != "" && dc.Formula == "" {
		dc.Formula = cfg.DiceConfig.Formula
	}

	if dc.DotConfig != nil && dc.DotConfig.DotFormula == "" {
		dot := *dc.DotConfig
		dot.DotFormula = dc.Formula
		dc.DotConfig = &dot
	}
}

func normalizeHealing(cfg *Config) {
	if cfg.HealingConfig != nil {
		hc := *cfg.HealingConfig
		cfg.HealingConfig = &hc
	}

	if cfg.Healing != nil && cfg.Healing.Dice != "" {
		if cfg.HealingConfig == nil {
			cfg.HealingConfig = &HealingConfig{}
		}
		if cfg.HealingConfig.Formula == "" {
			cfg.HealingConfig.Formula = joinDiceAndFlat(cfg.Healing)
		}
	}
	cfg.Healing = nil

	hc := cfg.HealingConfig
	if hc == nil {
		cfg.HealingCoinConfig = nil
		cfg.HealingCardConfig = nil
		return
	}

	if hc.CoinConfig == nil {
		hc.CoinConfig = cfg.HealingCoinConfig
	}
	if hc.CardConfig == nil {
		hc.CardConfig = cfg.HealingCardConfig
	}
	cfg.HealingCoinConfig = nil
	cfg.HealingCardConfig = nil

	if hc.HotConfig != nil {
		if !hc.HotDuration.IsSet() {
			hc.HotDuration = hc.HotConfig.Duration
		}
		if hc.HotFormula == "" {
			hc.HotFormula = hc.HotConfig.TickFormula
		}
		hc.HotConfig = nil
	}
}

func joinDiceAndFlat(d *DiceAndFlat) string {
	if d.Flat.IsFormula() || d.Flat.FloatOr(0) > 0 {
		return d.Dice + " + " + d.Flat.String()
	}
	return d.Dice
}
