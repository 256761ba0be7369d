package effects

import (
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

const descriptionLimit = 100

var controlSchemes = map[string]string{
	"verbal":     "Verbal",
	"mental":     "Mental",
	"empathic":   "Empathic",
	"autonomous": "Autonomous",
}

// transformation saves use the game's ability names
var transformationSaves = map[string]string{
	"constitution": "Constitution",
	"strength":     "Strength",
	"agility":      "Agility",
	"dexterity":    "Agility",
	"intelligence": "Intelligence",
	"spirit":       "Spirit",
	"wisdom":       "Spirit",
	"charisma":     "Charisma",
}

func (o *orchestrator) formatSummoning(fc *formatContext) ([]spell.FormattedEffect, string) {
	sc := fc.spell.SummoningConfig
	if sc == nil {
		return nil, ""
	}

	if len(sc.Creatures) == 0 {
		header := "Permanent"
		if sc.HasDuration != nil && *sc.HasDuration {
			header = concentration(count(sc.Duration.IntOr(10), orDefault(sc.DurationUnit, "minutes")), sc.Concentration)
		}
		return []spell.FormattedEffect{effect("Summoning", "No creatures selected", "")}, header
	}

	effects := make([]spell.FormattedEffect, 0, len(sc.Creatures))
	for i := range sc.Creatures {
		effects = append(effects, summonedCreature(sc, &sc.Creatures[i]))
	}

	header := "Multiple Creatures"
	if len(sc.Creatures) == 1 {
		header = "Summon " + orDefault(sc.Creatures[0].Name, "Creature")
	}
	return effects, header
}

func summonedCreature(sc *spell.SummoningConfig, c *spell.Creature) spell.FormattedEffect {
	cfg := c.Config
	if cfg == nil {
		cfg = &spell.CreatureConfig{}
	}

	var parts []string
	parts = append(parts, creatureKind(c, cfg.Quantity.IntOr(sc.Quantity.IntOr(1))))

	if control := firstNonEmpty(cfg.ControlType, sc.ControlType); control != "" {
		scheme, ok := controlSchemes[control]
		if !ok {
			scheme = capitalize(control)
		}
		controlRange := cfg.ControlRange
		if !controlRange.IsSet() {
			controlRange = sc.ControlRange
		}
		if controlRange.IsSet() {
			if controlRange.FloatOr(0) == 0 && !controlRange.IsFormula() {
				scheme += " (Unlimited)"
			} else {
				scheme += " (" + controlRange.String() + " ft)"
			}
		}
		parts = append(parts, scheme)
	}

	parts = append(parts, creatureDuration(cfg))
	parts = append(parts, creatureStats(c))

	return effect(orDefault(c.Name, "Creature"),
		truncate(c.Description, descriptionLimit),
		strings.Join(parts, ", "))
}

func creatureKind(c *spell.Creature, quantity int) string {
	kind := strings.TrimSpace(c.Size + " " + c.Type)
	if kind == "" {
		kind = "Creature"
	}
	if quantity > 1 {
		kind += " × " + itoa(quantity)
	}
	return kind
}

func creatureDuration(cfg *spell.CreatureConfig) string {
	if cfg.HasDuration == nil || !*cfg.HasDuration {
		return "Permanent"
	}
	text := count(cfg.Duration.IntOr(10), orDefault(cfg.DurationUnit, "minutes"))
	if cfg.Concentration {
		text += " (C)"
	}
	return text
}

func creatureStats(c *spell.Creature) string {
	stats := c.Stats
	if stats == nil {
		stats = &spell.CreatureStats{}
	}
	hp := firstSet(stats.MaxHP, stats.HP).StringOr("Unknown")
	ac := firstSet(stats.ArmorClass, stats.Armor).StringOr("Unknown")
	speed := stats.Speed.StringOr("30")
	return "HP: " + hp + ", AC: " + ac + ", Speed: " + speed + " ft"
}

func (o *orchestrator) formatTransformation(fc *formatContext) ([]spell.FormattedEffect, string) {
	tc := fc.spell.TransformationConfig
	if tc == nil {
		return nil, ""
	}

	target := "Self"
	switch tc.TargetType {
	case "", "self":
	case "willing":
		target = "Willing Target"
	default:
		target = "Unwilling Target"
	}
	header := target + ", " + concentration(count(tc.Duration.IntOr(10), orDefault(tc.DurationUnit, "minutes")), tc.Concentration)

	c := tc.SelectedCreature
	if c == nil {
		return []spell.FormattedEffect{effect("Transformation", "No transformation target selected", "")}, header
	}

	parts := []string{creatureKind(c, 1), creatureStats(c)}
	if target == "Unwilling Target" {
		ability, ok := transformationSaves[strings.ToLower(tc.SaveType)]
		if !ok {
			ability = "Constitution"
		}
		parts = append(parts, "DC "+itoa(tc.DifficultyClass.IntOr(defaultSaveDC))+" "+ability)
	}

	effects := []spell.FormattedEffect{
		effect(orDefault(c.Name, "Creature"), truncate(c.Description, descriptionLimit), strings.Join(parts, ", ")),
	}

	if len(tc.GrantedAbilities) > 0 {
		names := make([]string, 0, len(tc.GrantedAbilities))
		for _, a := range tc.GrantedAbilities {
			if name := firstNonEmpty(a.Name, a.ID); name != "" {
				names = append(names, title(name))
			}
		}
		if len(names) > 0 {
			effects = append(effects, effect("Granted Abilities", strings.Join(names, ", "), ""))
		}
	}

	return effects, header
}
