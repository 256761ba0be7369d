package effects

import (
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

const defaultSaveDC = 15

var saveOutcomes = map[string]string{
	"negates":          "negated on save",
	"halves_duration":  "duration halved on save",
	"halves_effects":   "effects halved on save",
	"reduces_level":    "level reduced on save",
	"ends_early":       "ends next turn on save",
	"resists_commands": "can resist commands on save",
	"broken":           "broken on save",
	"overcome":         "overcome on save",
}

// save is a saving throw attached to an effect block
type save struct {
	ability        string
	dc             int
	outcome        string
	partial        bool
	partialFormula string
}

// outcomeText phrases what a successful save does. Status saves default to
// "overcome", everything else to "negated".
func (s *save) outcomeText(kind string) string {
	if s.partial {
		return orDefault(s.partialFormula, "damage/2") + " on save"
	}
	if s.outcome != "" {
		if text, ok := saveOutcomes[s.outcome]; ok {
			return text
		}
		return "modified on save"
	}
	if kind == "status" {
		return saveOutcomes["overcome"]
	}
	return saveOutcomes["negates"]
}

func (s *save) record(kind string) spell.FormattedEffect {
	return effect("Saving Throw",
		title(s.ability)+" save DC "+itoa(s.dc),
		s.outcomeText(kind))
}

// damageSave prefers the structured save config over the legacy flat fields
func damageSave(dc *spell.DamageConfig) (*save, bool) {
	if sc := dc.SavingThrowConfig; sc != nil && sc.Enabled {
		return &save{
			ability:        firstNonEmpty(sc.SavingThrowType, sc.SavingThrow, "constitution"),
			dc:             sc.DifficultyClass.IntOr(defaultSaveDC),
			outcome:        sc.SaveOutcome,
			partial:        sc.PartialEffect,
			partialFormula: sc.PartialEffectFormula,
		}, true
	}

	if !dc.SavingThrow.Enabled && dc.SavingThrowType == "" {
		return nil, false
	}
	return &save{
		ability:        firstNonEmpty(dc.SavingThrowType, dc.SavingThrow.Ability, "constitution"),
		dc:             dc.DifficultyClass.IntOr(dc.SavingThrow.Difficulty.IntOr(defaultSaveDC)),
		outcome:        dc.SavingThrow.OnSuccess,
		partial:        dc.PartialEffect,
		partialFormula: dc.PartialEffectFormula,
	}, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
