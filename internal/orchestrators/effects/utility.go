package effects

import (
	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

func (o *orchestrator) formatUtility(fc *formatContext) ([]spell.FormattedEffect, string) {
	uc := fc.spell.UtilityConfig
	if uc == nil {
		return nil, ""
	}
	unit := orDefault(uc.DurationUnit, "minutes")

	var effects []spell.FormattedEffect
	for _, list := range [][]spell.UtilityEffect{uc.Effects, uc.SelectedEffects} {
		for _, e := range list {
			name := firstNonEmpty(e.Name, e.ID)
			if name == "" {
				continue
			}
			mechanics := ""
			if n := e.Duration.IntOr(0); n > 0 {
				mechanics = "for " + count(n, unit)
			}
			effects = append(effects, effect(title(name), e.Description, mechanics))
		}
	}

	if len(effects) > 0 && (!uc.DifficultyClass.IsZero() || uc.SavingThrow.Enabled) {
		ability := firstNonEmpty(uc.Ability, uc.SavingThrow.Ability, "spirit")
		effects = append(effects, effect("Saving Throw",
			title(ability)+" Save",
			"DC "+itoa(uc.DifficultyClass.IntOr(defaultSaveDC))))
	}

	header := title(orDefault(uc.UtilityType, "movement"))
	if n := firstSet(uc.DurationValue, uc.Duration).IntOr(0); n > 0 {
		header += ": " + concentration(count(n, unit), uc.Concentration)
	} else if uc.Concentration {
		header += ": Requires Concentration"
	}
	return effects, header
}
