package effects

import (
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

// per-round formula lists in display order
var channelingScales = []struct {
	key   string
	label string
	noun  string
	heal  bool
}{
	{key: "damage", label: "Damage Scaling", noun: nounDamage},
	{key: "healing", label: "Healing Scaling", noun: nounHealing, heal: true},
	{key: "dot_damage", label: "DoT Scaling", noun: nounDamage},
	{key: "hot_healing", label: "HoT Scaling", noun: nounHealing, heal: true},
}

var costTriggers = map[string]string{
	"per_second": "second",
	"per_turn":   "turn",
}

// formatChanneling renders a channeled spell's limits and its per-round
// formulas. Spells with an explicit non-channeled type are skipped.
func (o *orchestrator) formatChanneling(fc *formatContext) []spell.FormattedEffect {
	cc := fc.spell.ChannelingConfig
	if cc == nil {
		return nil
	}
	if fc.spell.SpellType != "" && !strings.EqualFold(fc.spell.SpellType, "channeled") {
		return nil
	}

	var effects []spell.FormattedEffect
	if cc.Type != "" {
		effects = append(effects, effect("Channel Type", title(cc.Type), ""))
	}
	if n := cc.MaxDuration.IntOr(0); n > 0 {
		effects = append(effects, effect("Max Duration", count(n, orDefault(cc.DurationUnit, "rounds")), ""))
	}
	if !cc.CostValue.IsZero() && cc.CostType != "" {
		per, ok := costTriggers[cc.CostTrigger]
		if !ok {
			per = "round"
		}
		effects = append(effects, effect("Cost", cc.CostValue.String()+" "+cc.CostType+" per "+per, ""))
	}
	if cc.RequiresConcentration {
		effects = append(effects, effect("Concentration",
			"DC "+itoa(cc.ConcentrationDC.IntOr(10))+" "+title(orDefault(cc.ConcentrationType, "constitution"))+" check when taking damage",
			""))
	}

	for _, scale := range channelingScales {
		rounds := cc.PerRoundFormulas[scale.key]
		if len(rounds) == 0 {
			continue
		}
		name := fc.channelingElement(scale.heal) + " " + scale.label
		for i, r := range rounds {
			text := "Round " + itoa(r.Round.IntOr(i+1)) + ": " + o.translator.Translate(r.Formula, scale.noun)
			effects = append(effects, effect(name, text, r.Description))
		}
	}

	switch cc.MovementRestriction {
	case "none":
		effects = append(effects, effect("Movement", "Unrestricted", ""))
	case "reduced":
		effects = append(effects, effect("Movement", "Reduced by "+cc.MovementReductionAmount.StringOr("50")+"%", ""))
	case "stationary":
		effects = append(effects, effect("Movement", "Cannot move while channeling", ""))
	}

	if cc.InterruptionEffect != "" {
		effects = append(effects, effect("On Interruption", cc.InterruptionEffect, ""))
	}
	if cc.CompletionEffect != "" {
		effects = append(effects, effect("On Completion", cc.CompletionEffect, ""))
	}
	return effects
}

// channelingElement names the energy behind the per-round formulas:
// Nature or Holy for healing, the first damage type otherwise.
func (fc *formatContext) channelingElement(heal bool) string {
	if heal {
		if strings.EqualFold(fc.spell.School, "nature") {
			return "Nature"
		}
		for _, t := range fc.spell.DamageTypes {
			if strings.EqualFold(t, "nature") {
				return "Nature"
			}
		}
		return "Holy"
	}
	if len(fc.spell.DamageTypes) > 0 {
		return capitalize(fc.spell.DamageTypes[0])
	}
	return "Physical"
}
