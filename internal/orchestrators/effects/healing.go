package effects

import (
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

const (
	defaultCardHealing = "CARD_VALUE + POKER_HAND_RANK * 3"
	defaultCoinHealing = "HEADS_COUNT * 6 + LONGEST_STREAK * 2"
)

// formatHealing emits direct healing, healing over time or a shield, any
// combined extras, then the critical and proc notes
func (o *orchestrator) formatHealing(fc *formatContext) ([]spell.FormattedEffect, string) {
	hc := fc.spell.HealingConfig
	if hc == nil {
		return nil, ""
	}
	res := fc.spell.ResolutionOrDefault()

	var effects []spell.FormattedEffect
	switch hc.HealingType {
	case "shield":
		effects = append(effects, o.shield(res, hc)...)
	case "hot":
		if text := o.healOverTime(res, hc); text != "" {
			effects = append(effects, effect("Healing Over Time", hotPerRound(hc), text))
		}
	default:
		if text := o.directHealing(res, hc); text != "" {
			effects = append(effects, effect("Instant Healing", resolutionVerb(res), text))
		}
	}

	if hc.HasHotEffect && hc.HealingType != "hot" && hc.HotFormula != "" {
		effects = append(effects, effect("Healing Over Time", hotPerRound(hc),
			o.translator.Translate(hc.HotFormula, nounHealing)+" hit points restored"))
	}
	if hc.HasShieldEffect && hc.HealingType != "shield" && hc.ShieldFormula != "" {
		effects = append(effects, effect("Shield Absorption",
			"For "+count(hc.ShieldDuration.IntOr(3), "round"),
			o.translator.Translate(hc.ShieldFormula, nounHealing)+" absorption"))
	}

	if rec, ok := criticalRecord(hc.CriticalHitConfig, nounHealing); ok {
		effects = append(effects, rec)
	}
	if rec, ok := fc.procRecord(hc.ChanceOnHitConfig); ok {
		effects = append(effects, rec)
	}

	return effects, ""
}

func hotPerRound(hc *spell.HealingConfig) string {
	tick := orDefault(hc.HotTickType, "round")
	return "Per " + tick + " for " + count(hc.HotDuration.IntOr(3), tick)
}

// resolvedFormula picks the resolution-specific formula. Card and coin
// configs only count when they carry a formula.
func resolvedFormula(res spell.Resolution, cards, coins *spell.FormulaConfig, dice string) (string, *spell.FormulaConfig) {
	switch {
	case res == spell.ResolutionCards && cards != nil && cards.Formula != "":
		return cards.Formula, cards
	case res == spell.ResolutionCoins && coins != nil && coins.Formula != "":
		return coins.Formula, coins
	}
	return dice, nil
}

func (o *orchestrator) directHealing(res spell.Resolution, hc *spell.HealingConfig) string {
	f, src := resolvedFormula(res, hc.CardConfig, hc.CoinConfig, hc.Formula)
	if src != nil {
		return resolutionPrefix(res, src) + o.translator.Translate(f, nounHealing)
	}

	if strings.TrimSpace(f) == "" {
		switch res {
		case spell.ResolutionCards:
			f = defaultCardHealing
		case spell.ResolutionCoins:
			f = defaultCoinHealing
		default:
			return ""
		}
		return resolutionPrefix(res, nil) + o.translator.Translate(f, nounHealing)
	}
	return o.translator.Translate(f, nounHealing)
}

func (o *orchestrator) healOverTime(res spell.Resolution, hc *spell.HealingConfig) string {
	f, src := resolvedFormula(res, hc.HotCardConfig, hc.HotCoinConfig, hc.HotFormula)
	prefix := ""
	if src != nil {
		prefix = resolutionPrefix(res, src)
	}

	tick := orDefault(hc.HotTickType, "round")

	if hc.IsProgressiveHot && len(hc.HotProgressiveStages) > 0 {
		label := tickLabel(tick)
		stages := make([]string, 0, len(hc.HotProgressiveStages))
		for i, stage := range hc.HotProgressiveStages {
			stages = append(stages, label+" "+itoa(stage.Turn.IntOr(i+1))+": "+
				prefix+o.translator.Translate(stage.Formula, nounHealing))
		}
		return strings.Join(stages, " → ")
	}

	if strings.TrimSpace(f) == "" {
		return ""
	}
	return prefix + o.translator.Translate(f, nounHealing) +
		" per " + tick + " for " + count(hc.HotDuration.IntOr(3), tick)
}

func tickLabel(tick string) string {
	switch tick {
	case "round":
		return "Round"
	case "turn":
		return "Turn"
	}
	return capitalize(tick)
}

var shieldTypes = map[string]string{
	"physical": "Physical",
	"magical":  "Magical",
}

func (o *orchestrator) shield(res spell.Resolution, hc *spell.HealingConfig) []spell.FormattedEffect {
	f, src := resolvedFormula(res, hc.ShieldCardConfig, hc.ShieldCoinConfig, hc.ShieldFormula)
	if strings.TrimSpace(f) == "" {
		return nil
	}
	prefix := ""
	if src != nil {
		prefix = resolutionPrefix(res, src)
	}

	text := prefix + o.translator.Translate(f, nounHealing) + " absorption for " +
		count(hc.ShieldDuration.IntOr(3), "round")

	effects := []spell.FormattedEffect{effect("Shield Absorption", "Absorbs damage", text)}

	var bullets []string
	if types := orDefault(hc.ShieldDamageTypes, "all"); types != "all" {
		name, ok := shieldTypes[types]
		if !ok {
			name = capitalize(types)
		}
		bullets = append(bullets, name+" only")
	}
	if hc.ShieldOverflow == "convert_to_healing" {
		bullets = append(bullets, "Excess → Healing")
	}
	if hc.ShieldBreakBehavior == "shatter" {
		bullets = append(bullets, "Shatters")
	} else {
		bullets = append(bullets, "Fades")
	}

	for _, b := range bullets {
		effects = append(effects, effect("Shield Property", b, "Special shield behavior"))
	}
	return effects
}
