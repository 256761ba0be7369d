package effects

import (
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

const (
	nounDamage  = "damage"
	nounHealing = "healing"

	defaultCardDamage = "CARD_VALUE + POKER_HAND_RANK * 3"
	defaultCoinDamage = "HEADS_COUNT * 6 + LONGEST_STREAK * 2"
	defaultCardDot    = "CARD_VALUE/2 + intelligence/3"
	defaultCoinDot    = "HEADS_COUNT * 2 + intelligence/3"
	defaultDiceDot    = "1d4 + intelligence/2"
)

// resolved is a translated formula with its resolution prefix kept apart so
// instant and over-time parts can be compared
type resolved struct {
	prefix string
	text   string
}

func (r resolved) String() string {
	return r.prefix + r.text
}

// formatDamage emits instant damage, damage over time or both, followed by
// the save, critical and proc notes of the block
func (o *orchestrator) formatDamage(fc *formatContext) ([]spell.FormattedEffect, string) {
	dc := fc.spell.DamageConfig
	if dc == nil {
		return nil, ""
	}
	res := fc.spell.ResolutionOrDefault()

	pureDot := dc.DamageType == "dot" && !dc.HasDotEffect
	hasDot := dc.HasDotEffect || dc.DamageType == "dot"

	var instant *resolved
	if !pureDot {
		instant = o.instantDamage(res, dc)
	}

	var effects []spell.FormattedEffect
	verb := resolutionVerb(res)

	if hasDot {
		dot, per, durText := o.damageOverTime(res, dc)
		perRound := "Per " + per + " for " + durText
		switch {
		case instant == nil:
			effects = append(effects, effect("Damage Over Time", perRound, dot.String()+" "+dotSuffix(dc, per, durText)))
		case res != spell.ResolutionDice && instant.prefix == dot.prefix && instant.text == dot.text:
			effects = append(effects, effect("Instant Damage", verb,
				instant.String()+" (instant + DoT for "+durText+")"))
		default:
			effects = append(effects,
				effect("Instant Damage", verb, instant.String()),
				effect("Damage Over Time", perRound, dot.String()+" "+dotSuffix(dc, per, durText)))
		}
	} else if instant != nil {
		effects = append(effects, effect("Instant Damage", verb, instant.String()))
	}

	if s, ok := damageSave(dc); ok {
		effects = append(effects, s.record(nounDamage))
	}
	if rec, ok := criticalRecord(dc.CriticalHitConfig, nounDamage); ok {
		effects = append(effects, rec)
	}
	if rec, ok := fc.procRecord(dc.ChanceOnHitConfig); ok {
		effects = append(effects, rec)
	}

	return effects, damageTypeText(fc.spell)
}

// dotSuffix is the tail after an over-time formula. Progressive chains
// carry "over <duration>"; single formulas carry "per <tick> for
// <duration>".
func dotSuffix(dc *spell.DamageConfig, per, durText string) string {
	if dot := dc.DotConfig; dot != nil && dot.IsProgressiveDot && len(dot.ProgressiveStages) > 1 {
		return "over " + durText
	}
	return "per " + per + " for " + durText
}

func (o *orchestrator) instantDamage(res spell.Resolution, dc *spell.DamageConfig) *resolved {
	switch res {
	case spell.ResolutionCards:
		f := defaultCardDamage
		if dc.CardConfig != nil && dc.CardConfig.Formula != "" {
			f = dc.CardConfig.Formula
		} else if dc.Formula != "" {
			f = dc.Formula
		}
		return &resolved{resolutionPrefix(res, dc.CardConfig), o.translator.Translate(f, nounDamage)}

	case spell.ResolutionCoins:
		f := defaultCoinDamage
		if dc.CoinConfig != nil && dc.CoinConfig.Formula != "" {
			f = dc.CoinConfig.Formula
		} else if dc.Formula != "" {
			f = dc.Formula
		}
		return &resolved{resolutionPrefix(res, dc.CoinConfig), o.translator.Translate(f, nounDamage)}
	}

	if strings.TrimSpace(dc.Formula) == "" {
		return nil
	}
	return &resolved{text: o.translator.Translate(dc.Formula, nounDamage)}
}

// damageOverTime returns the over-time formula, the tick unit and the
// duration text
func (o *orchestrator) damageOverTime(res spell.Resolution, dc *spell.DamageConfig) (resolved, string, string) {
	dot := dc.DotConfig
	if dot == nil {
		dot = &spell.DotConfig{}
	}

	tick := orDefault(dot.TickFrequency, "round")
	durText := count(dot.Duration.IntOr(3), tick)

	cards := firstConfig(dot.CardConfig, dc.CardConfig)
	coins := firstConfig(dot.CoinConfig, dc.CoinConfig)

	prefix := ""
	switch res {
	case spell.ResolutionCards:
		prefix = resolutionPrefix(res, cards)
	case spell.ResolutionCoins:
		prefix = resolutionPrefix(res, coins)
	}

	if dot.IsProgressiveDot && len(dot.ProgressiveStages) > 0 {
		stages := make([]string, 0, len(dot.ProgressiveStages))
		for _, stage := range dot.ProgressiveStages {
			text := o.translator.Translate(stage.Formula, nounDamage)
			if stage.SpellEffect != "" {
				text += " (" + stage.SpellEffect + ")"
			}
			stages = append(stages, text)
		}
		return resolved{prefix, strings.Join(stages, " → ")}, tick, durText
	}

	var f string
	switch res {
	case spell.ResolutionCards:
		f = defaultCardDot
		if cards != nil && cards.Formula != "" {
			f = cards.Formula
		}
	case spell.ResolutionCoins:
		f = defaultCoinDot
		if coins != nil && coins.Formula != "" {
			f = coins.Formula
		}
	default:
		f = orDefault(dot.DotFormula, orDefault(dc.Formula, defaultDiceDot))
	}

	return resolved{prefix, o.translator.Translate(f, nounDamage)}, tick, durText
}

func firstConfig(configs ...*spell.FormulaConfig) *spell.FormulaConfig {
	for _, c := range configs {
		if c != nil {
			return c
		}
	}
	return nil
}

// damageTypeText reads "Fire damage" or "Fire & Frost damage"
func damageTypeText(cfg *spell.Config) string {
	var types []string
	if tc := cfg.TypeConfig; tc != nil {
		for _, t := range []string{tc.School, tc.SecondaryElement} {
			if t != "" {
				types = append(types, title(t))
			}
		}
	}
	if len(types) == 0 && cfg.DamageConfig != nil && cfg.DamageConfig.ElementType != "" {
		types = append(types, title(cfg.DamageConfig.ElementType))
	}
	if len(types) == 0 {
		for _, t := range cfg.DamageTypes {
			if t != "" {
				types = append(types, title(t))
			}
		}
	}
	if len(types) == 0 {
		return ""
	}
	return strings.Join(types, " & ") + " damage"
}
