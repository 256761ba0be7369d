package effects

import (
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

var cardCritRules = map[string]string{
	"face_cards":    "Face Cards (J,Q,K)",
	"aces":          "Aces",
	"specific_suit": "Specific Suit",
	"red_cards":     "Red Cards",
	"black_cards":   "Black Cards",
}

var coinCritRules = map[string]string{
	"all_heads": "All Heads",
	"all_tails": "All Tails",
	"sequence":  "Specific Sequence",
	"majority":  "Majority",
}

var explodingTypes = map[string]string{
	"reroll_add":   "exploding dice",
	"double_value": "double max values",
	"add_max":      "add max on max",
}

// criticalText phrases what a critical result does. It returns "" when the
// config is disabled.
func criticalText(c *spell.CriticalHitConfig) string {
	if c == nil || !c.Enabled {
		return ""
	}

	if c.CritOnlyEffect {
		if len(c.CritEffects) > 0 {
			return "Effect only: " + capitalizedList(c.CritEffects)
		}
		return "Effect only on critical hit"
	}

	multiplier := c.CritMultiplier.StringOr("2")

	var b strings.Builder
	switch c.CritType {
	case "cards":
		rule, ok := cardCritRules[c.CardCritRule]
		if !ok {
			rule = "Face Cards"
		}
		switch c.CardCritResolution {
		case "draw_add":
			b.WriteString(rule + ": " + multiplier + "x damage + draw " + c.ExtraCardDraw.StringOr("1") + " extra cards")
		case "multiply_value":
			b.WriteString(rule + ": multiply card values by " + multiplier)
		default:
			b.WriteString(rule + ": " + multiplier + "x damage")
		}

	case "coins":
		rule, ok := coinCritRules[c.CoinCritRule]
		if !ok {
			rule = "All Heads"
		}
		head := rule + " (" + c.CoinCount.StringOr("3") + " coins): "
		switch c.CoinCritResolution {
		case "flip_add":
			b.WriteString(head + multiplier + "x damage + flip " + c.ExtraCoinFlips.StringOr("1") + " extra coins")
		case "multiply_value":
			b.WriteString(head + "multiply heads by " + multiplier)
		default:
			b.WriteString(head + multiplier + "x damage")
		}

	default:
		b.WriteString("Max roll: " + multiplier + "x damage")
	}

	if c.ExtraDice != "" {
		b.WriteString(" + " + c.ExtraDice)
	}

	if c.ExplodingDice {
		text, ok := explodingTypes[c.ExplodingDiceType]
		if !ok {
			text = "exploding"
		}
		b.WriteString(" (" + text + ")")
	}

	if len(c.CritEffects) > 0 {
		b.WriteString(" + " + capitalizedList(c.CritEffects))
	}

	return b.String()
}

func capitalizedList(names []string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, capitalize(n))
	}
	return strings.Join(out, ", ")
}

// criticalRecord is the critical note of a damage or healing block
func criticalRecord(c *spell.CriticalHitConfig, noun string) (spell.FormattedEffect, bool) {
	text := criticalText(c)
	if text == "" {
		return spell.FormattedEffect{}, false
	}
	if noun == "healing" {
		return effect("Critical Healing", text, "Enhanced healing on critical"), true
	}
	return effect("Critical Hit", text, "Enhanced damage on critical"), true
}

// formatSpellCritical covers a critical config set on the spell itself
func (o *orchestrator) formatSpellCritical(fc *formatContext) []spell.FormattedEffect {
	rec, ok := criticalRecord(fc.spell.CriticalHitConfig, "damage")
	if !ok {
		return nil
	}
	return []spell.FormattedEffect{rec}
}
