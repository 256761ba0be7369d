package effects

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

type cardProc struct {
	rule   string
	chance string
}

// single-card odds from a standard 52-card deck
var cardProcRules = map[string]cardProc{
	"face_cards":  {"Face Cards (J,Q,K)", "23%"},
	"aces":        {"Aces", "8%"},
	"red_cards":   {"Red Cards", "50%"},
	"black_cards": {"Black Cards", "50%"},
	"pairs":       {"Pairs", "6%"},
}

var coinProcRules = map[string]string{
	"all_heads": "All Heads",
	"all_tails": "All Tails",
	"sequence":  "Specific Sequence",
}

// procText phrases a chance-on-hit config. It returns "" when the config is
// disabled.
func (fc *formatContext) procText(p *spell.ChanceOnHitConfig) string {
	if p == nil || !p.Enabled {
		return ""
	}

	outcome := fc.procOutcome(p)

	switch p.ProcType {
	case "dice":
		return "Roll d20: " + p.DiceThreshold.StringOr("18") + "+ (" + p.ProcChance.StringOr("15") + "%) " + outcome

	case "cards":
		var proc cardProc
		switch rule := p.CardProcRule; {
		case rule == "specific_suit":
			proc = cardProc{capitalize(orDefault(p.ProcSuit, "hearts")) + " suit", "25%"}
		default:
			known, ok := cardProcRules[rule]
			if !ok {
				known = cardProc{strings.ReplaceAll(orDefault(rule, "face_cards"), "_", " "), "25%"}
			}
			proc = known
		}
		return "Draw card: " + proc.rule + " (" + proc.chance + ") " + outcome

	case "coins":
		coins := p.CoinCount.IntOr(3)
		var rule, chance string
		if name, ok := coinProcRules[p.CoinProcRule]; ok {
			rule = name
			chance = strconv.FormatFloat(math.Pow(0.5, float64(coins))*100, 'f', 1, 64) + "%"
		} else if p.CoinProcRule == "pattern" {
			rule, chance = "Pattern Match", "25%"
		} else {
			rule, chance = strings.ReplaceAll(orDefault(p.CoinProcRule, "heads"), "_", " "), "50%"
		}
		return "Flip " + itoa(coins) + " coins: " + rule + " (" + chance + ") " + outcome
	}

	return p.ProcChance.StringOr("15") + "% chance " + outcome
}

func (fc *formatContext) procOutcome(p *spell.ChanceOnHitConfig) string {
	switch {
	case p.UseRollableTable:
		return "triggers rollable table"
	case p.SpellEffect != "":
		return "casts " + fc.spellName(p.SpellEffect)
	case len(p.CustomEffects) > 0:
		return titleList(p.CustomEffects)
	}
	return "triggers effect"
}

// spellName resolves a linked spell ID, falling back to the ID itself
func (fc *formatContext) spellName(id string) string {
	if linked, ok := fc.linked[id]; ok && linked != nil && linked.Name != "" {
		return linked.Name
	}
	return id
}

func (fc *formatContext) procRecord(p *spell.ChanceOnHitConfig) (spell.FormattedEffect, bool) {
	text := fc.procText(p)
	if text == "" {
		return spell.FormattedEffect{}, false
	}
	return effect("Chance Effect", text, "Additional effect on trigger"), true
}

// formatSpellProc covers a chance-on-hit config set on the spell itself
func (o *orchestrator) formatSpellProc(fc *formatContext) []spell.FormattedEffect {
	rec, ok := fc.procRecord(fc.spell.ChanceOnHitConfig)
	if !ok {
		return nil
	}
	return []spell.FormattedEffect{rec}
}
