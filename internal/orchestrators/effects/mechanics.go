package effects

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

// Mechanics systems
const (
	SystemComboPoints       = "COMBO_POINTS"
	SystemProc              = "PROC_SYSTEM"
	SystemToxic             = "TOXIC_SYSTEM"
	SystemChord             = "CHORD_SYSTEM"
	SystemStateRequirements = "STATE_REQUIREMENTS"
	SystemForm              = "FORM_SYSTEM"
)

var mechanicsEffectNames = map[string]string{
	"effect_damage":  "Damage",
	"effect_healing": "Healing",
	"effect_buff":    "Buff",
	"effect_debuff":  "Debuff",
	"effect_utility": "Utility",
	"effect_control": "Control",
}

var toxicConsumptionRules = map[string]string{
	"all":      "all toxics",
	"specific": "specific toxics",
}

// formatMechanics emits one record per enabled mechanics config: the
// per-effect configs in effect ID order, then the spell-wide list
func (o *orchestrator) formatMechanics(fc *formatContext) []spell.FormattedEffect {
	var effects []spell.FormattedEffect

	ids := make([]string, 0, len(fc.spell.EffectMechanicsConfigs))
	for id := range fc.spell.EffectMechanicsConfigs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		mc := fc.spell.EffectMechanicsConfigs[id]
		if mc == nil || !mc.Enabled {
			continue
		}
		name, ok := mechanicsEffectNames[id]
		if !ok {
			name = "Effect"
		}
		if record, ok := fc.mechanicsRecord(mc, name); ok {
			effects = append(effects, record)
		}
	}

	for i := range fc.spell.MechanicsConfig {
		mc := &fc.spell.MechanicsConfig[i]
		if !mc.Enabled {
			continue
		}
		if record, ok := fc.mechanicsRecord(mc, "Global"); ok {
			effects = append(effects, record)
		}
	}
	return effects
}

func (fc *formatContext) mechanicsRecord(mc *spell.MechanicsConfig, effectName string) (spell.FormattedEffect, bool) {
	var system, text string

	switch mc.System {
	case SystemComboPoints:
		system = "Combo Points"
		text = comboText(mc)
	case SystemProc:
		system = "Proc System"
		text = fc.mechanicsProcText(mc.ProcOptions)
	case SystemToxic:
		system = "Toxic System"
		text = toxicText(mc)
	case SystemChord:
		system = "Chord System"
		text = chordText(mc)
	case SystemStateRequirements:
		system = "State Requirements"
		text = stateText(mc.StateOptions)
	case SystemForm:
		system = "Form System"
		text = fc.formText(mc.FormOptions)
	case "":
		return spell.FormattedEffect{}, false
	default:
		system = strings.Replace(mc.System, "_", " ", 1)
		text = strings.ToLower(system) + " mechanic"
	}

	if text == "" {
		return spell.FormattedEffect{}, false
	}
	return effect(system, effectName, text), true
}

func comboText(mc *spell.MechanicsConfig) string {
	switch mc.Type {
	case "builder":
		return "Generates 1 combo point"
	case "spender":
		text := "Requires " + mc.ThresholdValue.StringOr("0") + " combo points"
		if mc.ComboOptions != nil {
			switch mc.ComboOptions.ConsumptionRule {
			case "all":
				text += " (consumes all)"
			case "none":
				text += " (no consumption)"
			}
		}
		return text
	}
	return ""
}

func (fc *formatContext) mechanicsProcText(p *spell.ProcOptions) string {
	if p == nil {
		p = &spell.ProcOptions{}
	}
	text := p.ProcChance.StringOr("15") + "% chance to trigger"

	switch linked, ok := fc.linked[p.SpellID]; {
	case p.SpellID == "":
		text += " additional effect"
	case ok && linked != nil:
		text += " " + linkedSummary(linked)
	default:
		text += " linked spell"
	}

	if n := p.TriggerLimit.IntOr(0); n > 1 {
		text += " (max " + itoa(n) + "/round)"
	}
	return text
}

// linkedSummary is a linked spell's name with its headline formula
func linkedSummary(s *spell.Config) string {
	name := orDefault(s.Name, s.ID)
	switch {
	case s.DamageConfig != nil && s.DamageConfig.Formula != "":
		return name + " (" + s.DamageConfig.Formula + " damage)"
	case s.HealingConfig != nil && s.HealingConfig.Formula != "":
		return name + " (" + s.HealingConfig.Formula + " healing)"
	}
	return name
}

func toxicText(mc *spell.MechanicsConfig) string {
	opts := mc.ToxicOptions
	if opts == nil {
		opts = &spell.ToxicOptions{}
	}
	toxics := toxicList(opts.SelectedToxicTypes)

	switch mc.Type {
	case "toxic_applier":
		if toxics == "" {
			return "Applies toxic effects (not configured)"
		}
		return "Applies " + toxics + " for " + opts.Duration.StringOr("3") + " " + orDefault(opts.DurationType, "rounds")
	case "toxic_consumer":
		if toxics == "" {
			rule, ok := toxicConsumptionRules[orDefault(opts.ConsumptionRule, "all")]
			if !ok {
				rule = "threshold-based toxics"
			}
			return "Consumes " + rule + " for enhanced effects"
		}
		text := "Consumes " + toxics
		if opts.UpdateFormula {
			text += " for enhanced effects"
		}
		return text
	}
	return ""
}

// toxicList renders "2x Poison, 1x Venom" in name order
func toxicList(types map[string]int) string {
	names := make([]string, 0, len(types))
	for name, n := range types {
		if n > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, itoa(types[name])+"x "+capitalize(name))
	}
	return strings.Join(parts, ", ")
}

func chordText(mc *spell.MechanicsConfig) string {
	opts := mc.ChordOptions
	if opts == nil {
		opts = &spell.ChordOptions{}
	}

	switch mc.Type {
	case "chord":
		if len(opts.RecipeDisplay) == 0 {
			return "Requires chord sequence (not configured)"
		}
		notes := make([]string, 0, len(opts.RecipeDisplay))
		for _, n := range opts.RecipeDisplay {
			notes = append(notes, n.Name)
		}
		text := "Requires chord: " + strings.Join(notes, " → ")
		if !opts.ImprovisationWindow.IsZero() {
			text += " (" + opts.ImprovisationWindow.String() + " rounds)"
		}
		return text
	case "note":
		fn := orDefault(opts.ChordFunction, "tonic")
		return "Plays " + capitalize(strings.Replace(fn, "_", " ", 1)) + " note"
	case "wildcard":
		return "Wildcard note (any chord function)"
	case "extender":
		return "Extends improvisation window by " + count(opts.ExtendDuration.IntOr(1), "rounds")
	}
	return ""
}

func stateText(opts *spell.StateOptions) string {
	if opts == nil {
		opts = &spell.StateOptions{}
	}
	text := "Enhanced when target " + capitalize(orDefault(opts.ResourceType, "health")) +
		" is " + orDefault(opts.ThresholdType, "below") +
		" " + opts.ThresholdValue.StringOr("50") + "%"
	if opts.ModifiedFormula != "" {
		text += " (formula becomes: " + opts.ModifiedFormula + ")"
	}
	return text
}

func (fc *formatContext) formText(opts *spell.FormOptions) string {
	if opts == nil {
		opts = &spell.FormOptions{}
	}

	form := "Specific Form"
	if opts.FormType != "" {
		form = title(opts.FormType)
	}
	verb := "Enhanced by"
	if opts.RequiresForm {
		verb = "Requires"
	}
	text := verb + " " + form + " (+" + opts.BonusAmount.StringOr("20") + "% " + orDefault(opts.BonusType, "damage") + ")"

	if opts.FormSpellID != "" {
		if linked, ok := fc.linked[opts.FormSpellID]; ok && linked != nil {
			text += " using " + orDefault(linked.Name, linked.ID)
		} else {
			text += " using linked form spell"
		}
	}
	return text
}
