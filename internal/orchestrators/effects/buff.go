package effects

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/resistance"
)

var statusLevels = map[string]string{
	"minor":   "Minor",
	"major":   "Major",
	"severe":  "Severe",
	"extreme": "Extreme",
}

var stackingRules = map[string]string{
	"selfStacking": "Self-stacking",
	"cumulative":   "Cumulative",
	"progressive":  "Progressive",
	"diminishing":  "Diminishing returns",
}

// statGroups are the three buckets stat modifiers are sorted into
type statGroups struct {
	regular     []string
	resistances []string
	absorptions []string
}

type statLabels struct {
	regular    string
	resistance string
	absorption string
}

var (
	buffLabels   = statLabels{"Stat Modifiers", "Resistances", "Damage Absorption"}
	debuffLabels = statLabels{"Stat Penalties", "Resistance Penalties", "Absorption Penalties"}
)

func (o *orchestrator) formatBuff(fc *formatContext) ([]spell.FormattedEffect, string) {
	bc := fc.spell.BuffConfig
	if bc == nil {
		return nil, ""
	}

	effects := o.statModifiers(fc, bc.StatModifiers, true).records(buffLabels)
	for i := range bc.StatusEffects {
		effects = append(effects, o.buffStatus(&bc.StatusEffects[i]))
	}

	header := blockDuration(bc.DurationType, bc.Duration, bc.DurationValue, bc.DurationUnit, bc.RestType)
	return effects, concentration(header, bc.Concentration && header != "")
}

func (o *orchestrator) formatDebuff(fc *formatContext) ([]spell.FormattedEffect, string) {
	dc := fc.spell.DebuffConfig
	if dc == nil {
		return nil, ""
	}

	effects := o.statModifiers(fc, dc.StatPenalties, false).records(debuffLabels)
	for i := range dc.StatusEffects {
		effects = append(effects, o.debuffStatus(dc, &dc.StatusEffects[i]))
	}

	if (dc.SavingThrow.Enabled || dc.SavingThrowType != "") && !dc.DifficultyClass.IsZero() {
		s := &save{
			ability:        firstNonEmpty(dc.SavingThrowType, dc.SavingThrow.Ability, "constitution"),
			dc:             dc.DifficultyClass.IntOr(defaultSaveDC),
			outcome:        dc.SaveOutcome,
			partial:        dc.PartialEffect,
			partialFormula: dc.PartialEffectFormula,
		}
		effects = append(effects, s.record("debuff"))
	}

	if dc.StackingRule != "" && dc.StackingRule != "replace" {
		text, ok := stackingRules[dc.StackingRule]
		if !ok {
			text = dc.StackingRule
		}
		if n := dc.MaxStacks.IntOr(0); n > 1 {
			text += " (max " + itoa(n) + " stacks)"
		}
		effects = append(effects, effect("Stacking Rules", text, ""))
	}

	if dc.DurationType == "permanent" && dc.CanBeDispelled != nil {
		if *dc.CanBeDispelled {
			effects = append(effects, effect("Dispellable", "Can be dispelled", ""))
		} else {
			effects = append(effects, effect("Dispel Resistance", "Cannot be dispelled", ""))
		}
	}

	header := blockDuration(dc.DurationType, dc.Duration, dc.DurationValue, dc.DurationUnit, dc.RestType)
	return effects, concentration(header, dc.Concentration && header != "")
}

// statModifiers sorts modifiers into regular, resistance and absorption
// groups. A name containing "resistance" wins over "absorption".
func (o *orchestrator) statModifiers(fc *formatContext, mods []spell.StatModifier, buff bool) *statGroups {
	g := &statGroups{}
	for _, m := range mods {
		name := orDefault(m.Name, "Stat Modifier")
		lower := strings.ToLower(name)

		switch {
		case strings.Contains(lower, "resistance"):
			g.resistances = append(g.resistances, name+": "+o.resistanceValue(fc, m))
		case resistance.IsAbsorptionStat(name):
			g.absorptions = append(g.absorptions, resistance.DescribeAbsorption(name, m.Magnitude, buff))
		default:
			g.regular = append(g.regular, name+": "+statValue(m))
		}
	}
	return g
}

func (o *orchestrator) resistanceValue(fc *formatContext, m spell.StatModifier) string {
	if m.Magnitude.IsFormula() {
		return m.Magnitude.Formula
	}
	if !resistance.IsResistanceStat(m.Name, m.MagnitudeType) {
		slog.DebugContext(fc.ctx, "Resistance stat is not a percentage",
			"stat", m.Name,
			"magnitude_type", m.MagnitudeType,
			"code", errors.CodeMissingField)
		return statValue(m)
	}
	return o.describer.DescribeStat(m.Name, m.Magnitude.Number)
}

// statValue renders "+3", "-10%" or a formula as written
func statValue(m spell.StatModifier) string {
	if m.Magnitude.IsFormula() {
		return m.Magnitude.Formula
	}
	n := m.Magnitude.FloatOr(0)
	text := strconv.FormatFloat(n, 'f', -1, 64)
	if n >= 0 {
		text = "+" + text
	}
	if m.MagnitudeType == "percentage" {
		text += "%"
	}
	return text
}

func (g *statGroups) records(labels statLabels) []spell.FormattedEffect {
	var effects []spell.FormattedEffect
	if len(g.regular) > 0 {
		effects = append(effects, effect(labels.regular, "", strings.Join(g.regular, ", ")))
	}
	if len(g.resistances) > 0 {
		effects = append(effects, effect(labels.resistance, "", strings.Join(g.resistances, "; ")))
	}
	if len(g.absorptions) > 0 {
		effects = append(effects, effect(labels.absorption, "", strings.Join(g.absorptions, "; ")))
	}
	return effects
}

// statusName capitalizes the status and prefixes its level. Moderate is
// the unmarked level.
func statusName(s *spell.StatusEffect) string {
	name := capitalize(strings.ReplaceAll(orDefault(firstNonEmpty(s.Name, s.ID), "Unknown Effect"), "_", " "))
	switch s.Level {
	case "", "moderate", "medium":
		return name
	}
	level, ok := statusLevels[s.Level]
	if !ok {
		level = s.Level
	}
	return level + " " + name
}

func (o *orchestrator) buffStatus(s *spell.StatusEffect) spell.FormattedEffect {
	name := statusName(s)

	var mechanics []string
	if s.SaveType != "" && s.SaveType != "none" {
		text := capitalize(s.SaveType) + " save"
		if !s.SaveDC.IsZero() {
			text += " DC " + s.SaveDC.String()
		}
		mechanics = append(mechanics, text)
	}
	if d := s.Duration.String(); d != "" && d != "default" {
		mechanics = append(mechanics, d+" duration")
	}

	description := s.Description
	if description == "" {
		if _, known := o.statuses.lookup(s.ID); known {
			description = o.statuses.describe(s, name)
		}
	}
	return effect(name, description, strings.Join(mechanics, ", "))
}

func (o *orchestrator) debuffStatus(dc *spell.DebuffConfig, s *spell.StatusEffect) spell.FormattedEffect {
	name := statusName(s)
	saveDC := s.SaveDC.IntOr(dc.DifficultyClass.IntOr(defaultSaveDC))

	if isCharm(s.ID) {
		return effect(name, o.charmDescription(s, name), charmMechanics(s, saveDC))
	}

	description := o.statuses.describe(s, name)
	saveType := firstNonEmpty(s.SaveType, o.statuses.defaultSave(s.ID))
	if saveType == "none" {
		return effect(name, description, "")
	}

	st := &save{ability: saveType, dc: saveDC, outcome: orDefault(s.SaveOutcome, "overcome")}
	mechanics := title(saveType) + " save DC " + itoa(saveDC) + " (" + st.outcomeText("status") + ")"

	if s.SaveFrequency != "" && s.SaveFrequency != "initial" {
		freq, ok := o.statuses.SaveFrequencies[s.SaveFrequency]
		if !ok {
			freq = "repeated saves"
		}
		mechanics += ", " + freq
	}
	return effect(name, description, mechanics)
}

func (o *orchestrator) charmDescription(s *spell.StatusEffect, name string) string {
	charmType := firstNonEmpty(s.CharmType, s.Option, "friendly")
	behavior, ok := o.statuses.CharmTypes[charmType]
	if !ok {
		behavior = "is charmed"
	}
	text := name + " (" + charmType + ") - target " + behavior

	var restrictions []string
	if s.CanAttackCharmer != nil {
		if *s.CanAttackCharmer {
			restrictions = append(restrictions, "can attack charmer")
		} else {
			restrictions = append(restrictions, "cannot attack charmer")
		}
	}
	if s.CanSelfHarm != nil && !*s.CanSelfHarm {
		restrictions = append(restrictions, "cannot be commanded to self-harm")
	}
	if s.RetainsMemory != nil && *s.RetainsMemory {
		restrictions = append(restrictions, "retains memory of actions")
	}
	if s.CommandComplexity != "" {
		restrictions = append(restrictions, s.CommandComplexity+" commands")
	}
	if n := s.MaxCommands.IntOr(0); n > 0 {
		restrictions = append(restrictions, "up to "+itoa(n)+" commands")
	}

	if len(restrictions) > 0 {
		text += " (" + strings.Join(restrictions, ", ") + ")"
	}
	return text
}

func charmMechanics(s *spell.StatusEffect, dc int) string {
	saveType := orDefault(s.SaveType, "wisdom")
	if saveType == "none" {
		return ""
	}
	st := &save{ability: saveType, dc: dc, outcome: orDefault(s.SaveOutcome, "broken")}
	return title(saveType) + " save DC " + itoa(dc) + " (" + st.outcomeText("status") + ")"
}

// blockDuration is the duration header shared by buffs and debuffs
func blockDuration(durationType string, duration, durationValue spell.Value, unit, restType string) string {
	switch durationType {
	case "turns", "rounds":
		return count(firstSet(durationValue, duration).IntOr(3), durationType)
	case "time":
		return count(firstSet(durationValue, duration).IntOr(1), orDefault(unit, "minutes"))
	case "rest":
		return "Until " + strings.ToLower(orDefault(restType, "short")) + " rest"
	case "permanent":
		return "Permanent"
	}
	if n := duration.IntOr(0); n > 0 {
		return count(n, orDefault(unit, "rounds"))
	}
	return ""
}

func firstSet(values ...spell.Value) spell.Value {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return spell.Value{}
}
