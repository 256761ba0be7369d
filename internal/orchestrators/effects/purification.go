package effects

import (
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

const defaultResurrectionFormula = "2d8 + SPI"

// formatPurification covers dispels, cleanses and resurrection. Selected
// effects tagged for another purification type are skipped.
func (o *orchestrator) formatPurification(fc *formatContext) ([]spell.FormattedEffect, string) {
	pc := fc.spell.PurificationConfig
	if pc == nil {
		return nil, ""
	}
	kind := orDefault(pc.PurificationType, "dispel")

	var effects []spell.FormattedEffect
	for i := range pc.SelectedEffects {
		e := &pc.SelectedEffects[i]
		if e.PurificationType != "" && e.PurificationType != kind {
			continue
		}
		if kind == "resurrection" {
			effects = append(effects, o.resurrection(pc, e))
			continue
		}
		effects = append(effects, dispel(e))
	}

	if kind == "resurrection" {
		if len(effects) == 0 {
			effects = append(effects, o.resurrection(pc, nil))
		}
		return effects, "Resurrection"
	}
	return effects, "Purification"
}

func dispel(e *spell.PurificationEffect) spell.FormattedEffect {
	description := e.Description
	if len(e.SpecificEffectTypes) > 0 {
		types := strings.Join(e.SpecificEffectTypes, ", ")
		if description != "" {
			description += " (" + types + ")"
		} else {
			description = "Targets: " + types
		}
	}

	mechanics := ""
	if n := e.CustomEffects.IntOr(0); n > 1 {
		mechanics = "Removes up to " + itoa(n) + " effects"
	}
	return effect(orDefault(e.Name, "Unknown Effect"), description, mechanics)
}

func (o *orchestrator) resurrection(pc *spell.PurificationConfig, e *spell.PurificationEffect) spell.FormattedEffect {
	name := "Resurrection"
	res := pc.Resolution
	f := pc.ResurrectionFormula
	if e != nil {
		name = orDefault(e.Name, name)
		if e.Resolution != "" {
			res = e.Resolution
		}
		f = firstNonEmpty(e.ResurrectionFormula, f)
	}
	f = orDefault(f, defaultResurrectionFormula)

	return effect(name, resolutionVerb(res), o.translator.Translate(f, nounHealing)+" health restored")
}

// formatRestoration covers instant and over-time resource restoration
func (o *orchestrator) formatRestoration(fc *formatContext) ([]spell.FormattedEffect, string) {
	rc := fc.spell.RestorationConfig
	if rc == nil {
		return nil, ""
	}

	resource := "resource"
	if rc.ResourceType != "" {
		resource = resourceName(rc.ResourceType)
	}
	restored := func(f string) string {
		return o.translator.Translate(f, "restoration") + " " + resource + " restored"
	}

	var effects []spell.FormattedEffect

	instant := !rc.Duration.IsSet() || strings.EqualFold(rc.Duration.String(), "instant")
	if rc.Formula != "" && instant {
		effects = append(effects, effect("Instant Restoration", resolutionVerb(rc.Resolution), restored(rc.Formula)))
	}

	progressive := rc.IsProgressiveOverTime
	if (rc.IsOverTime && rc.OverTimeFormula != "") || progressive {
		frequency := orDefault(rc.TickFrequency, "round")
		duration := count(rc.OverTimeDuration.IntOr(3), frequency)
		timing := restorationTiming(rc, frequency)

		name := "Restoration Over Time"
		mechanics := restored(rc.OverTimeFormula)
		if progressive {
			name += " (Progressive)"
			mechanics += " (see stages below)"
		}
		effects = append(effects, effect(name, timing+" for "+duration, mechanics))

		if progressive {
			effects = append(effects, o.restorationStages(rc, timing, frequency, restored)...)
		}
	}

	header := "Resource"
	if rc.ResourceType != "" {
		header = resource
	}
	return effects, header
}

func restorationTiming(rc *spell.RestorationConfig, frequency string) string {
	switch orDefault(rc.OverTimeTriggerType, "periodic") {
	case "periodic":
		edge := "Start"
		if rc.Application == "end" {
			edge = "End"
		}
		return edge + " of " + capitalize(frequency)
	case "trigger":
		return "Trigger-Based"
	}
	return "Every " + frequency
}

func (o *orchestrator) restorationStages(rc *spell.RestorationConfig, timing, frequency string, restored func(string) string) []spell.FormattedEffect {
	if len(rc.OverTimeProgressiveStages) == 0 {
		return []spell.FormattedEffect{
			effect("Configure Stages", "Add stages in the spellcrafting wizard", "Custom formulas per stage"),
		}
	}

	effects := make([]spell.FormattedEffect, 0, len(rc.OverTimeProgressiveStages))
	for i, stage := range rc.OverTimeProgressiveStages {
		n := itoa(stage.TriggerAt.IntOr(i + 1))
		description := timing
		if stage.Description != "" {
			description += " - " + stage.Description
		}
		f := firstNonEmpty(stage.Formula, rc.OverTimeFormula, "1d4 + INT/2")
		effects = append(effects, effect("Stage "+n+" ("+frequency+" "+n+")", description, restored(f)))
	}
	return effects
}
