package effects

import (
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

var (
	movementFlavors = map[string]string{
		"wind":        "Powerful winds carry the target",
		"gravity":     "Gravitational forces pull the target",
		"telekinetic": "Invisible telekinetic force moves the target",
		"spectral":    "Spectral hands grasp and move the target",
	}
	movementDirections = map[string]string{
		"push":     "away from the caster",
		"pull":     "toward the caster",
		"slide":    "in any direction",
		"teleport": "to a new location",
	}
	areaShapes = map[string]string{
		"square": "square area",
		"line":   "line",
		"cone":   "cone",
	}
	mentalLevels = map[string]string{
		"suggestion": "Plants a suggestion in the target's mind",
		"compulsion": "Compels the target to act",
		"domination": "Dominates the target's will",
		"possession": "Possesses the target's body",
	}
	mentalApproaches = map[string]string{
		"overwhelming": "with overwhelming mental pressure",
		"seductive":    "through seductive whispers",
		"terrifying":   "using terrifying mental commands",
	}
	restraintTypes = map[string]string{
		"magical":       "Magical bonds hold the target in place",
		"environmental": "Environmental forces restrain the target",
		"paralysis":     "Paralyzing energy freezes the target",
	}
	incapacitationDurations = map[string]string{
		"instant":       "Effect occurs instantly",
		"concentration": "Requires caster's concentration",
		"permanent":     "Effect lasts until dispelled",
	}
	recoveryMethods = map[string]string{
		"save_each_turn":  "Target may save each turn to recover",
		"damage_breaks":   "Taking damage breaks the effect",
		"action_required": "Requires an action to break free",
	}
	namedControlEffects = map[string]string{
		"immobilized": "Target cannot move",
		"restrained":  "Target has disadvantage on attacks and Agility saving throws",
		"stunned":     "Target cannot take actions or reactions",
		"prone":       "Target is knocked to the ground",
		"blinded":     "Target cannot see and automatically fails sight-based checks",
	}
)

// formatControl emits one record per control effect and a single
// block-level save
func (o *orchestrator) formatControl(fc *formatContext) ([]spell.FormattedEffect, string) {
	cc := fc.spell.ControlConfig
	if cc == nil {
		return nil, ""
	}

	var effects []spell.FormattedEffect
	for i := range cc.Effects {
		effects = append(effects, controlEffect(cc, &cc.Effects[i]))
	}

	if len(effects) > 0 && (cc.SavingThrow.Enabled || cc.SavingThrowType != "") {
		ability := firstNonEmpty(cc.SavingThrowType, cc.SavingThrow.Ability, "spirit")
		dc := cc.DifficultyClass.IntOr(cc.SavingThrow.Difficulty.IntOr(defaultSaveDC))
		effects = append(effects, effect("Saving Throw",
			"DC "+itoa(dc)+" "+strings.ToUpper(ability)+" saving throw", ""))
	}

	return effects, controlDuration(cc)
}

func controlDuration(cc *spell.ControlConfig) string {
	if cc.Instant {
		return "Instant"
	}
	text := count(cc.Duration.IntOr(1), orDefault(cc.DurationUnit, "rounds"))
	return concentration(text, cc.Concentration)
}

func controlEffect(cc *spell.ControlConfig, e *spell.ControlEffect) spell.FormattedEffect {
	opts := e.Config
	if opts == nil {
		opts = &spell.ControlEffectOpts{}
	}

	name := firstNonEmpty(opts.CustomName, e.Name, e.ID)
	description := firstNonEmpty(opts.CustomDescription, e.Description)

	// string-only effects from older spells
	if description == "" && e.ControlType == "" && cc.ControlType == "" {
		if text, ok := namedControlEffects[strings.ToLower(e.ID)]; ok {
			return effect(title(name), text, "")
		}
		return effect(title(name), "Target is "+strings.ToLower(strings.ReplaceAll(name, "_", " ")), "")
	}

	mechanics := e.MechanicsText
	if flavor := controlFlavor(firstNonEmpty(e.ControlType, cc.ControlType), opts); flavor != "" {
		mechanics = flavor
	}
	return effect(title(name), description, mechanics)
}

// controlFlavor builds the per-type template text. It returns "" when the
// options do not change the default wording.
func controlFlavor(controlType string, opts *spell.ControlEffectOpts) string {
	switch controlType {
	case "forced_movement":
		flavor, ok := movementFlavors[orDefault(opts.MovementFlavor, "force")]
		if !ok {
			flavor = "Magical force moves the target"
		}
		direction, ok := movementDirections[orDefault(opts.MovementType, "push")]
		if !ok {
			direction = movementDirections["push"]
		}
		return flavor + " " + itoa(opts.Distance.IntOr(10)) + " feet " + direction

	case "battlefield_control":
		size := itoa(opts.AreaSize.IntOr(15)) + " foot"
		if opts.AreaShape == "" || opts.AreaShape == "circle" {
			return size + " radius"
		}
		shape, ok := areaShapes[opts.AreaShape]
		if !ok {
			shape = "area"
		}
		return size + " " + shape

	case "mental_control":
		text, ok := mentalLevels[opts.ControlLevel]
		if !ok {
			return ""
		}
		if approach, ok := mentalApproaches[opts.MentalApproach]; ok {
			text += " " + approach
		}
		return text

	case "restraint":
		return restraintTypes[opts.RestraintType]

	case "incapacitation":
		var parts []string
		if text, ok := incapacitationDurations[opts.DurationType]; ok {
			parts = append(parts, text)
		}
		if text, ok := recoveryMethods[opts.RecoveryMethod]; ok {
			parts = append(parts, text)
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
