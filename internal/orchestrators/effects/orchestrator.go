// Package effects implements the effect orchestrator that turns a spell
// document into ordered display records, one formatter per effect category
package effects

//go:generate mockgen -destination=mock/mock_service.go -package=effectsmock github.com/KirkDiggler/rpg-spellfx/internal/orchestrators/effects Service
//go:generate mockgen -destination=mock/mock_deps.go -package=effectsmock github.com/KirkDiggler/rpg-spellfx/internal/orchestrators/effects Translator,Describer

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
)

// Section names for the records that follow the effect categories
const (
	SectionCritical   = "critical"
	SectionProc       = "proc"
	SectionChanneling = "channeling"
	SectionMechanics  = "mechanics"
)

// Service defines the interface for spell effect formatting
type Service interface {
	FormatSpell(ctx context.Context, input *FormatSpellInput) (*FormatSpellOutput, error)
}

// Translator renders formulas as readable text
type Translator interface {
	Translate(formula, effectType string) string
	Humanize(text string) string
}

// Describer phrases resistance stats
type Describer interface {
	DescribeStat(statName string, magnitude float64) string
}

// Config holds the dependencies for the effects orchestrator
type Config struct {
	Translator Translator
	Describer  Describer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Translator == nil {
		vb.RequiredField("Translator")
	}
	if c.Describer == nil {
		vb.RequiredField("Describer")
	}

	return vb.Build()
}

type orchestrator struct {
	translator Translator
	describer  Describer
	statuses   *statusCatalog
}

// NewOrchestrator creates a new effects orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	statuses, err := loadStatuses(defaultStatusesYAML)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to load status catalog")
	}

	return &orchestrator{
		translator: cfg.Translator,
		describer:  cfg.Describer,
		statuses:   statuses,
	}, nil
}

// formatter produces the records of one category. A nil sub-config yields
// nil.
type formatter func(fc *formatContext) ([]spell.FormattedEffect, string)

// formatContext is the per-call state shared by the formatters
type formatContext struct {
	ctx    context.Context
	spell  *spell.Config
	linked map[string]*spell.Config
}

// FormatSpell formats every active category of a spell in display order
func (o *orchestrator) FormatSpell(ctx context.Context, input *FormatSpellInput) (*FormatSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Spell == nil {
		return nil, errors.InvalidArgument("spell is required")
	}

	fc := &formatContext{
		ctx:    ctx,
		spell:  spell.Normalize(input.Spell),
		linked: input.LinkedSpells,
	}

	formatters := map[spell.Category]formatter{
		spell.CategoryDamage:         o.formatDamage,
		spell.CategoryHealing:        o.formatHealing,
		spell.CategoryBuff:           o.formatBuff,
		spell.CategoryDebuff:         o.formatDebuff,
		spell.CategoryControl:        o.formatControl,
		spell.CategoryUtility:        o.formatUtility,
		spell.CategorySummoning:      o.formatSummoning,
		spell.CategoryTransformation: o.formatTransformation,
		spell.CategoryPurification:   o.formatPurification,
		spell.CategoryRestoration:    o.formatRestoration,
	}

	output := &FormatSpellOutput{}
	for _, category := range spell.Categories {
		if !fc.spell.HasEffect(category) {
			continue
		}

		effects, header := formatters[category](fc)
		if len(effects) == 0 {
			slog.DebugContext(ctx, "Category is active but produced no records",
				"spell_id", fc.spell.ID,
				"category", category,
				"code", errors.CodeMissingSubConfig)
			effects = []spell.FormattedEffect{placeholder(category)}
		}
		output.addSection(category.String(), header, effects)
	}

	output.addSection(SectionCritical, "", o.formatSpellCritical(fc))
	output.addSection(SectionProc, "", o.formatSpellProc(fc))
	output.addSection(SectionChanneling, "", o.formatChanneling(fc))
	output.addSection(SectionMechanics, "", o.formatMechanics(fc))

	o.humanize(output)

	slog.DebugContext(ctx, "Formatted spell effects",
		"spell_id", fc.spell.ID,
		"sections", len(output.Sections),
		"effects", len(output.Effects))

	return output, nil
}

func (o *orchestrator) humanize(output *FormatSpellOutput) {
	for i := range output.Sections {
		section := &output.Sections[i]
		section.Header = o.translator.Humanize(section.Header)
		for j := range section.Effects {
			humanizeEffect(o.translator, &section.Effects[j])
		}
	}
	for i := range output.Effects {
		humanizeEffect(o.translator, &output.Effects[i])
	}
}

func humanizeEffect(t Translator, e *spell.FormattedEffect) {
	e.Name = t.Humanize(e.Name)
	e.Description = t.Humanize(e.Description)
	e.MechanicsText = t.Humanize(e.MechanicsText)
}

func placeholder(category spell.Category) spell.FormattedEffect {
	switch category {
	case spell.CategorySummoning:
		return spell.FormattedEffect{Name: "Summoning", Description: "No creatures selected"}
	case spell.CategoryTransformation:
		return spell.FormattedEffect{Name: "Transformation", Description: "No transformation target selected"}
	}
	return spell.FormattedEffect{
		Name:        title(category.String()),
		Description: "Configure " + category.String() + " effects in the spellcrafting wizard",
	}
}
