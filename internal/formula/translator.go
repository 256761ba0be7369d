// Package formula translates spell effect formulas such as
// "HEADS_COUNT * 8 + (ALL_HEADS ? 15 : 0)" into readable text.
//
// Formulas are parsed into a small AST and rendered in one of two styles.
// The sentence style produces full English ("8 damage per head flipped,
// plus 15 bonus damage if all coins are heads"); the compact style produces
// short card-face text ("Flip fate coins, 8 per heads"). Formulas are never
// evaluated. Anything the parser does not understand is returned with only
// cosmetic normalization applied.
package formula

import (
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
)

// Style selects the output register of a Translator
type Style string

// Output styles
const (
	StyleSentence Style = "sentence"
	StyleCompact  Style = "compact"
)

// Styles lists the valid styles
var Styles = []string{string(StyleSentence), string(StyleCompact)}

// TranslatorConfig configures a Translator
type TranslatorConfig struct {
	Style      Style
	Dictionary *Dictionary
}

// Validate checks the config
func (cfg *TranslatorConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Dictionary == nil {
		vb.RequiredField("Dictionary")
	}
	errors.ValidateEnum("Style", string(cfg.Style), Styles, vb)

	return vb.Build()
}

// Translator renders formulas as text. It is safe for concurrent use.
type Translator struct {
	style Style
	dict  *Dictionary
}

// NewTranslator creates a translator. An empty style means sentence.
func NewTranslator(cfg *TranslatorConfig) (*Translator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if cfg.Style == "" {
		cfg.Style = StyleSentence
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Translator{
		style: cfg.Style,
		dict:  cfg.Dictionary,
	}, nil
}

// Style returns the configured output style
func (t *Translator) Style() Style {
	return t.style
}

// Dictionary returns the variable dictionary
func (t *Translator) Dictionary() *Dictionary {
	return t.dict
}

// Translate renders formula for an effect type noun such as "damage" or
// "healing". It never fails.
func (t *Translator) Translate(formula, effectType string) string {
	src := strings.TrimSpace(formula)
	noun := strings.TrimSpace(effectType)

	if src == "" {
		if t.style == StyleCompact {
			return "Variable effect"
		}
		if noun == "" {
			noun = "effect"
		}
		return "Variable " + noun
	}

	if t.style == StyleSentence && IsDice(src) {
		return Normalize(src)
	}

	root, err := Parse(src)
	if err != nil {
		slog.Debug("Formula not recognized, using cosmetic normalization",
			"formula", src,
			"code", errors.GetCode(err),
			"error", err)
		return Normalize(src)
	}

	if t.style == StyleCompact {
		r := &compactRenderer{dict: t.dict, noun: noun}
		return r.render(root)
	}
	if hasNestedThen(root) {
		slog.Debug("Nested conditional has no sentence form, using cosmetic normalization",
			"formula", src)
		return Normalize(src)
	}
	r := &sentenceRenderer{dict: t.dict, noun: noun}
	return r.render(root)
}

// Humanize title cases leftover CAPS_WITH_UNDERSCORES tokens in text
func (t *Translator) Humanize(text string) string {
	return Humanize(text, t.dict)
}
