package effects

import "github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"

// FormatSpellInput contains the spell to format
type FormatSpellInput struct {
	Spell *spell.Config
	// LinkedSpells resolves spell IDs referenced by procs and form
	// mechanics to their names. Optional.
	LinkedSpells map[string]*spell.Config
}

// FormatSpellOutput contains the formatted records
type FormatSpellOutput struct {
	// Effects is every record in display order
	Effects []spell.FormattedEffect `json:"effects"`
	// Sections groups the same records by category
	Sections []Section `json:"sections"`
}

// Section is the output of one category
type Section struct {
	Category string                  `json:"category"`
	Header   string                  `json:"header,omitempty"`
	Effects  []spell.FormattedEffect `json:"effects"`
}

func (o *FormatSpellOutput) addSection(category, header string, effects []spell.FormattedEffect) {
	if len(effects) == 0 {
		return
	}
	o.Sections = append(o.Sections, Section{
		Category: category,
		Header:   header,
		Effects:  effects,
	})
	o.Effects = append(o.Effects, effects...)
}
