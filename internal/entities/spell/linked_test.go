package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

func TestLinkedSpellIDs(t *testing.T) {
	t.Run("nil spell", func(t *testing.T) {
		assert.Nil(t, spell.LinkedSpellIDs(nil))
	})

	t.Run("collects procs and mechanics", func(t *testing.T) {
		cfg := &spell.Config{
			ID:                "spell-self",
			ChanceOnHitConfig: &spell.ChanceOnHitConfig{SpellEffect: "spell-b"},
			DamageConfig: &spell.DamageConfig{
				ChanceOnHitConfig: &spell.ChanceOnHitConfig{SpellEffect: "spell-a"},
			},
			MechanicsConfig: []spell.MechanicsConfig{
				{ProcOptions: &spell.ProcOptions{SpellID: "spell-b"}},
			},
			EffectMechanicsConfigs: map[string]*spell.MechanicsConfig{
				"effect_damage": {FormOptions: &spell.FormOptions{FormSpellID: "spell-c"}},
				"effect_buff":   {ProcOptions: &spell.ProcOptions{SpellID: "spell-self"}},
				"effect_debuff": nil,
			},
		}

		assert.Equal(t, []string{"spell-a", "spell-b", "spell-c"}, spell.LinkedSpellIDs(cfg))
	})
}
