package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-spellfx/internal/formula"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"2d6+3", "2d6 + 3"},
		{"CARD_VALUE*2", "CARD VALUE * 2"},
		{"spellDamage/2", "spell Damage / 2"},
		{"  1d8   -  agility ", "1d8 - agility"},
		{"", ""},
		{"already clean", "already clean"},
		{"-(-(-3))", "-(-(-3))"},
		{"x*-2", "x * -2"},
		{"- 3 + 1", "-3 + 1"},
		{"(2)-1", "(2) - 1"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.expected, formula.Normalize(tc.in))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"HEADS_COUNT*8+(ALL_HEADS?15:0)",
		"currentHealth<maxHealth/2?10:0",
		"fireDamage × 2",
		"a  -  -b",
		"-(-(-3))",
		"( - 4)*2",
		"2d6+intelligenceMod",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := formula.Normalize(in)
			assert.Equal(t, once, formula.Normalize(once))
		})
	}
}

func TestIsDice(t *testing.T) {
	assert.True(t, formula.IsDice("2d6 + 3"))
	assert.True(t, formula.IsDice("1D20"))
	assert.False(t, formula.IsDice("d20"))
	assert.False(t, formula.IsDice("HEADS_COUNT * 2"))
}
