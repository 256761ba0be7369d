package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/formula"
)

func TestDefaultDictionary(t *testing.T) {
	dict, err := formula.DefaultDictionary()
	require.NoError(t, err)

	t.Run("lookup ignores case and follows aliases", func(t *testing.T) {
		v, ok := dict.Lookup("face_cards")
		require.True(t, ok)
		assert.Equal(t, "FACE_CARD_COUNT", v.Token)
		assert.Equal(t, "face card", v.PerUnit)
	})

	t.Run("display names", func(t *testing.T) {
		assert.Equal(t, "Intelligence", dict.Display("intelligence"))
		assert.Equal(t, "Spirit", dict.Display("wisdom"))
		assert.Equal(t, "Mystery Token", dict.Display("MYSTERY_TOKEN"))
		assert.Equal(t, "someStat", dict.Display("someStat"))
	})

	t.Run("compact names fall back to display", func(t *testing.T) {
		assert.Equal(t, "flame mastery", dict.CompactName("fireDamage"))
		assert.Equal(t, "Intelligence", dict.CompactName("intelligence"))
	})

	t.Run("abbreviations", func(t *testing.T) {
		assert.True(t, dict.IsAbbreviation("HP"))
		assert.False(t, dict.IsAbbreviation("hp"))
	})
}

func TestLoadDictionary(t *testing.T) {
	t.Run("display defaults to humanized token", func(t *testing.T) {
		dict, err := formula.LoadDictionary([]byte(`
abbreviations: [HP]
variables:
  - token: BONUS_HP
`))
		require.NoError(t, err)
		assert.Equal(t, "Bonus HP", dict.Display("BONUS_HP"))
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := formula.LoadDictionary([]byte(`
variables:
  - display: Nothing
`))
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("duplicate alias", func(t *testing.T) {
		_, err := formula.LoadDictionary([]byte(`
variables:
  - token: strength
  - token: might
    aliases: [STRENGTH]
`))
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := formula.LoadDictionary([]byte("variables: [:"))
		assert.Error(t, err)
	})
}
