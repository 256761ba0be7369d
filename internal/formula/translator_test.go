package formula_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/formula"
)

type TranslatorTestSuite struct {
	suite.Suite
	dict     *formula.Dictionary
	sentence *formula.Translator
	compact  *formula.Translator
}

func TestTranslatorSuite(t *testing.T) {
	suite.Run(t, new(TranslatorTestSuite))
}

func (s *TranslatorTestSuite) SetupSuite() {
	dict, err := formula.DefaultDictionary()
	s.Require().NoError(err)
	s.dict = dict

	s.sentence, err = formula.NewTranslator(&formula.TranslatorConfig{
		Style:      formula.StyleSentence,
		Dictionary: dict,
	})
	s.Require().NoError(err)

	s.compact, err = formula.NewTranslator(&formula.TranslatorConfig{
		Style:      formula.StyleCompact,
		Dictionary: dict,
	})
	s.Require().NoError(err)
}

func (s *TranslatorTestSuite) TestNewTranslator() {
	s.Run("nil config", func() {
		_, err := formula.NewTranslator(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing dictionary", func() {
		_, err := formula.NewTranslator(&formula.TranslatorConfig{Style: formula.StyleSentence})
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown style", func() {
		_, err := formula.NewTranslator(&formula.TranslatorConfig{Style: "poetic", Dictionary: s.dict})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("empty style defaults to sentence", func() {
		tr, err := formula.NewTranslator(&formula.TranslatorConfig{Dictionary: s.dict})
		s.Require().NoError(err)
		s.Equal(formula.StyleSentence, tr.Style())
	})
}

func (s *TranslatorTestSuite) TestSentence() {
	testCases := []struct {
		name       string
		formula    string
		effectType string
		expected   string
	}{
		{
			name:       "coin multiplier with all heads bonus",
			formula:    "HEADS_COUNT * 8 + (ALL_HEADS ? 15 : 0)",
			effectType: "damage",
			expected:   "8 damage per head flipped, plus 15 bonus damage if all coins are heads",
		},
		{
			name:       "dice formulas are only normalized",
			formula:    "1d6 + intelligence",
			effectType: "damage",
			expected:   "1d6 + intelligence",
		},
		{
			name:       "dice spacing is fixed",
			formula:    "2d6+spellDamage",
			effectType: "damage",
			expected:   "2d6 + spell Damage",
		},
		{
			name:       "streak bonus",
			formula:    "HEADS_COUNT * 7 + (LONGEST_STREAK > 2 ? LONGEST_STREAK * 5 : 0)",
			effectType: "healing",
			expected:   "7 healing per head flipped, plus 5 healing per streak length if streak is 3 or more",
		},
		{
			name:       "card values plus face cards",
			formula:    "CARD_VALUE + FACE_CARD_COUNT * 5",
			effectType: "damage",
			expected:   "damage equal to card values plus 5 damage per face card",
		},
		{
			name:       "hearts",
			formula:    "CARD_VALUE + HEARTS_COUNT * 2",
			effectType: "healing",
			expected:   "healing equal to card values plus 2 healing per heart",
		},
		{
			name:       "health below half",
			formula:    "currentHealth < maxHealth/2 ? 10 : 0",
			effectType: "damage",
			expected:   "10 bonus damage if current health is less than half of max health",
		},
		{
			name:       "health below half with fallback",
			formula:    "currentHealth < maxHealth/2 ? 10 : 5",
			effectType: "damage",
			expected:   "10 damage if current health is less than half of max health, otherwise 5 damage",
		},
		{
			name:       "mana above three quarters",
			formula:    "currentMana > maxMana * 0.75 ? 8 : 0",
			effectType: "damage",
			expected:   "8 bonus damage if current mana is above 75% of max mana",
		},
		{
			name:       "mana sacrifice",
			formula:    "currentMana >= 30 ? currentMana / 3 : 0",
			effectType: "damage",
			expected:   "one-third of current mana if you have at least 30 mana",
		},
		{
			name:       "generic conditional",
			formula:    "roundNumber > 3 ? 10 : 0",
			effectType: "damage",
			expected:   "10 damage if round number is above 3",
		},
		{
			name:       "shorthand conditional",
			formula:    "15:0",
			effectType: "damage",
			expected:   "15 bonus if condition is met",
		},
		{
			name:       "level scaling",
			formula:    "level * 2",
			effectType: "healing",
			expected:   "2 healing per character level",
		},
		{
			name:       "exhaustion penalty",
			formula:    "exhaustionLevel * 3",
			effectType: "damage",
			expected:   "3 damage penalty per exhaustion level",
		},
		{
			name:       "action points",
			formula:    "currentActionPoints * 4",
			effectType: "damage",
			expected:   "4 damage per remaining action point",
		},
		{
			name:       "share of damage dealt",
			formula:    "DAMAGE_DEALT * 0.5",
			effectType: "healing",
			expected:   "50% of damage dealt as healing",
		},
		{
			name:       "variable substitution",
			formula:    "intelligence * 2 + spirit",
			effectType: "damage",
			expected:   "Intelligence * 2 + Spirit",
		},
		{
			name:       "caps tokens",
			formula:    "MAX_HP / 4",
			effectType: "healing",
			expected:   "Max HP / 4",
		},
		{
			name:       "empty formula",
			formula:    "  ",
			effectType: "healing",
			expected:   "Variable healing",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.sentence.Translate(tc.formula, tc.effectType))
		})
	}
}

func (s *TranslatorTestSuite) TestCompact() {
	testCases := []struct {
		formula  string
		expected string
	}{
		{"2d6", "Roll 2d6"},
		{"1d8 + intelligence", "Roll 1d8 + Intelligence"},
		{"1d8 + intelligence + spirit", "Roll 1d8 + Intelligence + Spirit"},
		{"2d6 + 3", "Cast 2d6, focus +3"},
		{"CARD_VALUE + intelligence", "Draw cards + Intelligence"},
		{"CARD_VALUE * 2", "Draw cards for damage"},
		{"HEADS_COUNT * 6 + intelligence", "Flip fate coins, 6 per heads + Intelligence"},
		{"HEADS_COUNT * 8 + (ALL_HEADS ? 15 : 0)", "Flip fate coins, 8 per heads"},
		{"HEADS_COUNT + 2", "Flip coins for damage"},
		{"fireDamage * 2 + spellDamage / 2", "Flame mastery × 2 + spell mastery ÷ 2"},
		{"ALL_HEADS ? 15 : 0", "15 bonus if all coins are heads"},
		{"SAME_SUIT ? 10 : 2", "10 if all cards are the same suit, otherwise 2"},
		{"", "Variable effect"},
	}

	for _, tc := range testCases {
		s.Run(tc.formula, func() {
			s.Equal(tc.expected, s.compact.Translate(tc.formula, "damage"))
		})
	}
}

func (s *TranslatorTestSuite) TestUnrecognizedFallsBackToNormalization() {
	inputs := []string{
		"card values + face cards × 5",
		"2 +",
		"@@weird",
		"(1 + 2",
		"0d6",
	}

	for _, in := range inputs {
		s.Run(in, func() {
			expected := formula.Normalize(in)
			s.Equal(expected, s.sentence.Translate(in, "damage"))
			s.Equal(expected, s.compact.Translate(in, "damage"))
		})
	}
}

func (s *TranslatorTestSuite) TestNestedConditionalInTrueBranch() {
	inputs := []string{
		"HP > 5 ? (MP > 3 ? 10 : 5) : 2",
		"ALL_HEADS ? (LONGEST_STREAK > 2 ? 20 : 10) : 0",
	}

	for _, in := range inputs {
		s.Run(in, func() {
			s.Equal(formula.Normalize(in), s.sentence.Translate(in, "damage"))
		})
	}

	s.Run("nested false branch still renders", func() {
		out := s.sentence.Translate("HP > 5 ? 10 : (MP > 3 ? 5 : 2)", "damage")
		s.Contains(out, "otherwise")
	})
}

func (s *TranslatorTestSuite) TestSignsStayAttached() {
	testCases := []struct {
		formula  string
		expected string
	}{
		{"-(-(-3))", "-(-(-3))"},
		{"10 - -2", "10 - -2"},
	}

	for _, tc := range testCases {
		s.Run(tc.formula, func() {
			s.Equal(tc.expected, s.sentence.Translate(tc.formula, "damage"))
			s.Equal(tc.expected, s.compact.Translate(tc.formula, "damage"))
		})
	}
}

func (s *TranslatorTestSuite) TestNeverEmpty() {
	inputs := []string{
		"HEADS_COUNT",
		"x",
		"max(intelligence, spirit)",
		"-3",
		"!ALL_TAILS ? 2 : 0",
		"a && b ? 1 : 0",
	}

	for _, in := range inputs {
		s.Run(in, func() {
			s.NotEmpty(s.sentence.Translate(in, "damage"))
			s.NotEmpty(s.compact.Translate(in, "damage"))
		})
	}
}

func (s *TranslatorTestSuite) TestHumanize() {
	s.Equal("Deals Poker Hand Rank bonus, Max HP and HP",
		s.sentence.Humanize("Deals POKER_HAND_RANK bonus, MAX_HP and HP"))
	s.Equal("already fine", s.sentence.Humanize("already fine"))
}
