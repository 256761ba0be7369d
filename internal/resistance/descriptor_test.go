package resistance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/resistance"
)

var damageTypes = []string{
	"fire", "cold", "lightning", "acid", "poison", "necrotic", "radiant",
	"psychic", "thunder", "force", "physical", "slashing", "piercing",
	"bludgeoning", "all damage", "damage",
}

type DescriptorTestSuite struct {
	suite.Suite
	descriptor *resistance.Descriptor
}

func TestDescriptorSuite(t *testing.T) {
	suite.Run(t, new(DescriptorTestSuite))
}

func (s *DescriptorTestSuite) SetupSuite() {
	d, err := resistance.New()
	s.Require().NoError(err)
	s.descriptor = d
}

func (s *DescriptorTestSuite) TestDescribe() {
	s.Equal("Flame Absorb (heals for 100% of fire damage taken)", s.descriptor.Describe(-100, "fire"))
	s.Equal("Resistant (takes half damage)", s.descriptor.Describe(50, "damage"))
}

func (s *DescriptorTestSuite) TestTiers() {
	expected := map[int]string{
		-200: "vampiric",
		-100: "absorbing",
		-50:  "draining",
		-25:  "siphoning",
		0:    "immune",
		25:   "highly_resistant",
		50:   "resistant",
		75:   "guarded",
		100:  "nullified",
		125:  "susceptible",
		150:  "exposed",
		200:  "vulnerable",
	}

	s.Len(s.descriptor.Magnitudes(), len(expected))
	for magnitude, name := range expected {
		got, ok := s.descriptor.Tier(magnitude)
		s.True(ok, "magnitude %d", magnitude)
		s.Equal(name, got)
	}

	_, ok := s.descriptor.Tier(10)
	s.False(ok)
}

func (s *DescriptorTestSuite) TestTableIsTotal() {
	for _, m := range s.descriptor.Magnitudes() {
		for _, dt := range damageTypes {
			s.NotEmpty(s.descriptor.Describe(m, dt), "magnitude %d type %s", m, dt)
		}
	}
}

func (s *DescriptorTestSuite) TestUnknownDamageTypeUsesGeneric() {
	s.Equal(s.descriptor.Describe(50, "damage"), s.descriptor.Describe(50, "arcane"))
	s.Equal(s.descriptor.Describe(50, "damage"), s.descriptor.Describe(50, ""))
}

func (s *DescriptorTestSuite) TestUnknownMagnitude() {
	s.Equal("+10% resistance", s.descriptor.Describe(10, "fire"))
	s.Equal("-10% resistance", s.descriptor.Describe(-10, "fire"))
}

func (s *DescriptorTestSuite) TestDescribeStat() {
	s.Equal(s.descriptor.Describe(0, "cold"), s.descriptor.DescribeStat("frost_resistance", 0))
	s.Equal(s.descriptor.Describe(50, "damage"), s.descriptor.DescribeStat("resistance", 49.6))
}

func TestDamageTypeFromStat(t *testing.T) {
	testCases := map[string]string{
		"fire_resistance":         "fire",
		"iceResistance":           "cold",
		"electric_resistance":     "lightning",
		"death_resistance":        "necrotic",
		"holy_resistance":         "radiant",
		"mental_resistance":       "psychic",
		"sonic_resistance":        "thunder",
		"slashing_resistance":     "slashing",
		"physical_resistance":     "physical",
		"all_resistance":          "all damage",
		"resistance":              "damage",
		"":                        "damage",
		"fire_and_ice_resistance": "fire",
	}

	for name, expected := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, expected, resistance.DamageTypeFromStat(name))
		})
	}
}

func TestIsResistanceStat(t *testing.T) {
	assert.True(t, resistance.IsResistanceStat("fire_resistance", "percentage"))
	assert.False(t, resistance.IsResistanceStat("fire_resistance", "flat"))
	assert.False(t, resistance.IsResistanceStat("strength", "percentage"))
}

func TestDescribeAbsorption(t *testing.T) {
	testCases := []struct {
		name      string
		stat      string
		magnitude spell.Value
		buff      bool
		expected  string
	}{
		{
			name:      "buff per hit",
			stat:      "fire_absorption",
			magnitude: spell.Text("2d6"),
			buff:      true,
			expected:  "Absorbs 2d6 damage per hit (fire only)",
		},
		{
			name:      "buff total",
			stat:      "absorption",
			magnitude: spell.Num(20),
			buff:      true,
			expected:  "Absorbs up to 20 damage total",
		},
		{
			name:      "debuff per impact",
			stat:      "cold absorption",
			magnitude: spell.Text("1d4"),
			expected:  "Weakens cold absorption barriers, reducing protection by 1d4 per impact",
		},
		{
			name:      "debuff flat",
			stat:      "damage_absorption",
			magnitude: spell.Num(-15),
			expected:  "Shatters absorption barriers, permanently reducing protection by 15 points",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, resistance.DescribeAbsorption(tc.stat, tc.magnitude, tc.buff))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing generic description", func(t *testing.T) {
		_, err := resistance.Load([]byte(`
tiers:
  - name: odd
    magnitude: 10
    descriptions:
      fire: "Odd"
`))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("duplicate magnitude", func(t *testing.T) {
		_, err := resistance.Load([]byte(`
tiers:
  - name: a
    magnitude: 10
    descriptions: {damage: "A"}
  - name: b
    magnitude: 10
    descriptions: {damage: "B"}
`))
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
	})
}
