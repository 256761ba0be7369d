package spell_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func (s *NormalizeTestSuite) TestNil() {
	s.Nil(spell.Normalize(nil))
}

func (s *NormalizeTestSuite) TestSingleEffectType() {
	cfg := spell.Normalize(&spell.Config{EffectType: spell.CategoryHealing})

	s.Equal([]spell.Category{spell.CategoryHealing}, cfg.EffectTypes)
	s.Empty(cfg.EffectType)
}

func (s *NormalizeTestSuite) TestEffectTypesWinOverLegacyField() {
	cfg := spell.Normalize(&spell.Config{
		EffectTypes: []spell.Category{spell.CategoryDamage},
		EffectType:  spell.CategoryHealing,
	})

	s.Equal([]spell.Category{spell.CategoryDamage}, cfg.EffectTypes)
}

func (s *NormalizeTestSuite) TestSummonAndTransformAliases() {
	summon := &spell.SummoningConfig{Duration: spell.Num(5)}
	transform := &spell.TransformationConfig{TargetType: "self"}

	cfg := spell.Normalize(&spell.Config{SummonConfig: summon, TransformConfig: transform})

	s.Same(summon, cfg.SummoningConfig)
	s.Same(transform, cfg.TransformationConfig)
	s.Nil(cfg.SummonConfig)
	s.Nil(cfg.TransformConfig)
}

func (s *NormalizeTestSuite) TestCanonicalSummoningWins() {
	canonical := &spell.SummoningConfig{}
	cfg := spell.Normalize(&spell.Config{
		SummoningConfig: canonical,
		SummonConfig:    &spell.SummoningConfig{},
	})

	s.Same(canonical, cfg.SummoningConfig)
}

func (s *NormalizeTestSuite) TestHealingResolutionAliases() {
	coins := &spell.FormulaConfig{Formula: "HEADS_COUNT * 3", FlipCount: spell.Num(4)}
	cards := &spell.FormulaConfig{Formula: "CARD_VALUE", DrawCount: spell.Num(2)}

	cfg := spell.Normalize(&spell.Config{
		HealingConfig:     &spell.HealingConfig{},
		HealingCoinConfig: coins,
		HealingCardConfig: cards,
	})

	s.Same(coins, cfg.HealingConfig.CoinConfig)
	s.Same(cards, cfg.HealingConfig.CardConfig)
	s.Nil(cfg.HealingCoinConfig)
	s.Nil(cfg.HealingCardConfig)
}

func (s *NormalizeTestSuite) TestTopLevelResolutionConfigsFillDamage() {
	s.Run("fills missing damage configs", func() {
		cards := &spell.FormulaConfig{Formula: "CARD_VALUE"}
		cfg := spell.Normalize(&spell.Config{
			DamageConfig: &spell.DamageConfig{},
			CardConfig:   cards,
			DiceConfig:   &spell.FormulaConfig{Formula: "2d6"},
		})

		s.Same(cards, cfg.DamageConfig.CardConfig)
		s.Equal("2d6", cfg.DamageConfig.Formula)
	})

	s.Run("keeps damage config's own values", func() {
		own := &spell.FormulaConfig{Formula: "CARD_VALUE * 2"}
		cfg := spell.Normalize(&spell.Config{
			DamageConfig: &spell.DamageConfig{Formula: "1d8", CardConfig: own},
			CardConfig:   &spell.FormulaConfig{Formula: "CARD_VALUE"},
			DiceConfig:   &spell.FormulaConfig{Formula: "2d6"},
		})

		s.Same(own, cfg.DamageConfig.CardConfig)
		s.Equal("1d8", cfg.DamageConfig.Formula)
	})
}

func (s *NormalizeTestSuite) TestPrimaryDamage() {
	s.Run("dice plus flat", func() {
		cfg := spell.Normalize(&spell.Config{
			PrimaryDamage: &spell.DiceAndFlat{Dice: "2d6", Flat: spell.Num(3)},
		})

		s.Require().NotNil(cfg.DamageConfig)
		s.Equal("2d6 + 3", cfg.DamageConfig.Formula)
		s.Nil(cfg.PrimaryDamage)
	})

	s.Run("zero flat is dropped", func() {
		cfg := spell.Normalize(&spell.Config{
			PrimaryDamage: &spell.DiceAndFlat{Dice: "1d10"},
		})

		s.Equal("1d10", cfg.DamageConfig.Formula)
	})
}

func (s *NormalizeTestSuite) TestLegacyHealingAndHotConfig() {
	cfg := spell.Normalize(&spell.Config{
		Healing: &spell.DiceAndFlat{Dice: "2d8", Flat: spell.Num(4)},
		HealingConfig: &spell.HealingConfig{
			HotConfig: &spell.HotConfig{Duration: spell.Num(4), TickFormula: "1d4 + spirit"},
		},
	})

	s.Equal("2d8 + 4", cfg.HealingConfig.Formula)
	s.Equal(4, cfg.HealingConfig.HotDuration.IntOr(0))
	s.Equal("1d4 + spirit", cfg.HealingConfig.HotFormula)
	s.Nil(cfg.HealingConfig.HotConfig)
}

func (s *NormalizeTestSuite) TestDotFormulaFallsBackToDamageFormula() {
	cfg := spell.Normalize(&spell.Config{
		DamageConfig: &spell.DamageConfig{
			Formula:   "1d6",
			DotConfig: &spell.DotConfig{},
		},
	})

	s.Equal("1d6", cfg.DamageConfig.DotConfig.DotFormula)
}

func (s *NormalizeTestSuite) TestControlSaveAbilities() {
	testCases := []struct {
		in       string
		expected string
	}{
		{"dexterity", "agility"},
		{"wisdom", "spirit"},
		{"strength", "strength"},
		{"", ""},
	}

	for _, tc := range testCases {
		s.Run(tc.in, func() {
			cfg := spell.Normalize(&spell.Config{
				ControlConfig: &spell.ControlConfig{SavingThrowType: tc.in},
			})
			s.Equal(tc.expected, cfg.ControlConfig.SavingThrowType)
		})
	}
}

func (s *NormalizeTestSuite) TestIdempotent() {
	cfg := &spell.Config{
		EffectType:        spell.CategoryDamage,
		PrimaryDamage:     &spell.DiceAndFlat{Dice: "2d6", Flat: spell.Num(1)},
		HealingConfig:     &spell.HealingConfig{},
		HealingCoinConfig: &spell.FormulaConfig{Formula: "HEADS_COUNT"},
		SummonConfig:      &spell.SummoningConfig{},
	}

	once := spell.Normalize(cfg)
	snapshot := *once
	twice := spell.Normalize(once)

	s.Equal(snapshot, *twice)
}

func (s *NormalizeTestSuite) TestLeavesInputUntouched() {
	cfg := &spell.Config{
		EffectType:        spell.CategoryHealing,
		PrimaryDamage:     &spell.DiceAndFlat{Dice: "2d6"},
		DamageConfig:      &spell.DamageConfig{DotConfig: &spell.DotConfig{}},
		Healing:           &spell.DiceAndFlat{Dice: "1d8"},
		HealingConfig:     &spell.HealingConfig{HotConfig: &spell.HotConfig{TickFormula: "1d4"}},
		HealingCoinConfig: &spell.FormulaConfig{Formula: "HEADS_COUNT"},
		SummonConfig:      &spell.SummoningConfig{},
		ControlConfig:     &spell.ControlConfig{SavingThrowType: "wisdom"},
	}
	dc, dot, hc, control := cfg.DamageConfig, cfg.DamageConfig.DotConfig, cfg.HealingConfig, cfg.ControlConfig

	out := spell.Normalize(cfg)
	s.NotSame(cfg, out)
	s.Equal("2d6", out.DamageConfig.DotConfig.DotFormula)
	s.Equal("spirit", out.ControlConfig.SavingThrowType)

	s.Equal(spell.CategoryHealing, cfg.EffectType)
	s.Nil(cfg.EffectTypes)
	s.NotNil(cfg.PrimaryDamage)
	s.NotNil(cfg.Healing)
	s.NotNil(cfg.HealingCoinConfig)
	s.NotNil(cfg.SummonConfig)
	s.Same(dc, cfg.DamageConfig)
	s.Empty(dc.Formula)
	s.Empty(dot.DotFormula)
	s.Same(hc, cfg.HealingConfig)
	s.NotNil(hc.HotConfig)
	s.Nil(hc.CoinConfig)
	s.Empty(hc.Formula)
	s.Equal("wisdom", control.SavingThrowType)
}
