package effects_test

import (
	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/orchestrators/effects"
)

func (s *OrchestratorTestSuite) TestFormatDamage() {
	s.Run("instant damage with save", func() {
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryDamage},
			TypeConfig:  &spell.TypeConfig{School: "fire", SecondaryElement: "frost"},
			DamageConfig: &spell.DamageConfig{
				Formula:         "3d6",
				SavingThrow:     spell.SavingThrow{Enabled: true, Ability: "agility"},
				DifficultyClass: spell.Num(13),
				PartialEffect:   true,
			},
		}, "damage")

		s.Equal("Fire & Frost damage", section.Header)
		s.Equal([]spell.FormattedEffect{
			{Name: "Instant Damage", Description: "Roll dice", MechanicsText: "3d6"},
			{Name: "Saving Throw", Description: "Agility save DC 13", MechanicsText: "damage/2 on save"},
		}, section.Effects)
	})

	s.Run("instant and over time", func() {
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryDamage},
			DamageConfig: &spell.DamageConfig{
				Formula:      "2d6",
				HasDotEffect: true,
				DotConfig:    &spell.DotConfig{Duration: spell.Num(3), DotFormula: "1d4"},
			},
		}, "damage")

		s.Equal([]spell.FormattedEffect{
			{Name: "Instant Damage", Description: "Roll dice", MechanicsText: "2d6"},
			{Name: "Damage Over Time", Description: "Per round for 3 rounds", MechanicsText: "1d4 per round for 3 rounds"},
		}, section.Effects)
	})

	s.Run("critical hit", func() {
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryDamage},
			DamageConfig: &spell.DamageConfig{
				Formula:           "1d8",
				CriticalHitConfig: &spell.CriticalHitConfig{Enabled: true},
			},
		}, "damage")

		s.Require().Len(section.Effects, 2)
		s.Equal("Critical Hit", section.Effects[1].Name)
		s.Equal("Enhanced damage on critical", section.Effects[1].MechanicsText)
	})
}

func (s *OrchestratorTestSuite) TestFormatHealing_Shield() {
	section := s.format(&spell.Config{
		EffectTypes: []spell.Category{spell.CategoryHealing},
		HealingConfig: &spell.HealingConfig{
			HealingType:         "shield",
			ShieldFormula:       "4d6",
			ShieldDuration:      spell.Num(2),
			ShieldDamageTypes:   "magical",
			ShieldBreakBehavior: "shatter",
		},
	}, "healing")

	s.Equal([]spell.FormattedEffect{
		{Name: "Shield Absorption", Description: "Absorbs damage", MechanicsText: "4d6 absorption for 2 rounds"},
		{Name: "Shield Property", Description: "Magical only", MechanicsText: "Special shield behavior"},
		{Name: "Shield Property", Description: "Shatters", MechanicsText: "Special shield behavior"},
	}, section.Effects)
}

func (s *OrchestratorTestSuite) TestFormatBuff() {
	s.mockDescriber.EXPECT().
		DescribeStat("fire_resistance", float64(50)).
		Return("Resistant (takes half fire damage)")

	section := s.format(&spell.Config{
		EffectTypes: []spell.Category{spell.CategoryBuff},
		BuffConfig: &spell.BuffConfig{
			StatModifiers: []spell.StatModifier{
				{Name: "strength", Magnitude: spell.Num(2)},
				{Name: "fire_resistance", Magnitude: spell.Num(50), MagnitudeType: "percentage"},
				{Name: "fire_absorption", Magnitude: spell.Num(20)},
			},
			StatusEffects: []spell.StatusEffect{
				{ID: "haste", Level: "major", Duration: spell.Text("3 rounds")},
			},
			DurationType:  "time",
			DurationValue: spell.Num(10),
			DurationUnit:  "minutes",
			Concentration: true,
		},
	}, "buff")

	s.Equal("10 minutes (Concentration)", section.Header)
	s.Equal([]spell.FormattedEffect{
		{Name: "Stat Modifiers", MechanicsText: "strength: +2"},
		{Name: "Resistances", MechanicsText: "fire_resistance: Resistant (takes half fire damage)"},
		{Name: "Damage Absorption", MechanicsText: "Absorbs up to 20 damage total (fire only)"},
		{Name: "Major Haste", Description: "Haste - move and act more quickly", MechanicsText: "3 rounds duration"},
	}, section.Effects)
}

func (s *OrchestratorTestSuite) TestFormatDebuff() {
	s.Run("catalog status", func() {
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryDebuff},
			DebuffConfig: &spell.DebuffConfig{
				StatusEffects: []spell.StatusEffect{
					{ID: "frightened", Option: "shaken", SaveFrequency: "end_of_turn"},
				},
				DifficultyClass: spell.Num(14),
				DurationType:    "rounds",
				DurationValue:   spell.Num(2),
				StackingRule:    "cumulative",
				MaxStacks:       spell.Num(3),
			},
		}, "debuff")

		s.Equal("2 rounds", section.Header)
		s.Equal([]spell.FormattedEffect{
			{
				Name:          "Frightened",
				Description:   "Shaken - disadvantage on ability checks while fear source is visible",
				MechanicsText: "Wisdom save DC 14 (overcome on save), save each turn",
			},
			{Name: "Stacking Rules", Description: "Cumulative (max 3 stacks)"},
		}, section.Effects)
	})

	s.Run("charm", func() {
		canAttack := false
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryDebuff},
			DebuffConfig: &spell.DebuffConfig{
				StatusEffects: []spell.StatusEffect{
					{ID: "charmed", CharmType: "dominated", CanAttackCharmer: &canAttack, SaveDC: spell.Num(16)},
				},
			},
		}, "debuff")

		s.Require().Len(section.Effects, 1)
		s.Equal("Charmed (dominated) - target must obey your commands without question (cannot attack charmer)",
			section.Effects[0].Description)
		s.Equal("Wisdom save DC 16 (broken on save)", section.Effects[0].MechanicsText)
	})

	s.Run("unknown status option", func() {
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryDebuff},
			DebuffConfig: &spell.DebuffConfig{
				StatusEffects: []spell.StatusEffect{{ID: "hexed", Option: "lingering", SaveType: "none"}},
			},
		}, "debuff")

		s.Equal([]spell.FormattedEffect{
			{Name: "Hexed", Description: "Hexed (Lingering)"},
		}, section.Effects)
	})
}

func (s *OrchestratorTestSuite) TestFormatControl() {
	section := s.format(&spell.Config{
		EffectTypes: []spell.Category{spell.CategoryControl},
		ControlConfig: &spell.ControlConfig{
			ControlType:     "forced_movement",
			SavingThrowType: "strength",
			DifficultyClass: spell.Num(14),
			Concentration:   true,
			Duration:        spell.Num(2),
			Effects: []spell.ControlEffect{
				{
					ID:   "gust",
					Name: "Gust",
					Config: &spell.ControlEffectOpts{
						MovementFlavor: "wind",
						MovementType:   "pull",
						Distance:       spell.Num(20),
					},
				},
			},
		},
	}, "control")

	s.Equal("2 rounds (Concentration)", section.Header)
	s.Equal([]spell.FormattedEffect{
		{Name: "Gust", MechanicsText: "Powerful winds carry the target 20 feet toward the caster"},
		{Name: "Saving Throw", Description: "DC 14 Strength saving throw"},
	}, section.Effects)
}

func (s *OrchestratorTestSuite) TestFormatControl_LegacyNames() {
	section := s.format(&spell.Config{
		EffectTypes: []spell.Category{spell.CategoryControl},
		ControlConfig: &spell.ControlConfig{
			Instant: true,
			Effects: []spell.ControlEffect{
				{ID: "stunned", Name: "stunned"},
				{ID: "knocked_back", Name: "knocked_back"},
			},
		},
	}, "control")

	s.Equal("Instant", section.Header)
	s.Equal([]spell.FormattedEffect{
		{Name: "Stunned", Description: "Target cannot take actions or reactions"},
		{Name: "Knocked Back", Description: "Target is knocked back"},
	}, section.Effects)
}

func (s *OrchestratorTestSuite) TestFormatUtility() {
	section := s.format(&spell.Config{
		EffectTypes: []spell.Category{spell.CategoryUtility},
		UtilityConfig: &spell.UtilityConfig{
			UtilityType:  "movement",
			Duration:     spell.Num(10),
			DurationUnit: "minutes",
			Effects: []spell.UtilityEffect{
				{ID: "feather_fall", Description: "Fall slowly", Duration: spell.Num(1)},
			},
		},
	}, "utility")

	s.Equal("Movement: 10 minutes", section.Header)
	s.Equal([]spell.FormattedEffect{
		{Name: "Feather Fall", Description: "Fall slowly", MechanicsText: "for 1 minute"},
	}, section.Effects)
}

func (s *OrchestratorTestSuite) TestFormatPurification() {
	s.Run("dispel", func() {
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryPurification},
			PurificationConfig: &spell.PurificationConfig{
				SelectedEffects: []spell.PurificationEffect{
					{Name: "Dispel Magic", SpecificEffectTypes: []string{"curse", "poison"}, CustomEffects: spell.Num(2)},
					{Name: "Raise", PurificationType: "resurrection"},
				},
			},
		}, "purification")

		s.Equal("Purification", section.Header)
		s.Equal([]spell.FormattedEffect{
			{Name: "Dispel Magic", Description: "Targets: curse, poison", MechanicsText: "Removes up to 2 effects"},
		}, section.Effects)
	})

	s.Run("default resurrection", func() {
		section := s.format(&spell.Config{
			EffectTypes:        []spell.Category{spell.CategoryPurification},
			PurificationConfig: &spell.PurificationConfig{PurificationType: "resurrection"},
		}, "purification")

		s.Equal("Resurrection", section.Header)
		s.Equal([]spell.FormattedEffect{
			{Name: "Resurrection", Description: "Roll dice", MechanicsText: "2d8 + SPI health restored"},
		}, section.Effects)
	})
}

func (s *OrchestratorTestSuite) TestFormatRestoration() {
	s.Run("instant and over time", func() {
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryRestoration},
			RestorationConfig: &spell.RestorationConfig{
				ResourceType:     "mana",
				Formula:          "2d8",
				IsOverTime:       true,
				OverTimeFormula:  "1d4",
				OverTimeDuration: spell.Num(3),
				TickFrequency:    "round",
			},
		}, "restoration")

		s.Equal("Mana", section.Header)
		s.Equal([]spell.FormattedEffect{
			{Name: "Instant Restoration", Description: "Roll dice", MechanicsText: "2d8 Mana restored"},
			{Name: "Restoration Over Time", Description: "Start of Round for 3 rounds", MechanicsText: "1d4 Mana restored"},
		}, section.Effects)
	})

	s.Run("progressive without stages", func() {
		section := s.format(&spell.Config{
			EffectTypes: []spell.Category{spell.CategoryRestoration},
			RestorationConfig: &spell.RestorationConfig{
				ResourceType:          "rage",
				Duration:              spell.Text("over_time"),
				OverTimeFormula:       "5",
				IsProgressiveOverTime: true,
				Application:           "end",
				TickFrequency:         "turn",
			},
		}, "restoration")

		s.Equal([]spell.FormattedEffect{
			{Name: "Restoration Over Time (Progressive)", Description: "End of Turn for 3 turns", MechanicsText: "5 Rage restored (see stages below)"},
			{Name: "Configure Stages", Description: "Add stages in the spellcrafting wizard", MechanicsText: "Custom formulas per stage"},
		}, section.Effects)
	})
}

func (s *OrchestratorTestSuite) TestFormatChanneling() {
	output, err := s.orchestrator.FormatSpell(s.ctx, &effects.FormatSpellInput{Spell: &spell.Config{
		SpellType:   "CHANNELED",
		DamageTypes: []string{"fire"},
		ChannelingConfig: &spell.ChannelingConfig{
			MaxDuration: spell.Num(3),
			PerRoundFormulas: map[string][]spell.RoundFormula{
				"damage": {{Formula: "1d6"}, {Formula: "2d6"}},
			},
			MovementRestriction: "stationary",
		},
	}})
	s.Require().NoError(err)

	s.Require().Len(output.Sections, 1)
	s.Equal(effects.SectionChanneling, output.Sections[0].Category)
	s.Equal([]spell.FormattedEffect{
		{Name: "Max Duration", Description: "3 rounds"},
		{Name: "Fire Damage Scaling", Description: "Round 1: 1d6"},
		{Name: "Fire Damage Scaling", Description: "Round 2: 2d6"},
		{Name: "Movement", Description: "Cannot move while channeling"},
	}, output.Effects)
}

func (s *OrchestratorTestSuite) TestFormatMechanics() {
	output, err := s.orchestrator.FormatSpell(s.ctx, &effects.FormatSpellInput{
		Spell: &spell.Config{
			EffectMechanicsConfigs: map[string]*spell.MechanicsConfig{
				"effect_damage": {
					Enabled:        true,
					System:         effects.SystemComboPoints,
					Type:           "spender",
					ThresholdValue: spell.Num(3),
					ComboOptions:   &spell.ComboOptions{ConsumptionRule: "all"},
				},
				"effect_buff": {Enabled: false, System: effects.SystemComboPoints, Type: "builder"},
			},
			MechanicsConfig: []spell.MechanicsConfig{
				{
					Enabled: true,
					System:  effects.SystemProc,
					ProcOptions: &spell.ProcOptions{
						ProcChance:   spell.Num(20),
						SpellID:      "spell-fireball",
						TriggerLimit: spell.Num(2),
					},
				},
				{
					Enabled:      true,
					System:       effects.SystemToxic,
					Type:         "toxic_applier",
					ToxicOptions: &spell.ToxicOptions{SelectedToxicTypes: map[string]int{"venom": 1, "blight": 2}},
				},
			},
		},
		LinkedSpells: map[string]*spell.Config{
			"spell-fireball": {Name: "Fireball", DamageConfig: &spell.DamageConfig{Formula: "8d6"}},
		},
	})
	s.Require().NoError(err)

	s.Require().Len(output.Sections, 1)
	s.Equal(effects.SectionMechanics, output.Sections[0].Category)
	s.Equal([]spell.FormattedEffect{
		{Name: "Combo Points", Description: "Damage", MechanicsText: "Requires 3 combo points (consumes all)"},
		{Name: "Proc System", Description: "Global", MechanicsText: "20% chance to trigger Fireball (8d6 damage) (max 2/round)"},
		{Name: "Toxic System", Description: "Global", MechanicsText: "Applies 2x Blight, 1x Venom for 3 rounds"},
	}, output.Effects)
}
