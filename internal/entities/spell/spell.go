// Package spell provides the spell document model consumed by the effect
// formatters: the root Config, one sub-config per effect category and the
// cross-cutting critical, proc, channeling and mechanics configs.
package spell

// Resolution is the randomization mechanism behind a spell's formulas
type Resolution string

// Resolution methods
const (
	ResolutionDice  Resolution = "DICE"
	ResolutionCards Resolution = "CARDS"
	ResolutionCoins Resolution = "COINS"
)

// Config is the root spell document. Sub-configs are only formatted when
// their category is listed in EffectTypes.
type Config struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	EffectTypes []Category  `json:"effectTypes"`
	EffectType  Category    `json:"effectType,omitempty"`
	Resolution  Resolution  `json:"resolution,omitempty"`
	SpellType   string      `json:"spellType,omitempty"`
	School      string      `json:"school,omitempty"`
	DamageTypes []string    `json:"damageTypes,omitempty"`
	TypeConfig  *TypeConfig `json:"typeConfig,omitempty"`

	DamageConfig         *DamageConfig         `json:"damageConfig,omitempty"`
	HealingConfig        *HealingConfig        `json:"healingConfig,omitempty"`
	BuffConfig           *BuffConfig           `json:"buffConfig,omitempty"`
	DebuffConfig         *DebuffConfig         `json:"debuffConfig,omitempty"`
	ControlConfig        *ControlConfig        `json:"controlConfig,omitempty"`
	UtilityConfig        *UtilityConfig        `json:"utilityConfig,omitempty"`
	SummoningConfig      *SummoningConfig      `json:"summoningConfig,omitempty"`
	TransformationConfig *TransformationConfig `json:"transformationConfig,omitempty"`
	PurificationConfig   *PurificationConfig   `json:"purificationConfig,omitempty"`
	RestorationConfig    *RestorationConfig    `json:"restorationConfig,omitempty"`

	CriticalHitConfig      *CriticalHitConfig          `json:"criticalConfig,omitempty"`
	ChanceOnHitConfig      *ChanceOnHitConfig          `json:"chanceOnHitConfig,omitempty"`
	ChannelingConfig       *ChannelingConfig           `json:"channelingConfig,omitempty"`
	MechanicsConfig        []MechanicsConfig           `json:"mechanicsConfig,omitempty"`
	EffectMechanicsConfigs map[string]*MechanicsConfig `json:"effectMechanicsConfigs,omitempty"`

	DiceConfig *FormulaConfig `json:"diceConfig,omitempty"`
	CardConfig *FormulaConfig `json:"cardConfig,omitempty"`
	CoinConfig *FormulaConfig `json:"coinConfig,omitempty"`

	// Legacy aliases, folded into the canonical fields by Normalize
	SummonConfig      *SummoningConfig      `json:"summonConfig,omitempty"`
	TransformConfig   *TransformationConfig `json:"transformConfig,omitempty"`
	HealingCoinConfig *FormulaConfig        `json:"healingCoinConfig,omitempty"`
	HealingCardConfig *FormulaConfig        `json:"healingCardConfig,omitempty"`
	PrimaryDamage     *DiceAndFlat          `json:"primaryDamage,omitempty"`
	Healing           *DiceAndFlat          `json:"healing,omitempty"`
}

// TypeConfig carries the spell's elemental identity
type TypeConfig struct {
	School           string `json:"school,omitempty"`
	SecondaryElement string `json:"secondaryElement,omitempty"`
}

// FormulaConfig is a resolution-specific formula. DrawCount applies to
// cards and FlipCount to coins.
type FormulaConfig struct {
	Formula   string `json:"formula,omitempty"`
	DrawCount Value  `json:"drawCount"`
	FlipCount Value  `json:"flipCount"`
}

// DiceAndFlat is the legacy {dice, flat} formula shape
type DiceAndFlat struct {
	Dice string `json:"dice,omitempty"`
	Flat Value  `json:"flat"`
}

// SaveConfig is a saving throw attached to an effect block
type SaveConfig struct {
	Enabled              bool   `json:"enabled,omitempty"`
	SavingThrow          string `json:"savingThrow,omitempty"`
	SavingThrowType      string `json:"savingThrowType,omitempty"`
	DifficultyClass      Value  `json:"difficultyClass"`
	SaveOutcome          string `json:"saveOutcome,omitempty"`
	PartialEffect        bool   `json:"partialEffect,omitempty"`
	PartialEffectFormula string `json:"partialEffectFormula,omitempty"`
}

// DamageConfig describes direct damage, damage over time or both
type DamageConfig struct {
	Formula      string         `json:"formula,omitempty"`
	DamageType   string         `json:"damageType,omitempty"`
	ElementType  string         `json:"elementType,omitempty"`
	HasDotEffect bool           `json:"hasDotEffect,omitempty"`
	DotConfig    *DotConfig     `json:"dotConfig,omitempty"`
	CardConfig   *FormulaConfig `json:"cardConfig,omitempty"`
	CoinConfig   *FormulaConfig `json:"coinConfig,omitempty"`

	SavingThrow          SavingThrow `json:"savingThrow"`
	SavingThrowType      string      `json:"savingThrowType,omitempty"`
	DifficultyClass      Value       `json:"difficultyClass"`
	PartialEffect        bool        `json:"partialEffect,omitempty"`
	PartialEffectType    string      `json:"partialEffectType,omitempty"`
	PartialEffectFormula string      `json:"partialEffectFormula,omitempty"`
	SavingThrowConfig    *SaveConfig `json:"savingThrowConfig,omitempty"`

	CriticalHitConfig *CriticalHitConfig `json:"criticalConfig,omitempty"`
	ChanceOnHitConfig *ChanceOnHitConfig `json:"chanceOnHitConfig,omitempty"`
}

// DotConfig is the over-time part of a damage config
type DotConfig struct {
	Duration          Value          `json:"duration"`
	TickFrequency     string         `json:"tickFrequency,omitempty"`
	DotFormula        string         `json:"dotFormula,omitempty"`
	IsProgressiveDot  bool           `json:"isProgressiveDot,omitempty"`
	ProgressiveStages []Stage        `json:"progressiveStages,omitempty"`
	CardConfig        *FormulaConfig `json:"cardConfig,omitempty"`
	CoinConfig        *FormulaConfig `json:"coinConfig,omitempty"`
}

// Stage is one step of a progressive over-time effect
type Stage struct {
	Turn        Value  `json:"turn"`
	TriggerAt   Value  `json:"triggerAt"`
	Formula     string `json:"formula,omitempty"`
	SpellEffect string `json:"spellEffect,omitempty"`
	Description string `json:"description,omitempty"`
}

// HealingConfig describes direct healing, healing over time and shields
type HealingConfig struct {
	HealingType string         `json:"healingType,omitempty"`
	Formula     string         `json:"formula,omitempty"`
	CardConfig  *FormulaConfig `json:"cardConfig,omitempty"`
	CoinConfig  *FormulaConfig `json:"coinConfig,omitempty"`

	HotFormula           string         `json:"hotFormula,omitempty"`
	HotDuration          Value          `json:"hotDuration"`
	HotTickType          string         `json:"hotTickType,omitempty"`
	HotCardConfig        *FormulaConfig `json:"hotCardConfig,omitempty"`
	HotCoinConfig        *FormulaConfig `json:"hotCoinConfig,omitempty"`
	IsProgressiveHot     bool           `json:"isProgressiveHot,omitempty"`
	HotProgressiveStages []Stage        `json:"hotProgressiveStages,omitempty"`
	HotConfig            *HotConfig     `json:"hotConfig,omitempty"`

	ShieldFormula       string         `json:"shieldFormula,omitempty"`
	ShieldDuration      Value          `json:"shieldDuration"`
	ShieldDamageTypes   string         `json:"shieldDamageTypes,omitempty"`
	ShieldOverflow      string         `json:"shieldOverflow,omitempty"`
	ShieldBreakBehavior string         `json:"shieldBreakBehavior,omitempty"`
	ShieldCardConfig    *FormulaConfig `json:"shieldCardConfig,omitempty"`
	ShieldCoinConfig    *FormulaConfig `json:"shieldCoinConfig,omitempty"`

	HasHotEffect    bool `json:"hasHotEffect,omitempty"`
	HasShieldEffect bool `json:"hasShieldEffect,omitempty"`

	CriticalHitConfig *CriticalHitConfig `json:"criticalConfig,omitempty"`
	ChanceOnHitConfig *ChanceOnHitConfig `json:"chanceOnHitConfig,omitempty"`
}

// HotConfig is the legacy nested shape of heal-over-time settings
type HotConfig struct {
	Duration    Value  `json:"duration"`
	TickFormula string `json:"tickFormula,omitempty"`
}

// StatModifier changes a stat. Resistance and absorption stats are
// recognized by name.
type StatModifier struct {
	Name          string `json:"name,omitempty"`
	Magnitude     Value  `json:"magnitude"`
	MagnitudeType string `json:"magnitudeType,omitempty"`
}

// BuffConfig describes beneficial stat changes and statuses
type BuffConfig struct {
	StatModifiers []StatModifier `json:"statModifiers,omitempty"`
	StatusEffects []StatusEffect `json:"statusEffects,omitempty"`
	Duration      Value          `json:"duration"`
	DurationValue Value          `json:"durationValue"`
	DurationType  string         `json:"durationType,omitempty"`
	DurationUnit  string         `json:"durationUnit,omitempty"`
	RestType      string         `json:"restType,omitempty"`
	Concentration bool           `json:"concentrationRequired,omitempty"`
}

// DebuffConfig describes harmful stat changes and statuses
type DebuffConfig struct {
	StatPenalties []StatModifier `json:"statPenalties,omitempty"`
	StatusEffects []StatusEffect `json:"statusEffects,omitempty"`

	SavingThrow          SavingThrow `json:"savingThrow"`
	SavingThrowType      string      `json:"savingThrowType,omitempty"`
	DifficultyClass      Value       `json:"difficultyClass"`
	SaveOutcome          string      `json:"saveOutcome,omitempty"`
	PartialEffect        bool        `json:"partialEffect,omitempty"`
	PartialEffectFormula string      `json:"partialEffectFormula,omitempty"`

	StackingRule   string `json:"stackingRule,omitempty"`
	MaxStacks      Value  `json:"maxStacks"`
	Duration       Value  `json:"duration"`
	DurationValue  Value  `json:"durationValue"`
	DurationType   string `json:"durationType,omitempty"`
	DurationUnit   string `json:"durationUnit,omitempty"`
	RestType       string `json:"restType,omitempty"`
	CanBeDispelled *bool  `json:"canBeDispelled,omitempty"`
	Concentration  bool   `json:"concentrationRequired,omitempty"`
}

// ControlConfig describes crowd control effects
type ControlConfig struct {
	ControlType     string          `json:"controlType,omitempty"`
	Instant         bool            `json:"instant,omitempty"`
	Duration        Value           `json:"duration"`
	DurationUnit    string          `json:"durationUnit,omitempty"`
	Concentration   bool            `json:"concentration,omitempty"`
	SavingThrow     SavingThrow     `json:"savingThrow"`
	SavingThrowType string          `json:"savingThrowType,omitempty"`
	DifficultyClass Value           `json:"difficultyClass"`
	Effects         []ControlEffect `json:"effects,omitempty"`
}

// UtilityConfig describes non-combat effects
type UtilityConfig struct {
	UtilityType     string          `json:"utilityType,omitempty"`
	Effects         []UtilityEffect `json:"effects,omitempty"`
	SelectedEffects []UtilityEffect `json:"selectedEffects,omitempty"`
	Duration        Value           `json:"duration"`
	DurationValue   Value           `json:"durationValue"`
	DurationUnit    string          `json:"durationUnit,omitempty"`
	Concentration   bool            `json:"concentration,omitempty"`
	DifficultyClass Value           `json:"difficultyClass"`
	SavingThrow     SavingThrow     `json:"savingThrow"`
	Ability         string          `json:"ability,omitempty"`
}

// UtilityEffect is one selected utility effect. It decodes from a bare name
// or an object.
type UtilityEffect struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Duration    Value  `json:"duration"`
}

// SummoningConfig describes summoned creatures
type SummoningConfig struct {
	Creatures     []Creature `json:"creatures,omitempty"`
	HasDuration   *bool      `json:"hasDuration,omitempty"`
	Duration      Value      `json:"duration"`
	DurationUnit  string     `json:"durationUnit,omitempty"`
	Concentration bool       `json:"concentration,omitempty"`
	ControlType   string     `json:"controlType,omitempty"`
	ControlRange  Value      `json:"controlRange"`
	Quantity      Value      `json:"quantity"`
}

// Creature is a summoned or transformed-into creature
type Creature struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name,omitempty"`
	Size        string          `json:"size,omitempty"`
	Type        string          `json:"type,omitempty"`
	Description string          `json:"description,omitempty"`
	Stats       *CreatureStats  `json:"stats,omitempty"`
	Config      *CreatureConfig `json:"config,omitempty"`
}

// CreatureStats holds the combat numbers of a creature
type CreatureStats struct {
	MaxHP      Value `json:"maxHp"`
	HP         Value `json:"hp"`
	ArmorClass Value `json:"armorClass"`
	Armor      Value `json:"armor"`
	Speed      Value `json:"speed"`
}

// CreatureConfig overrides the block-level summoning settings per creature
type CreatureConfig struct {
	Quantity      Value  `json:"quantity"`
	ControlType   string `json:"controlType,omitempty"`
	ControlRange  Value  `json:"controlRange"`
	HasDuration   *bool  `json:"hasDuration,omitempty"`
	Duration      Value  `json:"duration"`
	DurationUnit  string `json:"durationUnit,omitempty"`
	Concentration bool   `json:"concentration,omitempty"`
}

// TransformationConfig describes a shape change
type TransformationConfig struct {
	SelectedCreature *Creature       `json:"selectedCreature,omitempty"`
	FormID           string          `json:"formId,omitempty"`
	TargetType       string          `json:"targetType,omitempty"`
	Duration         Value           `json:"duration"`
	DurationUnit     string          `json:"durationUnit,omitempty"`
	Concentration    bool            `json:"concentration,omitempty"`
	SaveType         string          `json:"saveType,omitempty"`
	DifficultyClass  Value           `json:"difficultyClass"`
	GrantedAbilities []UtilityEffect `json:"grantedAbilities,omitempty"`
}

// PurificationConfig describes dispels, cleanses and resurrection
type PurificationConfig struct {
	PurificationType    string               `json:"purificationType,omitempty"`
	Resolution          Resolution           `json:"resolution,omitempty"`
	ResurrectionFormula string               `json:"resurrectionFormula,omitempty"`
	SelectedEffects     []PurificationEffect `json:"selectedEffects,omitempty"`
}

// PurificationEffect is one selected purification effect
type PurificationEffect struct {
	ID                  string     `json:"id,omitempty"`
	Name                string     `json:"name,omitempty"`
	Description         string     `json:"description,omitempty"`
	PurificationType    string     `json:"purificationType,omitempty"`
	SpecificEffectTypes []string   `json:"specificEffectTypes,omitempty"`
	CustomEffects       Value      `json:"customEffects"`
	Resolution          Resolution `json:"resolution,omitempty"`
	ResurrectionFormula string     `json:"resurrectionFormula,omitempty"`
}

// RestorationConfig describes resource restoration
type RestorationConfig struct {
	ResourceType string     `json:"resourceType,omitempty"`
	Formula      string     `json:"formula,omitempty"`
	Resolution   Resolution `json:"resolution,omitempty"`
	Duration     Value      `json:"duration"`

	IsOverTime                bool    `json:"isOverTime,omitempty"`
	OverTimeFormula           string  `json:"overTimeFormula,omitempty"`
	OverTimeDuration          Value   `json:"overTimeDuration"`
	TickFrequency             string  `json:"tickFrequency,omitempty"`
	Application               string  `json:"application,omitempty"`
	OverTimeTriggerType       string  `json:"overTimeTriggerType,omitempty"`
	IsProgressiveOverTime     bool    `json:"isProgressiveOverTime,omitempty"`
	OverTimeProgressiveStages []Stage `json:"overTimeProgressiveStages,omitempty"`
}

// CriticalHitConfig describes what happens on a critical result
type CriticalHitConfig struct {
	Enabled            bool     `json:"enabled,omitempty"`
	CritOnlyEffect     bool     `json:"critOnlyEffect,omitempty"`
	CritType           string   `json:"critType,omitempty"`
	CritMultiplier     Value    `json:"critMultiplier"`
	ExtraDice          string   `json:"extraDice,omitempty"`
	ExplodingDice      bool     `json:"explodingDice,omitempty"`
	ExplodingDiceType  string   `json:"explodingDiceType,omitempty"`
	CardCritRule       string   `json:"cardCritRule,omitempty"`
	CardCritResolution string   `json:"cardCritResolution,omitempty"`
	ExtraCardDraw      Value    `json:"extraCardDraw"`
	CoinCritRule       string   `json:"coinCritRule,omitempty"`
	CoinCritResolution string   `json:"coinCritResolution,omitempty"`
	CoinCount          Value    `json:"coinCount"`
	ExtraCoinFlips     Value    `json:"extraCoinFlips"`
	CritEffects        []string `json:"critEffects,omitempty"`
}

// ChanceOnHitConfig describes a proc triggered by a resolution outcome
type ChanceOnHitConfig struct {
	Enabled          bool     `json:"enabled,omitempty"`
	ProcType         string   `json:"procType,omitempty"`
	ProcChance       Value    `json:"procChance"`
	DiceThreshold    Value    `json:"diceThreshold"`
	CardProcRule     string   `json:"cardProcRule,omitempty"`
	CoinProcRule     string   `json:"coinProcRule,omitempty"`
	CoinCount        Value    `json:"coinCount"`
	ProcSuit         string   `json:"procSuit,omitempty"`
	SpellEffect      string   `json:"spellEffect,omitempty"`
	UseRollableTable bool     `json:"useRollableTable,omitempty"`
	CustomEffects    []string `json:"customEffects,omitempty"`
}

// ChannelingConfig describes a channeled spell
type ChannelingConfig struct {
	Type                    string                    `json:"type,omitempty"`
	MaxDuration             Value                     `json:"maxDuration"`
	DurationUnit            string                    `json:"durationUnit,omitempty"`
	CostValue               Value                     `json:"costValue"`
	CostType                string                    `json:"costType,omitempty"`
	CostTrigger             string                    `json:"costTrigger,omitempty"`
	RequiresConcentration   bool                      `json:"requiresConcentration,omitempty"`
	ConcentrationDC         Value                     `json:"concentrationDC"`
	ConcentrationType       string                    `json:"concentrationType,omitempty"`
	PerRoundFormulas        map[string][]RoundFormula `json:"perRoundFormulas,omitempty"`
	MovementRestriction     string                    `json:"movementRestriction,omitempty"`
	MovementReductionAmount Value                     `json:"movementReductionAmount"`
	InterruptionEffect      string                    `json:"interruptionEffect,omitempty"`
	CompletionEffect        string                    `json:"completionEffect,omitempty"`
}

// RoundFormula is the formula used on one channeling round
type RoundFormula struct {
	Round       Value  `json:"round"`
	Formula     string `json:"formula,omitempty"`
	Description string `json:"description,omitempty"`
}
