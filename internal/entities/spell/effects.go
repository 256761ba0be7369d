package spell

import (
	"bytes"
	"encoding/json"
)

// SavingThrow decodes the three shapes the wizard has written over time: an
// ability name, a boolean toggle, or an object.
type SavingThrow struct {
	Enabled    bool   `json:"enabled"`
	Ability    string `json:"attribute,omitempty"`
	OnSuccess  string `json:"onSuccess,omitempty"`
	Difficulty Value  `json:"difficulty"`
}

// UnmarshalJSON accepts a string, a boolean, an object or null
func (s *SavingThrow) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*s = SavingThrow{}

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		var ability string
		if err := json.Unmarshal(data, &ability); err != nil {
			return err
		}
		s.Ability = ability
		s.Enabled = ability != ""
	case bytes.Equal(data, []byte("true")):
		s.Enabled = true
	case bytes.Equal(data, []byte("false")):
		return nil
	default:
		type plain SavingThrow
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*s = SavingThrow(p)
	}
	return nil
}

// MarshalJSON writes the object form, or null when disabled
func (s SavingThrow) MarshalJSON() ([]byte, error) {
	if !s.Enabled && s.Ability == "" {
		return []byte("null"), nil
	}
	type plain SavingThrow
	return json.Marshal(plain(s))
}

// StatusEffect is a status applied by a buff or debuff. Legacy documents
// list statuses by ID only.
type StatusEffect struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Level         string `json:"level,omitempty"`
	Option        string `json:"option,omitempty"`
	Description   string `json:"description,omitempty"`
	Duration      Value  `json:"duration"`
	SaveType      string `json:"saveType,omitempty"`
	SaveDC        Value  `json:"saveDC"`
	SaveOutcome   string `json:"saveOutcome,omitempty"`
	SaveFrequency string `json:"saveFrequency,omitempty"`
	BlindType     string `json:"blindType,omitempty"`

	CharmType         string `json:"charmType,omitempty"`
	CanAttackCharmer  *bool  `json:"canAttackCharmer,omitempty"`
	CanSelfHarm       *bool  `json:"canSelfHarm,omitempty"`
	RetainsMemory     *bool  `json:"retainsMemory,omitempty"`
	CommandComplexity string `json:"commandComplexity,omitempty"`
	MaxCommands       Value  `json:"maxCommands"`
}

// UnmarshalJSON accepts a status ID string or an object
func (s *StatusEffect) UnmarshalJSON(data []byte) error {
	if id, ok := decodeString(data); ok {
		*s = StatusEffect{ID: id, Name: id}
		return nil
	}
	type plain StatusEffect
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = StatusEffect(p)
	return nil
}

// ControlEffect is one selected control effect
type ControlEffect struct {
	ID            string             `json:"id,omitempty"`
	Name          string             `json:"name,omitempty"`
	Description   string             `json:"description,omitempty"`
	ControlType   string             `json:"controlType,omitempty"`
	MechanicsText string             `json:"mechanicsText,omitempty"`
	Config        *ControlEffectOpts `json:"config,omitempty"`
}

// ControlEffectOpts holds the per-control-type template parameters
type ControlEffectOpts struct {
	CustomName        string `json:"customName,omitempty"`
	CustomDescription string `json:"customDescription,omitempty"`
	Distance          Value  `json:"distance"`
	MovementType      string `json:"movementType,omitempty"`
	MovementFlavor    string `json:"movementFlavor,omitempty"`
	AreaSize          Value  `json:"areaSize"`
	AreaShape         string `json:"areaShape,omitempty"`
	ControlLevel      string `json:"controlLevel,omitempty"`
	MentalApproach    string `json:"mentalApproach,omitempty"`
	RestraintType     string `json:"restraintType,omitempty"`
	DurationType      string `json:"durationType,omitempty"`
	RecoveryMethod    string `json:"recoveryMethod,omitempty"`
	Strength          string `json:"strength,omitempty"`
}

// UnmarshalJSON accepts an effect name string or an object
func (c *ControlEffect) UnmarshalJSON(data []byte) error {
	if name, ok := decodeString(data); ok {
		*c = ControlEffect{ID: name, Name: name}
		return nil
	}
	type plain ControlEffect
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = ControlEffect(p)
	return nil
}

// UnmarshalJSON accepts an effect name string or an object
func (u *UtilityEffect) UnmarshalJSON(data []byte) error {
	if name, ok := decodeString(data); ok {
		*u = UtilityEffect{ID: name, Name: name}
		return nil
	}
	type plain UtilityEffect
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = UtilityEffect(p)
	return nil
}

// UnmarshalJSON accepts a bare formula string or an object
func (r *RoundFormula) UnmarshalJSON(data []byte) error {
	if formula, ok := decodeString(data); ok {
		*r = RoundFormula{Formula: formula}
		return nil
	}
	type plain RoundFormula
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = RoundFormula(p)
	return nil
}

// MechanicsConfig links an effect to a class resource system such as combo
// points or toxins.
type MechanicsConfig struct {
	Enabled        bool          `json:"enabled,omitempty"`
	System         string        `json:"system,omitempty"`
	Type           string        `json:"type,omitempty"`
	EffectID       string        `json:"effectId,omitempty"`
	ThresholdValue Value         `json:"thresholdValue"`
	ComboOptions   *ComboOptions `json:"comboOptions,omitempty"`
	ProcOptions    *ProcOptions  `json:"procOptions,omitempty"`
	ToxicOptions   *ToxicOptions `json:"toxicOptions,omitempty"`
	ChordOptions   *ChordOptions `json:"chordOptions,omitempty"`
	StateOptions   *StateOptions `json:"stateOptions,omitempty"`
	FormOptions    *FormOptions  `json:"formOptions,omitempty"`
}

// ComboOptions configures the combo point system
type ComboOptions struct {
	ConsumptionRule string `json:"consumptionRule,omitempty"`
}

// ProcOptions configures the proc system
type ProcOptions struct {
	ProcChance   Value  `json:"procChance"`
	SpellID      string `json:"spellId,omitempty"`
	TriggerLimit Value  `json:"triggerLimit"`
}

// ToxicOptions configures the toxic system
type ToxicOptions struct {
	SelectedToxicTypes map[string]int `json:"selectedToxicTypes,omitempty"`
	Duration           Value          `json:"duration"`
	DurationType       string         `json:"durationType,omitempty"`
	ConsumptionRule    string         `json:"consumptionRule,omitempty"`
	UpdateFormula      bool           `json:"updateFormula,omitempty"`
}

// ChordOptions configures the chord system
type ChordOptions struct {
	RecipeDisplay       []ChordNote `json:"recipeDisplay,omitempty"`
	ImprovisationWindow Value       `json:"improvisationWindow"`
	ChordFunction       string      `json:"chordFunction,omitempty"`
	ExtendDuration      Value       `json:"extendDuration"`
}

// ChordNote is one note of a chord recipe
type ChordNote struct {
	Name string `json:"name,omitempty"`
}

// StateOptions configures state requirements
type StateOptions struct {
	ResourceType    string `json:"resourceType,omitempty"`
	ThresholdType   string `json:"thresholdType,omitempty"`
	ThresholdValue  Value  `json:"thresholdValue"`
	ModifiedFormula string `json:"modifiedFormula,omitempty"`
}

// FormOptions configures the form system
type FormOptions struct {
	FormType     string `json:"formType,omitempty"`
	RequiresForm bool   `json:"requiresForm,omitempty"`
	BonusType    string `json:"bonusType,omitempty"`
	BonusAmount  Value  `json:"bonusAmount"`
	FormSpellID  string `json:"formSpellId,omitempty"`
}

func decodeString(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false
	}
	return s, true
}
