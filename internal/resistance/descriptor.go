// Package resistance describes resistance and absorption stat modifiers.
//
// Magnitudes are the percent of damage still taken: 0 is immunity, 50 takes
// half damage, 200 takes double and negative values heal the bearer. Buff and
// debuff modifiers share the same table.
package resistance

import (
	_ "embed"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
)

//go:embed tiers.yaml
var defaultTiersYAML []byte

// GenericDamage is the description key used when no damage type matches
const GenericDamage = "damage"

// Tier is one named magnitude with a description per damage type
type Tier struct {
	Name         string            `yaml:"name"`
	Magnitude    int               `yaml:"magnitude"`
	Descriptions map[string]string `yaml:"descriptions"`
}

// Descriptor maps magnitudes and damage types to thematic text. It is
// immutable after construction and safe for concurrent use.
type Descriptor struct {
	tiers map[int]*Tier
}

type tiersFile struct {
	Tiers []Tier `yaml:"tiers"`
}

// New loads the embedded tier table
func New() (*Descriptor, error) {
	return Load(defaultTiersYAML)
}

// Load parses a tier table. Every tier needs a name and a generic "damage"
// description so lookups always resolve.
func Load(data []byte) (*Descriptor, error) {
	var file tiersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse resistance tiers")
	}

	d := &Descriptor{tiers: make(map[int]*Tier, len(file.Tiers))}
	for i := range file.Tiers {
		t := &file.Tiers[i]

		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", t.Name, vb)
		if _, ok := t.Descriptions[GenericDamage]; !ok {
			vb.Fieldf("descriptions", "tier %q has no %q description", t.Name, GenericDamage)
		}
		if err := vb.Build(); err != nil {
			return nil, errors.Wrapf(err, "invalid resistance tier %d", i)
		}

		if _, dup := d.tiers[t.Magnitude]; dup {
			return nil, errors.AlreadyExists("resistance magnitude " + strconv.Itoa(t.Magnitude) + " is defined twice")
		}
		d.tiers[t.Magnitude] = t
	}

	return d, nil
}

// Magnitudes lists the canonical magnitudes in ascending order
func (d *Descriptor) Magnitudes() []int {
	out := make([]int, 0, len(d.tiers))
	for m := range d.tiers {
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}

// Tier returns the tier name for a magnitude
func (d *Descriptor) Tier(magnitude int) (string, bool) {
	t, ok := d.tiers[magnitude]
	if !ok {
		return "", false
	}
	return t.Name, true
}

// Describe returns the thematic phrase for a magnitude and damage type.
// Unknown damage types use the generic description and unknown magnitudes
// read "+N% resistance".
func (d *Descriptor) Describe(magnitude int, damageType string) string {
	t, ok := d.tiers[magnitude]
	if !ok {
		slog.Debug("Resistance magnitude has no tier",
			"magnitude", magnitude,
			"damage_type", damageType)
		return signed(magnitude) + "% resistance"
	}

	key := strings.ToLower(strings.TrimSpace(damageType))
	if text, ok := t.Descriptions[key]; ok {
		return text
	}
	return t.Descriptions[GenericDamage]
}

// DescribeStat describes a resistance stat such as "fire_resistance"
func (d *Descriptor) DescribeStat(statName string, magnitude float64) string {
	return d.Describe(int(math.Round(magnitude)), DamageTypeFromStat(statName))
}

type damageMatch struct {
	needles    []string
	damageType string
}

// checked in order; the first match wins
var damageMatches = []damageMatch{
	{[]string{"fire"}, "fire"},
	{[]string{"cold", "frost", "ice"}, "cold"},
	{[]string{"lightning", "electric"}, "lightning"},
	{[]string{"acid"}, "acid"},
	{[]string{"poison"}, "poison"},
	{[]string{"necrotic", "death"}, "necrotic"},
	{[]string{"radiant", "holy"}, "radiant"},
	{[]string{"psychic", "mental"}, "psychic"},
	{[]string{"thunder", "sonic"}, "thunder"},
	{[]string{"force"}, "force"},
	{[]string{"slashing"}, "slashing"},
	{[]string{"piercing"}, "piercing"},
	{[]string{"bludgeoning"}, "bludgeoning"},
	{[]string{"physical"}, "physical"},
	{[]string{"all"}, "all damage"},
}

// DamageTypeFromStat derives a damage type from a stat name such as
// "frost_resistance". Names with no recognized type map to "damage".
func DamageTypeFromStat(statName string) string {
	name := strings.ToLower(statName)
	if name == "" {
		return GenericDamage
	}
	for _, m := range damageMatches {
		for _, needle := range m.needles {
			if strings.Contains(name, needle) {
				return m.damageType
			}
		}
	}
	return GenericDamage
}

// IsResistanceStat reports whether a modifier reads as a resistance tier
func IsResistanceStat(statName, magnitudeType string) bool {
	return strings.Contains(strings.ToLower(statName), "resistance") &&
		strings.EqualFold(magnitudeType, "percentage")
}

// IsAbsorptionStat reports whether a modifier is a damage absorption barrier
func IsAbsorptionStat(statName string) bool {
	return strings.Contains(strings.ToLower(statName), "absorption")
}

// AbsorptionType returns the damage type an absorption stat is limited to,
// or "" when it covers all damage
func AbsorptionType(statName string) string {
	name := strings.ToLower(statName)
	name = strings.ReplaceAll(name, "absorption", "")
	name = strings.Trim(strings.ReplaceAll(name, "_", " "), " -")
	name = strings.Join(strings.Fields(name), " ")

	switch name {
	case "", GenericDamage, "all damage", "all":
		return ""
	}
	return name
}

// DescribeAbsorption renders an absorption modifier. Buffs grant a barrier;
// debuffs erode one. Formula magnitudes read per hit, flat ones as a total.
func DescribeAbsorption(statName string, magnitude spell.Value, buff bool) string {
	damageType := AbsorptionType(statName)

	if buff {
		var text string
		if magnitude.IsFormula() {
			text = "Absorbs " + magnitude.Formula + " damage per hit"
		} else {
			text = "Absorbs up to " + absolute(magnitude.Number) + " damage total"
		}
		if damageType != "" {
			text += " (" + damageType + " only)"
		}
		return text
	}

	typed := ""
	if damageType != "" {
		typed = " " + damageType
	}
	if magnitude.IsFormula() {
		return "Weakens" + typed + " absorption barriers, reducing protection by " + magnitude.Formula + " per impact"
	}
	return "Shatters" + typed + " absorption barriers, permanently reducing protection by " + absolute(magnitude.Number) + " points"
}

func signed(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func absolute(v float64) string {
	return strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
}
