package effects

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
)

// cases.Caser keeps state, so each call gets its own
func titleCaser() cases.Caser {
	return cases.Title(language.English)
}

// title turns "mana_burn" or "mana burn" into "Mana Burn"
func title(s string) string {
	s = strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), " ")
	return titleCaser().String(s)
}

// capitalize upper cases the first letter only
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// count renders "1 round" or "3 rounds". The unit may be given in either
// form.
func count(n int, unit string) string {
	unit = strings.TrimSuffix(unit, "s")
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func concentration(text string, required bool) string {
	if required {
		return text + " (Concentration)"
	}
	return text
}

// resolutionPrefix is "Draw N cards: " or "Flip N coins: ". Dice formulas
// have no prefix.
func resolutionPrefix(res spell.Resolution, fc *spell.FormulaConfig) string {
	switch res {
	case spell.ResolutionCards:
		n := 3
		if fc != nil {
			n = fc.DrawCount.IntOr(3)
		}
		return "Draw " + itoa(n) + " cards: "
	case spell.ResolutionCoins:
		n := 5
		if fc != nil {
			n = fc.FlipCount.IntOr(5)
		}
		return "Flip " + itoa(n) + " coins: "
	}
	return ""
}

// resolutionVerb names the action behind a resolution method
func resolutionVerb(res spell.Resolution) string {
	switch res {
	case spell.ResolutionCards:
		return "Draw cards"
	case spell.ResolutionCoins:
		return "Flip coins"
	}
	return "Roll dice"
}

var resourceNames = map[string]string{
	"action_points": "Action Points",
	"astral_power":  "Astral Power",
	"runic_power":   "Runic Power",
	"soul_power":    "Soul Power",
	"arcane_power":  "Arcane Power",
	"combo_points":  "Combo Points",
	"soul_shards":   "Soul Shards",
	"holy_power":    "Holy Power",
	"health":        "Health",
	"mana":          "Mana",
	"inferno":       "Inferno",
	"rage":          "Rage",
	"energy":        "Energy",
	"focus":         "Focus",
	"chi":           "Chi",
}

// resourceName is the display name of a class resource
func resourceName(resource string) string {
	if name, ok := resourceNames[strings.ToLower(resource)]; ok {
		return name
	}
	return title(resource)
}

// truncate cuts s to limit runes and marks the cut with "..."
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// titleList title cases snake_case names and joins them with ", "
func titleList(names []string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		out = append(out, title(n))
	}
	return strings.Join(out, ", ")
}

func effect(name, description, mechanics string) spell.FormattedEffect {
	return spell.FormattedEffect{
		Name:          name,
		Description:   description,
		MechanicsText: mechanics,
	}
}
