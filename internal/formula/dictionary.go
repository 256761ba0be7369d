package formula

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
)

//go:embed dictionary.yaml
var defaultDictionaryYAML []byte

// Variable describes how one formula variable reads in text
type Variable struct {
	Token     string   `yaml:"token"`
	Aliases   []string `yaml:"aliases"`
	Display   string   `yaml:"display"`
	Compact   string   `yaml:"compact"`
	PerUnit   string   `yaml:"perUnit"`
	Penalty   bool     `yaml:"penalty"`
	EqualTo   string   `yaml:"equalTo"`
	Condition string   `yaml:"condition"`
	Share     string   `yaml:"share"`
	Subject   string   `yaml:"subject"`
}

// CompactName returns the thematic name, falling back to the display name
func (v *Variable) CompactName() string {
	if v.Compact != "" {
		return v.Compact
	}
	return v.Display
}

// Dictionary maps formula variables to display text. It is immutable after
// construction and safe for concurrent use.
type Dictionary struct {
	variables     map[string]*Variable
	abbreviations map[string]struct{}
}

type dictionaryFile struct {
	Abbreviations []string   `yaml:"abbreviations"`
	Variables     []Variable `yaml:"variables"`
}

// DefaultDictionary loads the embedded dictionary
func DefaultDictionary() (*Dictionary, error) {
	return LoadDictionary(defaultDictionaryYAML)
}

// LoadDictionary parses a dictionary document
func LoadDictionary(data []byte) (*Dictionary, error) {
	var file dictionaryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse formula dictionary")
	}

	d := &Dictionary{
		variables:     make(map[string]*Variable, len(file.Variables)*2),
		abbreviations: make(map[string]struct{}, len(file.Abbreviations)),
	}
	for _, a := range file.Abbreviations {
		d.abbreviations[strings.ToUpper(a)] = struct{}{}
	}

	for i := range file.Variables {
		v := &file.Variables[i]
		if v.Token == "" {
			return nil, errors.InvalidArgumentf("formula dictionary entry %d has no token", i)
		}
		if v.Display == "" {
			v.Display = humanizeToken(v.Token, d)
		}
		for _, key := range append([]string{v.Token}, v.Aliases...) {
			k := strings.ToLower(key)
			if _, dup := d.variables[k]; dup {
				return nil, errors.AlreadyExists("formula dictionary key " + key + " is defined twice")
			}
			d.variables[k] = v
		}
	}

	return d, nil
}

// Lookup finds a variable by token or alias, ignoring case
func (d *Dictionary) Lookup(name string) (*Variable, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.variables[strings.ToLower(name)]
	return v, ok
}

// IsAbbreviation reports whether word stays upper case in text
func (d *Dictionary) IsAbbreviation(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.abbreviations[word]
	return ok
}

// Display returns the sentence name of a variable. Unknown CAPS tokens are
// title cased; other unknown names are returned as written.
func (d *Dictionary) Display(name string) string {
	if v, ok := d.Lookup(name); ok {
		return v.Display
	}
	if isCapsToken(name) {
		return humanizeToken(name, d)
	}
	return name
}

// CompactName returns the compact style name of a variable
func (d *Dictionary) CompactName(name string) string {
	if v, ok := d.Lookup(name); ok {
		return v.CompactName()
	}
	return d.Display(name)
}
