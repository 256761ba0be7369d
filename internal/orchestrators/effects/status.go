package effects

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
)

//go:embed statuses.yaml
var defaultStatusesYAML []byte

type statusInfo struct {
	Aliases  []string          `yaml:"aliases"`
	Save     string            `yaml:"save"`
	Summary  string            `yaml:"summary"`
	Fallback string            `yaml:"fallback"`
	Options  map[string]string `yaml:"options"`
}

type statusCatalog struct {
	Statuses        map[string]*statusInfo `yaml:"statuses"`
	CharmTypes      map[string]string      `yaml:"charmTypes"`
	SaveFrequencies map[string]string      `yaml:"saveFrequencies"`

	byID map[string]*statusInfo
}

func loadStatuses(data []byte) (*statusCatalog, error) {
	var c statusCatalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse status catalog")
	}

	c.byID = make(map[string]*statusInfo, len(c.Statuses))
	for id, info := range c.Statuses {
		for _, key := range append([]string{id}, info.Aliases...) {
			if _, dup := c.byID[key]; dup {
				return nil, errors.AlreadyExists("status " + key + " is defined twice")
			}
			c.byID[key] = info
		}
	}
	return &c, nil
}

func (c *statusCatalog) lookup(id string) (*statusInfo, bool) {
	info, ok := c.byID[strings.ToLower(id)]
	return info, ok
}

// defaultSave is the ability a status is resisted with when it names none
func (c *statusCatalog) defaultSave(id string) string {
	if info, ok := c.lookup(id); ok && info.Save != "" {
		return info.Save
	}
	return "constitution"
}

// describe returns the catalog description of a status, or "Name (Option)"
// for statuses the catalog does not know
func (c *statusCatalog) describe(s *spell.StatusEffect, displayName string) string {
	option := s.Option
	if s.BlindType != "" {
		option = s.BlindType
	}

	info, ok := c.lookup(s.ID)
	if !ok || (info.Summary == "" && len(info.Options) == 0) {
		if option != "" {
			return displayName + " (" + capitalize(option) + ")"
		}
		return displayName
	}

	if option == "" {
		return orDefault(info.Summary, displayName)
	}
	if text, ok := info.Options[option]; ok {
		return text
	}
	if info.Fallback != "" {
		return strings.ReplaceAll(info.Fallback, "{option}", capitalize(option))
	}
	return displayName + " (" + capitalize(option) + ")"
}

func isCharm(id string) bool {
	id = strings.ToLower(id)
	return id == "charmed" || id == "charm"
}
