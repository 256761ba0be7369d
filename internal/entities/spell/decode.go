package spell

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
)

// Format is a spell document encoding
type Format string

// Supported document formats
const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Decode parses a spell document and normalizes it. FormatAuto picks JSON
// when the document starts with '{' and YAML otherwise.
func Decode(data []byte, format Format) (*Config, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.InvalidArgument("spell document is empty")
	}

	if format == FormatAuto {
		format = FormatYAML
		if trimmed[0] == '{' {
			format = FormatJSON
		}
	}

	var raw []byte
	switch format {
	case FormatJSON:
		raw = trimmed
	case FormatYAML:
		var doc interface{}
		if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse spell yaml")
		}
		converted, err := json.Marshal(jsonCompatible(doc))
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to convert spell yaml")
		}
		raw = converted
	default:
		return nil, errors.InvalidArgumentf("unsupported spell format: %s", format)
	}

	cfg := &Config{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode spell")
	}

	return Normalize(cfg), nil
}

// jsonCompatible rewrites yaml maps with non-string keys so encoding/json
// can marshal them.
func jsonCompatible(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = jsonCompatible(val)
		}
		return t
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return m
	case []interface{}:
		for i, val := range t {
			t[i] = jsonCompatible(val)
		}
		return t
	default:
		return v
	}
}
