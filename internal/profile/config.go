package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/statements-tracker/constants"
)

// Calibration is the optional per-run override file for ruleset constants.
// Ceiling values and pattern literals are calibration against real sample
// documents, not constants with inherent meaning, so they are loaded as
// configuration and validated against a schema before use.
type Calibration struct {
	Profiles map[string]Override `json:"profiles"`
}

// Override adjusts one profile. Signatures replace the builtin list when
// present; ValuePatterns are prepended so a calibrated pattern can take
// precedence in the first-match-wins chain.
type Override struct {
	Ceiling       *float64 `json:"ceiling,omitempty"`
	Signatures    []string `json:"signatures,omitempty"`
	ValuePatterns []string `json:"value_patterns,omitempty"`
}

// LoadCalibration reads and validates a calibration file. An invalid file
// is a startup error, never a silent fallback to builtins.
func LoadCalibration(path string) (*Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read calibration: %w", err)
	}
	if err := validateAgainstSchema(calibrationSchema(), data); err != nil {
		return nil, fmt.Errorf("calibration %s: %w", path, err)
	}
	var c Calibration
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal calibration: %w", err)
	}
	return &c, nil
}

// Apply merges a calibration into the set. Unknown institution tags and
// uncompilable patterns are errors.
func (s *Set) Apply(c *Calibration) error {
	for tag, ov := range c.Profiles {
		p := s.Get(constants.Institution(tag))
		if p == nil {
			return fmt.Errorf("calibration references unknown institution %q", tag)
		}
		if ov.Ceiling != nil {
			p.Bounds.Ceiling = *ov.Ceiling
		}
		if len(ov.Signatures) > 0 {
			p.Signatures = ov.Signatures
		}
		if len(ov.ValuePatterns) > 0 {
			var extra []ValuePattern
			for i, expr := range ov.ValuePatterns {
				re, err := regexp.Compile(expr)
				if err != nil {
					return fmt.Errorf("calibration %s value_patterns[%d]: %w", tag, i, err)
				}
				if re.NumSubexp() < 1 {
					return fmt.Errorf("calibration %s value_patterns[%d]: pattern must capture the numeral group", tag, i)
				}
				extra = append(extra, ValuePattern{Name: fmt.Sprintf("calibrated-%d", i), Pattern: re})
			}
			p.ValuePatterns = append(extra, p.ValuePatterns...)
		}
	}
	return nil
}

// calibrationSchema returns the JSON-Schema for calibration files as a
// generic map; it is compiled once per load and also documents the format.
func calibrationSchema() map[string]any {
	override := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"ceiling": map[string]any{"type": "number", "exclusiveMinimum": 0.0},
			"signatures": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 1,
			},
			"value_patterns": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string", "minLength": 1},
				"minItems": 1,
			},
		},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"profiles"},
		"properties": map[string]any{
			"profiles": map[string]any{
				"type":                 "object",
				"additionalProperties": override,
			},
		},
	}
}

// validateAgainstSchema validates data against schemaMap.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("calibration.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("calibration.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("calibration does not match schema: %w", err)
	}
	return nil
}
