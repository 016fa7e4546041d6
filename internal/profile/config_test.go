package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joseph-ayodele/statements-tracker/constants"
)

func writeCalibration(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCalibration_Valid(t *testing.T) {
	path := writeCalibration(t, `{
		"profiles": {
			"BOK_FINANCIAL": {
				"ceiling": 5000000,
				"signatures": ["BOK FINANCIAL"],
				"value_patterns": ["GrandTotal\\s+([\\d,]+\\.\\d{2})"]
			}
		}
	}`)

	cal, err := LoadCalibration(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := Builtin()
	if err := set.Apply(cal); err != nil {
		t.Fatalf("apply: %v", err)
	}

	p := set.Get(constants.InstitutionBOK)
	if p.Bounds.Ceiling != 5000000 {
		t.Errorf("ceiling: got %v, want 5000000", p.Bounds.Ceiling)
	}
	if len(p.Signatures) != 1 || p.Signatures[0] != "BOK FINANCIAL" {
		t.Errorf("signatures not replaced: %v", p.Signatures)
	}
	// Calibrated patterns are prepended so they win the ordered chain.
	if p.ValuePatterns[0].Name != "calibrated-0" {
		t.Errorf("calibrated pattern not first: %v", p.ValuePatterns[0].Name)
	}
}

func TestLoadCalibration_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"ceiling wrong type", `{"profiles": {"BOK_FINANCIAL": {"ceiling": "big"}}}`},
		{"negative ceiling", `{"profiles": {"BOK_FINANCIAL": {"ceiling": -1}}}`},
		{"unknown key", `{"profiles": {"BOK_FINANCIAL": {"celing": 5}}}`},
		{"missing profiles", `{}`},
		{"empty signatures", `{"profiles": {"BOK_FINANCIAL": {"signatures": []}}}`},
		{"not json", `profiles:`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCalibration(t, tt.content)
			if _, err := LoadCalibration(path); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestApply_UnknownInstitution(t *testing.T) {
	ceiling := 5.0
	cal := &Calibration{Profiles: map[string]Override{
		"FIRST_NATIONAL": {Ceiling: &ceiling},
	}}
	if err := Builtin().Apply(cal); err == nil {
		t.Fatal("expected an error for an unknown institution tag")
	}
}

func TestApply_BadPattern(t *testing.T) {
	cal := &Calibration{Profiles: map[string]Override{
		string(constants.InstitutionBOK): {ValuePatterns: []string{"("}},
	}}
	if err := Builtin().Apply(cal); err == nil {
		t.Fatal("expected an error for an uncompilable pattern")
	}
}

func TestApply_PatternWithoutCaptureGroup(t *testing.T) {
	cal := &Calibration{Profiles: map[string]Override{
		string(constants.InstitutionBOK): {ValuePatterns: []string{`Total\s+\d+`}},
	}}
	if err := Builtin().Apply(cal); err == nil {
		t.Fatal("expected an error for a pattern without a capture group")
	}
}

func TestLoadCalibration_MissingFile(t *testing.T) {
	if _, err := LoadCalibration(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error")
	}
}
