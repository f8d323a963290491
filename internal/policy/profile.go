// Package policy scores and filters content groups for a viewer
// profile by folding an ordered, declarative rule table over each
// (tab, group) pair. The table is static configuration, loaded once;
// evaluation is a pure function with no error conditions.
package policy

import "fmt"

// Role is the viewer's role dimension.
type Role string

// Mode is the viewer's operating-mode dimension.
type Mode string

// Maturity is the organizational maturity dimension.
type Maturity string

const (
	RoleExecutive Role = "executive"
	RoleOperator  Role = "operator"
	RoleBuilder   Role = "builder"

	ModeOverview Mode = "overview"
	ModeOperate  Mode = "operate"
	ModeBuild    Mode = "build"

	MaturityFoundation Maturity = "foundation"
	MaturityScaling    Maturity = "scaling"
	MaturityOptimized  Maturity = "optimized"
)

// Profile describes one viewer. It is supplied by the caller per
// evaluation and never owned by the engine.
type Profile struct {
	Role     Role     `json:"role"`
	Mode     Mode     `json:"mode"`
	Maturity Maturity `json:"maturity"`
}

// DefaultProfile is the profile used when the caller supplies nothing.
func DefaultProfile() Profile {
	return Profile{Role: RoleExecutive, Mode: ModeOverview, Maturity: MaturityFoundation}
}

// ParseRole validates a role value. Empty input yields the default.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleExecutive, RoleOperator, RoleBuilder:
		return Role(s), nil
	case "":
		return DefaultProfile().Role, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ParseMode validates a mode value. Empty input yields the default.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOverview, ModeOperate, ModeBuild:
		return Mode(s), nil
	case "":
		return DefaultProfile().Mode, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// ParseMaturity validates a maturity value. Empty input yields the
// default.
func ParseMaturity(s string) (Maturity, error) {
	switch Maturity(s) {
	case MaturityFoundation, MaturityScaling, MaturityOptimized:
		return Maturity(s), nil
	case "":
		return DefaultProfile().Maturity, nil
	}
	return "", fmt.Errorf("unknown maturity %q", s)
}

// ParseProfile assembles a profile from string dimensions, filling
// empty dimensions with defaults.
func ParseProfile(role, mode, maturity string) (Profile, error) {
	r, err := ParseRole(role)
	if err != nil {
		return Profile{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Profile{}, err
	}
	mat, err := ParseMaturity(maturity)
	if err != nil {
		return Profile{}, err
	}
	return Profile{Role: r, Mode: m, Maturity: mat}, nil
}

// Presets are the named profiles the UI layer offers.
var Presets = map[string]Profile{
	"executive-review": {Role: RoleExecutive, Mode: ModeOverview, Maturity: MaturityScaling},
	"ops-daily":        {Role: RoleOperator, Mode: ModeOperate, Maturity: MaturityScaling},
	"builder-mode":     {Role: RoleBuilder, Mode: ModeBuild, Maturity: MaturityFoundation},
	"audit-readiness":  {Role: RoleOperator, Mode: ModeOverview, Maturity: MaturityOptimized},
}

// SectionDefaults maps a section slug to the profile a viewer lands on
// when opening that section without an explicit choice.
var SectionDefaults = map[string]Profile{
	"strategy":                {Role: RoleExecutive, Mode: ModeOverview, Maturity: MaturityScaling},
	"architecture":            {Role: RoleBuilder, Mode: ModeBuild, Maturity: MaturityFoundation},
	"infrastructure":          {Role: RoleBuilder, Mode: ModeBuild, Maturity: MaturityFoundation},
	"minios":                  {Role: RoleBuilder, Mode: ModeBuild, Maturity: MaturityScaling},
	"value-engines":           {Role: RoleOperator, Mode: ModeOperate, Maturity: MaturityScaling},
	"delivery":                {Role: RoleOperator, Mode: ModeOperate, Maturity: MaturityScaling},
	"qms":                     {Role: RoleOperator, Mode: ModeOverview, Maturity: MaturityOptimized},
	"execution":               {Role: RoleOperator, Mode: ModeOperate, Maturity: MaturityScaling},
	"audit-standards":         {Role: RoleOperator, Mode: ModeOverview, Maturity: MaturityOptimized},
	"project-management":      {Role: RoleOperator, Mode: ModeOperate, Maturity: MaturityScaling},
	"client-projects":         {Role: RoleExecutive, Mode: ModeOverview, Maturity: MaturityScaling},
	"reporting-dashboard":     {Role: RoleExecutive, Mode: ModeOverview, Maturity: MaturityOptimized},
	"agentic-factory-library": {Role: RoleBuilder, Mode: ModeBuild, Maturity: MaturityOptimized},
	"build-guides":            {Role: RoleBuilder, Mode: ModeBuild, Maturity: MaturityScaling},
	"change-log":              {Role: RoleExecutive, Mode: ModeOverview, Maturity: MaturityOptimized},
}
