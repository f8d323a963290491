package policy

import (
	"fmt"
	"regexp"
	"slices"
)

// Target selects which field a rule matches against.
type Target string

const (
	TargetLabel    Target = "label"
	TargetTabLabel Target = "tabLabel"
)

// Action is the effect a matching rule applies.
type Action string

const (
	ActionBoost   Action = "boost"
	ActionHide    Action = "hide"
	ActionPenalty Action = "penalty"
)

// Rule is one ordered policy statement. The pattern is matched against
// the lowercased target text. The restriction sets, when non-empty,
// limit the rule to profiles whose corresponding dimension is listed;
// an empty set matches any profile.
type Rule struct {
	ID         string
	Target     Target
	Pattern    *regexp.Regexp
	Action     Action
	Value      int
	Reason     string
	Roles      []Role
	Modes      []Mode
	Maturities []Maturity
}

func (r Rule) appliesTo(p Profile) bool {
	if len(r.Roles) > 0 && !slices.Contains(r.Roles, p.Role) {
		return false
	}
	if len(r.Modes) > 0 && !slices.Contains(r.Modes, p.Mode) {
		return false
	}
	if len(r.Maturities) > 0 && !slices.Contains(r.Maturities, p.Maturity) {
		return false
	}
	return true
}

// ruleSpec is the YAML shape of one rule.
type ruleSpec struct {
	ID         string   `yaml:"id"`
	Target     string   `yaml:"target"`
	Pattern    string   `yaml:"pattern"`
	Action     string   `yaml:"action"`
	Value      int      `yaml:"value"`
	Reason     string   `yaml:"reason"`
	Roles      []string `yaml:"roles"`
	Modes      []string `yaml:"modes"`
	Maturities []string `yaml:"maturities"`
}

func (s ruleSpec) compile() (Rule, error) {
	if s.ID == "" {
		return Rule{}, fmt.Errorf("rule id is required")
	}
	target := Target(s.Target)
	if s.Target == "" {
		target = TargetLabel
	} else if target != TargetLabel && target != TargetTabLabel {
		return Rule{}, fmt.Errorf("unknown target %q", s.Target)
	}
	action := Action(s.Action)
	if action != ActionBoost && action != ActionHide && action != ActionPenalty {
		return Rule{}, fmt.Errorf("unknown action %q", s.Action)
	}
	if action != ActionHide && s.Value <= 0 {
		return Rule{}, fmt.Errorf("%s rule needs a positive value", action)
	}
	pattern, err := regexp.Compile(s.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("bad pattern %q: %w", s.Pattern, err)
	}

	r := Rule{
		ID:      s.ID,
		Target:  target,
		Pattern: pattern,
		Action:  action,
		Value:   s.Value,
		Reason:  s.Reason,
	}
	for _, v := range s.Roles {
		role, err := ParseRole(v)
		if err != nil {
			return Rule{}, err
		}
		r.Roles = append(r.Roles, role)
	}
	for _, v := range s.Modes {
		mode, err := ParseMode(v)
		if err != nil {
			return Rule{}, err
		}
		r.Modes = append(r.Modes, mode)
	}
	for _, v := range s.Maturities {
		maturity, err := ParseMaturity(v)
		if err != nil {
			return Rule{}, err
		}
		r.Maturities = append(r.Maturities, maturity)
	}
	return r, nil
}
