package policy

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

// Parse decodes a rule table from YAML, preserving declared order.
// Order is semantically significant: later rules layer on earlier
// ones during evaluation.
func Parse(data []byte) ([]Rule, error) {
	var specs []ruleSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("parse policy: empty rule table")
	}
	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		r, err := spec.compile()
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, spec.ID, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// LoadFile reads a rule table from an external YAML file.
func LoadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in rule table.
func Default() []Rule {
	rules, err := Parse(defaultPolicy)
	if err != nil {
		// The embedded table is part of the build; failing to parse
		// it is a programming error.
		panic("policy: " + err.Error())
	}
	return rules
}
