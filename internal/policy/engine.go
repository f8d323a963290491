package policy

import (
	"sort"
	"strings"

	"sectiond/internal/section"
)

// Decision is the engine's verdict for one group evaluation.
type Decision struct {
	Visible      bool     `json:"visible"`
	Score        int      `json:"score"`
	Reason       string   `json:"reason"`
	MatchedRules []string `json:"matchedRules"`
}

// Engine evaluates the ordered rule table against viewer profiles.
type Engine struct {
	rules []Rule
}

// NewEngine wraps a rule table. The table is not copied and must not
// be mutated after this call.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the table, in order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Evaluate folds the full rule table, in declared order, over one
// (tab, group) pair. This is not first-match-wins: every matching rule
// applies. Score effects accumulate, the last matching rule's reason
// wins, and a hide is sticky: later boosts still adjust the score but
// cannot re-show the group.
func (e *Engine) Evaluate(profile Profile, tab *section.Tab, group *section.Group, index int) Decision {
	label := strings.ToLower(group.Label)
	tabLabel := strings.ToLower(tab.Label)

	d := Decision{Visible: true, Reason: "default", MatchedRules: []string{}}
	if index == 0 {
		d.Score = 15
		d.Reason = "first-group"
	}

	for _, rule := range e.rules {
		if !rule.appliesTo(profile) {
			continue
		}
		source := label
		if rule.Target == TargetTabLabel {
			source = tabLabel
		}
		if !rule.Pattern.MatchString(source) {
			continue
		}

		d.MatchedRules = append(d.MatchedRules, rule.ID)
		d.Reason = rule.Reason
		switch rule.Action {
		case ActionHide:
			d.Visible = false
		case ActionBoost:
			d.Score += rule.Value
		case ActionPenalty:
			d.Score -= rule.Value
		}
	}
	return d
}

// RankedGroup pairs a group with its decision and original position.
type RankedGroup struct {
	Index    int           `json:"index"`
	Group    section.Group `json:"group"`
	Decision Decision      `json:"decision"`
}

// Rank evaluates every group in the tab under the profile and returns
// the visible ones ordered by descending score, ties broken by
// original document order. The result is deterministic for a fixed
// (profile, tab) pair.
func (e *Engine) Rank(profile Profile, tab *section.Tab) []RankedGroup {
	ranked := make([]RankedGroup, 0, len(tab.Groups))
	for i := range tab.Groups {
		d := e.Evaluate(profile, tab, &tab.Groups[i], i)
		if !d.Visible {
			continue
		}
		ranked = append(ranked, RankedGroup{Index: i, Group: tab.Groups[i], Decision: d})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Decision.Score != ranked[b].Decision.Score {
			return ranked[a].Decision.Score > ranked[b].Decision.Score
		}
		return ranked[a].Index < ranked[b].Index
	})
	return ranked
}
