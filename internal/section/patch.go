package section

// GroupPatch is a partial group update. A field present in the patch
// overwrites the group's field; an absent field leaves it unchanged.
// For the list fields a nil slice means absent, so a patch cannot
// distinguish "clear the list" from "leave it alone" -- omission covers
// both, matching the wire contract for derived fields.
type GroupPatch struct {
	ID      *string  `json:"id,omitempty"`
	Label   *string  `json:"label,omitempty"`
	HTML    *string  `json:"html,omitempty"`
	Purpose *string  `json:"purpose,omitempty"`
	Inputs  []string `json:"inputs,omitempty"`
	Outputs []string `json:"outputs,omitempty"`
	Steps   []string `json:"steps,omitempty"`
	Metrics []string `json:"metrics,omitempty"`
	Callout *string  `json:"callout,omitempty"`
}

// Apply merges the patch into a copy of g and returns it.
func (p GroupPatch) Apply(g Group) Group {
	if p.ID != nil {
		g.ID = *p.ID
	}
	if p.Label != nil {
		g.Label = *p.Label
	}
	if p.HTML != nil {
		g.HTML = *p.HTML
	}
	if p.Purpose != nil {
		g.Purpose = *p.Purpose
	}
	if p.Inputs != nil {
		g.Inputs = cloneStrings(p.Inputs)
	}
	if p.Outputs != nil {
		g.Outputs = cloneStrings(p.Outputs)
	}
	if p.Steps != nil {
		g.Steps = cloneStrings(p.Steps)
	}
	if p.Metrics != nil {
		g.Metrics = cloneStrings(p.Metrics)
	}
	if p.Callout != nil {
		g.Callout = *p.Callout
	}
	return g
}
