package reconcile

// ActionType represents the type of planned manifest mutation.
type ActionType string

const (
	// ActionAdd registers a file: reference, build file, group child,
	// phase entry.
	ActionAdd ActionType = "add"
	// ActionRemove deletes every entry carrying a display name.
	ActionRemove ActionType = "remove"
	// ActionDedupe collapses duplicate entries for one display name onto
	// the first-seen identifiers.
	ActionDedupe ActionType = "dedupe"
	// ActionDropOrphan deletes build files whose referenced file is gone.
	ActionDropOrphan ActionType = "drop_orphan"
	// ActionDedupeListEntry drops repeated identifiers inside a single
	// group or phase ordered list.
	ActionDedupeListEntry ActionType = "dedupe_list_entry"
)

// Action represents one planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Name is the display name the action applies to. For list dedupe
	// actions it names the owning group or phase instead.
	Name string `json:"name"`

	// Path is the relative source path, populated for add actions.
	Path string `json:"path,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Issue is a recoverable per-item problem found while planning. Issues are
// reported at the end of a run and never abort the batch.
type Issue struct {
	// Name is the display name or path the issue applies to.
	Name string `json:"name"`

	// Reason explains why the item was skipped.
	Reason string `json:"reason"`
}

// Plan contains planned mutation actions, per-item issues, and aggregate
// counts. Planning never touches the model; Apply executes the actions.
type Plan struct {
	// Actions contains planned mutation operations in execution order.
	Actions []Action `json:"actions"`

	// Issues contains items skipped during planning.
	Issues []Issue `json:"issues"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Tracked is the number of file references present when the plan was
	// computed.
	Tracked int `json:"tracked"`

	// Additions counts planned add actions.
	Additions int `json:"additions"`

	// Removals counts planned remove actions.
	Removals int `json:"removals"`

	// Dedupes counts planned per-name dedupe actions.
	Dedupes int `json:"dedupes"`

	// OrphanDrops counts planned orphan build file removals.
	OrphanDrops int `json:"orphan_drops"`

	// ListDedupes counts group or phase lists with repeated identifiers.
	ListDedupes int `json:"list_dedupes"`
}

// Options controls apply behavior.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the caller has confirmed the mutations.
	// If false, Apply does nothing regardless of DryRun.
	Confirmed bool
}

// Changed reports whether applying the plan would mutate the manifest.
func (p *Plan) Changed() bool { return len(p.Actions) > 0 }

func (p *Plan) add(a Action) {
	p.Actions = append(p.Actions, a)
	switch a.Type {
	case ActionAdd:
		p.Summary.Additions++
	case ActionRemove:
		p.Summary.Removals++
	case ActionDedupe:
		p.Summary.Dedupes++
	case ActionDropOrphan:
		p.Summary.OrphanDrops++
	case ActionDedupeListEntry:
		p.Summary.ListDedupes++
	}
}

func (p *Plan) issue(name, reason string) {
	p.Issues = append(p.Issues, Issue{Name: name, Reason: reason})
}
