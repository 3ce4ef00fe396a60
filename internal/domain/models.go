package domain

// Candidate is one entry of the ranked contact list
type Candidate struct {
	Identity string // display name, unique key
	Weight   int    // usage count, used for the initial ordering
}

// ResultItem is a candidate as shown in a pane's result list
type ResultItem struct {
	Candidate
	Checked bool
}

// Section identifies one of the focusable regions inside a pane
type Section int

const (
	SectionQuery Section = iota
	SectionAction
	SectionList
)

func (s Section) String() string {
	switch s {
	case SectionQuery:
		return "query"
	case SectionAction:
		return "action"
	case SectionList:
		return "list"
	default:
		return "unknown"
	}
}

// PaneSide identifies one of the two panes
type PaneSide int

const (
	PaneLeft PaneSide = iota
	PaneRight
)

func (s PaneSide) String() string {
	if s == PaneRight {
		return "right"
	}
	return "left"
}

// Other returns the opposite pane
func (s PaneSide) Other() PaneSide {
	if s == PaneLeft {
		return PaneRight
	}
	return PaneLeft
}

// Identities returns the identity sequence of a result list
func Identities(items []ResultItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Identity
	}
	return names
}
