package selection

// State holds one pane's query and checked identities
type State struct {
	Draft     string          // query being edited
	Committed string          // last executed query
	Executed  bool            // false until the first commit
	Checked   map[string]bool // checked identities, kept across recomputation
}

// CommittedEvent describes the outcome of a commit
type CommittedEvent struct {
	Query     string
	Results   int
	Unmatched []string
}
