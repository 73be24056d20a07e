package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowSource controls whether the input line and caret underline are
	// printed below each diagnostic.
	ShowSource bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// Max truncates the output, not the Bag. 0 means no limit.
	Max int
}
