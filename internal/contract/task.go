package contract

// ImportResult summarises a task file import.
type ImportResult struct {
	Created int  `json:"created"`
	DryRun  bool `json:"dry_run,omitempty"`
	// First and Last are the earliest and latest due dates imported.
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}
