package contract

// HolidaySyncResult summarises a holiday feed sync.
type HolidaySyncResult struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Fetched int    `json:"fetched"`
	Removed int64  `json:"removed"`
	Source  string `json:"source"`
}
