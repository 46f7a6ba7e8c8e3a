package domain

// PollResult is one aggregated tally row: how many votes a single option
// received. Options nobody voted for produce no row.
type PollResult struct {
	OptionID int64 `json:"option_id"`
	Votes    int64 `json:"votes"`
}
