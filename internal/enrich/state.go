package enrich

// State tracks a record's progress through the per-row pipeline.
type State int

const (
	StatePending State = iota
	StateFetching
	StateExtracted
	StateScored
	StatePersisted
	StateSkippedNoURL
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFetching:
		return "fetching"
	case StateExtracted:
		return "extracted"
	case StateScored:
		return "scored"
	case StatePersisted:
		return "persisted"
	case StateSkippedNoURL:
		return "skipped-no-url"
	}
	return "unknown"
}
