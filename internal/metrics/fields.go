package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrSport  = "sport"
	AttrResult = "result"
)
