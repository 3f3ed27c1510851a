package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrEndpoint = "endpoint"
	AttrStatus   = "status"
	AttrTeam     = "team"
	AttrOutcome  = "outcome"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

func outcome(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}
