package ports

// CommandMetrics records the outcome of engine commands for the ops KPI
// endpoint.
type CommandMetrics interface {
	RecordSuccess(command string)
	RecordNoop(command string)
	RecordFailure(command string)
}
