package inmemory

import "sync"

type Snapshot struct {
	CommandTotal   uint64            `json:"command_total"`
	CommandSuccess uint64            `json:"command_success"`
	CommandNoop    uint64            `json:"command_noop"`
	CommandFailure uint64            `json:"command_failure"`
	ByCommand      map[string]uint64 `json:"by_command"`
}

// Recorder counts engine command outcomes for the /ops/kpi endpoint.
type Recorder struct {
	mu        sync.Mutex
	success   uint64
	noop      uint64
	failure   uint64
	byCommand map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byCommand: map[string]uint64{},
	}
}

func (r *Recorder) RecordSuccess(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byCommand[command]++
}

func (r *Recorder) RecordNoop(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noop++
	r.byCommand[command]++
}

func (r *Recorder) RecordFailure(command string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
	r.byCommand[command]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CommandSuccess: r.success,
		CommandNoop:    r.noop,
		CommandFailure: r.failure,
		CommandTotal:   r.success + r.noop + r.failure,
		ByCommand:      make(map[string]uint64, len(r.byCommand)),
	}
	for k, v := range r.byCommand {
		out.ByCommand[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
