package domain

// RunState is a stage of a build-deps run.
type RunState uint8

const (
	// StateIdle is the state before any input has been read.
	StateIdle RunState = iota
	// StateLoadingManifest is active while the manifest is read and parsed.
	StateLoadingManifest
	// StateLoadingLockfile is active while the lockfile is read and parsed.
	StateLoadingLockfile
	// StateResolved means the dependency list has been extracted.
	StateResolved
	// StateBuilding is active while dependency builds are running.
	StateBuilding
	// StateDone means every dependency was built successfully.
	StateDone
	// StateAborted means the run failed. It is terminal.
	StateAborted
)

var runStateNames = [...]string{
	StateIdle:            "idle",
	StateLoadingManifest: "loading-manifest",
	StateLoadingLockfile: "loading-lockfile",
	StateResolved:        "resolved",
	StateBuilding:        "building",
	StateDone:            "done",
	StateAborted:         "aborted",
}

func (s RunState) String() string {
	if int(s) < len(runStateNames) {
		return runStateNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether no further transition can happen from s.
func (s RunState) IsTerminal() bool {
	return s == StateDone || s == StateAborted
}
