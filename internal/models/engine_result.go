package models

// LaunchFailureCode is the sentinel exit code for invocations that never
// produced a process-level exit status (timeout, missing engine binary,
// permission denied).
const LaunchFailureCode = -1

// EngineResult captures one engine invocation. OK is true only when the
// process exited zero and stdout parsed as JSON; every other outcome leaves
// OK false with a human-readable diagnostic in Stderr.
type EngineResult struct {
	OK       bool
	Contract map[string]any // parsed stdout JSON, nil unless OK
	Stdout   string
	Stderr   string
	ExitCode int
	Command  []string // exact argv executed
}

// ExecFolder is one exec_* directory under the artifacts root.
type ExecFolder struct {
	Name     string
	Path     string
	Sessions []string
}
