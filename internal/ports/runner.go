// Package ports defines interfaces (contracts) for external dependencies.
// These enable dependency injection and testability via mock implementations.
package ports

import "errors"

// ErrSpawn reports that an external executable could not be started at all
// (missing binary, bad permissions). It is distinct from a nonzero exit:
// a process that starts and fails is reported through RunResult, not here.
var ErrSpawn = errors.New("failed to spawn process")

// RunSpec describes a single external process invocation.
type RunSpec struct {
	// Command is the executable name or path.
	Command string

	// Args is the ordered argument list, not including the command itself.
	Args []string

	// Dir is the working directory for the process. Empty means inherit.
	Dir string

	// Stdin, when non-nil, is written to the process's standard input in
	// order, each line followed by a newline, and the stream is closed
	// before waiting for exit. A non-nil empty slice writes nothing but
	// still closes stdin.
	Stdin []string

	// OnStdout receives each stdout line (without the trailing newline) in
	// output order. Nil discards stdout.
	OnStdout func(line string)

	// OnStderr receives each stderr line in output order. Nil discards stderr.
	OnStderr func(line string)
}

// RunResult reports how a finished process exited.
type RunResult struct {
	// ExitCode is the process exit status. Zero means success.
	ExitCode int
}

// Runner abstracts spawning an external process and streaming its output.
// Production code uses the execrunner adapter; tests use mocks.ScriptedRunner.
//
// Run blocks until the process has exited and every buffered output line has
// been delivered to its callback; within one stream, callbacks fire in output
// order, and callbacks never fire concurrently with each other. Run returns a
// non-nil error only when the process could not be spawned (wrapping
// ErrSpawn) or output streaming itself failed; a nonzero exit status is
// reported through RunResult, not as an error.
type Runner interface {
	Run(spec RunSpec) (RunResult, error)
}
