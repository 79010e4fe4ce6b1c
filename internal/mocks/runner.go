// Package mocks provides hand-written mock implementations of the ports
// interfaces for testing.
package mocks

import (
	"strings"

	"github.com/jmcdonald/gitsigns/internal/ports"
)

// ScriptedResponse is what a ScriptedRunner plays back for one invocation.
type ScriptedResponse struct {
	Stdout   []string
	Stderr   []string
	ExitCode int
	// Err is returned from Run itself (spawn failure); no line callbacks
	// fire when it is set.
	Err error
}

// ScriptedRunner implements ports.Runner by matching each invocation's
// argument list against a script. It records every call for assertions.
type ScriptedRunner struct {
	// Responses maps a space-joined argument list to its response.
	Responses map[string]ScriptedResponse

	// Default is played back for unmatched invocations.
	Default ScriptedResponse

	// Calls records every RunSpec passed to Run, in order.
	Calls []ports.RunSpec
}

// NewScriptedRunner creates an empty scripted runner.
func NewScriptedRunner() *ScriptedRunner {
	return &ScriptedRunner{Responses: make(map[string]ScriptedResponse)}
}

// Script registers the response for an exact argument list.
func (r *ScriptedRunner) Script(args []string, resp ScriptedResponse) {
	r.Responses[strings.Join(args, " ")] = resp
}

// Run plays back the scripted response: stdout lines, then stderr lines,
// then the exit code.
func (r *ScriptedRunner) Run(spec ports.RunSpec) (ports.RunResult, error) {
	r.Calls = append(r.Calls, spec)

	resp, ok := r.Responses[strings.Join(spec.Args, " ")]
	if !ok {
		resp = r.Default
	}
	if resp.Err != nil {
		return ports.RunResult{}, resp.Err
	}
	if spec.OnStdout != nil {
		for _, line := range resp.Stdout {
			spec.OnStdout(line)
		}
	}
	if spec.OnStderr != nil {
		for _, line := range resp.Stderr {
			spec.OnStderr(line)
		}
	}
	return ports.RunResult{ExitCode: resp.ExitCode}, nil
}

// Compile-time check that ScriptedRunner implements ports.Runner.
var _ ports.Runner = (*ScriptedRunner)(nil)
