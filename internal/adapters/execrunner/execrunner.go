// Package execrunner provides the process-runner adapter using exec.Command.
package execrunner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/jmcdonald/gitsigns/internal/ports"
)

// Scanner buffer bounds; diff output can carry very long lines.
const (
	scanBufInitial = 64 * 1024
	scanBufMax     = 4 * 1024 * 1024
)

// ExecRunner implements ports.Runner using exec.Command. Both output streams
// are read concurrently but delivered through a single dispatch loop, so
// line callbacks never run concurrently with each other and per-stream order
// is preserved.
type ExecRunner struct{}

// New creates a new ExecRunner adapter.
func New() *ExecRunner {
	return &ExecRunner{}
}

// lineEvent is one output line tagged with the stream it arrived on.
type lineEvent struct {
	stderr bool
	text   string
}

// Run spawns the process described by spec and blocks until it has exited
// and every output line has been delivered. See ports.Runner for the full
// contract.
func (r *ExecRunner) Run(spec ports.RunSpec) (ports.RunResult, error) {
	cmd := exec.Command(spec.Command, spec.Args...)
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return ports.RunResult{}, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return ports.RunResult{}, fmt.Errorf("stderr pipe: %w", err)
	}

	var stdin io.WriteCloser
	if spec.Stdin != nil {
		stdin, err = cmd.StdinPipe()
		if err != nil {
			return ports.RunResult{}, fmt.Errorf("stdin pipe: %w", err)
		}
	}

	if err := cmd.Start(); err != nil {
		return ports.RunResult{}, fmt.Errorf("%w: %s: %v", ports.ErrSpawn, spec.Command, err)
	}

	if stdin != nil {
		// Feed input concurrently with reading so a process that echoes
		// as it reads cannot deadlock; the stream is closed before we
		// wait for exit.
		go func() {
			w := bufio.NewWriter(stdin)
			for _, line := range spec.Stdin {
				_, _ = w.WriteString(line)
				_ = w.WriteByte('\n')
			}
			_ = w.Flush()
			_ = stdin.Close()
		}()
	}

	events := make(chan lineEvent)
	var wg sync.WaitGroup
	var scanErr error
	var scanErrOnce sync.Once

	scan := func(src io.Reader, isStderr bool) {
		defer wg.Done()
		sc := bufio.NewScanner(src)
		sc.Buffer(make([]byte, 0, scanBufInitial), scanBufMax)
		for sc.Scan() {
			events <- lineEvent{stderr: isStderr, text: sc.Text()}
		}
		if err := sc.Err(); err != nil {
			scanErrOnce.Do(func() { scanErr = err })
		}
	}

	wg.Add(2)
	go scan(stdout, false)
	go scan(stderr, true)
	go func() {
		wg.Wait()
		close(events)
	}()

	// Single dispatch loop: drains fully before Wait, so the last line
	// callback always fires before Run returns.
	for ev := range events {
		switch {
		case ev.stderr && spec.OnStderr != nil:
			spec.OnStderr(ev.text)
		case !ev.stderr && spec.OnStdout != nil:
			spec.OnStdout(ev.text)
		}
	}

	waitErr := cmd.Wait()
	if scanErr != nil {
		return ports.RunResult{}, fmt.Errorf("read %s output: %w", spec.Command, scanErr)
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return ports.RunResult{ExitCode: exitErr.ExitCode()}, nil
		}
		return ports.RunResult{}, fmt.Errorf("wait for %s: %w", spec.Command, waitErr)
	}
	return ports.RunResult{ExitCode: 0}, nil
}

// Compile-time check that ExecRunner implements ports.Runner.
var _ ports.Runner = (*ExecRunner)(nil)
