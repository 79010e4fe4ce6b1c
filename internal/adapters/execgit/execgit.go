// Package execgit provides the git operation façade: each method composes a
// fixed command template with the process runner and the matching line
// parser, and returns the parser's typed result.
package execgit

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"

	"github.com/jmcdonald/gitsigns/internal/adapters/execrunner"
	"github.com/jmcdonald/gitsigns/internal/adapters/osfs"
	"github.com/jmcdonald/gitsigns/internal/gitver"
	"github.com/jmcdonald/gitsigns/internal/parse"
	"github.com/jmcdonald/gitsigns/internal/ports"
)

// Client implements ports.GitClient by shelling out to the git binary.
type Client struct {
	gitBin string
	dir    string
	algo   string
	debug  bool
	runner ports.Runner
	fs     ports.FileSystem
	gate   *gitver.Gate
	logger *log.Logger
}

// Option is a functional option for configuring Client.
type Option func(*Client)

// WithGitPath sets a custom path to the git binary.
func WithGitPath(path string) Option {
	return func(c *Client) {
		if strings.TrimSpace(path) != "" {
			c.gitBin = path
		}
	}
}

// WithDir sets the working directory git commands run in.
func WithDir(dir string) Option {
	return func(c *Client) { c.dir = dir }
}

// WithDiffAlgorithm selects the diff algorithm (myers, minimal, patience,
// histogram).
func WithDiffAlgorithm(algo string) Option {
	return func(c *Client) {
		if algo != "" {
			c.algo = algo
		}
	}
}

// WithRunner injects a process runner (tests use a scripted runner).
func WithRunner(r ports.Runner) Option {
	return func(c *Client) { c.runner = r }
}

// WithFileSystem injects a filesystem (tests use a mock).
func WithFileSystem(fs ports.FileSystem) Option {
	return func(c *Client) { c.fs = fs }
}

// WithLogger injects the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithDebug passes raw placeholders through in repo info and raises
// diagnostic verbosity.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.debug = debug }
}

// New creates a git client. The gate carries the detected git version; it
// may start unset, in which case DetectVersion must run before any
// version-gated operation.
func New(gate *gitver.Gate, opts ...Option) *Client {
	c := &Client{
		gitBin: "git",
		algo:   "myers",
		runner: execrunner.New(),
		fs:     osfs.New(),
		gate:   gate,
		logger: log.New(os.Stderr),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// runOutput is the accumulated result of one git invocation.
type runOutput struct {
	stdout []string
	stderr []string
	exit   int
}

func (c *Client) run(dir string, args []string, stdin []string) (runOutput, error) {
	if dir == "" {
		dir = c.dir
	}
	var out runOutput
	res, err := c.runner.Run(ports.RunSpec{
		Command:  c.gitBin,
		Args:     args,
		Dir:      dir,
		Stdin:    stdin,
		OnStdout: func(l string) { out.stdout = append(out.stdout, l) },
		OnStderr: func(l string) { out.stderr = append(out.stderr, l) },
	})
	if err != nil {
		return runOutput{}, err
	}
	out.exit = res.ExitCode
	return out, nil
}

// query runs a read-only operation: stderr is logged as diagnostics but
// never fails the operation, and neither does a nonzero exit. Only a spawn
// failure is an error.
func (c *Client) query(args []string, stdin []string) (runOutput, error) {
	return c.queryIn("", args, stdin)
}

func (c *Client) queryIn(dir string, args []string, stdin []string) (runOutput, error) {
	out, err := c.run(dir, args, stdin)
	if err != nil {
		return runOutput{}, err
	}
	for _, line := range out.stderr {
		c.logger.Debug("git stderr", "args", strings.Join(args, " "), "line", line)
	}
	return out, nil
}

// mutate runs a state-changing operation: a spawn failure, a nonzero exit,
// or any stderr output at all is a hard failure carrying the concatenated
// stderr text.
func (c *Client) mutate(args []string, stdin []string) error {
	out, err := c.run("", args, stdin)
	if err != nil {
		return err
	}
	if out.exit != 0 || len(out.stderr) > 0 {
		detail := strings.Join(out.stderr, "\n")
		if detail == "" {
			detail = fmt.Sprintf("exit status %d", out.exit)
		}
		return fmt.Errorf("git %s: %s", args[0], detail)
	}
	return nil
}

// Version runs `git --version` and parses the numeric triple.
func (c *Client) Version() (gitver.Version, error) {
	out, err := c.query([]string{"--version"}, nil)
	if err != nil {
		return gitver.Version{}, err
	}
	if len(out.stdout) == 0 {
		return gitver.Version{}, fmt.Errorf("git --version produced no output")
	}
	return gitver.FromCommandOutput(out.stdout[0])
}

// DetectVersion runs Version and stores the result in the gate. It is a
// no-op when the gate is already set, including when another detector set
// it between our check and our store.
func (c *Client) DetectVersion() error {
	if _, err := c.gate.Version(); err == nil {
		return nil
	}
	v, err := c.Version()
	if err != nil {
		return err
	}
	if err := c.gate.Set(v); err != nil && !errors.Is(err, gitver.ErrAlreadySet) {
		return err
	}
	return nil
}

// RepoInfo resolves toplevel, metadata directory and abbreviated head for
// the repository containing cwd. The git-dir flag is version-gated:
// --absolute-git-dir needs git 2.13.0.
func (c *Client) RepoInfo(cwd string) (*parse.RepoInfo, error) {
	hasAbs, err := c.gate.MeetsMinimum(2, 13)
	if err != nil {
		return nil, fmt.Errorf("repo info: %w", err)
	}
	gitDirFlag := "--git-dir"
	if hasAbs {
		gitDirFlag = "--absolute-git-dir"
	}

	dir := cwd
	if dir == "" {
		dir = c.dir
	}
	out, err := c.queryIn(dir, []string{"rev-parse", "--show-toplevel", gitDirFlag, "--abbrev-ref", "HEAD"}, nil)
	if err != nil {
		return nil, err
	}
	return parse.ParseRepoInfo(out.stdout, parse.RepoInfoOptions{
		BaseDir: dir,
		Exists:  c.pathExists,
		Debug:   c.debug,
	})
}

func (c *Client) pathExists(path string) bool {
	_, err := c.fs.Stat(path)
	return err == nil
}

// FileInfo returns the index entry for a single path.
func (c *Client) FileInfo(path string) (*parse.FileStatus, error) {
	out, err := c.query([]string{"ls-files", "--stage", "--others", "--exclude-standard", path}, nil)
	if err != nil {
		return nil, err
	}
	if len(out.stdout) == 0 {
		return nil, nil
	}
	return parse.FileStatusLine(out.stdout[0])
}

// StagedContent returns the content lines of the blob at the given index
// stage for path.
func (c *Client) StagedContent(stage int, path string) ([]string, error) {
	out, err := c.query([]string{"show", fmt.Sprintf(":%d:%s", stage, path)}, nil)
	if err != nil {
		return nil, err
	}
	return out.stdout, nil
}

// WriteStagedContent writes the blob at the given index stage for path to
// outPath, inserting a newline after every line.
func (c *Client) WriteStagedContent(stage int, path, outPath string) error {
	lines, err := c.StagedContent(stage, path)
	if err != nil {
		return err
	}
	return c.fs.WriteFile(outPath, joinLines(lines), 0o600)
}

// BlameLine blames one line of path against the supplied buffer contents.
func (c *Client) BlameLine(path string, lnum int, contents []string) (*parse.BlameRecord, error) {
	args := []string{
		"blame",
		"--contents", "-",
		"-L", fmt.Sprintf("%d,+1", lnum),
		"--line-porcelain",
		path,
	}
	out, err := c.query(args, contents)
	if err != nil {
		return nil, err
	}
	return parse.Blame(out.stdout)
}

// sanitizeRef keeps temp-file names filesystem-safe when the reference name
// contains separators (refs/heads/main).
var sanitizeRef = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Diff writes contents to a uniquely named temp file and diffs it against
// the blob at ref, returning the zero-context hunks. The temp file is
// removed on every exit path; a removal failure is aggregated with the
// primary error rather than masking it.
func (c *Client) Diff(path, ref string, contents []string) (hunks []parse.Hunk, err error) {
	tmp := filepath.Join(c.fs.TempDir(), fmt.Sprintf(
		"gitsigns-%s-%s-%08x",
		sanitizeRef.ReplaceAllString(ref, "-"),
		filepath.Base(path),
		rand.Uint32(),
	))
	if werr := c.fs.WriteFile(tmp, joinLines(contents), 0o600); werr != nil {
		return nil, fmt.Errorf("write diff temp file: %w", werr)
	}
	defer func() {
		if rerr := c.fs.Remove(tmp); rerr != nil {
			err = multierr.Append(err, fmt.Errorf("remove diff temp file: %w", rerr))
		}
	}()

	args := []string{
		"diff",
		"--color=never",
		"--diff-algorithm=" + c.algo,
		"--patch-with-raw",
		"--unified=0",
		ref,
		tmp,
	}
	out, err := c.query(args, nil)
	if err != nil {
		return nil, err
	}
	return parse.Hunks(out.stdout)
}

// StageLines applies patch lines to the index.
func (c *Client) StageLines(patch []string) error {
	if len(patch) == 0 {
		return nil
	}
	return c.mutate([]string{"apply", "--cached", "--unidiff-zero", "-"}, patch)
}

// AddIntentToAdd records an intent-to-add entry for an untracked file.
func (c *Client) AddIntentToAdd(path string) error {
	return c.mutate([]string{"add", "--intent-to-add", path}, nil)
}

// UpdateIndex registers a cache entry for path.
func (c *Client) UpdateIndex(mode, object, path string) error {
	info := fmt.Sprintf("%s,%s,%s", mode, object, path)
	return c.mutate([]string{"update-index", "--add", "--cacheinfo", info}, nil)
}

// Command runs an arbitrary git invocation and returns its stdout lines.
func (c *Client) Command(args ...string) ([]string, error) {
	out, err := c.query(args, nil)
	if err != nil {
		return nil, err
	}
	return out.stdout, nil
}

// joinLines renders lines with a fixed line-ending convention: one \n per
// line, no CRLF translation.
func joinLines(lines []string) []byte {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Compile-time check that Client implements ports.GitClient.
var _ ports.GitClient = (*Client)(nil)
