// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/jmcdonald/gitsigns/internal/adapters/execgit"
	"github.com/jmcdonald/gitsigns/internal/adapters/previewsvc"
	"github.com/jmcdonald/gitsigns/internal/async"
	"github.com/jmcdonald/gitsigns/internal/config"
	"github.com/jmcdonald/gitsigns/internal/gitver"
	"github.com/jmcdonald/gitsigns/internal/parse"
	"github.com/jmcdonald/gitsigns/internal/ports"
	"github.com/jmcdonald/gitsigns/internal/signs"
	"github.com/jmcdonald/gitsigns/internal/tui"
)

// PreviewService provides blame, hunk and staging operations for the CLI.
type PreviewService interface {
	BlameLines(path string, lnum int, contents []string) ([]string, error)
	Hunks(path, ref string, contents []string) ([]parse.Hunk, error)
	HunkLines(path, ref string, contents []string, lnum int) ([]string, error)
	Signs(path, ref string, contents []string) ([]signs.Sign, signs.Summary, error)
	StageHunkAt(path, ref string, contents []string, lnum int) error
}

// RepoService provides repository metadata operations for the CLI.
type RepoService interface {
	Version() (gitver.Version, error)
	RepoInfo(cwd string) (*parse.RepoInfo, error)
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means build the real ones from config)
	PreviewSvc PreviewService
	RepoSvc    RepoService

	// ReadLines reads a file as lines; injectable for tests.
	ReadLines func(path string) ([]string, error)

	// Popup displays preview lines; injectable for tests.
	Popup func(title string, lines []string) error

	// Color functions (can be disabled for testing)
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	gray   func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		green:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		cyan:    color.New(color.FgCyan).SprintFunc(),
		gray:    color.New(color.FgHiBlack).SprintFunc(),
		red:     color.New(color.FgRed).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	exitCode := 0
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(code int) { exitCode = code; _ = exitCode },
		green:   noColor,
		yellow:  noColor,
		cyan:    noColor,
		gray:    noColor,
		red:     noColor,
	}
}

// flags shared by the subcommands.
type runFlags struct {
	ref   string
	algo  string
	git   string
	popup bool
	debug bool
}

// Run dispatches the subcommand and returns through c.Exit on failure.
func (c *CLI) Run() {
	if len(c.Args) < 2 {
		c.printUsage()
		c.Exit(1)
		return
	}

	cmd := c.Args[1]
	fs := pflag.NewFlagSet("gitsigns", pflag.ContinueOnError)
	fs.SetOutput(c.Err)
	var f runFlags
	fs.StringVar(&f.ref, "ref", "HEAD", "ref to diff against")
	fs.StringVar(&f.algo, "algorithm", "", "diff algorithm (myers, minimal, patience, histogram)")
	fs.StringVar(&f.git, "git", "", "path to the git binary")
	fs.BoolVar(&f.popup, "popup", false, "show results in a terminal popup")
	fs.BoolVar(&f.debug, "debug", false, "verbose diagnostics")
	if err := fs.Parse(c.Args[2:]); err != nil {
		c.Exit(1)
		return
	}
	rest := fs.Args()

	if err := c.setupDefaults(f); err != nil {
		c.fail(err)
		return
	}

	var err error
	switch cmd {
	case "version":
		err = c.cmdVersion()
	case "repo":
		err = c.cmdRepo()
	case "hunks":
		err = c.cmdHunks(f, rest)
	case "blame":
		err = c.cmdBlame(f, rest)
	case "preview":
		err = c.cmdPreview(f, rest)
	case "stage":
		err = c.cmdStage(f, rest)
	case "help", "-h", "--help":
		c.printUsage()
	default:
		fmt.Fprintf(c.Err, "%s unknown command %q\n", c.red("error:"), cmd)
		c.printUsage()
		c.Exit(1)
		return
	}
	if err != nil {
		c.fail(err)
	}
}

func (c *CLI) fail(err error) {
	fmt.Fprintf(c.Err, "%s %v\n", c.red("error:"), err)
	c.Exit(1)
}

// setupDefaults builds the real services when none were injected.
func (c *CLI) setupDefaults(f runFlags) error {
	if c.ReadLines == nil {
		c.ReadLines = readFileLines
	}
	if c.PreviewSvc != nil && c.RepoSvc != nil {
		if c.Popup == nil {
			c.Popup = func(title string, lines []string) error {
				return tui.Run(title, lines, ports.PreviewLayout{})
			}
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.Popup == nil {
		layout := ports.PreviewLayout{
			Height:    cfg.Preview.MaxHeight,
			Width:     cfg.Preview.MaxWidth,
			Highlight: cfg.Preview.Highlight,
		}
		c.Popup = func(title string, lines []string) error {
			sink := tui.NewSink(title)
			w, err := sink.Open(lines, layout)
			if err != nil {
				return err
			}
			return sink.Wait(w)
		}
	}
	if f.algo != "" {
		cfg.DiffAlgorithm = f.algo
	}
	if f.git != "" {
		cfg.GitPath = f.git
	}
	if f.debug {
		cfg.Debug = true
	}

	gate := gitver.NewGate()
	client := execgit.New(gate,
		execgit.WithGitPath(cfg.GitPath),
		execgit.WithDiffAlgorithm(cfg.DiffAlgorithm),
		execgit.WithDebug(cfg.Debug),
	)
	if err := client.DetectVersion(); err != nil {
		return fmt.Errorf("detect git version: %w", err)
	}

	if c.PreviewSvc == nil {
		c.PreviewSvc = previewsvc.New(client, cfg)
	}
	if c.RepoSvc == nil {
		c.RepoSvc = client
	}
	return nil
}

func (c *CLI) cmdVersion() error {
	fmt.Fprintf(c.Out, "gitsigns %s\n", c.green(c.Version))
	v, err := c.RepoSvc.Version()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "git %s\n", c.cyan(v.String()))
	return nil
}

func (c *CLI) cmdRepo() error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	info, err := c.RepoSvc.RepoInfo(cwd)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "%s %s\n", c.gray("toplevel:"), info.Toplevel)
	fmt.Fprintf(c.Out, "%s %s\n", c.gray("git dir: "), info.GitDir)
	head := info.AbbrevHead
	if head == "" {
		head = c.yellow("(detached)")
	}
	fmt.Fprintf(c.Out, "%s %s\n", c.gray("head:    "), head)
	return nil
}

func (c *CLI) cmdHunks(f runFlags, rest []string) error {
	if len(rest) < 1 {
		return fmt.Errorf("usage: gitsigns hunks <file>")
	}
	path := rest[0]
	contents, err := c.ReadLines(path)
	if err != nil {
		return err
	}

	// The sign placements and the hunk listing are independent diffs;
	// run them concurrently.
	type signsResult struct {
		placements []signs.Sign
		summary    signs.Summary
	}
	signsF := async.Go(func() (signsResult, error) {
		placements, summary, err := c.PreviewSvc.Signs(path, f.ref, contents)
		return signsResult{placements, summary}, err
	})

	hunks, err := c.PreviewSvc.Hunks(path, f.ref, contents)
	if err != nil {
		return err
	}
	sr, err := async.Await(signsF)
	if err != nil {
		return err
	}
	placements, summary := sr.placements, sr.summary

	for _, h := range hunks {
		fmt.Fprintf(c.Out, "%s\n", c.yellow(h.Header()))
	}
	for _, s := range placements {
		fmt.Fprintf(c.Out, "%s line %d\n", c.signColor(s.Type)(s.Type.String()), s.Lnum)
	}
	fmt.Fprintf(c.Out, "%s +%d ~%d -%d\n",
		c.gray("summary:"), summary.Added, summary.Changed, summary.Removed)
	return nil
}

func (c *CLI) signColor(t signs.Type) func(a ...interface{}) string {
	switch t {
	case signs.Add:
		return c.green
	case signs.Delete, signs.TopDelete:
		return c.red
	default:
		return c.yellow
	}
}

func (c *CLI) cmdBlame(f runFlags, rest []string) error {
	path, lnum, err := pathAndLine(rest, "blame")
	if err != nil {
		return err
	}
	contents, err := c.ReadLines(path)
	if err != nil {
		return err
	}
	lines, err := c.PreviewSvc.BlameLines(path, lnum, contents)
	if err != nil {
		return err
	}
	if f.popup {
		return c.Popup(fmt.Sprintf("blame %s:%d", path, lnum), lines)
	}
	for _, l := range lines {
		fmt.Fprintln(c.Out, l)
	}
	return nil
}

func (c *CLI) cmdPreview(f runFlags, rest []string) error {
	path, lnum, err := pathAndLine(rest, "preview")
	if err != nil {
		return err
	}
	contents, err := c.ReadLines(path)
	if err != nil {
		return err
	}
	lines, err := c.PreviewSvc.HunkLines(path, f.ref, contents, lnum)
	if err != nil {
		return err
	}
	if f.popup {
		return c.Popup(fmt.Sprintf("hunk %s:%d", path, lnum), tui.StyleHunkLines(lines))
	}
	for _, l := range lines {
		fmt.Fprintln(c.Out, l)
	}
	return nil
}

func (c *CLI) cmdStage(f runFlags, rest []string) error {
	path, lnum, err := pathAndLine(rest, "stage")
	if err != nil {
		return err
	}
	contents, err := c.ReadLines(path)
	if err != nil {
		return err
	}
	if err := c.PreviewSvc.StageHunkAt(path, f.ref, contents, lnum); err != nil {
		return err
	}
	fmt.Fprintf(c.Out, "%s staged hunk at %s:%d\n", c.green("ok:"), path, lnum)
	return nil
}

func pathAndLine(rest []string, cmd string) (string, int, error) {
	if len(rest) < 2 {
		return "", 0, fmt.Errorf("usage: gitsigns %s <file> <line>", cmd)
	}
	lnum, err := strconv.Atoi(rest[1])
	if err != nil || lnum < 1 {
		return "", 0, fmt.Errorf("%s: invalid line number %q", cmd, rest[1])
	}
	return rest[0], lnum, nil
}

func (c *CLI) printUsage() {
	usage := strings.Join([]string{
		"gitsigns - git signs and blame helper",
		"",
		"Usage:",
		"  gitsigns version                 show gitsigns and git versions",
		"  gitsigns repo                    show repository info",
		"  gitsigns hunks <file>            list hunks, signs and summary",
		"  gitsigns blame <file> <line>     blame a single line",
		"  gitsigns preview <file> <line>   preview the hunk at a line",
		"  gitsigns stage <file> <line>     stage the hunk at a line",
		"",
		"Flags:",
		"  --ref <ref>          ref to diff against (default HEAD)",
		"  --algorithm <algo>   diff algorithm",
		"  --git <path>         git binary",
		"  --popup              show results in a terminal popup",
		"  --debug              verbose diagnostics",
	}, "\n")
	fmt.Fprintln(c.Out, usage)
}

// readFileLines reads a file and returns its lines.
func readFileLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
