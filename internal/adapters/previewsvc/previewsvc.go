// Package previewsvc assembles preview content — blame popups, hunk
// previews, sign placements — from git operation results. It is the
// use-case layer between the git client and whatever renders the text.
package previewsvc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmcdonald/gitsigns/internal/config"
	"github.com/jmcdonald/gitsigns/internal/parse"
	"github.com/jmcdonald/gitsigns/internal/patch"
	"github.com/jmcdonald/gitsigns/internal/ports"
	"github.com/jmcdonald/gitsigns/internal/signs"
)

// NotCommitted is shown in place of author details for lines that are not
// in any commit yet (git blames them to the all-zero sha).
const NotCommitted = "Not committed yet"

// Service builds preview content using an injected git client.
type Service struct {
	git ports.GitClient
	cfg *config.Config
}

// New creates a preview service.
func New(git ports.GitClient, cfg *config.Config) *Service {
	return &Service{git: git, cfg: cfg}
}

// BlameLines blames one line and formats the record as popup text:
// an "abbrev author (date)" header followed by the commit summary.
func (s *Service) BlameLines(path string, lnum int, contents []string) ([]string, error) {
	rec, err := s.git.BlameLine(path, lnum, contents)
	if err != nil {
		return nil, fmt.Errorf("blame %s:%d: %w", path, lnum, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("blame %s:%d: no output", path, lnum)
	}
	if strings.Trim(rec.SHA, "0") == "" {
		return []string{NotCommitted}, nil
	}
	header := fmt.Sprintf("%s %s (%s)", rec.AbbrevSHA, rec.Author, blameDate(rec))
	return []string{header, rec.Summary}, nil
}

// blameDate renders the author timestamp; the raw field passes through when
// it is not the unix-seconds number porcelain normally carries.
func blameDate(rec *parse.BlameRecord) string {
	secs, err := strconv.ParseInt(rec.AuthorTime, 10, 64)
	if err != nil {
		return rec.AuthorTime
	}
	return time.Unix(secs, 0).Format("2006-01-02 15:04")
}

// Hunks diffs the buffer contents against ref for path.
func (s *Service) Hunks(path, ref string, contents []string) ([]parse.Hunk, error) {
	hunks, err := s.git.Diff(path, ref, contents)
	if err != nil {
		return nil, fmt.Errorf("diff %s against %s: %w", path, ref, err)
	}
	return hunks, nil
}

// HunkLines returns the preview text for the hunk covering lnum: its header
// followed by its verbatim content lines.
func (s *Service) HunkLines(path, ref string, contents []string, lnum int) ([]string, error) {
	hunks, err := s.Hunks(path, ref, contents)
	if err != nil {
		return nil, err
	}
	h := signs.HunkAt(hunks, lnum)
	if h == nil {
		return nil, fmt.Errorf("no hunk at %s:%d", path, lnum)
	}
	return append([]string{h.Header()}, h.Lines...), nil
}

// Signs computes the sign placements and the change summary for path.
func (s *Service) Signs(path, ref string, contents []string) ([]signs.Sign, signs.Summary, error) {
	hunks, err := s.Hunks(path, ref, contents)
	if err != nil {
		return nil, signs.Summary{}, err
	}
	return signs.FromHunks(hunks), signs.Summarize(hunks), nil
}

// StageHunkAt stages the hunk covering lnum. Untracked files get an
// intent-to-add entry first so the diff has an index side to patch; when
// untracked handling is disabled in the config they are refused instead.
func (s *Service) StageHunkAt(path, ref string, contents []string, lnum int) error {
	fi, err := s.git.FileInfo(path)
	if err != nil {
		return err
	}
	if fi == nil {
		return fmt.Errorf("stage hunk: %s is not in the working tree", path)
	}
	if fi.HasConflict {
		return fmt.Errorf("stage hunk: %s has merge conflicts", path)
	}
	if fi.Object == "" {
		if !s.cfg.Untracked {
			return fmt.Errorf("stage hunk: %s is untracked and untracked handling is disabled", path)
		}
		if err := s.git.AddIntentToAdd(path); err != nil {
			return err
		}
	}

	hunks, err := s.Hunks(path, ref, contents)
	if err != nil {
		return err
	}
	h := signs.HunkAt(hunks, lnum)
	if h == nil {
		return fmt.Errorf("no hunk at %s:%d", path, lnum)
	}
	return s.git.StageLines(patch.ForHunk(fi.Relpath, fi.Mode, *h))
}

// UndoStageHunkAt reverses a previously staged hunk by applying its
// inversion to the index.
func (s *Service) UndoStageHunkAt(path string, fi *parse.FileStatus, h parse.Hunk) error {
	if fi == nil {
		return fmt.Errorf("undo stage hunk: missing index entry for %s", path)
	}
	inv := patch.Invert(h)
	return s.git.StageLines(patch.ForHunk(fi.Relpath, fi.Mode, inv))
}
