package internal

import (
	"fmt"
	"io"
)

// FlaggedLine is one line that matched a signature and survived pragma
// filtering. Text is the decoded line with surrounding whitespace trimmed.
type FlaggedLine struct {
	Number int
	Text   string
}

// FileReport collects the flagged lines of a single scanned file. InnerPath
// is set for entries scanned inside an archive.
type FileReport struct {
	Path      string
	InnerPath string
	Lines     []FlaggedLine
}

// Flagged reports whether the file had at least one flagged line.
func (r FileReport) Flagged() bool { return len(r.Lines) > 0 }

// Name is the display name: the path, or path::entry for archive entries.
func (r FileReport) Name() string {
	if r.InnerPath != "" {
		return r.Path + "::" + r.InnerPath
	}
	return r.Path
}

// PrintReports writes the report in the fixed output format: one header per
// flagged file followed by its flagged lines. Clean files produce no output
// at all. Returns the names of the flagged files.
func PrintReports(w io.Writer, reports []FileReport) []string {
	var flagged []string
	for _, rep := range reports {
		if !rep.Flagged() {
			continue
		}
		fmt.Fprintf(w, "Flagged content found in: %s\n", rep.Name())
		for _, line := range rep.Lines {
			fmt.Fprintf(w, "  Line %d: %s\n", line.Number, line.Text)
		}
		flagged = append(flagged, rep.Name())
	}
	return flagged
}
