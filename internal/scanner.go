package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mholt/archives"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// SecretScanner scans an explicit list of files for secret signatures.
type SecretScanner struct{}

// NewSecretScanner creates a new SecretScanner instance.
func NewSecretScanner() *SecretScanner { return &SecretScanner{} }

// task describes a unit of work: one regular file, or one entry inside an
// archive. index is the task's position in the final report slice.
type task struct {
	index int
	path  string
	inner string
}

// Scan scans every file named in opts and returns one report per file (or
// per archive entry), in input order regardless of worker count. The first
// read error aborts the whole run; there is no per-file skip.
func (s *SecretScanner) Scan(ctx context.Context, opts ScanOptions, stats *AppStats) ([]FileReport, error) {
	tasks, err := s.expandTasks(ctx, opts)
	if err != nil {
		return nil, err
	}

	reports := make([]FileReport, len(tasks))

	if opts.Workers <= 1 {
		for _, t := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rep, err := s.scanOne(ctx, t, stats)
			if err != nil {
				return nil, err
			}
			reports[t.index] = rep
		}
		return reports, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	pool, err := ants.NewPoolWithFunc(opts.Workers, func(i interface{}) {
		defer wg.Done()
		if scanCtx.Err() != nil {
			return
		}
		t := i.(task)
		rep, err := s.scanOne(scanCtx, t, stats)
		if err != nil {
			fail(err)
			return
		}
		reports[t.index] = rep
	})
	if err != nil {
		return nil, fmt.Errorf("worker pool: %w", err)
	}
	defer pool.Release()

	for _, t := range tasks {
		if scanCtx.Err() != nil {
			break
		}
		wg.Add(1)
		if err := pool.Invoke(t); err != nil {
			wg.Done()
			fail(fmt.Errorf("submit task: %w", err))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// expandTasks turns the filename list into scan tasks, unfolding archives
// into one task per entry when enabled.
func (s *SecretScanner) expandTasks(ctx context.Context, opts ScanOptions) ([]task, error) {
	var tasks []task
	for _, name := range opts.Filenames {
		if opts.Archives && IsArchive(name) {
			entries, err := ListArchiveEntries(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("open archive %s: %w", name, err)
			}
			for _, inner := range entries {
				tasks = append(tasks, task{index: len(tasks), path: name, inner: inner})
			}
			continue
		}
		tasks = append(tasks, task{index: len(tasks), path: name})
	}
	return tasks, nil
}

func (s *SecretScanner) scanOne(ctx context.Context, t task, stats *AppStats) (FileReport, error) {
	rep := FileReport{Path: t.path, InnerPath: t.inner}

	var r io.ReadCloser
	if t.inner != "" {
		fsys, err := archives.FileSystem(ctx, t.path, nil)
		if err != nil {
			return rep, fmt.Errorf("open archive %s: %w", t.path, err)
		}
		if closer, ok := fsys.(io.Closer); ok {
			defer closer.Close()
		}
		r, err = fsys.Open(t.inner)
		if err != nil {
			return rep, fmt.Errorf("open %s: %w", rep.Name(), err)
		}
	} else {
		f, err := os.Open(t.path)
		if err != nil {
			return rep, err
		}
		r = f
	}
	defer r.Close()

	// Pragma resolution keys off the innermost filename, so an archive
	// entry uses its own language's comment syntax.
	name := t.path
	if t.inner != "" {
		name = t.inner
	}
	lines, err := scanReader(name, r)
	if err != nil {
		return rep, fmt.Errorf("read %s: %w", rep.Name(), err)
	}
	rep.Lines = lines

	stats.FilesScanned.Add(1)
	if len(lines) > 0 {
		stats.FilesFlagged.Add(1)
		stats.LinesFlagged.Add(int64(len(lines)))
		logrus.WithFields(logrus.Fields{"file": rep.Name(), "lines": len(lines)}).Debug("flagged")
	}
	return rep, nil
}

// scanReader walks the lines of one file, maintaining the one-line skip
// state set by next-line pragmas, and collects every line that matches a
// signature and was not suppressed. Line numbers are 1-based.
func scanReader(filename string, r io.Reader) ([]FlaggedLine, error) {
	regexes := resolveFileRegexes(filename)
	br := bufio.NewReaderSize(r, 64*1024)

	var flagged []FlaggedLine
	skipNext := false

	for lineNum := 1; ; lineNum++ {
		raw, err := br.ReadBytes('\n')
		if len(raw) > 0 {
			decoded := decodeLine(raw)
			// Pragma patterns anchor on $. Drop only the trailing
			// newline, so a stray carriage return still defeats the
			// [ \t]*$ tail exactly as it does for existing consumers.
			text := strings.TrimSuffix(decoded, "\n")
			switch {
			case skipNext:
				// The previous line was a next-line pragma; this
				// line is exempt unconditionally.
				skipNext = false
			case anySearch(regexes.nextline, text):
				// The pragma line itself is exempt too.
				skipNext = true
			case anySearch(regexes.inline, text):
				// Inline pragma suppresses just this line.
			case matchesSignature(raw, decoded):
				flagged = append(flagged, FlaggedLine{
					Number: lineNum,
					Text:   strings.TrimSpace(decoded),
				})
			}
		}
		if err != nil {
			if err == io.EOF {
				return flagged, nil
			}
			return nil, err
		}
	}
}

func anySearch(regexes []*regexp.Regexp, s string) bool {
	for _, re := range regexes {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// decodeLine converts raw line bytes to text, substituting the replacement
// character for invalid sequences. A decode problem never aborts a scan.
func decodeLine(b []byte) string {
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
