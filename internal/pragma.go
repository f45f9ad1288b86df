package internal

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

type pragmaMode int

const (
	pragmaInline pragmaMode = iota
	pragmaNextline
)

// buildPragmaRegex synthesizes the allowlist pragma pattern for one comment
// style. The two modes are deliberately asymmetric: inline pragmas are
// anchored only at end of line and accept both the allowlist and whitelist
// spellings; nextline pragmas are anchored at start of line, accept only
// allowlist, and require the extra nextline keyword. Each joiner may be a
// space or a hyphen. Existing annotated codebases rely on exactly this
// shape, so it must not be "fixed".
func buildPragmaRegex(style commentStyle, mode pragmaMode) *regexp.Regexp {
	anchor, word, nextline := "", `(allow|white)list`, ""
	if mode == pragmaNextline {
		anchor, word, nextline = `^`, `allowlist`, `[ -]nextline`
	}
	pattern := fmt.Sprintf(`%s[ \t]*%s *pragma: ?%s%s[ -]secret.*?%s[ \t]*$`,
		anchor, style.start, word, nextline, style.end)
	return regexp.MustCompile(pattern)
}

// All (style, mode) pairs are precompiled here: the domain is small and
// static, so there is nothing to memoize at runtime. Slices are
// index-aligned with commentStyles and read-only after init.
var (
	inlinePragmas   []*regexp.Regexp
	nextlinePragmas []*regexp.Regexp
)

func init() {
	for _, style := range commentStyles {
		inlinePragmas = append(inlinePragmas, buildPragmaRegex(style, pragmaInline))
		nextlinePragmas = append(nextlinePragmas, buildPragmaRegex(style, pragmaNextline))
	}
}

// fileRegexes holds the pragma regexes applicable to one scanned file,
// resolved once per file, not once per line.
type fileRegexes struct {
	inline   []*regexp.Regexp
	nextline []*regexp.Regexp
}

// resolveFileRegexes picks the pragma regexes for a filename. A recognized
// extension narrows the set to its single comment style; an unknown or
// empty extension falls back to every style, so files in unmapped languages
// still honor their pragmas.
func resolveFileRegexes(filename string) fileRegexes {
	if idx, ok := extToStyle[fileExt(filename)]; ok {
		return fileRegexes{
			inline:   inlinePragmas[idx : idx+1],
			nextline: nextlinePragmas[idx : idx+1],
		}
	}
	return fileRegexes{inline: inlinePragmas, nextline: nextlinePragmas}
}

// fileExt returns the substring after the last dot of the base name, or ""
// when there is no dot.
func fileExt(filename string) string {
	base := filepath.Base(filename)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i+1:]
	}
	return ""
}
