package internal

// commentStyle describes how a language opens and optionally closes a
// comment. Both fields are regexp fragments, not literals. An empty end
// means the comment runs to end of line.
type commentStyle struct {
	start string
	end   string
}

// commentStyles lists the supported comment syntaxes. Order matters only
// for the unknown-extension fallback, which tries every style.
var commentStyles = []commentStyle{
	{start: `#`},                           // Python, YAML
	{start: `//`},                          // Go, JavaScript
	{start: `/\*`, end: ` *\*/`},           // C, Java
	{start: `--`},                          // SQL
	{start: `<!--[# \t]*?`, end: ` *?-->`}, // XML
	// Extend here for more languages
}

// extToStyle maps a file extension (without the leading dot) to an index
// into commentStyles. Lookups are case-sensitive.
var extToStyle = map[string]int{
	"yaml": 0,
	"py":   0,
	"sql":  3,
	"go":   1,
	"js":   1,
	"java": 2,
	"xml":  4,
	// Add more mappings for other languages
}
