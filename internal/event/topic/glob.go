package topic

import (
	"strings"

	"github.com/tidwall/match"
)

// Glob is a compiled topic pattern.
type Glob struct {
	pattern Topic
	expr    string
}

// escaper protects the characters tidwall/match treats specially, other
// than the wildcard itself.
var escaper = strings.NewReplacer(`\`, `\\`, `?`, `\?`)

// Compile prepares pattern for matching. Compile never fails: every
// character other than "*" is literal.
func Compile(pattern Topic) Glob {
	return Glob{
		pattern: pattern,
		expr:    escaper.Replace(string(pattern)),
	}
}

// Pattern returns the source pattern.
func (g Glob) Pattern() Topic {
	return g.pattern
}

// Match reports whether the whole topic matches the pattern.
func (g Glob) Match(t Topic) bool {
	return match.Match(string(t), g.expr)
}

// Matches reports whether t matches pattern. A pattern without a wildcard
// matches only itself.
func (t Topic) Matches(pattern Topic) bool {
	if !pattern.IsPattern() {
		return t == pattern
	}
	return Compile(pattern).Match(t)
}
