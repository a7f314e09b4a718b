package logsurgeon

import (
	"regexp/syntax"
	"strings"

	"github.com/coregx/coregex"

	"github.com/y-scope/log-surgeon/internal/captures"
	"github.com/y-scope/log-surgeon/internal/prefilter"
)

type (
	// patternDef is a registered (name, regex source) pair awaiting
	// compilation. Declaration order doubles as match priority.
	patternDef struct {
		name   string
		source string
	}

	// compiledPattern is one variable pattern after Compile.
	compiledPattern struct {
		name  string
		index int

		// probe matches only at the start of its input; the scanner
		// slices the stream at the probe position.
		probe *coregex.Regex

		// prog is the parsed pattern, used to replay matched spans for
		// full capture histories and to derive the leading-byte filter.
		prog *syntax.Regexp

		// named is true when prog contains named capture groups.
		named bool
	}
)

// compilePatterns compiles every registered pattern anchored at the
// probe position and assembles the scanner.
func compilePatterns(defs []patternDef) (*scanner, error) {
	patterns := make([]compiledPattern, len(defs))
	progs := make([]*syntax.Regexp, len(defs))

	for i, def := range defs {
		src := normalizeNamedGroups(def.source)

		prog, err := syntax.Parse(src, syntax.Perl)
		if err != nil {
			return nil, &PatternCompileError{Index: i, Name: def.name, Err: err}
		}

		probe, err := coregex.Compile(`\A(?:` + src + `)`)
		if err != nil {
			return nil, &PatternCompileError{Index: i, Name: def.name, Err: err}
		}

		patterns[i] = compiledPattern{
			name:  def.name,
			index: i,
			probe: probe,
			prog:  prog,
			named: captures.HasNamedGroups(prog),
		}
		progs[i] = prog
	}

	return &scanner{
		patterns: patterns,
		lead:     prefilter.Leading(progs),
	}, nil
}

// normalizeNamedGroups rewrites the (?<name>...) named-group spelling
// to the engine's (?P<name>...). Lookbehind spellings (?<= and (?<!
// are left alone so the engine can reject them with its own message.
// Escaped parentheses and character classes are skipped.
func normalizeNamedGroups(src string) string {
	if !strings.Contains(src, "(?<") {
		return src
	}

	var b strings.Builder
	b.Grow(len(src) + 8)

	inClass := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\\' && i+1 < len(src) {
			b.WriteByte(c)
			i++
			b.WriteByte(src[i])
			continue
		}
		if inClass {
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
			continue
		}
		if c == '[' {
			inClass = true
			b.WriteByte(c)
			continue
		}
		if c == '(' && i+2 < len(src) && src[i+1] == '?' && src[i+2] == '<' &&
			!(i+3 < len(src) && (src[i+3] == '=' || src[i+3] == '!')) {
			b.WriteString("(?P<")
			i += 2
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}
