// Package captures re-scans an already-matched text span against the
// parsed form of the pattern that produced it, recording every
// occurrence of every named capture group.
//
// Regex engines report only the final occurrence of a group nested
// inside a quantifier. The parser needs the whole history, so matched
// spans are replayed here by a small backtracking interpreter over the
// regexp/syntax AST. The interpreter is greedy and leftmost-first,
// the same submatch semantics the engine used to produce the span, and
// it only ever runs on text the engine has already accepted.
package captures

import (
	"regexp/syntax"
	"unicode"
	"unicode/utf8"
)

// maxSteps bounds the interpreter. Spans are single variable matches,
// so the budget is generous; on overflow the caller falls back to the
// engine's single-occurrence submatches.
const maxSteps = 1 << 20

// Harvest matches re against the entire text and returns the matched
// substrings of every named group, per name, in occurrence order.
// The second result is false when text cannot be replayed (step budget
// exhausted, or the AST and span disagree).
func Harvest(re *syntax.Regexp, text string) (map[string][]string, bool) {
	m := &matcher{text: text}
	ok := m.match(re, 0, func(pos int) bool { return pos == len(text) })
	if !ok || m.overflow {
		return nil, false
	}
	out := make(map[string][]string, len(m.trail))
	for _, c := range m.trail {
		out[c.name] = append(out[c.name], text[c.start:c.end])
	}
	return out, true
}

// HasNamedGroups reports whether re contains at least one named
// capture group.
func HasNamedGroups(re *syntax.Regexp) bool {
	if re.Op == syntax.OpCapture && re.Name != "" {
		return true
	}
	for _, sub := range re.Sub {
		if HasNamedGroups(sub) {
			return true
		}
	}
	return false
}

type (
	capture struct {
		name       string
		start, end int
	}

	// cont is the continuation invoked with the position reached after
	// the current node matched. Returning false makes the node try its
	// next alternative.
	cont func(pos int) bool

	matcher struct {
		text     string
		trail    []capture
		steps    int
		overflow bool
	}
)

func (m *matcher) match(re *syntax.Regexp, pos int, k cont) bool {
	m.steps++
	if m.steps > maxSteps {
		m.overflow = true
	}
	if m.overflow {
		return false
	}

	switch re.Op {
	case syntax.OpNoMatch:
		return false

	case syntax.OpEmptyMatch:
		return k(pos)

	case syntax.OpLiteral:
		fold := re.Flags&syntax.FoldCase != 0
		p := pos
		for _, want := range re.Rune {
			r, size := m.runeAt(p)
			if size == 0 || !runeEq(r, want, fold) {
				return false
			}
			p += size
		}
		return k(p)

	case syntax.OpCharClass:
		r, size := m.runeAt(pos)
		if size == 0 || !inClass(r, re.Rune) {
			return false
		}
		return k(pos + size)

	case syntax.OpAnyCharNotNL:
		r, size := m.runeAt(pos)
		if size == 0 || r == '\n' {
			return false
		}
		return k(pos + size)

	case syntax.OpAnyChar:
		_, size := m.runeAt(pos)
		if size == 0 {
			return false
		}
		return k(pos + size)

	case syntax.OpBeginText:
		if pos != 0 {
			return false
		}
		return k(pos)

	case syntax.OpEndText:
		if pos != len(m.text) {
			return false
		}
		return k(pos)

	case syntax.OpBeginLine:
		if pos != 0 && m.text[pos-1] != '\n' {
			return false
		}
		return k(pos)

	case syntax.OpEndLine:
		if pos != len(m.text) && m.text[pos] != '\n' {
			return false
		}
		return k(pos)

	case syntax.OpWordBoundary:
		if !m.atWordBoundary(pos) {
			return false
		}
		return k(pos)

	case syntax.OpNoWordBoundary:
		if m.atWordBoundary(pos) {
			return false
		}
		return k(pos)

	case syntax.OpCapture:
		if re.Name == "" {
			return m.match(re.Sub[0], pos, k)
		}
		return m.match(re.Sub[0], pos, func(end int) bool {
			m.trail = append(m.trail, capture{name: re.Name, start: pos, end: end})
			if k(end) {
				return true
			}
			m.trail = m.trail[:len(m.trail)-1]
			return false
		})

	case syntax.OpConcat:
		return m.seq(re.Sub, pos, k)

	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if m.match(sub, pos, k) {
				return true
			}
		}
		return false

	case syntax.OpStar:
		return m.repeat(re.Sub[0], 0, -1, re.Flags&syntax.NonGreedy != 0, pos, k)

	case syntax.OpPlus:
		return m.repeat(re.Sub[0], 1, -1, re.Flags&syntax.NonGreedy != 0, pos, k)

	case syntax.OpQuest:
		return m.repeat(re.Sub[0], 0, 1, re.Flags&syntax.NonGreedy != 0, pos, k)

	case syntax.OpRepeat:
		return m.repeat(re.Sub[0], re.Min, re.Max, re.Flags&syntax.NonGreedy != 0, pos, k)
	}

	return false
}

func (m *matcher) seq(subs []*syntax.Regexp, pos int, k cont) bool {
	if len(subs) == 0 {
		return k(pos)
	}
	return m.match(subs[0], pos, func(next int) bool {
		return m.seq(subs[1:], next, k)
	})
}

// repeat implements all quantifiers. Iterations that consume no input
// are cut off to keep loops finite; repeating an empty match changes
// nothing about the result.
func (m *matcher) repeat(sub *syntax.Regexp, min, max int, nonGreedy bool, pos int, k cont) bool {
	var iterate func(p, n int) bool
	iterate = func(p, n int) bool {
		if n < min {
			return m.match(sub, p, func(next int) bool {
				return iterate(next, n+1)
			})
		}
		if nonGreedy {
			if k(p) {
				return true
			}
			if max >= 0 && n >= max {
				return false
			}
			return m.match(sub, p, func(next int) bool {
				if next == p {
					return false
				}
				return iterate(next, n+1)
			})
		}
		if max < 0 || n < max {
			if m.match(sub, p, func(next int) bool {
				if next == p {
					return false
				}
				return iterate(next, n+1)
			}) {
				return true
			}
		}
		return k(p)
	}
	return iterate(pos, 0)
}

func (m *matcher) runeAt(pos int) (rune, int) {
	if pos >= len(m.text) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(m.text[pos:])
}

func (m *matcher) atWordBoundary(pos int) bool {
	before := false
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(m.text[:pos])
		before = syntax.IsWordChar(r)
	}
	after := false
	if pos < len(m.text) {
		r, _ := utf8.DecodeRuneInString(m.text[pos:])
		after = syntax.IsWordChar(r)
	}
	return before != after
}

func runeEq(r, want rune, fold bool) bool {
	if r == want {
		return true
	}
	if !fold {
		return false
	}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f == want {
			return true
		}
	}
	return false
}

func inClass(r rune, ranges []rune) bool {
	for i := 0; i+1 < len(ranges); i += 2 {
		if r >= ranges[i] && r <= ranges[i+1] {
			return true
		}
	}
	return false
}
