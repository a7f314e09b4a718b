// Package prefilter computes the set of bytes that can start a match
// of any registered pattern. The tokenizer probes the scanner at every
// candidate position; a 256-entry lookup table rejects most positions
// without touching the regex engine.
package prefilter

import (
	"regexp/syntax"
	"unicode"
	"unicode/utf8"
)

// ByteSet is a lookup table over possible first bytes of a non-empty
// match.
type ByteSet struct {
	bytes [256]bool
	count int
}

// Contains reports whether b can begin a match.
func (s *ByteSet) Contains(b byte) bool {
	return s.bytes[b]
}

// Count returns the number of possible first bytes.
func (s *ByteSet) Count() int {
	return s.count
}

// IsUseful reports whether the set can reject anything at all.
func (s *ByteSet) IsUseful() bool {
	return s.count > 0 && s.count < 256
}

// Leading unions the possible first bytes of every pattern. It returns
// nil when any pattern is too complex to analyze; a nil set disables
// filtering.
func Leading(patterns []*syntax.Regexp) *ByteSet {
	set := &ByteSet{}
	for _, re := range patterns {
		if !set.add(re) {
			return nil
		}
	}
	return set
}

func (s *ByteSet) setByte(b byte) {
	if !s.bytes[b] {
		s.bytes[b] = true
		s.count++
	}
}

func (s *ByteSet) setRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if n > 0 {
		s.setByte(buf[0])
	}
}

// add records the first bytes reachable from re. Returns false when
// the node kind cannot be analyzed.
func (s *ByteSet) add(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpNoMatch, syntax.OpEmptyMatch,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return true

	case syntax.OpLiteral:
		if len(re.Rune) == 0 {
			return true
		}
		s.addRune(re.Rune[0], re.Flags&syntax.FoldCase != 0)
		return true

	case syntax.OpCharClass:
		for i := 0; i+1 < len(re.Rune); i += 2 {
			s.addRuneRange(re.Rune[i], re.Rune[i+1])
		}
		return true

	case syntax.OpAnyCharNotNL:
		for i := 0; i < 256; i++ {
			if i != '\n' {
				s.setByte(byte(i))
			}
		}
		return true

	case syntax.OpAnyChar:
		for i := 0; i < 256; i++ {
			s.setByte(byte(i))
		}
		return true

	case syntax.OpCapture, syntax.OpStar, syntax.OpPlus, syntax.OpQuest, syntax.OpRepeat:
		return s.add(re.Sub[0])

	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if !s.add(sub) {
				return false
			}
		}
		return true

	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if !s.add(sub) {
				return false
			}
			if !matchesEmpty(sub) {
				return true
			}
		}
		return true
	}

	return false
}

func (s *ByteSet) addRune(r rune, fold bool) {
	s.setRune(r)
	if !fold {
		return
	}
	// Case-folded literals store one representative; admit the other
	// simple-case variants too.
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		s.setRune(f)
	}
}

// addRuneRange marks the lead bytes of every rune in [lo, hi]. UTF-8
// lead bytes are monotonic in the code point, so a contiguous rune
// range maps to a contiguous lead-byte range.
func (s *ByteSet) addRuneRange(lo, hi rune) {
	if lo < 0x80 {
		asciiHi := hi
		if asciiHi > 0x7F {
			asciiHi = 0x7F
		}
		for r := lo; r <= asciiHi; r++ {
			s.setByte(byte(r))
		}
		lo = 0x80
	}
	if hi < 0x80 {
		return
	}
	if hi > utf8.MaxRune {
		hi = utf8.MaxRune
	}
	var bufLo, bufHi [utf8.UTFMax]byte
	utf8.EncodeRune(bufLo[:], lo)
	utf8.EncodeRune(bufHi[:], hi)
	for b := int(bufLo[0]); b <= int(bufHi[0]); b++ {
		s.setByte(byte(b))
	}
}

func matchesEmpty(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpEmptyMatch,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary,
		syntax.OpStar, syntax.OpQuest:
		return true

	case syntax.OpLiteral:
		return len(re.Rune) == 0

	case syntax.OpRepeat:
		return re.Min == 0 || matchesEmpty(re.Sub[0])

	case syntax.OpPlus, syntax.OpCapture:
		return matchesEmpty(re.Sub[0])

	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if !matchesEmpty(sub) {
				return false
			}
		}
		return true

	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if matchesEmpty(sub) {
				return true
			}
		}
		return false
	}

	return false
}
