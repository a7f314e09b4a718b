package logsurgeon

import (
	"github.com/y-scope/log-surgeon/internal/captures"
	"github.com/y-scope/log-surgeon/internal/prefilter"
)

type (
	// scanner probes every compiled pattern at a single anchor
	// position. It is immutable after compilation and safe to share
	// between parser instances.
	scanner struct {
		patterns []compiledPattern

		// lead is the union of bytes that can start any match; nil
		// when a pattern was too complex to analyze.
		lead *prefilter.ByteSet
	}

	// scanMatch is one accepted probe result.
	scanMatch struct {
		pattern *compiledPattern
		length  int
	}
)

// tryMatch attempts every pattern anchored at pos and returns the
// longest match; ties go to the earliest-declared pattern. Zero-length
// matches are treated as no match. Delimiter policy is not consulted
// here; that lives in the tokenizer.
func (s *scanner) tryMatch(input string, pos int) (scanMatch, bool) {
	if s.lead != nil && s.lead.IsUseful() && !s.lead.Contains(input[pos]) {
		return scanMatch{}, false
	}

	best := scanMatch{}
	for i := range s.patterns {
		p := &s.patterns[i]
		loc := p.probe.FindStringIndex(input[pos:])
		if loc == nil || loc[1] == 0 {
			continue
		}
		if loc[1] > best.length {
			best = scanMatch{pattern: p, length: loc[1]}
		}
	}

	return best, best.pattern != nil
}

// captureGroups extracts named subgroup matches from an accepted span.
// The matched text is replayed through the capture interpreter so that
// groups under quantifiers report every occurrence; if the replay
// fails, the engine's last-occurrence submatches are used instead.
func (s *scanner) captureGroups(p *compiledPattern, text string) Capture {
	if !p.named {
		return nil
	}
	if caps, ok := captures.Harvest(p.prog, text); ok {
		return caps
	}
	return s.engineCaptures(p, text)
}

func (s *scanner) engineCaptures(p *compiledPattern, text string) Capture {
	idx := p.probe.FindStringSubmatchIndex(text)
	if idx == nil {
		return nil
	}

	names := p.probe.SubexpNames()
	caps := make(Capture)
	for gi, name := range names {
		if name == "" || 2*gi+1 >= len(idx) {
			continue
		}
		lo, hi := idx[2*gi], idx[2*gi+1]
		if lo < 0 {
			continue
		}
		caps[name] = append(caps[name], text[lo:hi])
	}

	return caps
}
