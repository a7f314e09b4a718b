// Package pattern provides reusable regex fragments for building
// variable-pattern schemas. Fragments are plain source strings meant
// to be composed into ReaderParser patterns.
package pattern

const (
	// Int matches a decimal integer with an optional leading minus.
	Int = `\-?\d+`

	// Float matches a decimal number with a fractional part.
	Float = `\-?\d+\.\d+`

	// IPv4 matches a dotted-quad IPv4 address.
	IPv4 = `\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`

	// Port matches a TCP/UDP port number.
	Port = `\d{1,5}`

	// UUID matches a lowercase hyphenated UUID.
	UUID = `[0-9a-f]{8}\-[0-9a-f]{4}\-[0-9a-f]{4}\-[0-9a-f]{4}\-[0-9a-f]{12}`

	// Hex matches a 0x-prefixed lowercase hex number.
	Hex = `0x[a-f0-9]+`

	// JavaIdentifierCharset is the character set of Java identifiers,
	// for use inside a character class.
	JavaIdentifierCharset = `a-zA-Z0-9_$`

	// JavaPackageSegment matches one dotted package segment, dot
	// included.
	JavaPackageSegment = `[a-z][a-z0-9_]*\.`

	// LogLine matches the remainder of a line.
	LogLine = `[^\n]*`
)
