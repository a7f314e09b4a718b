package schema

import "github.com/y-scope/log-surgeon/pattern"

// Cassandra returns a rule set for Apache Cassandra system logs. The
// HH:MM:SS timestamp is the header pattern; generic catch-alls come
// last so specific rules win.
func Cassandra() *Config {
	return &Config{
		Delimiters: " \t\r\n:,!;%@/()[].",
		Variables: []VariableRule{
			{Name: "TIMESTAMP", Pattern: `(?<hour>\d{2}):(?<minute>\d{2}):(?<second>\d{2})`},
			{Name: "LEVEL", Pattern: `(?<level>(INFO)|(WARN)|(ERROR))`},
			{Name: "STREAM_ID", Pattern: `Stream #(?<stream_id>` + pattern.UUID + `)`},
			{Name: "HINT_FILE", Pattern: `(?<hint_file>` + pattern.UUID + `\-\d+\-\d+\.hints)`},
			{Name: "KEYSPACE_TABLE", Pattern: `Initializing (?<keyspace>[a-z0-9_]+)\.(?<table>[a-z0-9_]+)`},
			{Name: "CASSANDRA_HOST", Pattern: `cassandra\-(?<hostname>[a-z0-9\-]+)`},
			{Name: "MEMORY_MB", Pattern: `(?<memory>` + pattern.Int + `)MB`},
			{Name: "DURATION_MS", Pattern: `(?<duration>` + pattern.Int + `)\s*ms`},
			{Name: "HANDSHAKING_IP", Pattern: `Handshaking version with (?<hostname>[\w\-]+)/(?<ip>` + pattern.IPv4 + `)`},
			{Name: "SESSION_WITH_IP", Pattern: `Session with /(?<ip>` + pattern.IPv4 + `)`},
			{Name: "CQL_LISTENING", Pattern: `Starting listening for CQL clients on /(?<ip>` + pattern.IPv4 + `):(?<port>` + pattern.Port + `)`},
			{Name: "THREAD_NAME", Pattern: `Thread\[(?<thread>[^\]]+)\]`},
			{Name: "PATH", Pattern: `(?<path>/[\w/\-\.]+)`},
			{Name: "LONG_NUMBER", Pattern: `(?<long>\-?\d{7,20})`},
			{Name: "SYSTEM_IP", Pattern: `(?<ip>` + pattern.IPv4 + `)`},
			{Name: "SYSTEM_UUID", Pattern: `(?<uuid>` + pattern.UUID + `)`},
			{Name: "GENERIC_FLOAT", Pattern: `(?<float>` + pattern.Float + `)`},
			{Name: "GENERIC_INT", Pattern: `(?<int>` + pattern.Int + `)`},
			{Name: "HEX_NUMBER", Pattern: `(?<hex>` + pattern.Hex + `)`},
			{Name: "PORT_NUMBER", Pattern: `(?<port>` + pattern.Port + `)`},
		},
	}
}

// Hadoop returns a rule set for Hadoop YARN container logs.
func Hadoop() *Config {
	return &Config{
		Delimiters: " \t\r\n:,!;%@/()[].=",
		Variables: []VariableRule{
			{Name: "handler_class", Pattern: `for class (?<handler_class>org\.apache\.hadoop\.yarn\.server\.[a-zA-Z0-9\.$]+)`},
			{Name: "container", Pattern: `container[0-9_]+`},
			{Name: "VAR", Pattern: `[a-zA-Z0-9_\.\-/\\#!]*[0-9][a-zA-Z0-9_\.\-/\\]*`},
			{Name: "GENERIC_INT", Pattern: `(?<int>` + pattern.Int + `)`},
		},
	}
}
